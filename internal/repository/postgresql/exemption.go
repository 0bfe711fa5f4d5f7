package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/teamready/readiness-backend-go/internal/domain/exemption"
	"github.com/teamready/readiness-backend-go/internal/pkg/database"
)

type exemptionRepository struct {
	db *database.DB
}

const exemptionColumns = `
	e.id, e.company_id, e.member_id, e.start_date, e.end_date, e.reason,
	e.status, e.reviewed_by, e.reviewed_at, e.created_at, e.updated_at,
	m.full_name
`

func scanExemption(row pgx.Row) (exemption.Exemption, error) {
	var e exemption.Exemption
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.MemberID, &e.StartDate, &e.EndDate, &e.Reason,
		&e.Status, &e.ReviewedBy, &e.ReviewedAt, &e.CreatedAt, &e.UpdatedAt,
		&e.MemberName,
	)
	return e, err
}

// Create implements exemption.ExemptionRepository.
func (r *exemptionRepository) Create(ctx context.Context, e exemption.Exemption) (exemption.Exemption, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO exemptions (id, company_id, member_id, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.ID, e.CompanyID, e.MemberID, e.StartDate, e.EndDate, e.Reason, string(e.Status),
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return exemption.Exemption{}, fmt.Errorf("failed to create exemption: %w", err)
	}

	return e, nil
}

// GetByID implements exemption.ExemptionRepository.
func (r *exemptionRepository) GetByID(ctx context.Context, id string, companyID string) (exemption.Exemption, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + exemptionColumns + `
		FROM exemptions e
		JOIN members m ON m.id = e.member_id
		WHERE e.id = $1 AND e.company_id = $2
	`

	e, err := scanExemption(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return exemption.Exemption{}, exemption.ErrExemptionNotFound
		}
		return exemption.Exemption{}, fmt.Errorf("failed to get exemption by ID: %w", err)
	}

	return e, nil
}

// Resolve implements exemption.ExemptionRepository. The status predicate in
// the WHERE clause makes concurrent resolutions race safely: only one wins.
func (r *exemptionRepository) Resolve(ctx context.Context, id string, companyID string, status exemption.Status, reviewerID string) (exemption.Exemption, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE exemptions
		SET status = $3, reviewed_by = $4, reviewed_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND status = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, companyID, string(status), reviewerID, string(exemption.StatusPending)).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// the record either doesn't exist or is no longer pending;
			// reread to tell the two apart
			if _, getErr := r.GetByID(ctx, id, companyID); getErr != nil {
				return exemption.Exemption{}, getErr
			}
			return exemption.Exemption{}, exemption.ErrAlreadyProcessed
		}
		return exemption.Exemption{}, fmt.Errorf("failed to resolve exemption: %w", err)
	}

	return r.GetByID(ctx, id, companyID)
}

// ListApprovedOverlapping implements exemption.ExemptionRepository.
func (r *exemptionRepository) ListApprovedOverlapping(ctx context.Context, memberIDs []string, startDate, endDate string, companyID string) ([]exemption.Exemption, error) {
	if len(memberIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + exemptionColumns + `
		FROM exemptions e
		JOIN members m ON m.id = e.member_id
		WHERE e.member_id = ANY($1)
		  AND e.company_id = $2
		  AND e.status = $3
		  AND e.start_date <= $4
		  AND e.end_date >= $5
		ORDER BY e.start_date
	`

	return r.listExemptions(ctx, q, query, memberIDs, companyID, string(exemption.StatusApproved), endDate, startDate)
}

// ListByMember implements exemption.ExemptionRepository.
func (r *exemptionRepository) ListByMember(ctx context.Context, memberID string, companyID string) ([]exemption.Exemption, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + exemptionColumns + `
		FROM exemptions e
		JOIN members m ON m.id = e.member_id
		WHERE e.member_id = $1 AND e.company_id = $2
		ORDER BY e.created_at DESC
	`

	return r.listExemptions(ctx, q, query, memberID, companyID)
}

func (r *exemptionRepository) listExemptions(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]exemption.Exemption, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query exemptions: %w", err)
	}
	defer rows.Close()

	var exemptions []exemption.Exemption
	for rows.Next() {
		e, err := scanExemption(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exemption: %w", err)
		}
		exemptions = append(exemptions, e)
	}

	return exemptions, nil
}

func NewExemptionRepository(db *database.DB) exemption.ExemptionRepository {
	return &exemptionRepository{db: db}
}
