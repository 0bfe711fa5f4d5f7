package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/teamready/readiness-backend-go/internal/domain/absence"
	"github.com/teamready/readiness-backend-go/internal/pkg/database"
)

type absenceRepository struct {
	db *database.DB
}

const absenceColumns = `
	a.id, a.company_id, a.team_id, a.member_id, a.date, a.status,
	a.reason_category, a.explanation, a.justified_at,
	a.reviewed_by, a.review_notes, a.reviewed_at,
	a.created_at, a.updated_at,
	m.full_name
`

func scanAbsence(row pgx.Row) (absence.Absence, error) {
	var a absence.Absence
	err := row.Scan(
		&a.ID, &a.CompanyID, &a.TeamID, &a.MemberID, &a.Date, &a.Status,
		&a.ReasonCategory, &a.Explanation, &a.JustifiedAt,
		&a.ReviewedBy, &a.ReviewNotes, &a.ReviewedAt,
		&a.CreatedAt, &a.UpdatedAt,
		&a.MemberName,
	)
	return a, err
}

// CreateIfAbsent implements absence.AbsenceRepository. ON CONFLICT DO
// NOTHING makes detection idempotent: rerunning a sweep never duplicates
// records or errors out.
func (r *absenceRepository) CreateIfAbsent(ctx context.Context, a absence.Absence) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO absences (id, company_id, team_id, member_id, date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (member_id, date) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, a.ID, a.CompanyID, a.TeamID, a.MemberID, a.Date, string(a.Status))
	if err != nil {
		return false, fmt.Errorf("failed to create absence record: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// GetByID implements absence.AbsenceRepository.
func (r *absenceRepository) GetByID(ctx context.Context, id string, companyID string) (absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + absenceColumns + `
		FROM absences a
		JOIN members m ON m.id = a.member_id
		WHERE a.id = $1 AND a.company_id = $2
	`

	a, err := scanAbsence(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.Absence{}, absence.ErrAbsenceNotFound
		}
		return absence.Absence{}, fmt.Errorf("failed to get absence by ID: %w", err)
	}

	return a, nil
}

// ListPendingByMember implements absence.AbsenceRepository.
func (r *absenceRepository) ListPendingByMember(ctx context.Context, memberID string, companyID string) ([]absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + absenceColumns + `
		FROM absences a
		JOIN members m ON m.id = a.member_id
		WHERE a.member_id = $1 AND a.company_id = $2 AND a.status = $3
		ORDER BY a.date
	`

	return r.listAbsences(ctx, q, query, memberID, companyID, string(absence.StatusPendingJustification))
}

// ListDatesByMember implements absence.AbsenceRepository.
func (r *absenceRepository) ListDatesByMember(ctx context.Context, memberID string, startDate, endDate string, companyID string) (map[string]struct{}, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date
		FROM absences
		WHERE member_id = $1 AND date >= $2 AND date <= $3 AND company_id = $4
	`

	rows, err := q.Query(ctx, query, memberID, startDate, endDate, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query absence dates: %w", err)
	}
	defer rows.Close()

	dates := make(map[string]struct{})
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan absence date: %w", err)
		}
		dates[d] = struct{}{}
	}

	return dates, nil
}

// ListByTeamAndDate implements absence.AbsenceRepository.
func (r *absenceRepository) ListByTeamAndDate(ctx context.Context, teamID string, dateLocal string, companyID string) ([]absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + absenceColumns + `
		FROM absences a
		JOIN members m ON m.id = a.member_id
		WHERE a.team_id = $1 AND a.date = $2 AND a.company_id = $3
		ORDER BY m.full_name
	`

	return r.listAbsences(ctx, q, query, teamID, dateLocal, companyID)
}

// ListReviewedByMembers implements absence.AbsenceRepository.
func (r *absenceRepository) ListReviewedByMembers(ctx context.Context, memberIDs []string, startDate, endDate string, companyID string) ([]absence.Absence, error) {
	if len(memberIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + absenceColumns + `
		FROM absences a
		JOIN members m ON m.id = a.member_id
		WHERE a.member_id = ANY($1)
		  AND a.company_id = $2
		  AND a.date >= $3
		  AND a.date <= $4
		  AND a.status IN ($5, $6)
		ORDER BY a.date
	`

	return r.listAbsences(ctx, q, query,
		memberIDs, companyID, startDate, endDate,
		string(absence.StatusExcused), string(absence.StatusUnexcused),
	)
}

// Justify implements absence.AbsenceRepository. The "not yet justified"
// predicate lives in the WHERE clause so two concurrent justifications of
// the same record cannot both match.
func (r *absenceRepository) Justify(ctx context.Context, id string, memberID string, category absence.ReasonCategory, explanation string, justifiedAt time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE absences
		SET reason_category = $3, explanation = $4, justified_at = $5, updated_at = NOW()
		WHERE id = $1
		  AND member_id = $2
		  AND status = $6
		  AND justified_at IS NULL
	`

	tag, err := q.Exec(ctx, query,
		id, memberID, string(category), explanation, justifiedAt,
		string(absence.StatusPendingJustification),
	)
	if err != nil {
		return false, fmt.Errorf("failed to justify absence: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Review implements absence.AbsenceRepository.
func (r *absenceRepository) Review(ctx context.Context, id string, verdict absence.Status, reviewerID string, notes *string, reviewedAt time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE absences
		SET status = $2, reviewed_by = $3, review_notes = $4, reviewed_at = $5, updated_at = NOW()
		WHERE id = $1
		  AND status = $6
		  AND justified_at IS NOT NULL
	`

	tag, err := q.Exec(ctx, query,
		id, string(verdict), reviewerID, notes, reviewedAt,
		string(absence.StatusPendingJustification),
	)
	if err != nil {
		return false, fmt.Errorf("failed to review absence: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *absenceRepository) listAbsences(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]absence.Absence, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query absences: %w", err)
	}
	defer rows.Close()

	var absences []absence.Absence
	for rows.Next() {
		a, err := scanAbsence(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan absence: %w", err)
		}
		absences = append(absences, a)
	}

	return absences, nil
}

func NewAbsenceRepository(db *database.DB) absence.AbsenceRepository {
	return &absenceRepository{db: db}
}
