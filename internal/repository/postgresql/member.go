package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/teamready/readiness-backend-go/internal/domain/member"
	"github.com/teamready/readiness-backend-go/internal/pkg/database"
)

type memberRepository struct {
	db *database.DB
}

const memberColumns = `
	id, company_id, team_id, full_name, role, active, team_joined_at,
	total_checkins, avg_readiness_score, last_readiness_status,
	created_at, updated_at
`

func scanMember(row pgx.Row) (member.Member, error) {
	var m member.Member
	err := row.Scan(
		&m.ID, &m.CompanyID, &m.TeamID, &m.FullName, &m.Role, &m.Active, &m.TeamJoinedAt,
		&m.TotalCheckins, &m.AvgReadinessScore, &m.LastReadinessStatus,
		&m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

// GetByID implements member.MemberRepository.
func (r *memberRepository) GetByID(ctx context.Context, id string, companyID string) (member.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + memberColumns + `
		FROM members
		WHERE id = $1 AND company_id = $2
	`

	m, err := scanMember(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return member.Member{}, member.ErrMemberNotFound
		}
		return member.Member{}, fmt.Errorf("failed to get member by ID: %w", err)
	}

	return m, nil
}

// ListActiveWorkersByTeam implements member.MemberRepository.
func (r *memberRepository) ListActiveWorkersByTeam(ctx context.Context, teamID string, companyID string) ([]member.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + memberColumns + `
		FROM members
		WHERE team_id = $1 AND company_id = $2 AND role = $3 AND active
		ORDER BY full_name
	`

	return r.listMembers(ctx, q, query, teamID, companyID, string(member.RoleWorker))
}

// ListActiveWorkersByCompany implements member.MemberRepository.
func (r *memberRepository) ListActiveWorkersByCompany(ctx context.Context, companyID string) ([]member.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + memberColumns + `
		FROM members
		WHERE company_id = $1 AND role = $2 AND active
		ORDER BY full_name
	`

	return r.listMembers(ctx, q, query, companyID, string(member.RoleWorker))
}

func (r *memberRepository) listMembers(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]member.Member, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	var members []member.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}

	return members, nil
}

// ApplyCheckinCounters implements member.MemberRepository. The running
// average folds the new score in without rereading check-in history.
func (r *memberRepository) ApplyCheckinCounters(ctx context.Context, id string, readinessScore int, readinessStatus string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE members
		SET total_checkins = total_checkins + 1,
		    avg_readiness_score = (avg_readiness_score * total_checkins + $2) / (total_checkins + 1),
		    last_readiness_status = $3,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, readinessScore, readinessStatus).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return member.ErrMemberNotFound
		}
		return fmt.Errorf("failed to apply check-in counters: %w", err)
	}

	return nil
}

func NewMemberRepository(db *database.DB) member.MemberRepository {
	return &memberRepository{db: db}
}
