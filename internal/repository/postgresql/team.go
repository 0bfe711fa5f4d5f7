package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/teamready/readiness-backend-go/internal/domain/team"
	"github.com/teamready/readiness-backend-go/internal/pkg/database"
)

type teamRepository struct {
	db *database.DB
}

const teamColumns = `
	t.id, t.company_id, t.name, t.work_days, t.shift_start, t.leader_id,
	t.created_at, t.updated_at,
	c.timezone
`

// GetByID implements team.TeamRepository.
func (r *teamRepository) GetByID(ctx context.Context, id string, companyID string) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + teamColumns + `
		FROM teams t
		JOIN companies c ON c.id = t.company_id
		WHERE t.id = $1 AND t.company_id = $2
	`

	var t team.Team
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&t.ID, &t.CompanyID, &t.Name, &t.WorkDays, &t.ShiftStart, &t.LeaderID,
		&t.CreatedAt, &t.UpdatedAt,
		&t.Timezone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return team.Team{}, team.ErrTeamNotFound
		}
		return team.Team{}, fmt.Errorf("failed to get team by ID: %w", err)
	}

	return t, nil
}

// ListByCompany implements team.TeamRepository.
func (r *teamRepository) ListByCompany(ctx context.Context, companyID string) ([]team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + teamColumns + `
		FROM teams t
		JOIN companies c ON c.id = t.company_id
		WHERE t.company_id = $1
		ORDER BY t.name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var teams []team.Team
	for rows.Next() {
		var t team.Team
		err := rows.Scan(
			&t.ID, &t.CompanyID, &t.Name, &t.WorkDays, &t.ShiftStart, &t.LeaderID,
			&t.CreatedAt, &t.UpdatedAt,
			&t.Timezone,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}

	return teams, nil
}

func NewTeamRepository(db *database.DB) team.TeamRepository {
	return &teamRepository{db: db}
}
