package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/teamready/readiness-backend-go/internal/domain/checkin"
	"github.com/teamready/readiness-backend-go/internal/pkg/database"
)

type checkinRepository struct {
	db *database.DB
}

const checkinColumns = `
	id, company_id, team_id, member_id, date_local,
	sleep_quality, energy_level, mood, stress_level,
	readiness_score, readiness_status, created_at
`

// Create implements checkin.CheckinRepository.
func (r *checkinRepository) Create(ctx context.Context, c checkin.Checkin) (checkin.Checkin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO checkins (
			id, company_id, team_id, member_id, date_local,
			sleep_quality, energy_level, mood, stress_level,
			readiness_score, readiness_status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		c.ID, c.CompanyID, c.TeamID, c.MemberID, c.DateLocal,
		c.SleepQuality, c.EnergyLevel, c.Mood, c.StressLevel,
		c.ReadinessScore, string(c.ReadinessStatus),
	).Scan(&c.CreatedAt)

	if err != nil {
		// unique (member_id, date_local) violation means a concurrent
		// check-in already won the day
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return checkin.Checkin{}, checkin.ErrAlreadyCheckedIn
		}
		return checkin.Checkin{}, fmt.Errorf("failed to create check-in: %w", err)
	}

	return c, nil
}

// HasCheckedInOn implements checkin.CheckinRepository.
func (r *checkinRepository) HasCheckedInOn(ctx context.Context, memberID string, dateLocal string, companyID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM checkins
			WHERE member_id = $1
			  AND date_local = $2
			  AND company_id = $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, memberID, dateLocal, companyID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existing check-in: %w", err)
	}

	return exists, nil
}

// ListByTeamAndDate implements checkin.CheckinRepository.
func (r *checkinRepository) ListByTeamAndDate(ctx context.Context, teamID string, dateLocal string, companyID string) ([]checkin.Checkin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + checkinColumns + `
		FROM checkins
		WHERE team_id = $1 AND date_local = $2 AND company_id = $3
		ORDER BY created_at
	`

	return r.listCheckins(ctx, q, query, teamID, dateLocal, companyID)
}

// ListByTeamDateRange implements checkin.CheckinRepository.
func (r *checkinRepository) ListByTeamDateRange(ctx context.Context, teamID string, startDate, endDate string, companyID string) ([]checkin.Checkin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + checkinColumns + `
		FROM checkins
		WHERE team_id = $1 AND date_local >= $2 AND date_local <= $3 AND company_id = $4
		ORDER BY date_local
	`

	return r.listCheckins(ctx, q, query, teamID, startDate, endDate, companyID)
}

// ListByMemberDateRange implements checkin.CheckinRepository.
func (r *checkinRepository) ListByMemberDateRange(ctx context.Context, memberID string, startDate, endDate string, limit int, companyID string) ([]checkin.Checkin, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 {
		limit = 30
	}

	query := `
		SELECT ` + checkinColumns + `
		FROM checkins
		WHERE member_id = $1 AND date_local >= $2 AND date_local <= $3 AND company_id = $4
		ORDER BY date_local DESC
		LIMIT $5
	`

	return r.listCheckins(ctx, q, query, memberID, startDate, endDate, companyID, limit)
}

// ListDatesByMember implements checkin.CheckinRepository.
func (r *checkinRepository) ListDatesByMember(ctx context.Context, memberID string, startDate, endDate string, companyID string) (map[string]struct{}, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date_local
		FROM checkins
		WHERE member_id = $1 AND date_local >= $2 AND date_local <= $3 AND company_id = $4
	`

	rows, err := q.Query(ctx, query, memberID, startDate, endDate, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query check-in dates: %w", err)
	}
	defer rows.Close()

	dates := make(map[string]struct{})
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan check-in date: %w", err)
		}
		dates[d] = struct{}{}
	}

	return dates, nil
}

func (r *checkinRepository) listCheckins(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]checkin.Checkin, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query check-ins: %w", err)
	}
	defer rows.Close()

	var checkins []checkin.Checkin
	for rows.Next() {
		var c checkin.Checkin
		err := rows.Scan(
			&c.ID, &c.CompanyID, &c.TeamID, &c.MemberID, &c.DateLocal,
			&c.SleepQuality, &c.EnergyLevel, &c.Mood, &c.StressLevel,
			&c.ReadinessScore, &c.ReadinessStatus, &c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan check-in: %w", err)
		}
		checkins = append(checkins, c)
	}

	return checkins, nil
}

func NewCheckinRepository(db *database.DB) checkin.CheckinRepository {
	return &checkinRepository{db: db}
}
