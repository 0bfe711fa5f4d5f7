package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/teamready/readiness-backend-go/internal/domain/summary"
	"github.com/teamready/readiness-backend-go/internal/pkg/database"
)

type summaryRepository struct {
	db *database.DB
}

// Upsert implements summary.SummaryRepository. Every field is replaced on
// conflict: the row is a derived projection, so last writer wins on the
// whole record.
func (r *summaryRepository) Upsert(ctx context.Context, s summary.DailyTeamSummary) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_team_summaries (
			team_id, company_id, date, is_work_day, is_holiday,
			total_members, on_leave_count, expected_to_check_in, checked_in_count,
			green_count, yellow_count, red_count,
			avg_readiness_score, compliance_rate
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
		ON CONFLICT (team_id, date) DO UPDATE SET
			is_work_day = EXCLUDED.is_work_day,
			is_holiday = EXCLUDED.is_holiday,
			total_members = EXCLUDED.total_members,
			on_leave_count = EXCLUDED.on_leave_count,
			expected_to_check_in = EXCLUDED.expected_to_check_in,
			checked_in_count = EXCLUDED.checked_in_count,
			green_count = EXCLUDED.green_count,
			yellow_count = EXCLUDED.yellow_count,
			red_count = EXCLUDED.red_count,
			avg_readiness_score = EXCLUDED.avg_readiness_score,
			compliance_rate = EXCLUDED.compliance_rate,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		s.TeamID, s.CompanyID, s.Date, s.IsWorkDay, s.IsHoliday,
		s.TotalMembers, s.OnLeaveCount, s.ExpectedToCheckIn, s.CheckedInCount,
		s.GreenCount, s.YellowCount, s.RedCount,
		s.AvgReadinessScore, s.ComplianceRate,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert daily team summary: %w", err)
	}

	return nil
}

const summaryColumns = `
	team_id, company_id, date, is_work_day, is_holiday,
	total_members, on_leave_count, expected_to_check_in, checked_in_count,
	green_count, yellow_count, red_count,
	avg_readiness_score, compliance_rate,
	created_at, updated_at
`

func scanSummary(row pgx.Row) (summary.DailyTeamSummary, error) {
	var s summary.DailyTeamSummary
	err := row.Scan(
		&s.TeamID, &s.CompanyID, &s.Date, &s.IsWorkDay, &s.IsHoliday,
		&s.TotalMembers, &s.OnLeaveCount, &s.ExpectedToCheckIn, &s.CheckedInCount,
		&s.GreenCount, &s.YellowCount, &s.RedCount,
		&s.AvgReadinessScore, &s.ComplianceRate,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Get implements summary.SummaryRepository.
func (r *summaryRepository) Get(ctx context.Context, teamID string, dateLocal string, companyID string) (summary.DailyTeamSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + summaryColumns + `
		FROM daily_team_summaries
		WHERE team_id = $1 AND date = $2 AND company_id = $3
	`

	s, err := scanSummary(q.QueryRow(ctx, query, teamID, dateLocal, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return summary.DailyTeamSummary{}, summary.ErrSummaryNotFound
		}
		return summary.DailyTeamSummary{}, fmt.Errorf("failed to get daily team summary: %w", err)
	}

	return s, nil
}

// ListRange implements summary.SummaryRepository.
func (r *summaryRepository) ListRange(ctx context.Context, teamID string, startDate, endDate string, companyID string) ([]summary.DailyTeamSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + summaryColumns + `
		FROM daily_team_summaries
		WHERE team_id = $1 AND date >= $2 AND date <= $3 AND company_id = $4
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, teamID, startDate, endDate, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily team summaries: %w", err)
	}
	defer rows.Close()

	var summaries []summary.DailyTeamSummary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily team summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, nil
}

// ReplaceDailyAttendance implements summary.SummaryRepository. Delete plus
// insert inside one transaction keeps the per-member rows consistent with
// the recompute pass that produced them.
func (r *summaryRepository) ReplaceDailyAttendance(ctx context.Context, teamID string, dateLocal string, companyID string, attendanceRows []summary.DailyAttendance) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		deleteQuery := `
			DELETE FROM daily_attendance
			WHERE team_id = $1 AND date = $2 AND company_id = $3
		`
		if _, err := q.Exec(txCtx, deleteQuery, teamID, dateLocal, companyID); err != nil {
			return fmt.Errorf("failed to clear daily attendance: %w", err)
		}

		insertQuery := `
			INSERT INTO daily_attendance (
				team_id, company_id, member_id, date,
				checkin_at, minutes_late, status, score
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`
		for _, row := range attendanceRows {
			_, err := q.Exec(txCtx, insertQuery,
				row.TeamID, row.CompanyID, row.MemberID, row.Date,
				row.CheckinAt, row.MinutesLate, string(row.Status), row.Score,
			)
			if err != nil {
				return fmt.Errorf("failed to insert daily attendance: %w", err)
			}
		}

		return nil
	})
}

// ListDailyAttendance implements summary.SummaryRepository.
func (r *summaryRepository) ListDailyAttendance(ctx context.Context, teamID string, dateLocal string, companyID string) ([]summary.DailyAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT team_id, company_id, member_id, date,
		       checkin_at, minutes_late, status, score
		FROM daily_attendance
		WHERE team_id = $1 AND date = $2 AND company_id = $3
		ORDER BY member_id
	`

	rows, err := q.Query(ctx, query, teamID, dateLocal, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily attendance: %w", err)
	}
	defer rows.Close()

	var attendance []summary.DailyAttendance
	for rows.Next() {
		var a summary.DailyAttendance
		err := rows.Scan(
			&a.TeamID, &a.CompanyID, &a.MemberID, &a.Date,
			&a.CheckinAt, &a.MinutesLate, &a.Status, &a.Score,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily attendance: %w", err)
		}
		attendance = append(attendance, a)
	}

	return attendance, nil
}

func NewSummaryRepository(db *database.DB) summary.SummaryRepository {
	return &summaryRepository{db: db}
}
