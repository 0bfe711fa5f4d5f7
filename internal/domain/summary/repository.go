package summary

import "context"

// SummaryRepository persists the daily projections. Upserts fully replace
// the stored record; last writer wins on the whole row, which is safe
// because the row is a deterministic function of upstream data.
type SummaryRepository interface {
	// Upsert writes the (team, date) summary, replacing every field
	Upsert(ctx context.Context, s DailyTeamSummary) error

	// Get retrieves the stored summary; ErrSummaryNotFound on miss
	Get(ctx context.Context, teamID string, dateLocal string, companyID string) (DailyTeamSummary, error)

	// ListRange retrieves stored summaries for a team over an inclusive
	// date range, ascending by date
	ListRange(ctx context.Context, teamID string, startDate, endDate string, companyID string) ([]DailyTeamSummary, error)

	// ReplaceDailyAttendance swaps the per-member rows for (team, date)
	// in one transaction
	ReplaceDailyAttendance(ctx context.Context, teamID string, dateLocal string, companyID string, rows []DailyAttendance) error

	// ListDailyAttendance retrieves the per-member rows for (team, date)
	ListDailyAttendance(ctx context.Context, teamID string, dateLocal string, companyID string) ([]DailyAttendance, error)
}
