package summary

import "context"

// SummaryService recomputes and serves the daily attendance projections.
type SummaryService interface {
	// GetOrCompute returns the stored (team, date) summary, rebuilding and
	// persisting it on a cache miss
	GetOrCompute(ctx context.Context, teamID string, dateLocal string, companyID string) (DailyTeamSummary, error)

	// Recompute rebuilds the (team, date) summary from current upstream
	// state and upserts it
	Recompute(ctx context.Context, teamID string, dateLocal string, companyID string) (DailyTeamSummary, error)

	// RecomputeCompanyDate rebuilds one date for every team in the company
	RecomputeCompanyDate(ctx context.Context, companyID string, dateLocal string) error

	// RecomputeMemberRange rebuilds every date in the inclusive range for
	// the member's team
	RecomputeMemberRange(ctx context.Context, memberID string, startDate, endDate string, companyID string) error

	// GetDailyDetail returns the (team, date) summary together with its
	// per-member attendance rows, rebuilding both on a cache miss
	GetDailyDetail(ctx context.Context, teamID string, dateLocal string, companyID string) (DailyTeamSummary, []DailyAttendance, error)

	// GetHistory returns the stored summaries for a team over an inclusive
	// date range, ascending by date; dates never computed are absent
	GetHistory(ctx context.Context, teamID string, startDate, endDate string, companyID string) ([]DailyTeamSummary, error)
}
