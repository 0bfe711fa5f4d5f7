package checkin

import "context"

// CheckinRepository defines data access for check-in events. All methods
// take companyID to prevent cross-company access.
type CheckinRepository interface {
	// Create inserts a check-in; the unique (member_id, date_local)
	// constraint enforces one per member per local day
	Create(ctx context.Context, c Checkin) (Checkin, error)

	// HasCheckedInOn reports whether the member already has a check-in for
	// the local date
	HasCheckedInOn(ctx context.Context, memberID string, dateLocal string, companyID string) (bool, error)

	// ListByTeamAndDate retrieves a team's check-ins for one local date
	ListByTeamAndDate(ctx context.Context, teamID string, dateLocal string, companyID string) ([]Checkin, error)

	// ListByTeamDateRange retrieves a team's check-ins over an inclusive
	// local-date range, ordered by date
	ListByTeamDateRange(ctx context.Context, teamID string, startDate, endDate string, companyID string) ([]Checkin, error)

	// ListByMemberDateRange retrieves one member's check-ins over an
	// inclusive local-date range, newest first
	ListByMemberDateRange(ctx context.Context, memberID string, startDate, endDate string, limit int, companyID string) ([]Checkin, error)

	// ListDatesByMember returns the set of local dates the member checked in
	// on within the inclusive range
	ListDatesByMember(ctx context.Context, memberID string, startDate, endDate string, companyID string) (map[string]struct{}, error)
}
