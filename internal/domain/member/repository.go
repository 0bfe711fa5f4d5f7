package member

import "context"

// MemberRepository defines data access for members. All methods take
// companyID to prevent cross-company access.
type MemberRepository interface {
	// GetByID retrieves a member with company isolation
	GetByID(ctx context.Context, id string, companyID string) (Member, error)

	// ListActiveWorkersByTeam retrieves the active worker-role members of a
	// team; leads/managers carry no check-in obligation
	ListActiveWorkersByTeam(ctx context.Context, teamID string, companyID string) ([]Member, error)

	// ListActiveWorkersByCompany retrieves every active worker in a company
	ListActiveWorkersByCompany(ctx context.Context, companyID string) ([]Member, error)

	// ApplyCheckinCounters folds one new check-in into the member's running
	// counters (totalCheckins, avgReadinessScore, lastReadinessStatus)
	ApplyCheckinCounters(ctx context.Context, id string, readinessScore int, readinessStatus string) error
}
