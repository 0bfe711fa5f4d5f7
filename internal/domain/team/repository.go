package team

import "context"

// TeamRepository defines data access for teams. All methods take companyID
// to prevent cross-company access.
type TeamRepository interface {
	// GetByID retrieves a team with the company timezone resolved
	GetByID(ctx context.Context, id string, companyID string) (Team, error)

	// ListByCompany retrieves every team of a company
	ListByCompany(ctx context.Context, companyID string) ([]Team, error)
}
