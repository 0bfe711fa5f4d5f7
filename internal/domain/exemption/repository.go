package exemption

import "context"

// ExemptionRepository defines data access for leave exemptions.
type ExemptionRepository interface {
	// Create inserts a pending exemption
	Create(ctx context.Context, e Exemption) (Exemption, error)

	// GetByID retrieves an exemption with company isolation
	GetByID(ctx context.Context, id string, companyID string) (Exemption, error)

	// Resolve sets the terminal status iff the exemption is still PENDING;
	// returns ErrAlreadyProcessed when the conditional update matches no row
	Resolve(ctx context.Context, id string, companyID string, status Status, reviewerID string) (Exemption, error)

	// ListApprovedOverlapping retrieves approved exemptions of the given
	// members whose range intersects [startDate, endDate]
	ListApprovedOverlapping(ctx context.Context, memberIDs []string, startDate, endDate string, companyID string) ([]Exemption, error)

	// ListByMember retrieves a member's exemptions, newest first
	ListByMember(ctx context.Context, memberID string, companyID string) ([]Exemption, error)
}
