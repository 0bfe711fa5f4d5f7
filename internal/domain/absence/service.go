package absence

import "context"

// AbsenceService drives the absence lifecycle state machine.
type AbsenceService interface {
	// DetectForMember creates PENDING_JUSTIFICATION records for the
	// member's missed required days inside the detection window; idempotent
	// under concurrent invocation
	DetectForMember(ctx context.Context, memberID string, companyID string) (created int, err error)

	// GetPendingJustifications runs detection opportunistically, then
	// returns the member's pending absences
	GetPendingJustifications(ctx context.Context, memberID string, companyID string) ([]Absence, error)

	// SubmitJustification applies the member's justifications; every item
	// must belong to the caller and be unjustified
	SubmitJustification(ctx context.Context, memberID string, companyID string, req JustifyRequest) ([]Absence, error)

	// Review applies the terminal verdict on a justified absence
	Review(ctx context.Context, reviewerID string, companyID string, req ReviewRequest) (Absence, error)
}
