package absence

import "errors"

// Absence lifecycle errors. The state-conflict sentinels name the state the
// record is actually in so callers can reconcile.
var (
	ErrAbsenceNotFound  = errors.New("absence record not found")
	ErrAlreadyJustified = errors.New("absence has already been justified")
	ErrNotYetJustified  = errors.New("absence has not been justified yet")
	ErrAlreadyReviewed  = errors.New("absence has already been reviewed")
)
