package audit

import "time"

// Entry is one append-only audit record. Writes are best-effort side
// effects of the primary operation, never part of its contract.
type Entry struct {
	ID          string
	CompanyID   string
	UserID      string
	Action      string
	EntityType  string
	EntityID    string
	Description string
	Metadata    map[string]interface{}
	CreatedAt   time.Time
}

// Action tags recorded by the engine.
const (
	ActionAbsenceDetected   = "absence.detected"
	ActionAbsenceJustified  = "absence.justified"
	ActionAbsenceReviewed   = "absence.reviewed"
	ActionCheckinSubmitted  = "checkin.submitted"
	ActionHolidayCreated    = "holiday.created"
	ActionHolidayDeleted    = "holiday.deleted"
	ActionExemptionRequest  = "exemption.requested"
	ActionExemptionResolved = "exemption.resolved"
)
