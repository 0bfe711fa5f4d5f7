package absence

import "time"

type Status string

const (
	// StatusPendingJustification covers both phases before review: the
	// record as created by detection (no justification yet) and the record
	// after the member justified it (JustifiedAt set, awaiting review).
	StatusPendingJustification Status = "PENDING_JUSTIFICATION"
	StatusExcused              Status = "EXCUSED"
	StatusUnexcused            Status = "UNEXCUSED"
)

type ReasonCategory string

const (
	ReasonIllness         ReasonCategory = "ILLNESS"
	ReasonFamilyEmergency ReasonCategory = "FAMILY_EMERGENCY"
	ReasonTransport       ReasonCategory = "TRANSPORT"
	ReasonPersonal        ReasonCategory = "PERSONAL"
	ReasonTechnicalIssue  ReasonCategory = "TECHNICAL_ISSUE"
	ReasonOther           ReasonCategory = "OTHER"
)

// ReasonCategories returns the closed set of justification categories.
func ReasonCategories() []string {
	return []string{
		string(ReasonIllness),
		string(ReasonFamilyEmergency),
		string(ReasonTransport),
		string(ReasonPersonal),
		string(ReasonTechnicalIssue),
		string(ReasonOther),
	}
}

// Absence tracks one missed required day per (member, date). Justification
// fields are set once by the member; review fields are set once by a
// reviewer, after which the record is terminal.
type Absence struct {
	ID        string
	CompanyID string
	TeamID    string
	MemberID  string
	Date      string // YYYY-MM-DD, unique per member
	Status    Status

	ReasonCategory *ReasonCategory
	Explanation    *string
	JustifiedAt    *time.Time

	ReviewedBy  *string
	ReviewNotes *string
	ReviewedAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	MemberName *string
}

// Justified reports whether the member has supplied a justification.
func (a Absence) Justified() bool {
	return a.JustifiedAt != nil
}

// Reviewed reports whether the absence reached a terminal verdict.
func (a Absence) Reviewed() bool {
	return a.Status == StatusExcused || a.Status == StatusUnexcused
}
