package exemption

import "time"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Exemption is an approved-leave period over an inclusive local-date range.
// Only APPROVED exemptions remove the check-in obligation; overlapping
// approved exemptions on the same date must not double-count a member.
type Exemption struct {
	ID        string
	CompanyID string
	MemberID  string
	StartDate string // YYYY-MM-DD, inclusive
	EndDate   string // YYYY-MM-DD, inclusive
	Reason    string
	Status    Status

	ReviewedBy *string
	ReviewedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	MemberName *string
}

// Covers reports whether the local date falls inside the exemption range.
// Date strings in YYYY-MM-DD form order lexicographically.
func (e Exemption) Covers(dateLocal string) bool {
	return e.StartDate <= dateLocal && dateLocal <= e.EndDate
}
