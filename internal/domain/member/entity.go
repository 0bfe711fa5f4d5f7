package member

import "time"

type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
	RoleLead    Role = "lead"
	RoleWorker  Role = "worker"
)

// CanReview reports whether the role may review absence justifications and
// exemption requests: team leads and above.
func (r Role) CanReview() bool {
	return r == RoleLead || r == RoleManager || r == RoleOwner
}

// Member is a user in a worker/member role. The cumulative counters are
// maintained incrementally by the check-in ingestion path; the grading
// engine never reads them as ground truth.
type Member struct {
	ID        string
	CompanyID string
	TeamID    *string
	FullName  string
	Role      Role
	Active    bool

	TeamJoinedAt *time.Time

	TotalCheckins       int
	AvgReadinessScore   float64
	LastReadinessStatus *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// JoinedAt is the instant the check-in obligation is anchored to: the team
// join time when known, the account creation time otherwise.
func (m Member) JoinedAt() time.Time {
	if m.TeamJoinedAt != nil {
		return *m.TeamJoinedAt
	}
	return m.CreatedAt
}
