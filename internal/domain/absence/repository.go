package absence

import (
	"context"
	"time"
)

// AbsenceRepository defines data access for absence records. Justify and
// Review are conditional writes: the state predicate lives in the UPDATE's
// WHERE clause so concurrent transitions on the same record cannot both
// succeed.
type AbsenceRepository interface {
	// CreateIfAbsent inserts a detection record; the unique
	// (member_id, date) constraint resolves a concurrent race to
	// "record already exists", reported via created=false, not an error
	CreateIfAbsent(ctx context.Context, a Absence) (created bool, err error)

	// GetByID retrieves an absence with company isolation
	GetByID(ctx context.Context, id string, companyID string) (Absence, error)

	// ListPendingByMember retrieves the member's PENDING_JUSTIFICATION
	// records, oldest date first
	ListPendingByMember(ctx context.Context, memberID string, companyID string) ([]Absence, error)

	// ListDatesByMember returns the set of dates in [startDate, endDate]
	// that already carry an absence record for the member
	ListDatesByMember(ctx context.Context, memberID string, startDate, endDate string, companyID string) (map[string]struct{}, error)

	// ListByTeamAndDate retrieves a team's absences for one date
	ListByTeamAndDate(ctx context.Context, teamID string, dateLocal string, companyID string) ([]Absence, error)

	// ListReviewedByMembers retrieves terminal (EXCUSED/UNEXCUSED) absences
	// of the given members within the inclusive date range
	ListReviewedByMembers(ctx context.Context, memberIDs []string, startDate, endDate string, companyID string) ([]Absence, error)

	// Justify sets the justification fields iff the record is unjustified
	// PENDING_JUSTIFICATION and owned by memberID; matched=false otherwise
	Justify(ctx context.Context, id string, memberID string, category ReasonCategory, explanation string, justifiedAt time.Time) (matched bool, err error)

	// Review sets the terminal verdict iff the record is justified and
	// still PENDING_JUSTIFICATION; matched=false otherwise
	Review(ctx context.Context, id string, verdict Status, reviewerID string, notes *string, reviewedAt time.Time) (matched bool, err error)
}
