package summary

import "time"

// DailyTeamSummary is the per-(team, date) attendance aggregate. It is a
// derived, rebuildable projection of Team/Member/Checkin/Holiday/Exemption/
// Absence state: recomputed wholesale on every relevant change, never
// patched field by field, and safe to discard at any time.
type DailyTeamSummary struct {
	TeamID    string
	CompanyID string
	Date      string // YYYY-MM-DD in the company timezone

	IsWorkDay bool
	IsHoliday bool

	TotalMembers      int
	OnLeaveCount      int
	ExpectedToCheckIn int
	CheckedInCount    int

	GreenCount  int
	YellowCount int
	RedCount    int

	// Nil when no check-ins exist; absence of data is never zero.
	AvgReadinessScore *float64

	// Nil when nobody was expected; otherwise 0-100, capped at 100.
	ComplianceRate *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

type DayStatus string

const (
	DayGreen   DayStatus = "GREEN"
	DayYellow  DayStatus = "YELLOW"
	DayRed     DayStatus = "RED"
	DayAbsent  DayStatus = "ABSENT"
	DayExcused DayStatus = "EXCUSED"
)

// DailyAttendance is the finer-grained per-member projection written in the
// same recompute pass as the team summary.
type DailyAttendance struct {
	TeamID    string
	CompanyID string
	MemberID  string
	Date      string

	CheckinAt   *time.Time
	MinutesLate *int
	Status      DayStatus
	Score       *int
}
