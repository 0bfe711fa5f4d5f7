package team

import "time"

// Team carries its work schedule as a comma-separated day-of-week token set
// (e.g. "MON,TUE,WED,THU,FRI") and a shift start in "15:04" form. The
// timezone is the owning company's; it is denormalized onto reads because
// every date computation needs it.
type Team struct {
	ID         string
	CompanyID  string
	Name       string
	WorkDays   string
	ShiftStart string
	LeaderID   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	Timezone string
}
