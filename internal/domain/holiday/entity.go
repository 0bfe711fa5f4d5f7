package holiday

import "time"

// Holiday suppresses the check-in requirement for every team in the company
// on one calendar date.
type Holiday struct {
	ID        string
	CompanyID string
	Date      string // YYYY-MM-DD
	Name      string
	CreatedAt time.Time
}
