package company

import "time"

// Company owns the timezone that defines the local calendar day for every
// team and member in it.
type Company struct {
	ID        string
	Name      string
	Timezone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
