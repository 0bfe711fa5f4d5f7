package holiday

import "context"

// HolidayRepository defines data access for company holidays.
type HolidayRepository interface {
	// Create inserts a holiday; duplicate (company_id, date) yields
	// ErrHolidayExists
	Create(ctx context.Context, h Holiday) (Holiday, error)

	// GetByID retrieves a holiday with company isolation
	GetByID(ctx context.Context, id string, companyID string) (Holiday, error)

	// Delete removes a holiday
	Delete(ctx context.Context, id string, companyID string) error

	// ExistsOnDate reports whether the company has a holiday on the date
	ExistsOnDate(ctx context.Context, companyID string, dateLocal string) (bool, error)

	// ListDatesInRange returns the holiday date set inside the inclusive
	// range, keyed by YYYY-MM-DD
	ListDatesInRange(ctx context.Context, companyID string, startDate, endDate string) (map[string]struct{}, error)

	// ListByCompany retrieves all holidays of a company, ascending by date
	ListByCompany(ctx context.Context, companyID string) ([]Holiday, error)
}
