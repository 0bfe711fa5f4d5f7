package holiday

import (
	"github.com/teamready/readiness-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
	Name string `json:"name"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if !validator.RuneLenBetween(r.Name, 1, 120) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 120 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidayResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
}
