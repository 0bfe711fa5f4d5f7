package checkin

import (
	"github.com/teamready/readiness-backend-go/internal/pkg/validator"
)

type SubmitCheckinRequest struct {
	SleepQuality int `json:"sleep_quality"`
	EnergyLevel  int `json:"energy_level"`
	Mood         int `json:"mood"`
	StressLevel  int `json:"stress_level"`
}

func (r *SubmitCheckinRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInRange(r.SleepQuality, 1, 10) {
		errs = append(errs, validator.ValidationError{
			Field:   "sleep_quality",
			Message: "sleep_quality must be between 1 and 10",
		})
	}
	if !validator.IsInRange(r.EnergyLevel, 1, 10) {
		errs = append(errs, validator.ValidationError{
			Field:   "energy_level",
			Message: "energy_level must be between 1 and 10",
		})
	}
	if !validator.IsInRange(r.Mood, 1, 10) {
		errs = append(errs, validator.ValidationError{
			Field:   "mood",
			Message: "mood must be between 1 and 10",
		})
	}
	if !validator.IsInRange(r.StressLevel, 1, 10) {
		errs = append(errs, validator.ValidationError{
			Field:   "stress_level",
			Message: "stress_level must be between 1 and 10",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckinResponse struct {
	ID              string `json:"id"`
	MemberID        string `json:"member_id"`
	Date            string `json:"date"`
	SleepQuality    int    `json:"sleep_quality"`
	EnergyLevel     int    `json:"energy_level"`
	Mood            int    `json:"mood"`
	StressLevel     int    `json:"stress_level"`
	ReadinessScore  int    `json:"readiness_score"`
	ReadinessStatus string `json:"readiness_status"`
	CreatedAt       string `json:"created_at"`
}

type MyCheckinsFilter struct {
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Limit     int     `json:"limit"`
}

func (f *MyCheckinsFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 30 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
