package exemption

import (
	"github.com/teamready/readiness-backend-go/internal/pkg/validator"
)

type RequestExemptionRequest struct {
	MemberID  string `json:"member_id"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
	Reason    string `json:"reason"`
}

func (r *RequestExemptionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.MemberID) {
		errs = append(errs, validator.ValidationError{
			Field:   "member_id",
			Message: "member_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not precede start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	} else if !validator.RuneLenBetween(r.Reason, 1, 500) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ExemptionResponse struct {
	ID         string  `json:"id"`
	MemberID   string  `json:"member_id"`
	MemberName *string `json:"member_name,omitempty"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Reason     string  `json:"reason"`
	Status     string  `json:"status"`
	ReviewedBy *string `json:"reviewed_by,omitempty"`
	ReviewedAt *string `json:"reviewed_at,omitempty"`
	CreatedAt  string  `json:"created_at"`
}
