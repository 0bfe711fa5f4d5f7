package absence

import (
	"github.com/teamready/readiness-backend-go/internal/pkg/validator"
)

type JustifyItem struct {
	AbsenceID      string `json:"absence_id"`
	ReasonCategory string `json:"reason_category"`
	Explanation    string `json:"explanation"`
}

type JustifyRequest struct {
	Items []JustifyItem `json:"items"`
}

func (r *JustifyRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "items",
			Message: "at least one absence must be provided",
		})
	}

	for _, item := range r.Items {
		if validator.IsEmpty(item.AbsenceID) {
			errs = append(errs, validator.ValidationError{
				Field:   "absence_id",
				Message: "absence_id is required",
			})
			continue
		}
		if !validator.IsInSlice(item.ReasonCategory, ReasonCategories()) {
			errs = append(errs, validator.ValidationError{
				Field:   "reason_category",
				Message: "reason_category must be one of: ILLNESS, FAMILY_EMERGENCY, TRANSPORT, PERSONAL, TECHNICAL_ISSUE, OTHER",
			})
		}
		if !validator.RuneLenBetween(item.Explanation, 1, 1000) {
			errs = append(errs, validator.ValidationError{
				Field:   "explanation",
				Message: "explanation must be between 1 and 1000 characters",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewRequest struct {
	AbsenceID string  `json:"-"`
	Verdict   string  `json:"verdict"` // EXCUSED or UNEXCUSED
	Notes     *string `json:"notes,omitempty"`
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Verdict, []string{string(StatusExcused), string(StatusUnexcused)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "verdict",
			Message: "verdict must be EXCUSED or UNEXCUSED",
		})
	}

	if r.Notes != nil && !validator.RuneLenBetween(*r.Notes, 0, 500) {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AbsenceResponse struct {
	ID             string  `json:"id"`
	MemberID       string  `json:"member_id"`
	MemberName     *string `json:"member_name,omitempty"`
	TeamID         string  `json:"team_id"`
	Date           string  `json:"date"`
	Status         string  `json:"status"`
	ReasonCategory *string `json:"reason_category,omitempty"`
	Explanation    *string `json:"explanation,omitempty"`
	JustifiedAt    *string `json:"justified_at,omitempty"`
	ReviewedBy     *string `json:"reviewed_by,omitempty"`
	ReviewNotes    *string `json:"review_notes,omitempty"`
	ReviewedAt     *string `json:"reviewed_at,omitempty"`
	CreatedAt      string  `json:"created_at"`
}
