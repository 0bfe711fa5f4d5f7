package response

import (
	"errors"
	"net/http"

	"github.com/teamready/readiness-backend-go/internal/domain/absence"
	"github.com/teamready/readiness-backend-go/internal/domain/checkin"
	"github.com/teamready/readiness-backend-go/internal/domain/company"
	"github.com/teamready/readiness-backend-go/internal/domain/exemption"
	"github.com/teamready/readiness-backend-go/internal/domain/holiday"
	"github.com/teamready/readiness-backend-go/internal/domain/member"
	"github.com/teamready/readiness-backend-go/internal/domain/notification"
	"github.com/teamready/readiness-backend-go/internal/domain/summary"
	"github.com/teamready/readiness-backend-go/internal/domain/team"
	"github.com/teamready/readiness-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Not found
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, team.ErrTeamNotFound):
		NotFound(w, "Team not found")
	case errors.Is(err, member.ErrMemberNotFound):
		NotFound(w, "Member not found")
	case errors.Is(err, absence.ErrAbsenceNotFound):
		NotFound(w, "Absence record not found")
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, exemption.ErrExemptionNotFound):
		NotFound(w, "Exemption not found")
	case errors.Is(err, summary.ErrSummaryNotFound):
		NotFound(w, "Summary not found")
	case errors.Is(err, checkin.ErrCheckinNotFound):
		NotFound(w, "Check-in not found")
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// State conflicts
	case errors.Is(err, checkin.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, absence.ErrAlreadyJustified):
		Conflict(w, "Absence has already been justified")
	case errors.Is(err, absence.ErrNotYetJustified):
		Conflict(w, "Absence has not been justified yet")
	case errors.Is(err, absence.ErrAlreadyReviewed):
		Conflict(w, "Absence has already been reviewed")
	case errors.Is(err, exemption.ErrAlreadyProcessed):
		Conflict(w, "Exemption has already been processed")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday already exists on this date")

	// Authorization
	case errors.Is(err, member.ErrNotOnTeam):
		BadRequest(w, "Member is not assigned to a team", nil)
	case errors.Is(err, member.ErrLeadAccessRequired):
		Forbidden(w, "Team lead access required")
	case errors.Is(err, member.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, member.ErrNotTeamAuthority):
		Forbidden(w, "No authority over this member's team")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
