package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/teamready/readiness-backend-go/internal/domain/grading"
	"github.com/teamready/readiness-backend-go/internal/domain/member"
	"github.com/teamready/readiness-backend-go/internal/domain/summary"
	"github.com/teamready/readiness-backend-go/internal/handler/http/response"
	"github.com/teamready/readiness-backend-go/internal/pkg/jwt"
	"github.com/teamready/readiness-backend-go/internal/pkg/validator"
)

type TeamHandler interface {
	GetDailySummary(w http.ResponseWriter, r *http.Request)
	GetSummaryHistory(w http.ResponseWriter, r *http.Request)
	GetGrade(w http.ResponseWriter, r *http.Request)
}

type teamHandlerImpl struct {
	summaryService summary.SummaryService
	gradingService grading.GradingService
}

func NewTeamHandler(summaryService summary.SummaryService, gradingService grading.GradingService) TeamHandler {
	return &teamHandlerImpl{
		summaryService: summaryService,
		gradingService: gradingService,
	}
}

// teamScope rejects workers and leads reading a team other than their own;
// managers and owners see every team in the company.
func teamScope(ident jwt.Identity, teamID string) error {
	if ident.Role == member.RoleManager || ident.Role == member.RoleOwner {
		return nil
	}
	if ident.TeamID == nil || *ident.TeamID != teamID {
		return member.ErrNotTeamAuthority
	}
	return nil
}

// GetDailySummary implements TeamHandler.
func (h *teamHandlerImpl) GetDailySummary(w http.ResponseWriter, r *http.Request) {
	ident, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	teamID := chi.URLParam(r, "teamID")
	if err := teamScope(ident, teamID); err != nil {
		response.HandleError(w, err)
		return
	}

	date := r.URL.Query().Get("date")
	if _, valid := validator.IsValidDate(date); !valid {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	result, rows, err := h.summaryService.GetDailyDetail(r.Context(), teamID, date, ident.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary.ToSummaryDetailResponse(result, rows))
}

// GetSummaryHistory implements TeamHandler.
func (h *teamHandlerImpl) GetSummaryHistory(w http.ResponseWriter, r *http.Request) {
	ident, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	teamID := chi.URLParam(r, "teamID")
	if err := teamScope(ident, teamID); err != nil {
		response.HandleError(w, err)
		return
	}

	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	start, startOK := validator.IsValidDate(startDate)
	end, endOK := validator.IsValidDate(endDate)
	if !startOK || !endOK || end.Before(start) {
		response.BadRequest(w, "start_date and end_date must be YYYY-MM-DD with start_date <= end_date", nil)
		return
	}

	summaries, err := h.summaryService.GetHistory(r.Context(), teamID, startDate, endDate, ident.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]summary.SummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, summary.ToSummaryResponse(s))
	}
	response.Success(w, out)
}

// GetGrade implements TeamHandler.
func (h *teamHandlerImpl) GetGrade(w http.ResponseWriter, r *http.Request) {
	ident, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	teamID := chi.URLParam(r, "teamID")
	if err := teamScope(ident, teamID); err != nil {
		response.HandleError(w, err)
		return
	}

	periodDays := 0
	if v := r.URL.Query().Get("period_days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			response.BadRequest(w, "period_days must be a positive number", nil)
			return
		}
		periodDays = n
	}

	grade, err := h.gradingService.GetTeamGrade(r.Context(), teamID, periodDays, ident.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, grade)
}
