package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/teamready/readiness-backend-go/internal/domain/absence"
	"github.com/teamready/readiness-backend-go/internal/handler/http/response"
	"github.com/teamready/readiness-backend-go/internal/pkg/jwt"
)

type AbsenceHandler interface {
	GetPending(w http.ResponseWriter, r *http.Request)
	Justify(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
}

type absenceHandlerImpl struct {
	absenceService absence.AbsenceService
}

func NewAbsenceHandler(absenceService absence.AbsenceService) AbsenceHandler {
	return &absenceHandlerImpl{absenceService: absenceService}
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02 15:04:05")
	return &formatted
}

func toAbsenceResponse(a absence.Absence) absence.AbsenceResponse {
	var category *string
	if a.ReasonCategory != nil {
		c := string(*a.ReasonCategory)
		category = &c
	}
	return absence.AbsenceResponse{
		ID:             a.ID,
		MemberID:       a.MemberID,
		MemberName:     a.MemberName,
		TeamID:         a.TeamID,
		Date:           a.Date,
		Status:         string(a.Status),
		ReasonCategory: category,
		Explanation:    a.Explanation,
		JustifiedAt:    timePtrToString(a.JustifiedAt),
		ReviewedBy:     a.ReviewedBy,
		ReviewNotes:    a.ReviewNotes,
		ReviewedAt:     timePtrToString(a.ReviewedAt),
		CreatedAt:      a.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func toAbsenceResponses(absences []absence.Absence) []absence.AbsenceResponse {
	out := make([]absence.AbsenceResponse, 0, len(absences))
	for _, a := range absences {
		out = append(out, toAbsenceResponse(a))
	}
	return out
}

// GetPending implements AbsenceHandler.
func (h *absenceHandlerImpl) GetPending(w http.ResponseWriter, r *http.Request) {
	ident, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	pending, err := h.absenceService.GetPendingJustifications(r.Context(), ident.UserID, ident.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toAbsenceResponses(pending))
}

// Justify implements AbsenceHandler.
func (h *absenceHandlerImpl) Justify(w http.ResponseWriter, r *http.Request) {
	ident, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req absence.JustifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.absenceService.SubmitJustification(r.Context(), ident.UserID, ident.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Justification submitted", toAbsenceResponses(updated))
}

// Review implements AbsenceHandler.
func (h *absenceHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	ident, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req absence.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AbsenceID = chi.URLParam(r, "absenceID")

	reviewed, err := h.absenceService.Review(r.Context(), ident.UserID, ident.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence reviewed", toAbsenceResponse(reviewed))
}
