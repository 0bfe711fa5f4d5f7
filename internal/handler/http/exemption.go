package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/teamready/readiness-backend-go/internal/domain/exemption"
	"github.com/teamready/readiness-backend-go/internal/handler/http/response"
	"github.com/teamready/readiness-backend-go/internal/pkg/jwt"
	exemptionService "github.com/teamready/readiness-backend-go/internal/service/exemption"
)

type ExemptionHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type exemptionHandlerImpl struct {
	exemptionService *exemptionService.ExemptionServiceImpl
}

func NewExemptionHandler(svc *exemptionService.ExemptionServiceImpl) ExemptionHandler {
	return &exemptionHandlerImpl{exemptionService: svc}
}

func toExemptionResponse(e exemption.Exemption) exemption.ExemptionResponse {
	return exemption.ExemptionResponse{
		ID:         e.ID,
		MemberID:   e.MemberID,
		MemberName: e.MemberName,
		StartDate:  e.StartDate,
		EndDate:    e.EndDate,
		Reason:     e.Reason,
		Status:     string(e.Status),
		ReviewedBy: e.ReviewedBy,
		ReviewedAt: timePtrToString(e.ReviewedAt),
		CreatedAt:  e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// Request implements ExemptionHandler.
func (h *exemptionHandlerImpl) Request(w http.ResponseWriter, r *http.Request) {
	ident, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req exemption.RequestExemptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.MemberID == "" {
		req.MemberID = ident.UserID
	}

	created, err := h.exemptionService.Request(r.Context(), ident.UserID, ident.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Exemption requested", toExemptionResponse(created))
}

func (h *exemptionHandlerImpl) resolve(w http.ResponseWriter, r *http.Request, approve bool) {
	ident, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	id := chi.URLParam(r, "exemptionID")
	resolved, err := h.exemptionService.Resolve(r.Context(), ident.UserID, ident.CompanyID, id, approve)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Exemption rejected"
	if approve {
		message = "Exemption approved"
	}
	response.SuccessWithMessage(w, message, toExemptionResponse(resolved))
}

// Approve implements ExemptionHandler.
func (h *exemptionHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, true)
}

// Reject implements ExemptionHandler.
func (h *exemptionHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, false)
}

// ListMine implements ExemptionHandler.
func (h *exemptionHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	ident, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	exemptions, err := h.exemptionService.ListMine(r.Context(), ident.UserID, ident.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]exemption.ExemptionResponse, 0, len(exemptions))
	for _, e := range exemptions {
		out = append(out, toExemptionResponse(e))
	}
	response.Success(w, out)
}
