package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/teamready/readiness-backend-go/internal/domain/holiday"
	"github.com/teamready/readiness-backend-go/internal/handler/http/response"
	"github.com/teamready/readiness-backend-go/internal/pkg/jwt"
	holidayService "github.com/teamready/readiness-backend-go/internal/service/holiday"
)

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService *holidayService.HolidayServiceImpl
}

func NewHolidayHandler(svc *holidayService.HolidayServiceImpl) HolidayHandler {
	return &holidayHandlerImpl{holidayService: svc}
}

func toHolidayResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:   h.ID,
		Date: h.Date,
		Name: h.Name,
	}
}

// List implements HolidayHandler.
func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ident, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	holidays, err := h.holidayService.List(r.Context(), ident.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, item := range holidays {
		out = append(out, toHolidayResponse(item))
	}
	response.Success(w, out)
}

// Create implements HolidayHandler.
func (h *holidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	ident, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.holidayService.Create(r.Context(), ident.UserID, ident.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created", toHolidayResponse(created))
}

// Delete implements HolidayHandler.
func (h *holidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	ident, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	id := chi.URLParam(r, "holidayID")
	if err := h.holidayService.Delete(r.Context(), ident.UserID, ident.CompanyID, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted", nil)
}
