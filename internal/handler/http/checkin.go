package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/teamready/readiness-backend-go/internal/domain/checkin"
	"github.com/teamready/readiness-backend-go/internal/handler/http/response"
	"github.com/teamready/readiness-backend-go/internal/pkg/jwt"
	checkinService "github.com/teamready/readiness-backend-go/internal/service/checkin"
)

type CheckinHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	GetMyCheckins(w http.ResponseWriter, r *http.Request)
}

type checkinHandlerImpl struct {
	checkinService *checkinService.CheckinServiceImpl
}

func NewCheckinHandler(svc *checkinService.CheckinServiceImpl) CheckinHandler {
	return &checkinHandlerImpl{checkinService: svc}
}

func toCheckinResponse(c checkin.Checkin) checkin.CheckinResponse {
	return checkin.CheckinResponse{
		ID:              c.ID,
		MemberID:        c.MemberID,
		Date:            c.DateLocal,
		SleepQuality:    c.SleepQuality,
		EnergyLevel:     c.EnergyLevel,
		Mood:            c.Mood,
		StressLevel:     c.StressLevel,
		ReadinessScore:  c.ReadinessScore,
		ReadinessStatus: string(c.ReadinessStatus),
		CreatedAt:       c.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// Submit implements CheckinHandler.
func (h *checkinHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	ident, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req checkin.SubmitCheckinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.checkinService.Submit(r.Context(), ident.UserID, ident.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check-in recorded", toCheckinResponse(created))
}

// GetMyCheckins implements CheckinHandler.
func (h *checkinHandlerImpl) GetMyCheckins(w http.ResponseWriter, r *http.Request) {
	ident, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	filter := checkin.MyCheckinsFilter{}
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "limit must be a number", nil)
			return
		}
		filter.Limit = limit
	}

	checkins, err := h.checkinService.GetMyCheckins(r.Context(), ident.UserID, ident.CompanyID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]checkin.CheckinResponse, 0, len(checkins))
	for _, c := range checkins {
		out = append(out, toCheckinResponse(c))
	}
	response.Success(w, out)
}
