package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/teamready/readiness-backend-go/internal/handler/http/middleware"
	"github.com/teamready/readiness-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	checkinHandler CheckinHandler,
	teamHandler TeamHandler,
	absenceHandler AbsenceHandler,
	holidayHandler HolidayHandler,
	exemptionHandler ExemptionHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "readiness-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/checkins", func(r chi.Router) {
				r.Post("/", checkinHandler.Submit)
				r.Get("/my", checkinHandler.GetMyCheckins)
			})

			r.Route("/teams/{teamID}", func(r chi.Router) {
				r.Get("/summary", teamHandler.GetDailySummary)
				r.Get("/summary/history", teamHandler.GetSummaryHistory)
				r.Get("/grade", teamHandler.GetGrade)
			})

			r.Route("/absences", func(r chi.Router) {
				r.Get("/pending", absenceHandler.GetPending)
				r.Post("/justify", absenceHandler.Justify)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireReviewer)
					r.Post("/{absenceID}/review", absenceHandler.Review)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", holidayHandler.Create)
					r.Delete("/{holidayID}", holidayHandler.Delete)
				})
			})

			r.Route("/exemptions", func(r chi.Router) {
				r.Get("/", exemptionHandler.ListMine)
				r.Post("/", exemptionHandler.Request)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireReviewer)
					r.Post("/{exemptionID}/approve", exemptionHandler.Approve)
					r.Post("/{exemptionID}/reject", exemptionHandler.Reject)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Patch("/{notificationID}/read", notificationHandler.MarkAsRead)
			})
		})
	})

	return r
}
