package main

import (
	"fmt"
	"net/http"

	"github.com/teamready/readiness-backend-go/internal/config"
	appHTTP "github.com/teamready/readiness-backend-go/internal/handler/http"
	"github.com/teamready/readiness-backend-go/internal/pkg/cron"
	"github.com/teamready/readiness-backend-go/internal/pkg/database"
	"github.com/teamready/readiness-backend-go/internal/pkg/jwt"
	"github.com/teamready/readiness-backend-go/internal/pkg/tasks"
	"github.com/teamready/readiness-backend-go/internal/repository/postgresql"
	absenceService "github.com/teamready/readiness-backend-go/internal/service/absence"
	checkinService "github.com/teamready/readiness-backend-go/internal/service/checkin"
	exemptionService "github.com/teamready/readiness-backend-go/internal/service/exemption"
	gradingService "github.com/teamready/readiness-backend-go/internal/service/grading"
	holidayService "github.com/teamready/readiness-backend-go/internal/service/holiday"
	notificationService "github.com/teamready/readiness-backend-go/internal/service/notification"
	summaryService "github.com/teamready/readiness-backend-go/internal/service/summary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	companyRepo := postgresql.NewCompanyRepository(db)
	teamRepo := postgresql.NewTeamRepository(db)
	memberRepo := postgresql.NewMemberRepository(db)
	checkinRepo := postgresql.NewCheckinRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	exemptionRepo := postgresql.NewExemptionRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)
	summaryRepo := postgresql.NewSummaryRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	queue := tasks.NewQueue(cfg.Engine.RecomputeWorkers, cfg.Engine.RecomputeQueueCap, cfg.Engine.RecomputeTimeout)
	defer queue.Stop()

	notificationSvc := notificationService.NewNotificationService(notificationRepo, queue)
	summarySvc := summaryService.NewSummaryService(
		teamRepo, memberRepo, checkinRepo, holidayRepo, exemptionRepo, absenceRepo, summaryRepo,
	)
	checkinSvc := checkinService.NewCheckinService(
		db, checkinRepo, memberRepo, teamRepo, auditRepo, summarySvc, queue,
	)
	absenceSvc := absenceService.NewAbsenceService(
		db, absenceRepo, memberRepo, teamRepo, checkinRepo, holidayRepo, exemptionRepo,
		auditRepo, notificationSvc, summarySvc, queue, cfg.Engine.DetectionWindow,
	)
	gradingSvc := gradingService.NewGradingService(
		teamRepo, memberRepo, checkinRepo, absenceRepo, summarySvc,
	)
	exemptionSvc := exemptionService.NewExemptionService(
		exemptionRepo, memberRepo, teamRepo, auditRepo, notificationSvc, summarySvc, queue,
	)
	holidaySvc := holidayService.NewHolidayService(
		holidayRepo, memberRepo, auditRepo, summarySvc, queue,
	)

	scheduler := cron.NewScheduler()
	cron.NewEngineJobs(companyRepo, memberRepo, absenceSvc, summarySvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		jwtService,
		appHTTP.NewCheckinHandler(checkinSvc),
		appHTTP.NewTeamHandler(summarySvc, gradingSvc),
		appHTTP.NewAbsenceHandler(absenceSvc),
		appHTTP.NewHolidayHandler(holidaySvc),
		appHTTP.NewExemptionHandler(exemptionSvc),
		appHTTP.NewNotificationHandler(notificationSvc),
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
