package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/teamready/readiness-backend-go/internal/domain/absence"
	"github.com/teamready/readiness-backend-go/internal/domain/company"
	"github.com/teamready/readiness-backend-go/internal/domain/member"
	"github.com/teamready/readiness-backend-go/internal/domain/summary"
	"github.com/teamready/readiness-backend-go/internal/pkg/calendar"
)

type EngineJobs struct {
	companyRepo company.CompanyRepository
	memberRepo  member.MemberRepository
	absenceSvc  absence.AbsenceService
	summarySvc  summary.SummaryService
}

func NewEngineJobs(
	companyRepo company.CompanyRepository,
	memberRepo member.MemberRepository,
	absenceSvc absence.AbsenceService,
	summarySvc summary.SummaryService,
) *EngineJobs {
	return &EngineJobs{
		companyRepo: companyRepo,
		memberRepo:  memberRepo,
		absenceSvc:  absenceSvc,
		summarySvc:  summarySvc,
	}
}

func (j *EngineJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("detect_absences", 1*time.Hour, j.DetectAbsences)
	scheduler.AddJob("recompute_stale_summaries", 1*time.Hour, j.RecomputeStaleSummaries)
}

// DetectAbsences sweeps every active worker for missed check-in days. Runs
// once per day in the 01:00 UTC window; opportunistic per-member detection
// covers the rest of the day. A member failing never stops the sweep.
func (j *EngineJobs) DetectAbsences(ctx context.Context) error {
	if time.Now().UTC().Hour() != 1 {
		return nil
	}

	companies, err := j.companyRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list companies: %w", err)
	}

	totalCreated := 0
	for _, c := range companies {
		workers, err := j.memberRepo.ListActiveWorkersByCompany(ctx, c.ID)
		if err != nil {
			slog.Error("Cron: failed to list workers", "company_id", c.ID, "error", err)
			continue
		}
		for _, w := range workers {
			created, err := j.absenceSvc.DetectForMember(ctx, w.ID, c.ID)
			if err != nil {
				slog.Error("Cron: absence detection failed", "member_id", w.ID, "error", err)
				continue
			}
			totalCreated += created
		}
	}

	slog.Info("Cron: absence detection sweep completed", "companies", len(companies), "created", totalCreated)
	return nil
}

// RecomputeStaleSummaries rebuilds yesterday's summary for every team once
// per day per company, after that company's local midnight has passed. This
// self-heals projections missed by dropped background tasks.
func (j *EngineJobs) RecomputeStaleSummaries(ctx context.Context) error {
	if time.Now().UTC().Hour() != 2 {
		return nil
	}

	companies, err := j.companyRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list companies: %w", err)
	}

	for _, c := range companies {
		loc := calendar.LoadLocation(c.Timezone)
		yesterday := calendar.LocalMidnight(time.Now(), loc).AddDate(0, 0, -1).Format(calendar.DateLayout)
		if err := j.summarySvc.RecomputeCompanyDate(ctx, c.ID, yesterday); err != nil {
			slog.Error("Cron: summary self-heal failed", "company_id", c.ID, "date", yesterday, "error", err)
		}
	}

	slog.Info("Cron: summary self-heal completed", "companies", len(companies))
	return nil
}
