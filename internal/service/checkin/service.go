package checkin

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/teamready/readiness-backend-go/internal/domain/audit"
	"github.com/teamready/readiness-backend-go/internal/domain/checkin"
	"github.com/teamready/readiness-backend-go/internal/domain/member"
	"github.com/teamready/readiness-backend-go/internal/domain/summary"
	"github.com/teamready/readiness-backend-go/internal/domain/team"
	"github.com/teamready/readiness-backend-go/internal/pkg/calendar"
	"github.com/teamready/readiness-backend-go/internal/pkg/database"
	"github.com/teamready/readiness-backend-go/internal/pkg/tasks"
	"github.com/teamready/readiness-backend-go/internal/repository/postgresql"
)

type CheckinServiceImpl struct {
	db *database.DB
	checkin.CheckinRepository
	member.MemberRepository
	team.TeamRepository
	auditRepo  audit.AuditRepository
	summarySvc summary.SummaryService
	queue      *tasks.Queue
}

// Submit records today's readiness check-in for the member. The check-in row
// and the member's running counters commit in one transaction; the summary
// recompute runs afterwards on the background queue.
func (s *CheckinServiceImpl) Submit(ctx context.Context, memberID string, companyID string, req checkin.SubmitCheckinRequest) (checkin.Checkin, error) {
	if err := req.Validate(); err != nil {
		return checkin.Checkin{}, err
	}

	m, err := s.MemberRepository.GetByID(ctx, memberID, companyID)
	if err != nil {
		return checkin.Checkin{}, err
	}
	if m.TeamID == nil {
		return checkin.Checkin{}, member.ErrNotOnTeam
	}

	t, err := s.TeamRepository.GetByID(ctx, *m.TeamID, companyID)
	if err != nil {
		return checkin.Checkin{}, err
	}
	loc := calendar.LoadLocation(t.Timezone)
	dateLocal := calendar.FormatLocalDate(time.Now(), loc)

	alreadyCheckedIn, err := s.CheckinRepository.HasCheckedInOn(ctx, memberID, dateLocal, companyID)
	if err != nil {
		return checkin.Checkin{}, err
	}
	if alreadyCheckedIn {
		return checkin.Checkin{}, checkin.ErrAlreadyCheckedIn
	}

	score := checkin.DeriveScore(req.SleepQuality, req.EnergyLevel, req.Mood, req.StressLevel)
	status := checkin.DeriveStatus(score)

	record := checkin.Checkin{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		TeamID:          m.TeamID,
		MemberID:        memberID,
		DateLocal:       dateLocal,
		SleepQuality:    req.SleepQuality,
		EnergyLevel:     req.EnergyLevel,
		Mood:            req.Mood,
		StressLevel:     req.StressLevel,
		ReadinessScore:  score,
		ReadinessStatus: status,
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err := s.CheckinRepository.Create(txCtx, record)
		if err != nil {
			return err
		}
		record = created
		return s.MemberRepository.ApplyCheckinCounters(txCtx, memberID, score, string(status))
	})
	if err != nil {
		return checkin.Checkin{}, err
	}

	s.audit(memberID, companyID, record)

	teamID := *m.TeamID
	s.queue.Enqueue("summary.recompute.checkin", func(taskCtx context.Context) error {
		_, err := s.summarySvc.Recompute(taskCtx, teamID, dateLocal, companyID)
		return err
	})

	return record, nil
}

// GetMyCheckins retrieves the member's check-in history, newest first.
// Defaults to the trailing 30 local days when no range is given.
func (s *CheckinServiceImpl) GetMyCheckins(ctx context.Context, memberID string, companyID string, filter checkin.MyCheckinsFilter) ([]checkin.Checkin, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	m, err := s.MemberRepository.GetByID(ctx, memberID, companyID)
	if err != nil {
		return nil, err
	}

	loc := time.UTC
	if m.TeamID != nil {
		if t, err := s.TeamRepository.GetByID(ctx, *m.TeamID, companyID); err == nil {
			loc = calendar.LoadLocation(t.Timezone)
		}
	}

	now := time.Now()
	endDate := calendar.FormatLocalDate(now, loc)
	startDate := calendar.FormatLocalDate(now.AddDate(0, 0, -29), loc)
	if filter.StartDate != nil && *filter.StartDate != "" {
		startDate = *filter.StartDate
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		endDate = *filter.EndDate
	}

	return s.CheckinRepository.ListByMemberDateRange(ctx, memberID, startDate, endDate, filter.Limit, companyID)
}

func (s *CheckinServiceImpl) audit(memberID string, companyID string, record checkin.Checkin) {
	s.queue.Enqueue("audit.checkin", func(taskCtx context.Context) error {
		return s.auditRepo.Create(taskCtx, audit.Entry{
			ID:          uuid.New().String(),
			CompanyID:   companyID,
			UserID:      memberID,
			Action:      audit.ActionCheckinSubmitted,
			EntityType:  "checkin",
			EntityID:    record.ID,
			Description: "readiness check-in submitted",
			Metadata: map[string]interface{}{
				"date":             record.DateLocal,
				"readiness_score":  record.ReadinessScore,
				"readiness_status": string(record.ReadinessStatus),
			},
		})
	})
}

func NewCheckinService(
	db *database.DB,
	checkinRepo checkin.CheckinRepository,
	memberRepo member.MemberRepository,
	teamRepo team.TeamRepository,
	auditRepo audit.AuditRepository,
	summarySvc summary.SummaryService,
	queue *tasks.Queue,
) *CheckinServiceImpl {
	return &CheckinServiceImpl{
		db:                db,
		CheckinRepository: checkinRepo,
		MemberRepository:  memberRepo,
		TeamRepository:    teamRepo,
		auditRepo:         auditRepo,
		summarySvc:        summarySvc,
		queue:             queue,
	}
}
