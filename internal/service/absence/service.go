package absence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/teamready/readiness-backend-go/internal/domain/absence"
	"github.com/teamready/readiness-backend-go/internal/domain/audit"
	"github.com/teamready/readiness-backend-go/internal/domain/checkin"
	"github.com/teamready/readiness-backend-go/internal/domain/exemption"
	"github.com/teamready/readiness-backend-go/internal/domain/holiday"
	"github.com/teamready/readiness-backend-go/internal/domain/member"
	"github.com/teamready/readiness-backend-go/internal/domain/notification"
	"github.com/teamready/readiness-backend-go/internal/domain/summary"
	"github.com/teamready/readiness-backend-go/internal/domain/team"
	"github.com/teamready/readiness-backend-go/internal/pkg/calendar"
	"github.com/teamready/readiness-backend-go/internal/pkg/database"
	"github.com/teamready/readiness-backend-go/internal/pkg/tasks"
	"github.com/teamready/readiness-backend-go/internal/repository/postgresql"
)

type AbsenceServiceImpl struct {
	db *database.DB
	absence.AbsenceRepository
	member.MemberRepository
	team.TeamRepository
	checkin.CheckinRepository
	holiday.HolidayRepository
	exemption.ExemptionRepository
	auditRepo       audit.AuditRepository
	notifier        notification.Service
	summarySvc      summary.SummaryService
	queue           *tasks.Queue
	detectionWindow int // trailing calendar days scanned per member
}

// DetectForMember implements absence.AbsenceService. Detection walks the
// member's obligated local dates up to yesterday; today never produces a
// record since the day is still open for check-in. The ON CONFLICT insert
// makes concurrent sweeps converge on one record per (member, date).
func (s *AbsenceServiceImpl) DetectForMember(ctx context.Context, memberID string, companyID string) (int, error) {
	m, err := s.MemberRepository.GetByID(ctx, memberID, companyID)
	if err != nil {
		return 0, err
	}
	if m.TeamID == nil || !m.Active || m.Role != member.RoleWorker {
		return 0, nil
	}

	t, err := s.TeamRepository.GetByID(ctx, *m.TeamID, companyID)
	if err != nil {
		return 0, err
	}
	loc := calendar.LoadLocation(t.Timezone)

	today := calendar.LocalMidnight(time.Now(), loc)
	yesterday := today.AddDate(0, 0, -1)

	start := calendar.EffectiveStartDate(m.JoinedAt(), loc)
	if windowStart := today.AddDate(0, 0, -s.detectionWindow); start.Before(windowStart) {
		start = windowStart
	}
	if start.After(yesterday) {
		return 0, nil
	}

	startStr := start.Format(calendar.DateLayout)
	endStr := yesterday.Format(calendar.DateLayout)

	checkinDates, err := s.CheckinRepository.ListDatesByMember(ctx, memberID, startStr, endStr, companyID)
	if err != nil {
		return 0, err
	}
	absenceDates, err := s.AbsenceRepository.ListDatesByMember(ctx, memberID, startStr, endStr, companyID)
	if err != nil {
		return 0, err
	}
	holidays, err := s.HolidayRepository.ListDatesInRange(ctx, companyID, startStr, endStr)
	if err != nil {
		return 0, err
	}
	exemptions, err := s.ExemptionRepository.ListApprovedOverlapping(ctx, []string{memberID}, startStr, endStr, companyID)
	if err != nil {
		return 0, err
	}

	exempt := func(date string) bool {
		for _, e := range exemptions {
			if e.Covers(date) {
				return true
			}
		}
		return false
	}

	workDays := calendar.ParseWorkDays(t.WorkDays)
	created := 0
	var detectErr error

	calendar.EachDay(start, yesterday, loc, func(day time.Time) {
		if detectErr != nil {
			return
		}
		if !workDays[day.Weekday()] {
			return
		}
		date := day.Format(calendar.DateLayout)
		if _, ok := holidays[date]; ok {
			return
		}
		if _, ok := checkinDates[date]; ok {
			return
		}
		if _, ok := absenceDates[date]; ok {
			return
		}
		if exempt(date) {
			return
		}

		record := absence.Absence{
			ID:        uuid.New().String(),
			CompanyID: companyID,
			TeamID:    t.ID,
			MemberID:  memberID,
			Date:      date,
			Status:    absence.StatusPendingJustification,
		}
		inserted, err := s.AbsenceRepository.CreateIfAbsent(ctx, record)
		if err != nil {
			detectErr = fmt.Errorf("detect absence for %s on %s: %w", memberID, date, err)
			return
		}
		if inserted {
			created++
			s.recordAudit(memberID, companyID, audit.ActionAbsenceDetected, record.ID,
				"missed check-in detected", map[string]interface{}{"date": date})
		}
	})
	if detectErr != nil {
		return created, detectErr
	}

	if created > 0 {
		s.notifier.Queue(ctx, notification.CreateNotificationRequest{
			CompanyID:   companyID,
			RecipientID: memberID,
			Type:        notification.TypeAbsenceDetected,
			Title:       "Missed check-ins detected",
			Message:     fmt.Sprintf("You have %d missed check-in day(s) awaiting justification", created),
			Data:        map[string]interface{}{"count": created},
		})
	}

	return created, nil
}

// GetPendingJustifications implements absence.AbsenceService. Detection runs
// first so the list always reflects the calendar up to yesterday.
func (s *AbsenceServiceImpl) GetPendingJustifications(ctx context.Context, memberID string, companyID string) ([]absence.Absence, error) {
	if _, err := s.DetectForMember(ctx, memberID, companyID); err != nil {
		return nil, err
	}
	return s.AbsenceRepository.ListPendingByMember(ctx, memberID, companyID)
}

// SubmitJustification implements absence.AbsenceService. All items apply or
// none do; the ownership and not-yet-justified predicates sit in the UPDATE
// itself, and a zero-row match is classified by re-reading the record.
func (s *AbsenceServiceImpl) SubmitJustification(ctx context.Context, memberID string, companyID string, req absence.JustifyRequest) ([]absence.Absence, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		for _, item := range req.Items {
			matched, err := s.AbsenceRepository.Justify(txCtx, item.AbsenceID, memberID,
				absence.ReasonCategory(item.ReasonCategory), item.Explanation, now)
			if err != nil {
				return err
			}
			if matched {
				continue
			}

			current, err := s.AbsenceRepository.GetByID(txCtx, item.AbsenceID, companyID)
			if err != nil {
				return err
			}
			if current.MemberID != memberID {
				return absence.ErrAbsenceNotFound
			}
			if current.Reviewed() {
				return absence.ErrAlreadyReviewed
			}
			return absence.ErrAlreadyJustified
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated := make([]absence.Absence, 0, len(req.Items))
	for _, item := range req.Items {
		a, err := s.AbsenceRepository.GetByID(ctx, item.AbsenceID, companyID)
		if err != nil {
			return nil, err
		}
		updated = append(updated, a)
		s.recordAudit(memberID, companyID, audit.ActionAbsenceJustified, a.ID,
			"absence justified", map[string]interface{}{
				"date":            a.Date,
				"reason_category": item.ReasonCategory,
			})
	}

	s.notifyLead(ctx, updated, memberID, companyID)

	return updated, nil
}

func (s *AbsenceServiceImpl) notifyLead(ctx context.Context, justified []absence.Absence, memberID string, companyID string) {
	if len(justified) == 0 {
		return
	}
	t, err := s.TeamRepository.GetByID(ctx, justified[0].TeamID, companyID)
	if err != nil || t.LeaderID == nil {
		return
	}
	s.notifier.Queue(ctx, notification.CreateNotificationRequest{
		CompanyID:   companyID,
		RecipientID: *t.LeaderID,
		SenderID:    &memberID,
		Type:        notification.TypeAbsenceJustified,
		Title:       "Absence justification submitted",
		Message:     fmt.Sprintf("%d absence justification(s) awaiting your review", len(justified)),
		Data:        map[string]interface{}{"count": len(justified)},
	})
}

// Review implements absence.AbsenceService. Leads may only review their own
// team; managers and owners review any team. The verdict is terminal.
func (s *AbsenceServiceImpl) Review(ctx context.Context, reviewerID string, companyID string, req absence.ReviewRequest) (absence.Absence, error) {
	if err := req.Validate(); err != nil {
		return absence.Absence{}, err
	}

	reviewer, err := s.MemberRepository.GetByID(ctx, reviewerID, companyID)
	if err != nil {
		return absence.Absence{}, err
	}
	if !reviewer.Role.CanReview() {
		return absence.Absence{}, member.ErrLeadAccessRequired
	}

	current, err := s.AbsenceRepository.GetByID(ctx, req.AbsenceID, companyID)
	if err != nil {
		return absence.Absence{}, err
	}

	if reviewer.Role == member.RoleLead {
		t, err := s.TeamRepository.GetByID(ctx, current.TeamID, companyID)
		if err != nil {
			return absence.Absence{}, err
		}
		if t.LeaderID == nil || *t.LeaderID != reviewerID {
			return absence.Absence{}, member.ErrNotTeamAuthority
		}
	}

	now := time.Now()
	verdict := absence.Status(req.Verdict)
	matched, err := s.AbsenceRepository.Review(ctx, req.AbsenceID, verdict, reviewerID, req.Notes, now)
	if err != nil {
		return absence.Absence{}, err
	}
	if !matched {
		current, err = s.AbsenceRepository.GetByID(ctx, req.AbsenceID, companyID)
		if err != nil {
			return absence.Absence{}, err
		}
		if current.Reviewed() {
			return absence.Absence{}, absence.ErrAlreadyReviewed
		}
		return absence.Absence{}, absence.ErrNotYetJustified
	}

	reviewed, err := s.AbsenceRepository.GetByID(ctx, req.AbsenceID, companyID)
	if err != nil {
		return absence.Absence{}, err
	}

	s.recordAudit(reviewerID, companyID, audit.ActionAbsenceReviewed, reviewed.ID,
		"absence reviewed", map[string]interface{}{
			"date":    reviewed.Date,
			"verdict": string(verdict),
		})

	s.notifier.Queue(ctx, notification.CreateNotificationRequest{
		CompanyID:   companyID,
		RecipientID: reviewed.MemberID,
		SenderID:    &reviewerID,
		Type:        notification.TypeAbsenceReviewed,
		Title:       "Absence reviewed",
		Message:     fmt.Sprintf("Your absence on %s was marked %s", reviewed.Date, verdict),
		Data:        map[string]interface{}{"date": reviewed.Date, "verdict": string(verdict)},
	})

	teamID := reviewed.TeamID
	date := reviewed.Date
	s.queue.Enqueue("summary.recompute.absence-review", func(taskCtx context.Context) error {
		_, err := s.summarySvc.Recompute(taskCtx, teamID, date, companyID)
		return err
	})

	return reviewed, nil
}

func (s *AbsenceServiceImpl) recordAudit(userID string, companyID string, action string, entityID string, description string, metadata map[string]interface{}) {
	s.queue.Enqueue("audit."+action, func(taskCtx context.Context) error {
		return s.auditRepo.Create(taskCtx, audit.Entry{
			ID:          uuid.New().String(),
			CompanyID:   companyID,
			UserID:      userID,
			Action:      action,
			EntityType:  "absence",
			EntityID:    entityID,
			Description: description,
			Metadata:    metadata,
		})
	})
}

func NewAbsenceService(
	db *database.DB,
	absenceRepo absence.AbsenceRepository,
	memberRepo member.MemberRepository,
	teamRepo team.TeamRepository,
	checkinRepo checkin.CheckinRepository,
	holidayRepo holiday.HolidayRepository,
	exemptionRepo exemption.ExemptionRepository,
	auditRepo audit.AuditRepository,
	notifier notification.Service,
	summarySvc summary.SummaryService,
	queue *tasks.Queue,
	detectionWindow int,
) absence.AbsenceService {
	return &AbsenceServiceImpl{
		db:                  db,
		AbsenceRepository:   absenceRepo,
		MemberRepository:    memberRepo,
		TeamRepository:      teamRepo,
		CheckinRepository:   checkinRepo,
		HolidayRepository:   holidayRepo,
		ExemptionRepository: exemptionRepo,
		auditRepo:           auditRepo,
		notifier:            notifier,
		summarySvc:          summarySvc,
		queue:               queue,
		detectionWindow:     detectionWindow,
	}
}
