package holiday

import (
	"context"

	"github.com/google/uuid"

	"github.com/teamready/readiness-backend-go/internal/domain/audit"
	"github.com/teamready/readiness-backend-go/internal/domain/holiday"
	"github.com/teamready/readiness-backend-go/internal/domain/member"
	"github.com/teamready/readiness-backend-go/internal/domain/summary"
	"github.com/teamready/readiness-backend-go/internal/pkg/tasks"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
	member.MemberRepository
	auditRepo  audit.AuditRepository
	summarySvc summary.SummaryService
	queue      *tasks.Queue
}

// Create declares a company holiday. The date stops being expected for every
// team at once, so the whole company's summaries for it are recomputed.
func (s *HolidayServiceImpl) Create(ctx context.Context, actorID string, companyID string, req holiday.CreateHolidayRequest) (holiday.Holiday, error) {
	if err := req.Validate(); err != nil {
		return holiday.Holiday{}, err
	}

	if err := s.requireManager(ctx, actorID, companyID); err != nil {
		return holiday.Holiday{}, err
	}

	created, err := s.HolidayRepository.Create(ctx, holiday.Holiday{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Date:      req.Date,
		Name:      req.Name,
	})
	if err != nil {
		return holiday.Holiday{}, err
	}

	s.recordAudit(actorID, companyID, audit.ActionHolidayCreated, created.ID,
		"company holiday created", map[string]interface{}{"date": created.Date, "name": created.Name})
	s.enqueueRecompute(companyID, created.Date)

	return created, nil
}

// Delete removes a holiday and restores the check-in expectation on its date.
func (s *HolidayServiceImpl) Delete(ctx context.Context, actorID string, companyID string, id string) error {
	if err := s.requireManager(ctx, actorID, companyID); err != nil {
		return err
	}

	existing, err := s.HolidayRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return err
	}
	if err := s.HolidayRepository.Delete(ctx, id, companyID); err != nil {
		return err
	}

	s.recordAudit(actorID, companyID, audit.ActionHolidayDeleted, existing.ID,
		"company holiday deleted", map[string]interface{}{"date": existing.Date, "name": existing.Name})
	s.enqueueRecompute(companyID, existing.Date)

	return nil
}

// List retrieves the company's holidays, ascending by date.
func (s *HolidayServiceImpl) List(ctx context.Context, companyID string) ([]holiday.Holiday, error) {
	return s.HolidayRepository.ListByCompany(ctx, companyID)
}

func (s *HolidayServiceImpl) requireManager(ctx context.Context, actorID string, companyID string) error {
	actor, err := s.MemberRepository.GetByID(ctx, actorID, companyID)
	if err != nil {
		return err
	}
	if actor.Role != member.RoleManager && actor.Role != member.RoleOwner {
		return member.ErrManagerAccessRequired
	}
	return nil
}

func (s *HolidayServiceImpl) enqueueRecompute(companyID string, date string) {
	s.queue.Enqueue("summary.recompute.holiday", func(taskCtx context.Context) error {
		return s.summarySvc.RecomputeCompanyDate(taskCtx, companyID, date)
	})
}

func (s *HolidayServiceImpl) recordAudit(userID string, companyID string, action string, entityID string, description string, metadata map[string]interface{}) {
	s.queue.Enqueue("audit."+action, func(taskCtx context.Context) error {
		return s.auditRepo.Create(taskCtx, audit.Entry{
			ID:          uuid.New().String(),
			CompanyID:   companyID,
			UserID:      userID,
			Action:      action,
			EntityType:  "holiday",
			EntityID:    entityID,
			Description: description,
			Metadata:    metadata,
		})
	})
}

func NewHolidayService(
	holidayRepo holiday.HolidayRepository,
	memberRepo member.MemberRepository,
	auditRepo audit.AuditRepository,
	summarySvc summary.SummaryService,
	queue *tasks.Queue,
) *HolidayServiceImpl {
	return &HolidayServiceImpl{
		HolidayRepository: holidayRepo,
		MemberRepository:  memberRepo,
		auditRepo:         auditRepo,
		summarySvc:        summarySvc,
		queue:             queue,
	}
}
