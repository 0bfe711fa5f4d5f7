package exemption

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/teamready/readiness-backend-go/internal/domain/audit"
	"github.com/teamready/readiness-backend-go/internal/domain/exemption"
	"github.com/teamready/readiness-backend-go/internal/domain/member"
	"github.com/teamready/readiness-backend-go/internal/domain/notification"
	"github.com/teamready/readiness-backend-go/internal/domain/summary"
	"github.com/teamready/readiness-backend-go/internal/domain/team"
	"github.com/teamready/readiness-backend-go/internal/pkg/tasks"
)

type ExemptionServiceImpl struct {
	exemption.ExemptionRepository
	member.MemberRepository
	team.TeamRepository
	auditRepo  audit.AuditRepository
	notifier   notification.Service
	summarySvc summary.SummaryService
	queue      *tasks.Queue
}

// Request files a leave exemption. Workers may only file for themselves;
// reviewers may file on a member's behalf.
func (s *ExemptionServiceImpl) Request(ctx context.Context, requesterID string, companyID string, req exemption.RequestExemptionRequest) (exemption.Exemption, error) {
	if err := req.Validate(); err != nil {
		return exemption.Exemption{}, err
	}

	requester, err := s.MemberRepository.GetByID(ctx, requesterID, companyID)
	if err != nil {
		return exemption.Exemption{}, err
	}
	if req.MemberID != requesterID && !requester.Role.CanReview() {
		return exemption.Exemption{}, member.ErrNotTeamAuthority
	}

	target, err := s.MemberRepository.GetByID(ctx, req.MemberID, companyID)
	if err != nil {
		return exemption.Exemption{}, err
	}

	created, err := s.ExemptionRepository.Create(ctx, exemption.Exemption{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		MemberID:  req.MemberID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Status:    exemption.StatusPending,
	})
	if err != nil {
		return exemption.Exemption{}, err
	}

	s.recordAudit(requesterID, companyID, audit.ActionExemptionRequest, created.ID,
		"leave exemption requested", map[string]interface{}{
			"member_id":  created.MemberID,
			"start_date": created.StartDate,
			"end_date":   created.EndDate,
		})

	if target.TeamID != nil {
		if t, err := s.TeamRepository.GetByID(ctx, *target.TeamID, companyID); err == nil && t.LeaderID != nil {
			s.notifier.Queue(ctx, notification.CreateNotificationRequest{
				CompanyID:   companyID,
				RecipientID: *t.LeaderID,
				SenderID:    &requesterID,
				Type:        notification.TypeExemptionRequest,
				Title:       "Leave exemption requested",
				Message:     fmt.Sprintf("%s requested leave from %s to %s", target.FullName, created.StartDate, created.EndDate),
				Data:        map[string]interface{}{"exemption_id": created.ID},
			})
		}
	}

	return created, nil
}

// Resolve approves or rejects a pending exemption. Approval changes which
// days the member was expected on, so the affected range is recomputed in
// the background.
func (s *ExemptionServiceImpl) Resolve(ctx context.Context, reviewerID string, companyID string, id string, approve bool) (exemption.Exemption, error) {
	reviewer, err := s.MemberRepository.GetByID(ctx, reviewerID, companyID)
	if err != nil {
		return exemption.Exemption{}, err
	}
	if !reviewer.Role.CanReview() {
		return exemption.Exemption{}, member.ErrLeadAccessRequired
	}

	current, err := s.ExemptionRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return exemption.Exemption{}, err
	}

	if reviewer.Role == member.RoleLead {
		target, err := s.MemberRepository.GetByID(ctx, current.MemberID, companyID)
		if err != nil {
			return exemption.Exemption{}, err
		}
		if target.TeamID == nil {
			return exemption.Exemption{}, member.ErrNotTeamAuthority
		}
		t, err := s.TeamRepository.GetByID(ctx, *target.TeamID, companyID)
		if err != nil {
			return exemption.Exemption{}, err
		}
		if t.LeaderID == nil || *t.LeaderID != reviewerID {
			return exemption.Exemption{}, member.ErrNotTeamAuthority
		}
	}

	status := exemption.StatusRejected
	notifType := notification.TypeExemptionRejected
	verdictWord := "rejected"
	if approve {
		status = exemption.StatusApproved
		notifType = notification.TypeExemptionApproved
		verdictWord = "approved"
	}

	resolved, err := s.ExemptionRepository.Resolve(ctx, id, companyID, status, reviewerID)
	if err != nil {
		return exemption.Exemption{}, err
	}

	s.recordAudit(reviewerID, companyID, audit.ActionExemptionResolved, resolved.ID,
		"leave exemption "+verdictWord, map[string]interface{}{
			"member_id": resolved.MemberID,
			"status":    string(status),
		})

	s.notifier.Queue(ctx, notification.CreateNotificationRequest{
		CompanyID:   companyID,
		RecipientID: resolved.MemberID,
		SenderID:    &reviewerID,
		Type:        notifType,
		Title:       "Leave exemption " + verdictWord,
		Message:     fmt.Sprintf("Your leave from %s to %s was %s", resolved.StartDate, resolved.EndDate, verdictWord),
		Data:        map[string]interface{}{"exemption_id": resolved.ID},
	})

	if approve {
		memberID := resolved.MemberID
		startDate := resolved.StartDate
		endDate := resolved.EndDate
		s.queue.Enqueue("summary.recompute.exemption", func(taskCtx context.Context) error {
			return s.summarySvc.RecomputeMemberRange(taskCtx, memberID, startDate, endDate, companyID)
		})
	}

	return resolved, nil
}

// ListMine retrieves the member's own exemptions, newest first.
func (s *ExemptionServiceImpl) ListMine(ctx context.Context, memberID string, companyID string) ([]exemption.Exemption, error) {
	return s.ExemptionRepository.ListByMember(ctx, memberID, companyID)
}

func (s *ExemptionServiceImpl) recordAudit(userID string, companyID string, action string, entityID string, description string, metadata map[string]interface{}) {
	s.queue.Enqueue("audit."+action, func(taskCtx context.Context) error {
		return s.auditRepo.Create(taskCtx, audit.Entry{
			ID:          uuid.New().String(),
			CompanyID:   companyID,
			UserID:      userID,
			Action:      action,
			EntityType:  "exemption",
			EntityID:    entityID,
			Description: description,
			Metadata:    metadata,
		})
	})
}

func NewExemptionService(
	exemptionRepo exemption.ExemptionRepository,
	memberRepo member.MemberRepository,
	teamRepo team.TeamRepository,
	auditRepo audit.AuditRepository,
	notifier notification.Service,
	summarySvc summary.SummaryService,
	queue *tasks.Queue,
) *ExemptionServiceImpl {
	return &ExemptionServiceImpl{
		ExemptionRepository: exemptionRepo,
		MemberRepository:    memberRepo,
		TeamRepository:      teamRepo,
		auditRepo:           auditRepo,
		notifier:            notifier,
		summarySvc:          summarySvc,
		queue:               queue,
	}
}
