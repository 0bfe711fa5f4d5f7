package notification

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/teamready/readiness-backend-go/internal/domain/notification"
	"github.com/teamready/readiness-backend-go/internal/pkg/tasks"
)

type NotificationServiceImpl struct {
	repo  notification.NotificationRepository
	queue *tasks.Queue
}

// Queue implements notification.Service. Persistence happens on the
// background queue; a failed write is logged there and never reaches the
// operation that produced the notification.
func (s *NotificationServiceImpl) Queue(_ context.Context, req notification.CreateNotificationRequest) {
	record := notification.Notification{
		ID:          uuid.New().String(),
		CompanyID:   req.CompanyID,
		RecipientID: req.RecipientID,
		SenderID:    req.SenderID,
		Type:        req.Type,
		Title:       req.Title,
		Message:     req.Message,
		Data:        req.Data,
		CreatedAt:   time.Now(),
	}
	s.queue.Enqueue("notification.persist", func(taskCtx context.Context) error {
		return s.repo.Create(taskCtx, record)
	})
}

// List implements notification.Service.
func (s *NotificationServiceImpl) List(ctx context.Context, recipientID string, companyID string, limit int) ([]notification.Notification, error) {
	return s.repo.ListByRecipient(ctx, recipientID, companyID, limit)
}

// MarkAsRead implements notification.Service.
func (s *NotificationServiceImpl) MarkAsRead(ctx context.Context, id string, recipientID string, companyID string) error {
	return s.repo.MarkAsRead(ctx, id, recipientID, companyID)
}

func NewNotificationService(repo notification.NotificationRepository, queue *tasks.Queue) notification.Service {
	return &NotificationServiceImpl{repo: repo, queue: queue}
}
