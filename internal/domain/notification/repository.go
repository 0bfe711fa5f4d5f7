package notification

import "context"

type NotificationRepository interface {
	Create(ctx context.Context, n Notification) error
	ListByRecipient(ctx context.Context, recipientID string, companyID string, limit int) ([]Notification, error)
	MarkAsRead(ctx context.Context, id string, recipientID string, companyID string) error
}
