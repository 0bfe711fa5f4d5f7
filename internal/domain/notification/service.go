package notification

import "context"

// Service is the notification sink consumed by the engine. Queueing is
// best-effort: delivery failures are logged and never surfaced to the
// operation that triggered the notification.
type Service interface {
	// Queue enqueues a notification for async persistence
	Queue(ctx context.Context, req CreateNotificationRequest)

	// List retrieves a recipient's notifications, newest first
	List(ctx context.Context, recipientID string, companyID string, limit int) ([]Notification, error)

	// MarkAsRead marks one notification read
	MarkAsRead(ctx context.Context, id string, recipientID string, companyID string) error
}
