package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/teamready/readiness-backend-go/internal/domain/notification"
	"github.com/teamready/readiness-backend-go/internal/pkg/database"
)

type notificationRepository struct {
	db *database.DB
}

// Create implements notification.NotificationRepository.
func (r *notificationRepository) Create(ctx context.Context, n notification.Notification) error {
	q := GetQuerier(ctx, r.db)

	var data []byte
	if n.Data != nil {
		var err error
		data, err = json.Marshal(n.Data)
		if err != nil {
			return fmt.Errorf("failed to marshal notification data: %w", err)
		}
	}

	query := `
		INSERT INTO notifications (id, company_id, recipient_id, sender_id, type, title, message, data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := q.Exec(ctx, query,
		n.ID, n.CompanyID, n.RecipientID, n.SenderID,
		string(n.Type), n.Title, n.Message, data,
	)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// ListByRecipient implements notification.NotificationRepository.
func (r *notificationRepository) ListByRecipient(ctx context.Context, recipientID string, companyID string, limit int) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, company_id, recipient_id, sender_id, type, title, message, data, is_read, read_at, created_at
		FROM notifications
		WHERE recipient_id = $1 AND company_id = $2
		ORDER BY created_at DESC
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, recipientID, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		var n notification.Notification
		var data []byte
		err := rows.Scan(
			&n.ID, &n.CompanyID, &n.RecipientID, &n.SenderID,
			&n.Type, &n.Title, &n.Message, &data, &n.IsRead, &n.ReadAt, &n.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &n.Data); err != nil {
				return nil, fmt.Errorf("failed to unmarshal notification data: %w", err)
			}
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

// MarkAsRead implements notification.NotificationRepository.
func (r *notificationRepository) MarkAsRead(ctx context.Context, id string, recipientID string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET is_read = TRUE, read_at = NOW()
		WHERE id = $1 AND recipient_id = $2 AND company_id = $3
	`

	tag, err := q.Exec(ctx, query, id, recipientID, companyID)
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}

	return nil
}

func NewNotificationRepository(db *database.DB) notification.NotificationRepository {
	return &notificationRepository{db: db}
}
