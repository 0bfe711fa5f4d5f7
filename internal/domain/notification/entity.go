package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeAbsenceDetected   NotificationType = "absence_detected"
	TypeAbsenceJustified  NotificationType = "absence_justified"
	TypeAbsenceReviewed   NotificationType = "absence_reviewed"
	TypeExemptionRequest  NotificationType = "exemption_request"
	TypeExemptionApproved NotificationType = "exemption_approved"
	TypeExemptionRejected NotificationType = "exemption_rejected"
)

// Notification represents a notification entity
type Notification struct {
	ID          string
	CompanyID   string
	RecipientID string
	SenderID    *string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
