package domain

import "time"

type NotificationType string

const (
	NotifBookingCreated   NotificationType = "booking_created"
	NotifBookingCancelled NotificationType = "booking_cancelled"
	NotifPaymentProcessed NotificationType = "payment_processed"
	NotifPaymentFailed    NotificationType = "payment_failed"
)

// Notification is persisted independently of the live push, so it survives
// even when the user has no open connection.
type Notification struct {
	ID         int64            `gorm:"primaryKey" json:"id"`
	UserID     int64            `gorm:"index;not null" json:"user_id"`
	Type       NotificationType `gorm:"type:varchar(32)" json:"type"`
	Message    string           `gorm:"type:text" json:"message"`
	IsRead     bool             `gorm:"default:false" json:"is_read"`
	EntityType string           `gorm:"type:varchar(32)" json:"entity_type,omitempty"`
	EntityID   int64            `json:"entity_id,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
