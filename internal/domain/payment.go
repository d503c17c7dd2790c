package domain

import "time"

// Payment records one successful charge for a booking. The unique index on
// BookingID is what makes payment confirmation idempotent: a second confirm
// for the same booking cannot insert a second row.
type Payment struct {
	ID              int64         `gorm:"primaryKey" json:"id"`
	UserID          int64         `gorm:"index;not null" json:"user_id"`
	BookingID       int64         `gorm:"uniqueIndex;not null" json:"booking_id"`
	Amount          float64       `gorm:"not null" json:"amount"`
	Currency        string        `gorm:"type:varchar(8);default:'usd'" json:"currency"`
	Status          PaymentStatus `gorm:"type:varchar(20);default:'completed';index" json:"status"`
	StripePaymentID string        `gorm:"type:varchar(128)" json:"stripe_payment_id"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (Payment) TableName() string { return "payments" }
