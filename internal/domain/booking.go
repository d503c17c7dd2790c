package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Booking reserves either an event or a venue for a user. Exactly one of
// EventID/VenueID is set; the other is nil.
type Booking struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"user_id" validate:"required"`
	EventID *int64 `json:"event_id,omitempty"`
	VenueID *int64 `json:"venue_id,omitempty"`

	// Event path.
	TicketCount int `json:"ticket_count,omitempty"`

	// Venue path.
	BookingDate     *time.Time `json:"booking_date,omitempty"`
	BookingDuration int        `json:"booking_duration,omitempty"`
	AttendeeCount   int        `json:"attendee_count,omitempty"`

	// TotalAmount is always computed server-side from the stored
	// event/venue price, never taken from the client.
	TotalAmount   float64       `json:"total_amount"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Notes         string        `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	CancelledAt   *time.Time    `json:"cancelled_at,omitempty"`

	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Event *Event `json:"event,omitempty" gorm:"foreignKey:EventID"`
	Venue *Venue `json:"venue,omitempty" gorm:"foreignKey:VenueID"`
}

// IsVenueBooking reports whether the booking targets a venue.
func (b *Booking) IsVenueBooking() bool { return b.VenueID != nil }
