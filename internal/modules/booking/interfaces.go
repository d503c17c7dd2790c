package booking

import (
	"context"

	"eventzen/internal/domain"
)

// BookingRepository defines the persistence operations the workflow needs.
type BookingRepository interface {
	CreateEventReserved(ctx context.Context, b *domain.Booking, capacity int) error
	CreateVenueReserved(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
}

// EventReader resolves the priced target of an event booking.
type EventReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
}

// VenueReader resolves the priced target of a venue booking.
type VenueReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// NotificationSender delivers best-effort booking notifications.
type NotificationSender interface {
	NotifyBookingCreated(ctx context.Context, userID, bookingID int64, totalAmount float64) error
	NotifyBookingCancelled(ctx context.Context, userID, bookingID int64) error
}
