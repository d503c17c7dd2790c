package repository

import (
	"context"
	"testing"
	"time"

	"eventzen/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBookingRepository_CreateEventReserved_CapacityLimit(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewBookingRepository(db)

	ev := &domain.Event{Name: "Tech Meetup", Date: time.Now().AddDate(0, 0, 14), Price: 25.00, Capacity: 3}
	assert.NoError(t, NewEventRepository(db).Create(ctx, ev))

	first := &domain.Booking{
		UserID: 7, EventID: &ev.ID, TicketCount: 2, TotalAmount: 50.00,
		Status: domain.BookingPending, PaymentStatus: domain.PaymentPending,
	}
	assert.NoError(t, repo.CreateEventReserved(ctx, first, ev.Capacity))
	assert.NotZero(t, first.ID)

	second := &domain.Booking{
		UserID: 8, EventID: &ev.ID, TicketCount: 2, TotalAmount: 50.00,
		Status: domain.BookingPending, PaymentStatus: domain.PaymentPending,
	}
	assert.ErrorIs(t, repo.CreateEventReserved(ctx, second, ev.Capacity), ErrCapacityExceeded)

	// cancelled tickets free their capacity
	assert.NoError(t, repo.UpdateStatus(ctx, first.ID, domain.BookingCancelled))
	assert.NoError(t, repo.CreateEventReserved(ctx, second, ev.Capacity))
}

func TestBookingRepository_CreateVenueReserved_OverlapRejected(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewBookingRepository(db)

	v := &domain.Venue{Name: "Riverside Loft", Price: 85.50, Capacity: 80}
	assert.NoError(t, NewVenueRepository(db).Create(ctx, v))

	start := time.Now().Add(48 * time.Hour).Truncate(time.Hour)
	first := &domain.Booking{
		UserID: 7, VenueID: &v.ID, BookingDate: &start, BookingDuration: 4,
		TotalAmount: 342.00, Status: domain.BookingPending, PaymentStatus: domain.PaymentPending,
	}
	assert.NoError(t, repo.CreateVenueReserved(ctx, first))

	// starts inside the first window
	overlapStart := start.Add(2 * time.Hour)
	overlapping := &domain.Booking{
		UserID: 8, VenueID: &v.ID, BookingDate: &overlapStart, BookingDuration: 2,
		TotalAmount: 171.00, Status: domain.BookingPending, PaymentStatus: domain.PaymentPending,
	}
	assert.ErrorIs(t, repo.CreateVenueReserved(ctx, overlapping), ErrSlotTaken)

	// back-to-back window is fine
	adjacentStart := start.Add(4 * time.Hour)
	adjacent := &domain.Booking{
		UserID: 8, VenueID: &v.ID, BookingDate: &adjacentStart, BookingDuration: 2,
		TotalAmount: 171.00, Status: domain.BookingPending, PaymentStatus: domain.PaymentPending,
	}
	assert.NoError(t, repo.CreateVenueReserved(ctx, adjacent))
}
