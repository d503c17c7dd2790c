package booking

import (
	"context"
	"errors"
	"math"
	"time"

	"eventzen/internal/domain"
	"eventzen/internal/monitoring"
	"eventzen/internal/repository"

	"gorm.io/gorm"
)

const (
	minBookingDurationHours = 1
	maxBookingDurationHours = 12
)

type Service struct {
	bookings BookingRepository
	events   EventReader
	venues   VenueReader
	notifs   NotificationSender
}

func NewService(bookings BookingRepository, events EventReader, venues VenueReader, notifs NotificationSender) *Service {
	return &Service{
		bookings: bookings,
		events:   events,
		venues:   venues,
		notifs:   notifs,
	}
}

// CreateEventBooking reserves tickets for an event. The total is always
// computed from the event's stored price; any amount the client sends is
// ignored.
func (s *Service) CreateEventBooking(ctx context.Context, userID int64, req CreateEventBookingRequest) (*domain.Booking, error) {
	tickets := req.TicketCount
	if tickets == 0 {
		tickets = 1
	}
	if tickets < 0 {
		return nil, ErrValidation
	}

	ev, err := s.events.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	eventID := ev.ID
	b := &domain.Booking{
		UserID:        userID,
		EventID:       &eventID,
		VenueID:       nil,
		TicketCount:   tickets,
		TotalAmount:   round2(ev.Price * float64(tickets)),
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentPending,
		Notes:         req.Notes,
	}

	if err := s.bookings.CreateEventReserved(ctx, b, ev.Capacity); err != nil {
		if errors.Is(err, repository.ErrCapacityExceeded) {
			return nil, ErrCapacityExceeded
		}
		return nil, err
	}

	monitoring.TrackBookingCreated("event")
	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCreated(ctx, userID, b.ID, b.TotalAmount)
	}

	return b, nil
}

// CreateVenueBooking reserves a venue for a time window. The total is the
// venue's stored hourly rate times the duration.
func (s *Service) CreateVenueBooking(ctx context.Context, userID int64, req CreateVenueBookingRequest) (*domain.Booking, error) {
	if req.BookingDuration < minBookingDurationHours || req.BookingDuration > maxBookingDurationHours {
		return nil, ErrValidation
	}
	if req.AttendeeCount < 0 {
		return nil, ErrValidation
	}
	if req.BookingDate.Before(time.Now()) {
		return nil, ErrValidation
	}

	v, err := s.venues.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if req.AttendeeCount > v.Capacity {
		return nil, ErrCapacityExceeded
	}

	venueID := v.ID
	date := req.BookingDate
	b := &domain.Booking{
		UserID:          userID,
		EventID:         nil,
		VenueID:         &venueID,
		BookingDate:     &date,
		BookingDuration: req.BookingDuration,
		AttendeeCount:   req.AttendeeCount,
		TotalAmount:     round2(v.Price * float64(req.BookingDuration)),
		Status:          domain.BookingPending,
		PaymentStatus:   domain.PaymentPending,
		Notes:           req.Notes,
	}

	if err := s.bookings.CreateVenueReserved(ctx, b); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	monitoring.TrackBookingCreated("venue")
	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCreated(ctx, userID, b.ID, b.TotalAmount)
	}

	return b, nil
}

func (s *Service) GetMyBookings(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.GetByUserID(ctx, userID, limit, offset)
}

func (s *Service) GetByID(ctx context.Context, bookingID, actorUserID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != actorUserID {
		return nil, ErrForbidden
	}
	return b, nil
}

// UpdateStatus handles owner-driven status changes; cancellation is the
// only one the API exposes. PaymentStatus is deliberately left untouched —
// refunds are an administrative process, not an automatic side effect.
func (s *Service) UpdateStatus(ctx context.Context, bookingID, actorUserID int64, newStatus domain.BookingStatus) (*domain.Booking, error) {
	if newStatus != domain.BookingCancelled {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != actorUserID {
		return nil, ErrForbidden
	}

	if b.Status == domain.BookingCancelled || b.Status == domain.BookingCompleted {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingCancelled); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCancelled(ctx, b.UserID, b.ID)
	}

	return s.bookings.GetByID(ctx, bookingID)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
