package payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"eventzen/internal/domain"
	"eventzen/internal/monitoring"
	"eventzen/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("booking not found")
	ErrBookingCancelled = errors.New("booking is cancelled")
	ErrGateway          = errors.New("payment gateway error")
)

type Service struct {
	payments      paymentRepo
	bookings      bookingReader
	bookingWriter bookingPaymentWriter
	gateway       Gateway
	notifs        notificationSender
	currency      string
	loggerf       func(format string, args ...interface{})
}

func NewService(
	payments paymentRepo,
	bookings bookingReader,
	bookingWriter bookingPaymentWriter,
	gateway Gateway,
	notifs notificationSender,
	currency string,
	loggerf func(format string, args ...interface{}),
) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		payments:      payments,
		bookings:      bookings,
		bookingWriter: bookingWriter,
		gateway:       gateway,
		notifs:        notifs,
		currency:      currency,
		loggerf:       loggerf,
	}
}

// CreateIntent asks the gateway for a payment intent covering the booking's
// stored total. The client never supplies the amount.
func (s *Service) CreateIntent(ctx context.Context, req CreateIntentRequest) (*CreateIntentResponse, error) {
	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.Status == domain.BookingCancelled {
		return nil, ErrBookingCancelled
	}

	metadata := map[string]string{
		"bookingId": strconv.FormatInt(b.ID, 10),
		"userId":    strconv.FormatInt(b.UserID, 10),
	}

	intent, err := s.gateway.CreateIntent(ctx, minorUnits(b.TotalAmount), s.currency, metadata)
	if err != nil {
		// The booking stays pending; the caller can retry the intent.
		s.loggerf("level=error msg=payment intent creation failed booking_id=%d err=%v", b.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	monitoring.TrackPaymentIntent()
	s.loggerf("level=info msg=payment intent created booking_id=%d intent_id=%s", b.ID, intent.ID)

	return &CreateIntentResponse{ClientSecret: intent.ClientSecret}, nil
}

// ProcessPayment finalizes a booking after the gateway confirmed the charge.
// Confirming twice for the same booking returns the already-recorded payment
// instead of creating a second row.
func (s *Service) ProcessPayment(ctx context.Context, req ProcessPaymentRequest) (*domain.Payment, error) {
	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.Status == domain.BookingCancelled {
		return nil, ErrBookingCancelled
	}

	if b.PaymentStatus == domain.PaymentCompleted {
		existing, err := s.payments.GetByBookingID(ctx, b.ID)
		if err == nil {
			s.loggerf("level=info msg=idempotent process-payment booking already paid booking_id=%d", b.ID)
			return existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// Booking is flagged paid but the payment row is missing; fall
		// through and record one instead of failing the caller.
		s.loggerf("level=warn msg=paid booking missing payment row booking_id=%d", b.ID)
	}

	p := &domain.Payment{
		UserID:          b.UserID,
		BookingID:       b.ID,
		Amount:          b.TotalAmount,
		Currency:        s.currency,
		Status:          domain.PaymentCompleted,
		StripePaymentID: req.StripePaymentID,
	}

	if err := s.payments.Confirm(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicatePayment) {
			// Lost a race against a concurrent confirm; the winner's row is
			// the payment of record.
			s.loggerf("level=info msg=duplicate process-payment resolved idempotently booking_id=%d", b.ID)
			return s.payments.GetByBookingID(ctx, b.ID)
		}
		return nil, err
	}

	monitoring.TrackPaymentProcessed("completed")
	s.loggerf("level=info msg=payment processed booking_id=%d stripe_payment_id=%s amount=%.2f", b.ID, req.StripePaymentID, p.Amount)

	if s.notifs != nil {
		_ = s.notifs.NotifyPaymentProcessed(ctx, b.UserID, b.ID, p.Amount)
	}

	return p, nil
}

// MarkFailed records a client-reported declined charge. The booking itself
// stays pending so the user can retry with another card.
func (s *Service) MarkFailed(ctx context.Context, req PaymentFailedRequest) error {
	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if b.Status == domain.BookingCancelled {
		return ErrBookingCancelled
	}
	if b.PaymentStatus == domain.PaymentCompleted {
		// A settled payment cannot be demoted by a client callback.
		return nil
	}

	if err := s.bookingWriter.UpdatePaymentStatus(ctx, b.ID, domain.PaymentFailed); err != nil {
		return err
	}

	monitoring.TrackPaymentProcessed("failed")
	if s.notifs != nil {
		_ = s.notifs.NotifyPaymentFailed(ctx, b.UserID, b.ID)
	}
	return nil
}

// minorUnits converts a decimal amount to the gateway's smallest currency
// unit. Applied exactly once per charge.
func minorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
