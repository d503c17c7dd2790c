package payment

import (
	"context"

	"eventzen/internal/domain"
)

type bookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type bookingPaymentWriter interface {
	UpdatePaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) error
}

type paymentRepo interface {
	Confirm(ctx context.Context, p *domain.Payment) error
	GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error)
}

type notificationSender interface {
	NotifyPaymentProcessed(ctx context.Context, userID, bookingID int64, amount float64) error
	NotifyPaymentFailed(ctx context.Context, userID, bookingID int64) error
}

// Gateway abstracts the payment provider. Amounts are integer minor units;
// the conversion from the booking's decimal total happens exactly once, in
// the service, before the gateway is called.
type Gateway interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (*Intent, error)
}

// Intent is the provider-side handle for an authorized-but-unsettled charge.
type Intent struct {
	ID           string
	ClientSecret string
}
