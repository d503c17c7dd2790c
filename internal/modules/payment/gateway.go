package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go"
	"github.com/stripe/stripe-go/paymentintent"
)

// StripeGateway issues payment intents against the Stripe API. Every call
// carries a fresh idempotency key so a network retry cannot double-create
// an intent.
type StripeGateway struct{}

func NewStripeGateway(secretKey string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{}
}

func (g *StripeGateway) CreateIntent(_ context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (*Intent, error) {
	if amountMinorUnits <= 0 {
		return nil, fmt.Errorf("amount must be greater than 0")
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinorUnits),
		Currency: stripe.String(currency),
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	params.SetIdempotencyKey(uuid.New().String())

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}

	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
