package payment

type CreateIntentRequest struct {
	BookingID int64 `json:"bookingId" binding:"required"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type ProcessPaymentRequest struct {
	BookingID       int64  `json:"bookingId" binding:"required"`
	StripePaymentID string `json:"stripePaymentId" binding:"required"`
}

type PaymentFailedRequest struct {
	BookingID int64 `json:"bookingId" binding:"required"`
}
