package payment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventzen/internal/pkg/response"
)

type Handler struct {
	service *Service
	loggerf func(format string, args ...interface{})
}

func NewHandler(service *Service, loggerf func(format string, args ...interface{})) *Handler {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Handler{service: service, loggerf: loggerf}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/create-payment-intent", h.CreateIntent)
	rg.POST("/process-payment", h.ProcessPayment)
	rg.POST("/payment-failed", h.PaymentFailed)
}

// CreateIntent godoc
// @Summary      Create a payment intent for a booking
// @Description  Returns the client secret the front end uses to complete payment
// @Tags         Payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Router       /create-payment-intent [post]
func (h *Handler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.service.CreateIntent(c.Request.Context(), req)
	if err != nil {
		h.writePaymentError(c, err, "Failed to create payment intent")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ProcessPayment godoc
// @Summary      Finalize a gateway-confirmed payment
// @Description  Records the payment and confirms the booking atomically
// @Tags         Payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Router       /process-payment [post]
func (h *Handler) ProcessPayment(c *gin.Context) {
	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	p, err := h.service.ProcessPayment(c.Request.Context(), req)
	if err != nil {
		h.writePaymentError(c, err, "Failed to process payment")
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) PaymentFailed(c *gin.Context) {
	var req PaymentFailedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.service.MarkFailed(c.Request.Context(), req); err != nil {
		h.writePaymentError(c, err, "Failed to record payment failure")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "recorded"})
}

func (h *Handler) writePaymentError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, ErrBookingCancelled):
		response.Error(c, http.StatusConflict, "Booking is cancelled")
	case errors.Is(err, ErrGateway):
		response.ErrorWithDetail(c, http.StatusInternalServerError, "Payment provider error", err)
	default:
		response.ErrorWithDetail(c, http.StatusInternalServerError, fallback, err)
	}
}
