package booking

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"eventzen/internal/domain"
	"eventzen/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateEventBooking)
	rg.POST("/venue-bookings", h.CreateVenueBooking)
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.PUT("/bookings/:id", h.UpdateBooking)
}

func (h *Handler) CreateEventBooking(c *gin.Context) {
	var req CreateEventBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	b, err := h.service.CreateEventBooking(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeBookingError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, b)
}

func (h *Handler) CreateVenueBooking(c *gin.Context) {
	var req CreateVenueBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	b, err := h.service.CreateVenueBooking(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeBookingError(c, err, "Failed to create venue booking")
		return
	}

	c.JSON(http.StatusCreated, b)
}

func (h *Handler) ListBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, err := h.service.GetMyBookings(c.Request.Context(), c.GetInt64("user_id"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list bookings")
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		h.writeBookingError(c, err, "Failed to fetch booking")
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), id, c.GetInt64("user_id"), domain.BookingStatus(req.Status))
	if err != nil {
		h.writeBookingError(c, err, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *Handler) writeBookingError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "Invalid booking request")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "Not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "Not your booking")
	case ErrCapacityExceeded, ErrSlotTaken:
		response.Error(c, http.StatusConflict, "Not available for the requested quantity or time")
	case ErrInvalidStatusTransition:
		response.Error(c, http.StatusConflict, "Booking cannot change to the requested status")
	default:
		response.ErrorWithDetail(c, http.StatusInternalServerError, fallback, err)
	}
}
