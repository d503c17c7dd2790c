package booking

import "time"

type CreateEventBookingRequest struct {
	EventID     int64  `json:"eventId" binding:"required"`
	TicketCount int    `json:"ticketCount"`
	Notes       string `json:"notes"`
}

type CreateVenueBookingRequest struct {
	VenueID         int64     `json:"venueId" binding:"required"`
	BookingDate     time.Time `json:"bookingDate" binding:"required"`
	BookingDuration int       `json:"bookingDuration" binding:"required"`
	AttendeeCount   int       `json:"attendeeCount"`
	Notes           string    `json:"notes"`
}

type UpdateBookingRequest struct {
	Status string `json:"status" binding:"required"`
}
