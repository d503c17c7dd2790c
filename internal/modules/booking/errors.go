package booking

import "errors"

var (
	ErrNotFound                = errors.New("booking target not found")
	ErrValidation              = errors.New("validation error")
	ErrCapacityExceeded        = errors.New("capacity exceeded")
	ErrSlotTaken               = errors.New("venue not available for the selected time")
	ErrForbidden               = errors.New("forbidden")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
