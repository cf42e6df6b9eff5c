package booking

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidDate     = errors.New("consultation date is invalid or in the past")
	ErrInvalidTime     = errors.New("consultation time is invalid")
	ErrInvalidStatus   = errors.New("invalid booking status")
)
