package appointment

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrInvalidSchedule     = errors.New("appointment schedule is invalid")
)
