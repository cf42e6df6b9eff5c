package http

import (
	"github.com/nghia89/landingpage-wedding-sub000/internal/booking"
	pkgErrors "github.com/nghia89/landingpage-wedding-sub000/pkg/errors"
)

var errIDRequired = pkgErrors.NewHTTPError(400, "booking id is required")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case booking.ErrBookingNotFound:
		return pkgErrors.NewHTTPError(404, "Booking not found")
	case booking.ErrInvalidDate:
		return pkgErrors.NewHTTPError(400, "Consultation date must be a valid date that is not in the past")
	case booking.ErrInvalidTime:
		return pkgErrors.NewHTTPError(400, "Consultation time must be in HH:MM format")
	case booking.ErrInvalidStatus:
		return pkgErrors.NewHTTPError(400, "Invalid booking status")
	default:
		return pkgErrors.NewHTTPError(500, "Internal server error")
	}
}
