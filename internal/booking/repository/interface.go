package repository

import (
	"context"

	"github.com/nghia89/landingpage-wedding-sub000/internal/booking"
)

// Repository is the data store interface for the booking domain.
type Repository interface {
	CreateBooking(ctx context.Context, opt CreateBookingOptions) (booking.Booking, error)
	GetOneBooking(ctx context.Context, opt GetOneBookingOptions) (booking.Booking, error)
	ListBookings(ctx context.Context, opt ListBookingsOptions) ([]booking.Booking, int, error)
	UpdateBooking(ctx context.Context, opt UpdateBookingOptions) (booking.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	CountBookingsByStatus(ctx context.Context) (map[string]int, error)
}
