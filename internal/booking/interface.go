package booking

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Booking CRUD
	Create(ctx context.Context, input CreateBookingInput) (CreateBookingOutput, error)
	List(ctx context.Context, input ListBookingsInput) (ListBookingsOutput, error)
	Detail(ctx context.Context, id string) (DetailBookingOutput, error)
	Update(ctx context.Context, input UpdateBookingInput) (UpdateBookingOutput, error)
	Delete(ctx context.Context, id string) error
}
