package usecase

import (
	"context"

	"github.com/nghia89/landingpage-wedding-sub000/internal/booking"
	repo "github.com/nghia89/landingpage-wedding-sub000/internal/booking/repository"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

// List returns a paginated list of bookings. The page is only clamped once
// the repository has counted the filtered total.
func (uc *implUseCase) List(ctx context.Context, input booking.ListBookingsInput) (booking.ListBookingsOutput, error) {
	page, limit := paging.Normalize(input.Page, input.Limit)

	bookings, total, err := uc.repo.ListBookings(ctx, repo.ListBookingsOptions{
		Status: input.Status,
		Date:   input.Date,
		Search: input.Search,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListBookings: %v", err)
		return booking.ListBookingsOutput{}, err
	}

	p := paging.New(page, limit, total)
	return booking.ListBookingsOutput{
		Bookings: bookings,
		Total:    total,
		Page:     p.Page,
		Limit:    p.Limit,
	}, nil
}
