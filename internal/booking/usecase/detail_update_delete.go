package usecase

import (
	"context"

	"github.com/nghia89/landingpage-wedding-sub000/internal/booking"
	repo "github.com/nghia89/landingpage-wedding-sub000/internal/booking/repository"
	"github.com/nghia89/landingpage-wedding-sub000/internal/model"
)

// Detail retrieves a single booking by ID. Returns ErrBookingNotFound when
// not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (booking.DetailBookingOutput, error) {
	b, err := uc.repo.GetOneBooking(ctx, repo.GetOneBookingOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneBooking: %v", err)
		return booking.DetailBookingOutput{}, err
	}
	if b.ID == "" {
		return booking.DetailBookingOutput{}, booking.ErrBookingNotFound
	}
	return booking.DetailBookingOutput{Booking: b}, nil
}

// Update modifies an existing booking (partial update). Returns
// ErrBookingNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input booking.UpdateBookingInput) (booking.UpdateBookingOutput, error) {
	existing, err := uc.repo.GetOneBooking(ctx, repo.GetOneBookingOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneBooking: %v", err)
		return booking.UpdateBookingOutput{}, err
	}
	if existing.ID == "" {
		return booking.UpdateBookingOutput{}, booking.ErrBookingNotFound
	}

	if input.Status != "" && !model.ValidStatus(input.Status) {
		return booking.UpdateBookingOutput{}, booking.ErrInvalidStatus
	}

	b, err := uc.repo.UpdateBooking(ctx, repo.UpdateBookingOptions{
		ID:               input.ID,
		CustomerName:     uc.coalesce(input.CustomerName, existing.CustomerName),
		Phone:            uc.coalesce(input.Phone, existing.Phone),
		ConsultationDate: uc.coalesce(input.ConsultationDate, existing.ConsultationDate),
		ConsultationTime: uc.coalesce(input.ConsultationTime, existing.ConsultationTime),
		Requirements:     uc.coalesce(input.Requirements, existing.Requirements),
		Status:           uc.coalesce(input.Status, existing.Status),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateBooking: %v", err)
		return booking.UpdateBookingOutput{}, err
	}
	return booking.UpdateBookingOutput{Booking: b}, nil
}

// Delete removes a booking by ID. Returns ErrBookingNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneBooking(ctx, repo.GetOneBookingOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneBooking: %v", err)
		return err
	}
	if existing.ID == "" {
		return booking.ErrBookingNotFound
	}
	if err := uc.repo.DeleteBooking(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteBooking: %v", err)
		return err
	}
	return nil
}

// coalesce returns the first non-empty string, for partial updates.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
