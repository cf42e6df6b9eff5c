package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/nghia89/landingpage-wedding-sub000/internal/booking"
	repo "github.com/nghia89/landingpage-wedding-sub000/internal/booking/repository"
	"github.com/nghia89/landingpage-wedding-sub000/internal/model"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/mailer"
)

// Create validates and persists a new consultation request, then notifies
// the studio inbox best-effort. A failed notification never fails the
// booking.
func (uc *implUseCase) Create(ctx context.Context, input booking.CreateBookingInput) (booking.CreateBookingOutput, error) {
	if _, err := uc.dates.ParseDate(input.ConsultationDate, time.Now()); err != nil {
		return booking.CreateBookingOutput{}, booking.ErrInvalidDate
	}

	normalized, err := uc.dates.NormalizeTime(input.ConsultationTime)
	if err != nil {
		return booking.CreateBookingOutput{}, booking.ErrInvalidTime
	}

	status := input.Status
	if status == "" {
		status = model.StatusPending
	}
	if !model.ValidStatus(status) {
		return booking.CreateBookingOutput{}, booking.ErrInvalidStatus
	}

	b, err := uc.repo.CreateBooking(ctx, repo.CreateBookingOptions{
		CustomerName:     input.CustomerName,
		Phone:            input.Phone,
		ConsultationDate: input.ConsultationDate,
		ConsultationTime: normalized,
		Requirements:     input.Requirements,
		Status:           status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateBooking: %v", err)
		return booking.CreateBookingOutput{}, err
	}

	uc.notifyNewBooking(b)

	return booking.CreateBookingOutput{Booking: b}, nil
}

// notifyNewBooking mails the studio about a fresh request. Runs detached
// from the request so a slow mail API never delays the response.
func (uc *implUseCase) notifyNewBooking(b booking.Booking) {
	if uc.notifyAddr == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		msg := mailer.Message{
			To:      uc.notifyAddr,
			Subject: fmt.Sprintf("New consultation request from %s", b.CustomerName),
			Body: fmt.Sprintf("Customer: %s\nPhone: %s\nDate: %s %s\nRequirements: %s\n",
				b.CustomerName, b.Phone, b.ConsultationDate, b.ConsultationTime, b.Requirements),
		}
		if err := uc.mail.Send(ctx, msg); err != nil {
			uc.l.Warnf(ctx, "uc.Create booking notification mail: %v", err)
		}
	}()
}
