package appointment

import (
	"context"
	"time"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/dateparse"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

// Service is the appointment domain logic.
type Service interface {
	Create(ctx context.Context, input CreateAppointmentInput) (Appointment, error)
	List(ctx context.Context, input ListAppointmentsInput) (ListAppointmentsOutput, error)
	Detail(ctx context.Context, id string) (Appointment, error)
	Update(ctx context.Context, input UpdateAppointmentInput) (Appointment, error)
	Delete(ctx context.Context, id string) error
}

// Store is the persistence interface the service depends on.
type Store interface {
	Insert(ctx context.Context, a Appointment) (Appointment, error)
	GetByID(ctx context.Context, id string) (Appointment, error)
	List(ctx context.Context, status, date string, page, limit int) ([]Appointment, int, error)
	Update(ctx context.Context, a Appointment) (Appointment, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	store Store
	dates *dateparse.Parser
	l     log.Logger
}

func NewService(store Store, dates *dateparse.Parser, l log.Logger) Service {
	return &service{store: store, dates: dates, l: l}
}

func (s *service) Create(ctx context.Context, input CreateAppointmentInput) (Appointment, error) {
	if _, err := s.dates.ParseDate(input.ScheduledDate, time.Now()); err != nil {
		return Appointment{}, ErrInvalidSchedule
	}
	normalized, err := s.dates.NormalizeTime(input.ScheduledTime)
	if err != nil {
		return Appointment{}, ErrInvalidSchedule
	}

	a, err := s.store.Insert(ctx, Appointment{
		BookingID:     input.BookingID,
		CustomerName:  input.CustomerName,
		ScheduledDate: input.ScheduledDate,
		ScheduledTime: normalized,
		Location:      input.Location,
		Notes:         input.Notes,
		Status:        StatusScheduled,
	})
	if err != nil {
		s.l.Errorf(ctx, "appointment.Create: %v", err)
		return Appointment{}, err
	}
	return a, nil
}

func (s *service) List(ctx context.Context, input ListAppointmentsInput) (ListAppointmentsOutput, error) {
	page, limit := paging.Normalize(input.Page, input.Limit)
	appointments, total, err := s.store.List(ctx, input.Status, input.Date, page, limit)
	if err != nil {
		s.l.Errorf(ctx, "appointment.List: %v", err)
		return ListAppointmentsOutput{}, err
	}
	p := paging.New(page, limit, total)
	return ListAppointmentsOutput{
		Appointments: appointments,
		Total:        total,
		Page:         p.Page,
		Limit:        p.Limit,
	}, nil
}

func (s *service) Detail(ctx context.Context, id string) (Appointment, error) {
	a, err := s.store.GetByID(ctx, id)
	if err != nil {
		s.l.Errorf(ctx, "appointment.Detail: %v", err)
		return Appointment{}, err
	}
	if a.ID == "" {
		return Appointment{}, ErrAppointmentNotFound
	}
	return a, nil
}

func (s *service) Update(ctx context.Context, input UpdateAppointmentInput) (Appointment, error) {
	existing, err := s.Detail(ctx, input.ID)
	if err != nil {
		return Appointment{}, err
	}

	if input.Status != "" {
		if !validStatus(input.Status) {
			return Appointment{}, ErrInvalidStatus
		}
		existing.Status = input.Status
	}
	if input.ScheduledTime != "" {
		normalized, err := s.dates.NormalizeTime(input.ScheduledTime)
		if err != nil {
			return Appointment{}, ErrInvalidSchedule
		}
		existing.ScheduledTime = normalized
	}
	existing.ScheduledDate = coalesce(input.ScheduledDate, existing.ScheduledDate)
	existing.Location = coalesce(input.Location, existing.Location)
	existing.Notes = coalesce(input.Notes, existing.Notes)

	a, err := s.store.Update(ctx, existing)
	if err != nil {
		s.l.Errorf(ctx, "appointment.Update: %v", err)
		return Appointment{}, err
	}
	return a, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.Detail(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		s.l.Errorf(ctx, "appointment.Delete: %v", err)
		return err
	}
	return nil
}

func coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
