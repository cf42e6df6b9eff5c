package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/nghia89/landingpage-wedding-sub000/internal/booking"
	"github.com/nghia89/landingpage-wedding-sub000/internal/booking/repository"
	"github.com/nghia89/landingpage-wedding-sub000/internal/booking/usecase"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/dateparse"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/mailer"
)

type fakeRepo struct {
	createFunc func(repository.CreateBookingOptions) (booking.Booking, error)
	getFunc    func(repository.GetOneBookingOptions) (booking.Booking, error)
	listFunc   func(repository.ListBookingsOptions) ([]booking.Booking, int, error)
	updateFunc func(repository.UpdateBookingOptions) (booking.Booking, error)
	deleteFunc func(string) error
}

func (f *fakeRepo) CreateBooking(_ context.Context, opt repository.CreateBookingOptions) (booking.Booking, error) {
	return f.createFunc(opt)
}

func (f *fakeRepo) GetOneBooking(_ context.Context, opt repository.GetOneBookingOptions) (booking.Booking, error) {
	if f.getFunc == nil {
		return booking.Booking{}, nil
	}
	return f.getFunc(opt)
}

func (f *fakeRepo) ListBookings(_ context.Context, opt repository.ListBookingsOptions) ([]booking.Booking, int, error) {
	return f.listFunc(opt)
}

func (f *fakeRepo) UpdateBooking(_ context.Context, opt repository.UpdateBookingOptions) (booking.Booking, error) {
	return f.updateFunc(opt)
}

func (f *fakeRepo) DeleteBooking(_ context.Context, id string) error {
	return f.deleteFunc(id)
}

func (f *fakeRepo) CountBookingsByStatus(context.Context) (map[string]int, error) {
	return map[string]int{}, nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (f *fakeMailer) Send(_ context.Context, msg mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeMailer) messages() []mailer.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]mailer.Message(nil), f.sent...)
}

func newParser(t *testing.T) *dateparse.Parser {
	t.Helper()
	p, err := dateparse.NewParser("UTC")
	if err != nil {
		t.Fatalf("parser init failed: %v", err)
	}
	return p
}

func TestCreate(t *testing.T) {
	futureDate := time.Now().AddDate(0, 1, 0).Format(dateparse.DateLayout)

	t.Run("Defaults To Pending And Normalizes Time", func(t *testing.T) {
		var gotOpt repository.CreateBookingOptions
		repo := &fakeRepo{
			createFunc: func(opt repository.CreateBookingOptions) (booking.Booking, error) {
				gotOpt = opt
				return booking.Booking{ID: "b-1", CustomerName: opt.CustomerName, Status: opt.Status}, nil
			},
		}
		uc := usecase.New(repo, log.NewNop(), &fakeMailer{}, newParser(t), "")

		out, err := uc.Create(context.Background(), booking.CreateBookingInput{
			CustomerName:     "An Nguyen",
			Phone:            "0901234567",
			ConsultationDate: futureDate,
			ConsultationTime: "9:30",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Booking.ID != "b-1" {
			t.Errorf("unexpected booking %+v", out.Booking)
		}
		if gotOpt.Status != "pending" {
			t.Errorf("expected default status pending, got %q", gotOpt.Status)
		}
		if gotOpt.ConsultationTime != "09:30" {
			t.Errorf("expected normalized time 09:30, got %q", gotOpt.ConsultationTime)
		}
	})

	t.Run("Past Date Rejected", func(t *testing.T) {
		uc := usecase.New(&fakeRepo{}, log.NewNop(), &fakeMailer{}, newParser(t), "")
		_, err := uc.Create(context.Background(), booking.CreateBookingInput{
			ConsultationDate: "2020-01-01",
			ConsultationTime: "10:00",
		})
		if !errors.Is(err, booking.ErrInvalidDate) {
			t.Errorf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("Invalid Time Rejected", func(t *testing.T) {
		uc := usecase.New(&fakeRepo{}, log.NewNop(), &fakeMailer{}, newParser(t), "")
		_, err := uc.Create(context.Background(), booking.CreateBookingInput{
			ConsultationDate: futureDate,
			ConsultationTime: "25:99",
		})
		if !errors.Is(err, booking.ErrInvalidTime) {
			t.Errorf("expected ErrInvalidTime, got %v", err)
		}
	})

	t.Run("Unknown Status Rejected", func(t *testing.T) {
		uc := usecase.New(&fakeRepo{}, log.NewNop(), &fakeMailer{}, newParser(t), "")
		_, err := uc.Create(context.Background(), booking.CreateBookingInput{
			ConsultationDate: futureDate,
			ConsultationTime: "10:00",
			Status:           "archived",
		})
		if !errors.Is(err, booking.ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("Studio Inbox Notified", func(t *testing.T) {
		repo := &fakeRepo{
			createFunc: func(opt repository.CreateBookingOptions) (booking.Booking, error) {
				return booking.Booking{ID: "b-1", CustomerName: opt.CustomerName}, nil
			},
		}
		mail := &fakeMailer{}
		uc := usecase.New(repo, log.NewNop(), mail, newParser(t), "studio@example.com")

		_, err := uc.Create(context.Background(), booking.CreateBookingInput{
			CustomerName:     "An Nguyen",
			ConsultationDate: futureDate,
			ConsultationTime: "10:00",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// notification runs detached from the request
		deadline := time.Now().Add(2 * time.Second)
		for len(mail.messages()) == 0 {
			if time.Now().After(deadline) {
				t.Fatalf("notification mail never sent")
			}
			time.Sleep(5 * time.Millisecond)
		}
		msgs := mail.messages()
		if msgs[0].To != "studio@example.com" {
			t.Errorf("expected mail to studio inbox, got %q", msgs[0].To)
		}
	})

	t.Run("No Notify Address No Mail", func(t *testing.T) {
		repo := &fakeRepo{
			createFunc: func(opt repository.CreateBookingOptions) (booking.Booking, error) {
				return booking.Booking{ID: "b-1"}, nil
			},
		}
		mail := &fakeMailer{}
		uc := usecase.New(repo, log.NewNop(), mail, newParser(t), "")

		if _, err := uc.Create(context.Background(), booking.CreateBookingInput{
			ConsultationDate: futureDate,
			ConsultationTime: "10:00",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		time.Sleep(50 * time.Millisecond)
		if got := mail.messages(); len(got) != 0 {
			t.Errorf("expected no mail without a notify address, got %d", len(got))
		}
	})
}

func TestList(t *testing.T) {
	t.Run("Clamps Paging And Passes Filters", func(t *testing.T) {
		var gotOpt repository.ListBookingsOptions
		repo := &fakeRepo{
			listFunc: func(opt repository.ListBookingsOptions) ([]booking.Booking, int, error) {
				gotOpt = opt
				return []booking.Booking{{ID: "b-1"}}, 1, nil
			},
		}
		uc := usecase.New(repo, log.NewNop(), &fakeMailer{}, newParser(t), "")

		out, err := uc.List(context.Background(), booking.ListBookingsInput{
			Status: "pending",
			Page:   0,
			Limit:  1000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotOpt.Status != "pending" {
			t.Errorf("expected status filter passed through, got %q", gotOpt.Status)
		}
		if gotOpt.Limit != 100 || gotOpt.Page != 1 {
			t.Errorf("expected clamped limit 100 page 1, got %d/%d", gotOpt.Limit, gotOpt.Page)
		}
		if out.Page != 1 || out.Limit != 100 || out.Total != 1 {
			t.Errorf("unexpected output paging %+v", out)
		}
	})

	t.Run("Page Ten Reaches The Repository", func(t *testing.T) {
		var gotOpt repository.ListBookingsOptions
		repo := &fakeRepo{
			listFunc: func(opt repository.ListBookingsOptions) ([]booking.Booking, int, error) {
				gotOpt = opt
				return []booking.Booking{{ID: "b-91"}}, 95, nil
			},
		}
		uc := usecase.New(repo, log.NewNop(), &fakeMailer{}, newParser(t), "")

		out, err := uc.List(context.Background(), booking.ListBookingsInput{Page: 10, Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotOpt.Page != 10 || gotOpt.Limit != 10 {
			t.Errorf("expected page 10 limit 10 passed through, got %d/%d", gotOpt.Page, gotOpt.Limit)
		}
		if out.Page != 10 || out.Total != 95 {
			t.Errorf("expected page 10 of 95 back, got page %d total %d", out.Page, out.Total)
		}
	})

	t.Run("Out Of Range Page Reports Last Page", func(t *testing.T) {
		repo := &fakeRepo{
			listFunc: func(opt repository.ListBookingsOptions) ([]booking.Booking, int, error) {
				return []booking.Booking{{ID: "b-91"}}, 95, nil
			},
		}
		uc := usecase.New(repo, log.NewNop(), &fakeMailer{}, newParser(t), "")

		out, err := uc.List(context.Background(), booking.ListBookingsInput{Page: 50, Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Page != 10 {
			t.Errorf("expected page clamped to 10, got %d", out.Page)
		}
	})
}

func TestDetail(t *testing.T) {
	t.Run("Missing Booking", func(t *testing.T) {
		repo := &fakeRepo{
			getFunc: func(opt repository.GetOneBookingOptions) (booking.Booking, error) {
				return booking.Booking{}, nil
			},
		}
		uc := usecase.New(repo, log.NewNop(), &fakeMailer{}, newParser(t), "")

		_, err := uc.Detail(context.Background(), "nope")
		if !errors.Is(err, booking.ErrBookingNotFound) {
			t.Errorf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("Found", func(t *testing.T) {
		repo := &fakeRepo{
			getFunc: func(opt repository.GetOneBookingOptions) (booking.Booking, error) {
				return booking.Booking{ID: opt.ID, CustomerName: "An"}, nil
			},
		}
		uc := usecase.New(repo, log.NewNop(), &fakeMailer{}, newParser(t), "")

		out, err := uc.Detail(context.Background(), "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Booking.ID != "b-1" {
			t.Errorf("unexpected booking %+v", out.Booking)
		}
	})
}

func TestUpdate(t *testing.T) {
	existing := booking.Booking{
		ID:               "b-1",
		CustomerName:     "An Nguyen",
		Phone:            "0901234567",
		ConsultationDate: "2026-10-20",
		ConsultationTime: "14:00",
		Status:           "pending",
	}

	t.Run("Partial Update Keeps Existing Fields", func(t *testing.T) {
		var gotOpt repository.UpdateBookingOptions
		repo := &fakeRepo{
			getFunc: func(repository.GetOneBookingOptions) (booking.Booking, error) {
				return existing, nil
			},
			updateFunc: func(opt repository.UpdateBookingOptions) (booking.Booking, error) {
				gotOpt = opt
				return booking.Booking{ID: opt.ID, Status: opt.Status}, nil
			},
		}
		uc := usecase.New(repo, log.NewNop(), &fakeMailer{}, newParser(t), "")

		out, err := uc.Update(context.Background(), booking.UpdateBookingInput{ID: "b-1", Status: "confirmed"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Booking.Status != "confirmed" {
			t.Errorf("unexpected status %q", out.Booking.Status)
		}
		if gotOpt.CustomerName != "An Nguyen" || gotOpt.Phone != "0901234567" {
			t.Errorf("expected untouched fields preserved, got %+v", gotOpt)
		}
	})

	t.Run("Unknown Status Rejected", func(t *testing.T) {
		repo := &fakeRepo{
			getFunc: func(repository.GetOneBookingOptions) (booking.Booking, error) {
				return existing, nil
			},
		}
		uc := usecase.New(repo, log.NewNop(), &fakeMailer{}, newParser(t), "")

		_, err := uc.Update(context.Background(), booking.UpdateBookingInput{ID: "b-1", Status: "archived"})
		if !errors.Is(err, booking.ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("Missing Booking", func(t *testing.T) {
		uc := usecase.New(&fakeRepo{}, log.NewNop(), &fakeMailer{}, newParser(t), "")
		_, err := uc.Update(context.Background(), booking.UpdateBookingInput{ID: "nope"})
		if !errors.Is(err, booking.ErrBookingNotFound) {
			t.Errorf("expected ErrBookingNotFound, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	t.Run("Missing Booking", func(t *testing.T) {
		uc := usecase.New(&fakeRepo{}, log.NewNop(), &fakeMailer{}, newParser(t), "")
		err := uc.Delete(context.Background(), "nope")
		if !errors.Is(err, booking.ErrBookingNotFound) {
			t.Errorf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("Deletes Existing", func(t *testing.T) {
		var deleted string
		repo := &fakeRepo{
			getFunc: func(opt repository.GetOneBookingOptions) (booking.Booking, error) {
				return booking.Booking{ID: opt.ID}, nil
			},
			deleteFunc: func(id string) error {
				deleted = id
				return nil
			},
		}
		uc := usecase.New(repo, log.NewNop(), &fakeMailer{}, newParser(t), "")

		if err := uc.Delete(context.Background(), "b-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != "b-1" {
			t.Errorf("expected delete of b-1, got %q", deleted)
		}
	})
}
