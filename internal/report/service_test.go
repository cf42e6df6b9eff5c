package report_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nghia89/landingpage-wedding-sub000/internal/report"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
)

type fakeBookings struct {
	counts map[string]int
	err    error
}

func (f fakeBookings) CountBookingsByStatus(context.Context) (map[string]int, error) {
	return f.counts, f.err
}

type fakeCounter int

func (f fakeCounter) CountAll(context.Context) (int, error) {
	return int(f), nil
}

type fakeRatings struct {
	avg   float64
	count int
}

func (f fakeRatings) AverageRating(context.Context) (float64, int, error) {
	return f.avg, f.count, nil
}

func TestDashboard(t *testing.T) {
	t.Run("Aggregates All Sources", func(t *testing.T) {
		svc := report.NewService(
			fakeBookings{counts: map[string]int{"pending": 3, "confirmed": 2, "completed": 5}},
			fakeCounter(8),
			fakeCounter(24),
			fakeCounter(12),
			fakeCounter(150),
			fakeRatings{avg: 4.6, count: 19},
			log.NewNop(),
		)

		d, err := svc.Dashboard(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.BookingsTotal != 10 {
			t.Errorf("expected bookings total 10, got %d", d.BookingsTotal)
		}
		if d.BookingsByStatus["pending"] != 3 {
			t.Errorf("unexpected status counts %v", d.BookingsByStatus)
		}
		if d.Services != 8 || d.GalleryImages != 24 || d.Customers != 12 || d.Subscribers != 150 {
			t.Errorf("unexpected totals %+v", d)
		}
		if d.AverageRating != 4.6 || d.ApprovedReviews != 19 {
			t.Errorf("unexpected rating block %+v", d)
		}
	})

	t.Run("Source Failure Propagates", func(t *testing.T) {
		sentinel := errors.New("db down")
		svc := report.NewService(
			fakeBookings{err: sentinel},
			fakeCounter(0), fakeCounter(0), fakeCounter(0), fakeCounter(0),
			fakeRatings{},
			log.NewNop(),
		)

		if _, err := svc.Dashboard(context.Background()); !errors.Is(err, sentinel) {
			t.Errorf("expected source error back, got %v", err)
		}
	})
}
