package report

import (
	"context"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
)

// Service aggregates cross-domain numbers for the admin dashboard.
type Service interface {
	Dashboard(ctx context.Context) (Dashboard, error)
}

// The source interfaces are deliberately narrow: each names only what the
// dashboard reads from that domain.

type BookingSource interface {
	CountBookingsByStatus(ctx context.Context) (map[string]int, error)
}

type Counter interface {
	CountAll(ctx context.Context) (int, error)
}

type RatingSource interface {
	AverageRating(ctx context.Context) (float64, int, error)
}

type service struct {
	bookings    BookingSource
	services    Counter
	gallery     Counter
	customers   Counter
	subscribers Counter
	reviews     RatingSource
	l           log.Logger
}

func NewService(bookings BookingSource, services, gallery, customers, subscribers Counter, reviews RatingSource, l log.Logger) Service {
	return &service{
		bookings:    bookings,
		services:    services,
		gallery:     gallery,
		customers:   customers,
		subscribers: subscribers,
		reviews:     reviews,
		l:           l,
	}
}

func (s *service) Dashboard(ctx context.Context) (Dashboard, error) {
	var d Dashboard

	byStatus, err := s.bookings.CountBookingsByStatus(ctx)
	if err != nil {
		s.l.Errorf(ctx, "report.Dashboard bookings: %v", err)
		return Dashboard{}, err
	}
	d.BookingsByStatus = byStatus
	for _, n := range byStatus {
		d.BookingsTotal += n
	}

	if d.Services, err = s.services.CountAll(ctx); err != nil {
		s.l.Errorf(ctx, "report.Dashboard services: %v", err)
		return Dashboard{}, err
	}
	if d.GalleryImages, err = s.gallery.CountAll(ctx); err != nil {
		s.l.Errorf(ctx, "report.Dashboard gallery: %v", err)
		return Dashboard{}, err
	}
	if d.Customers, err = s.customers.CountAll(ctx); err != nil {
		s.l.Errorf(ctx, "report.Dashboard customers: %v", err)
		return Dashboard{}, err
	}
	if d.Subscribers, err = s.subscribers.CountAll(ctx); err != nil {
		s.l.Errorf(ctx, "report.Dashboard subscribers: %v", err)
		return Dashboard{}, err
	}
	if d.AverageRating, d.ApprovedReviews, err = s.reviews.AverageRating(ctx); err != nil {
		s.l.Errorf(ctx, "report.Dashboard reviews: %v", err)
		return Dashboard{}, err
	}

	return d, nil
}
