package newsletter

import (
	"context"
	"net/mail"
	"strings"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

// Service is the newsletter domain logic. Subscribe is idempotent: signing
// up twice with the same address returns the existing subscription.
type Service interface {
	Subscribe(ctx context.Context, email string) (Subscription, error)
	List(ctx context.Context, input ListSubscriptionsInput) (ListSubscriptionsOutput, error)
	CountAll(ctx context.Context) (int, error)
}

// Store is the persistence interface the service depends on.
type Store interface {
	GetByEmail(ctx context.Context, email string) (Subscription, error)
	Insert(ctx context.Context, email string) (Subscription, error)
	List(ctx context.Context, page, limit int) ([]Subscription, int, error)
	Count(ctx context.Context) (int, error)
}

type service struct {
	store Store
	l     log.Logger
}

func NewService(store Store, l log.Logger) Service {
	return &service{store: store, l: l}
}

func (s *service) Subscribe(ctx context.Context, email string) (Subscription, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return Subscription{}, ErrInvalidEmail
	}

	existing, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		s.l.Errorf(ctx, "newsletter.Subscribe GetByEmail: %v", err)
		return Subscription{}, err
	}
	if existing.ID != "" {
		return existing, nil
	}

	sub, err := s.store.Insert(ctx, email)
	if err != nil {
		s.l.Errorf(ctx, "newsletter.Subscribe Insert: %v", err)
		return Subscription{}, err
	}
	return sub, nil
}

func (s *service) List(ctx context.Context, input ListSubscriptionsInput) (ListSubscriptionsOutput, error) {
	page, limit := paging.Normalize(input.Page, input.Limit)
	subs, total, err := s.store.List(ctx, page, limit)
	if err != nil {
		s.l.Errorf(ctx, "newsletter.List: %v", err)
		return ListSubscriptionsOutput{}, err
	}
	p := paging.New(page, limit, total)
	return ListSubscriptionsOutput{
		Subscriptions: subs,
		Total:         total,
		Page:          p.Page,
		Limit:         p.Limit,
	}, nil
}

func (s *service) CountAll(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}
