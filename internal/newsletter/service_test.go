package newsletter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nghia89/landingpage-wedding-sub000/internal/newsletter"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
)

type fakeStore struct {
	byEmail map[string]newsletter.Subscription
	inserts []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{byEmail: map[string]newsletter.Subscription{}}
}

func (f *fakeStore) GetByEmail(_ context.Context, email string) (newsletter.Subscription, error) {
	return f.byEmail[email], nil
}

func (f *fakeStore) Insert(_ context.Context, email string) (newsletter.Subscription, error) {
	f.inserts = append(f.inserts, email)
	sub := newsletter.Subscription{ID: "n-1", Email: email}
	f.byEmail[email] = sub
	return sub, nil
}

func (f *fakeStore) List(_ context.Context, page, limit int) ([]newsletter.Subscription, int, error) {
	var out []newsletter.Subscription
	for _, sub := range f.byEmail {
		out = append(out, sub)
	}
	return out, len(out), nil
}

func (f *fakeStore) Count(context.Context) (int, error) {
	return len(f.byEmail), nil
}

func TestSubscribe(t *testing.T) {
	t.Run("Normalizes Email", func(t *testing.T) {
		store := newFakeStore()
		svc := newsletter.NewService(store, log.NewNop())

		sub, err := svc.Subscribe(context.Background(), "  An@Example.COM  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sub.Email != "an@example.com" {
			t.Errorf("expected lowercased trimmed email, got %q", sub.Email)
		}
	})

	t.Run("Invalid Email Rejected", func(t *testing.T) {
		svc := newsletter.NewService(newFakeStore(), log.NewNop())
		for _, v := range []string{"", "not-an-email", "a@", "@b.com"} {
			if _, err := svc.Subscribe(context.Background(), v); !errors.Is(err, newsletter.ErrInvalidEmail) {
				t.Errorf("expected ErrInvalidEmail for %q, got %v", v, err)
			}
		}
	})

	t.Run("Resubscribe Is Idempotent", func(t *testing.T) {
		store := newFakeStore()
		svc := newsletter.NewService(store, log.NewNop())

		first, err := svc.Subscribe(context.Background(), "an@example.com")
		if err != nil {
			t.Fatalf("first subscribe failed: %v", err)
		}
		second, err := svc.Subscribe(context.Background(), "AN@example.com")
		if err != nil {
			t.Fatalf("second subscribe failed: %v", err)
		}
		if first.ID != second.ID {
			t.Errorf("expected same subscription back, got %q and %q", first.ID, second.ID)
		}
		if len(store.inserts) != 1 {
			t.Errorf("expected exactly 1 insert, got %d", len(store.inserts))
		}
	})
}

func TestList(t *testing.T) {
	t.Run("Clamped Paging", func(t *testing.T) {
		store := newFakeStore()
		svc := newsletter.NewService(store, log.NewNop())
		svc.Subscribe(context.Background(), "an@example.com")

		out, err := svc.List(context.Background(), newsletter.ListSubscriptionsInput{Page: 0, Limit: 0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Page != 1 || out.Limit != 10 {
			t.Errorf("expected defaults page 1 limit 10, got %d/%d", out.Page, out.Limit)
		}
		if out.Total != 1 {
			t.Errorf("expected total 1, got %d", out.Total)
		}
	})
}
