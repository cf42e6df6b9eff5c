package settings

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
)

const cacheKey = "site"

// Service reads and writes the site settings. Reads hit every page load, so
// the current row is kept in an expiring cache and invalidated on write.
type Service interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, input UpdateSettingsInput) (Settings, error)
}

// Store is the persistence interface the service depends on.
type Store interface {
	Get(ctx context.Context) (Settings, error)
	Upsert(ctx context.Context, s Settings) (Settings, error)
}

type service struct {
	store Store
	cache *expirable.LRU[string, Settings]
	l     log.Logger
}

func NewService(store Store, cacheTTL time.Duration, l log.Logger) Service {
	return &service{
		store: store,
		cache: expirable.NewLRU[string, Settings](1, nil, cacheTTL),
		l:     l,
	}
}

func (s *service) Get(ctx context.Context) (Settings, error) {
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached, nil
	}

	out, err := s.store.Get(ctx)
	if err != nil {
		s.l.Errorf(ctx, "settings.Get: %v", err)
		return Settings{}, err
	}
	s.cache.Add(cacheKey, out)
	return out, nil
}

func (s *service) Update(ctx context.Context, input UpdateSettingsInput) (Settings, error) {
	existing, err := s.store.Get(ctx)
	if err != nil {
		s.l.Errorf(ctx, "settings.Update Get: %v", err)
		return Settings{}, err
	}

	existing.SiteName = coalesce(input.SiteName, existing.SiteName)
	existing.Tagline = coalesce(input.Tagline, existing.Tagline)
	existing.Phone = coalesce(input.Phone, existing.Phone)
	existing.Email = coalesce(input.Email, existing.Email)
	existing.Address = coalesce(input.Address, existing.Address)
	existing.FacebookURL = coalesce(input.FacebookURL, existing.FacebookURL)
	existing.InstagramURL = coalesce(input.InstagramURL, existing.InstagramURL)
	existing.WorkingHours = coalesce(input.WorkingHours, existing.WorkingHours)

	out, err := s.store.Upsert(ctx, existing)
	if err != nil {
		s.l.Errorf(ctx, "settings.Update Upsert: %v", err)
		return Settings{}, err
	}

	// Drop the stale copy so the next read sees the new values immediately.
	s.cache.Remove(cacheKey)
	return out, nil
}

func coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
