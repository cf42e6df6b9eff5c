package middleware

import (
	"github.com/nghia89/landingpage-wedding-sub000/config"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers with their dependencies.
type Middleware struct {
	l           log.Logger
	jwtSecret   string
	rateLimiter *rateLimiter
	config      *config.Config
}

// New creates the middleware bag.
func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:           l,
		jwtSecret:   cfg.Auth.JWTSecret,
		rateLimiter: newRateLimiter(cfg.RateLimit.RequestsPerMin),
		config:      cfg,
	}
}
