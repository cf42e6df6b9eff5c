package middleware

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgErrors "github.com/nghia89/landingpage-wedding-sub000/pkg/errors"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/response"
)

// RateLimit throttles the public form endpoints per client IP. Admin traffic
// behind Auth is not limited here.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := extractIP(c.Request)
		if !m.rateLimiter.Allow(ip) {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", ip)
			response.Error(c, pkgErrors.NewHTTPError(http.StatusTooManyRequests, "Too many requests. Please slow down."))
			c.Abort()
			return
		}
		c.Next()
	}
}

// extractIP extracts the client IP from the request.
func extractIP(r *http.Request) string {
	// X-Forwarded-For comes first (proxy/load balancer)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, _ := net.SplitHostPort(r.RemoteAddr)
	return ip
}

// rateLimiter keeps one token bucket per client IP with auto-cleanup.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 120
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // max unique clients tracked
			nil,           // no eviction callback
			time.Minute*5, // TTL
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
