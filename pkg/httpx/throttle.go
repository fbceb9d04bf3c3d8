package httpx

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimitConfig bounds how fast the client issues requests.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate. Zero or less disables throttling.
	RequestsPerSecond float64
	// Burst allows short bursts above the sustained rate (minimum 1).
	Burst int
}

// NewLimiter returns nil when cfg disables throttling.
func NewLimiter(cfg RateLimitConfig) *rate.Limiter {
	if cfg.RequestsPerSecond <= 0 {
		return nil
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
}

// Throttle delays each request until limiter allows it. Waiting honours the
// request context; a cancelled wait fails the request like a transport error.
// A nil limiter makes Throttle a no-op.
func Throttle(limiter *rate.Limiter) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		if limiter == nil {
			return next
		}
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			if err := limiter.Wait(r.Context()); err != nil {
				return nil, fmt.Errorf("throttle: %w", err)
			}
			return next.RoundTrip(r)
		})
	}
}
