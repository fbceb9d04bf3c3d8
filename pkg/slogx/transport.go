package slogx

import (
	"crypto/rand"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/aussiebroadwan/campus/pkg/httpx"
)

// RequestIDHeader carries the per-request id to the backend.
const RequestIDHeader = "X-Request-ID"

var (
	entropyOnce sync.Once
	entropyMu   sync.Mutex
	entropy     *ulid.MonotonicEntropy
)

// NewRequestID returns a lexicographically sortable ULID string.
func NewRequestID() string {
	entropyOnce.Do(func() {
		entropy = ulid.Monotonic(rand.Reader, 0)
	})

	entropyMu.Lock()
	defer entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), entropy).String()
}

// Transport logs every outgoing request at debug level and tags it with a
// request id. A nil base falls back to the logger attached to the request
// context. Headers other than the request id are never logged.
func Transport(base *slog.Logger) httpx.Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		if next == nil {
			next = http.DefaultTransport
		}

		return httpx.RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			start := time.Now()

			reqID := r.Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = NewRequestID()
				r = r.Clone(r.Context())
				r.Header.Set(RequestIDHeader, reqID)
			}

			logger := base
			if logger == nil {
				logger = FromContext(r.Context())
			}
			logger = logger.With(
				"req_id", reqID,
				"method", r.Method,
				"host", r.URL.Host,
				"path", r.URL.Path,
			)

			resp, err := next.RoundTrip(r)
			duration := time.Since(start).Milliseconds()
			if err != nil {
				logger.Debug("http_request_failed", "duration_ms", duration, "error", err)
				return nil, err
			}

			logger.Debug("http_request",
				"status", resp.StatusCode,
				"duration_ms", duration,
				"content_type", resp.Header.Get("Content-Type"),
			)
			return resp, nil
		})
	}
}
