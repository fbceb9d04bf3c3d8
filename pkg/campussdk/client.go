package campussdk

import (
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aussiebroadwan/campus/pkg/sessionstore"
)

// BackendPort is fixed; only the host follows the page.
const BackendPort = "8080"

// SDKClient is a client for the university activities backend.
// Every endpoint method returns a result envelope and never an error.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	logger   *slog.Logger
	sessions *SessionManager
	metrics  *clientMetrics
}

// Option configures an SDKClient.
type Option func(*SDKClient)

// WithHTTPClient replaces the default HTTP client. The default has no
// timeout; cancellation comes from the caller's context only.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *SDKClient) {
		if hc != nil {
			c.HTTPClient = hc
		}
	}
}

// WithLogger sets the logger used for Gateway failures and session events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *SDKClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics registers request counters and latency histograms on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *SDKClient) {
		if reg != nil {
			c.metrics = newClientMetrics(reg)
		}
	}
}

// WithBaseURL overrides origin resolution. Intended for tests against an
// httptest server.
func WithBaseURL(baseURL string) Option {
	return func(c *SDKClient) {
		c.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// NewSDKClient creates a client whose origin is resolved from pageHost.
// Session state is read from and written to store.
func NewSDKClient(pageHost string, store sessionstore.Store, opts ...Option) *SDKClient {
	c := &SDKClient{
		BaseURL:    ResolveBaseURL(pageHost),
		HTTPClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.sessions = newSessionManager(store, c.logger)
	return c
}

// Sessions returns the component that owns the session lifecycle.
func (c *SDKClient) Sessions() *SessionManager {
	return c.sessions
}

// ResolveBaseURL returns http://localhost:8080/api for a loopback page host
// and http://<host>:8080/api otherwise. Any port on pageHost is ignored.
func ResolveBaseURL(pageHost string) string {
	host := strings.TrimSpace(pageHost)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.Trim(host, "[]")

	switch host {
	case "", "localhost", "127.0.0.1":
		host = "localhost"
	}

	return "http://" + net.JoinHostPort(host, BackendPort) + "/api"
}
