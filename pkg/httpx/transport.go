// Package httpx assembles the outgoing HTTP transport used by the SDK.
package httpx

import "net/http"

// Middleware wraps a RoundTripper.
type Middleware func(http.RoundTripper) http.RoundTripper

// RoundTripperFunc adapts a function to http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// Chain wraps base with the middlewares. The first middleware is outermost,
// so it sees the request first. A nil base means http.DefaultTransport.
func Chain(base http.RoundTripper, mws ...Middleware) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	rt := base
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] == nil {
			continue
		}
		rt = mws[i](rt)
	}
	return rt
}

// NewClient returns an http.Client using the chained transport. No client
// timeout is set; requests run until the transport gives up or ctx ends.
func NewClient(mws ...Middleware) *http.Client {
	return &http.Client{Transport: Chain(nil, mws...)}
}
