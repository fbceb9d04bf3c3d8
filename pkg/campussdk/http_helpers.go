package campussdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/campus/pkg/sessionstore"
)

// url builds a complete URL by appending the path to the base URL.
func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// Do is the Gateway: it issues one request against the backend and returns
// the raw JSON body of a 2xx response. Every failure is an *Error.
//
// A 401 whose message mentions the token ends the local session before
// ErrSessionExpired is returned. There are no retries.
func (c *SDKClient) Do(
	ctx context.Context,
	method, path string,
	body any,
	headers map[string]string,
) (json.RawMessage, error) {
	start := time.Now()
	raw, err := c.do(ctx, method, path, body, headers)

	c.metrics.observe(method, err, time.Since(start))
	if err != nil {
		c.logger.WarnContext(ctx, "API request failed",
			"method", method,
			"path", path,
			"kind", KindOf(err),
			"error", err,
		)
	}

	return raw, err
}

func (c *SDKClient) do(
	ctx context.Context,
	method, path string,
	body any,
	headers map[string]string,
) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	// A missing token is normal; a broken store is logged and the request
	// goes out anonymously.
	token, err := c.sessions.token(ctx)
	switch {
	case err == nil:
		req.Header.Set("Authorization", "Bearer "+token)
	case !errors.Is(err, sessionstore.ErrNotFound):
		c.logger.WarnContext(ctx, "Failed to read session token", "error", err)
	}

	// Set custom headers
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, unreachable(err)
	}
	defer resp.Body.Close()

	if !isJSON(resp.Header.Get("Content-Type")) {
		// Drain so the connection can be reused; the body is never parsed.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, unavailable(resp.StatusCode, fmt.Errorf("unexpected content type %q", resp.Header.Get("Content-Type")))
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, unreachable(fmt.Errorf("failed to read response body: %w", err))
	}
	if !json.Valid(bodyBytes) {
		return nil, unavailable(resp.StatusCode, errors.New("response body is not valid JSON"))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.parseErrorResponse(ctx, resp.StatusCode, bodyBytes)
	}

	return bodyBytes, nil
}

// parseErrorResponse classifies a non-2xx JSON response.
func (c *SDKClient) parseErrorResponse(ctx context.Context, status int, bodyBytes []byte) *Error {
	var eb errorBody
	// Bodies that are valid JSON but not an object (a bare string, an
	// array) carry no message; the fallback applies.
	_ = json.Unmarshal(bodyBytes, &eb)
	message := eb.text()

	if status == http.StatusUnauthorized && isTokenExpiry(message) {
		if err := c.sessions.End(ctx); err != nil {
			c.logger.ErrorContext(ctx, "Failed to clear expired session", "error", err)
		}
		return &Error{
			Kind:       KindSessionExpired,
			StatusCode: status,
			Message:    MessageSessionExpired,
			Err:        fmt.Errorf("HTTP %d: %s", status, message),
		}
	}

	return requestFailed(status, message)
}

func isJSON(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "application/json")
}
