package campussdk

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/campus/pkg/sessionstore"
	"github.com/aussiebroadwan/campus/pkg/sessionstore/drivers/memory"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestClient starts an httptest server for handler and returns a client
// pointed at it, backed by store.
func newTestClient(t *testing.T, store sessionstore.Store, handler http.HandlerFunc, opts ...Option) *SDKClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts = append([]Option{WithBaseURL(srv.URL), WithLogger(discardLogger())}, opts...)
	return NewSDKClient("localhost", store, opts...)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// jsonReply answers every request with the same status and body.
func jsonReply(status int, body any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, status, body)
	}
}

func htmlReply(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, "<html><body>Bad Gateway</body></html>")
	}
}

// signedInStore returns a memory store holding a session for user.
func signedInStore(t *testing.T, token string, user UserProfile) *memory.Store {
	t.Helper()

	raw, err := json.Marshal(user)
	require.NoError(t, err)

	store := memory.NewStore()
	require.NoError(t, store.SetSession(context.Background(), token, raw))
	return store
}

func requireSignedOut(t *testing.T, store sessionstore.Store) {
	t.Helper()

	_, err := store.Token(context.Background())
	require.ErrorIs(t, err, sessionstore.ErrNotFound)
	_, err = store.User(context.Background())
	require.ErrorIs(t, err, sessionstore.ErrNotFound)
}

// rawStore lets tests put the store in states the session manager never
// produces itself, and inject write failures.
type rawStore struct {
	mu       sync.Mutex
	entries  map[string][]byte
	writeErr error
}

var _ sessionstore.Store = (*rawStore)(nil)

func newRawStore() *rawStore {
	return &rawStore{entries: map[string][]byte{}}
}

func (s *rawStore) put(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
}

func (s *rawStore) Token(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.entries[sessionstore.KeyToken]
	if !ok {
		return "", sessionstore.ErrNotFound
	}
	return string(v), nil
}

func (s *rawStore) User(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.entries[sessionstore.KeyUser]
	if !ok {
		return nil, sessionstore.ErrNotFound
	}
	return v, nil
}

func (s *rawStore) SetSession(_ context.Context, token string, user []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	if err := sessionstore.ValidatePair(token, user); err != nil {
		return err
	}
	s.entries[sessionstore.KeyToken] = []byte(token)
	s.entries[sessionstore.KeyUser] = user
	return nil
}

func (s *rawStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	clear(s.entries)
	return nil
}

func (s *rawStore) Ping(_ context.Context) error { return nil }
func (s *rawStore) Close() error                 { return nil }

var errDiskFull = errors.New("disk full")
