// Package memory is an in-process sessionstore driver. Nothing survives the
// process; use it for tests and one-shot runs.
package memory

import (
	"bytes"
	"context"
	"sync"

	"github.com/aussiebroadwan/campus/pkg/sessionstore"
)

type Store struct {
	mu    sync.RWMutex
	token string
	user  []byte
}

var _ sessionstore.Store = (*Store)(nil)

func NewStore() *Store { return &Store{} }

func (s *Store) Token(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", sessionstore.ErrNotFound
	}
	return s.token, nil
}

func (s *Store) User(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil, sessionstore.ErrNotFound
	}
	return bytes.Clone(s.user), nil
}

func (s *Store) SetSession(_ context.Context, token string, user []byte) error {
	if err := sessionstore.ValidatePair(token, user); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.user = bytes.Clone(user)
	return nil
}

func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil
	return nil
}

func (s *Store) Ping(_ context.Context) error { return nil }
func (s *Store) Close() error                 { return nil }
