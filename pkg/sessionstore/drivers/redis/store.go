// Package redis is a sessionstore driver backed by Redis, for setups where
// several processes on one host share a session.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/campus/pkg/sessionstore"
	"github.com/redis/go-redis/v9"
)

const (
	// DefaultPrefix namespaces the session keys.
	DefaultPrefix = "campus:"

	defaultTimeout = 5 * time.Second
)

type Store struct {
	client    redis.UniversalClient
	tokenKey  string
	userKey   string
	ownClient bool
}

var _ sessionstore.Store = (*Store)(nil)

// NewStore wraps an existing client. The caller keeps ownership of client.
func NewStore(client redis.UniversalClient, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	tokenKey, userKey := sessionstore.Keys(prefix)
	return &Store{
		client:   client,
		tokenKey: tokenKey,
		userKey:  userKey,
	}
}

// Connect parses a redis:// URL, verifies connectivity with a ping and
// returns a Store that closes the client on Close.
func Connect(ctx context.Context, url, prefix string) (*Store, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	s := NewStore(client, prefix)
	s.ownClient = true
	return s, nil
}

func (s *Store) Token(ctx context.Context) (string, error) {
	return s.get(ctx, s.tokenKey)
}

func (s *Store) User(ctx context.Context) ([]byte, error) {
	value, err := s.get(ctx, s.userKey)
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

// SetSession writes both keys with a single MSET, which Redis applies atomically.
func (s *Store) SetSession(ctx context.Context, token string, user []byte) error {
	if err := sessionstore.ValidatePair(token, user); err != nil {
		return err
	}
	if err := s.client.MSet(ctx, s.tokenKey, token, s.userKey, string(user)).Err(); err != nil {
		return fmt.Errorf("redis mset: %w", err)
	}
	return nil
}

// Clear deletes both keys with a single DEL.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.tokenKey, s.userKey).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	if !s.ownClient {
		return nil
	}
	return s.client.Close()
}

func (s *Store) get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", sessionstore.ErrNotFound
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	return value, nil
}
