// Package sessionstore defines the durable key/value storage that holds a
// client's session: the bearer token and the cached user profile.
//
// The two entries are persisted independently but are only ever written or
// removed together. Drivers live under drivers/ and must make SetSession and
// Clear atomic over the pair so a reader never observes one entry without the
// other after a completed write.
package sessionstore

import (
	"context"
	"errors"
)

// Entry keys. They match the names the web front end used in local storage so
// exported stores stay recognisable.
const (
	KeyToken = "authToken"
	KeyUser  = "currentUser"
)

var (
	// ErrNotFound is returned when the requested entry is not stored.
	ErrNotFound = errors.New("sessionstore: not found")

	// ErrIncompleteSession is returned by SetSession when either half of the
	// pair is missing.
	ErrIncompleteSession = errors.New("sessionstore: token and user are both required")
)

// Store is implemented by every driver.
type Store interface {
	// Token returns the stored bearer token or ErrNotFound.
	Token(ctx context.Context) (string, error)

	// User returns the stored, serialized user profile or ErrNotFound.
	User(ctx context.Context) ([]byte, error)

	// SetSession writes the token and the serialized profile as one unit.
	SetSession(ctx context.Context, token string, user []byte) error

	// Clear removes both entries. Clearing an empty store is not an error.
	Clear(ctx context.Context) error

	// Ping verifies the backing storage is reachable.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

// ValidatePair reports whether token and user form a complete session.
func ValidatePair(token string, user []byte) error {
	if token == "" || len(user) == 0 {
		return ErrIncompleteSession
	}
	return nil
}

// Keys returns both entry keys with the given prefix applied.
func Keys(prefix string) (token, user string) {
	return prefix + KeyToken, prefix + KeyUser
}
