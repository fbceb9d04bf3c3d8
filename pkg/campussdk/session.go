package campussdk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/campus/pkg/sessionstore"
)

// Session is the client-held proof of authentication plus the cached
// profile. The zero value is the signed-out session.
type Session struct {
	Token string
	User  *UserProfile

	// ExpiresAt is read from the token's exp claim without verification.
	// Zero when the token carries no expiry or is not a JWT.
	ExpiresAt time.Time
}

// Authenticated reports whether the session carries a token and a profile.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

// Expired reports whether the token's advertised expiry has passed. The
// server remains the authority; this is only used for display.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// SessionManager owns the session lifecycle. It is the only component that
// writes to the session store: Begin on login, End on logout or expiry.
type SessionManager struct {
	store  sessionstore.Store
	logger *slog.Logger
}

func newSessionManager(store sessionstore.Store, logger *slog.Logger) *SessionManager {
	return &SessionManager{store: store, logger: logger}
}

// Current loads the session from the store. A stored user without a token
// is reported as signed out.
func (m *SessionManager) Current(ctx context.Context) (Session, error) {
	token, err := m.store.Token(ctx)
	if errors.Is(err, sessionstore.ErrNotFound) {
		return Session{}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("failed to read token: %w", err)
	}

	raw, err := m.store.User(ctx)
	if errors.Is(err, sessionstore.ErrNotFound) {
		return Session{}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("failed to read user: %w", err)
	}

	var user UserProfile
	if err := json.Unmarshal(raw, &user); err != nil {
		return Session{}, fmt.Errorf("failed to decode stored user: %w", err)
	}

	return Session{
		Token:     token,
		User:      &user,
		ExpiresAt: tokenExpiry(token),
	}, nil
}

// Begin stores token and user as one write. Nothing is written if either
// is missing. A decoded profile is stored as received.
func (m *SessionManager) Begin(ctx context.Context, token string, user *UserProfile) error {
	if user == nil {
		return sessionstore.ErrIncompleteSession
	}

	raw := user.Raw()
	if raw == nil {
		encoded, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("failed to encode user: %w", err)
		}
		raw = encoded
	}

	if err := m.store.SetSession(ctx, token, raw); err != nil {
		return err
	}

	m.logger.InfoContext(ctx, "Session started",
		"username", user.Username,
		"role", user.Role,
	)
	return nil
}

// End removes both entries. Safe to call when already signed out.
func (m *SessionManager) End(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	m.logger.DebugContext(ctx, "Session ended")
	return nil
}

// Require returns the current session if it belongs to a user with the
// given role, and ErrNotSignedIn otherwise.
func (m *SessionManager) Require(ctx context.Context, role Role) (Session, error) {
	s, err := m.Current(ctx)
	if err != nil {
		return Session{}, err
	}
	if !s.Authenticated() || s.User.Role != role {
		return Session{}, ErrNotSignedIn
	}
	return s, nil
}

func (m *SessionManager) token(ctx context.Context) (string, error) {
	return m.store.Token(ctx)
}
