// Package storetest holds the behaviour every sessionstore driver must share.
package storetest

import (
	"testing"

	"github.com/aussiebroadwan/campus/pkg/sessionstore"
	"github.com/stretchr/testify/require"
)

// Factory returns a fresh, empty store. The suite closes it.
type Factory func(t *testing.T) sessionstore.Store

// Run exercises the Store contract against a driver.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	t.Run("empty store reports not found", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		_, err := s.Token(t.Context())
		require.ErrorIs(t, err, sessionstore.ErrNotFound)

		_, err = s.User(t.Context())
		require.ErrorIs(t, err, sessionstore.ErrNotFound)
	})

	t.Run("set session writes both entries", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		user := []byte(`{"fullName":"Ali","role":"student"}`)
		require.NoError(t, s.SetSession(t.Context(), "T", user))

		token, err := s.Token(t.Context())
		require.NoError(t, err)
		require.Equal(t, "T", token)

		got, err := s.User(t.Context())
		require.NoError(t, err)
		require.JSONEq(t, string(user), string(got))
	})

	t.Run("set session overwrites previous session", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		require.NoError(t, s.SetSession(t.Context(), "first", []byte(`{"fullName":"A"}`)))
		require.NoError(t, s.SetSession(t.Context(), "second", []byte(`{"fullName":"B"}`)))

		token, err := s.Token(t.Context())
		require.NoError(t, err)
		require.Equal(t, "second", token)

		got, err := s.User(t.Context())
		require.NoError(t, err)
		require.JSONEq(t, `{"fullName":"B"}`, string(got))
	})

	t.Run("incomplete pair is rejected and nothing is written", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		err := s.SetSession(t.Context(), "T", nil)
		require.ErrorIs(t, err, sessionstore.ErrIncompleteSession)

		err = s.SetSession(t.Context(), "", []byte(`{}`))
		require.ErrorIs(t, err, sessionstore.ErrIncompleteSession)

		_, err = s.Token(t.Context())
		require.ErrorIs(t, err, sessionstore.ErrNotFound)
		_, err = s.User(t.Context())
		require.ErrorIs(t, err, sessionstore.ErrNotFound)
	})

	t.Run("clear removes both entries and is idempotent", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		require.NoError(t, s.SetSession(t.Context(), "T", []byte(`{"role":"employee"}`)))
		require.NoError(t, s.Clear(t.Context()))
		require.NoError(t, s.Clear(t.Context()))

		_, err := s.Token(t.Context())
		require.ErrorIs(t, err, sessionstore.ErrNotFound)
		_, err = s.User(t.Context())
		require.ErrorIs(t, err, sessionstore.ErrNotFound)
	})

	t.Run("ping", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		require.NoError(t, s.Ping(t.Context()))
	})
}
