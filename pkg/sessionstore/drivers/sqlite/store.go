// Package sqlite is the durable, file-backed sessionstore driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/campus/pkg/sessionstore"
	_ "modernc.org/sqlite"
)

const (
	upsertEntry = `INSERT INTO session_entries (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	selectEntry   = `SELECT value FROM session_entries WHERE key = ?`
	deleteEntries = `DELETE FROM session_entries WHERE key IN (?, ?)`
)

type Store struct {
	db  *sql.DB
	dsn string
}

var _ sessionstore.Store = (*Store)(nil)

// NewStore opens (or creates) the database at dsn. Call ApplyMigrations
// before first use.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// A single connection serialises writers, sqlite allows only one anyway
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Token(ctx context.Context) (string, error) {
	value, err := s.get(ctx, sessionstore.KeyToken)
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *Store) User(ctx context.Context) ([]byte, error) {
	value, err := s.get(ctx, sessionstore.KeyUser)
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

// SetSession upserts both entries inside one transaction.
func (s *Store) SetSession(ctx context.Context, token string, user []byte) error {
	if err := sessionstore.ValidatePair(token, user); err != nil {
		return err
	}

	now := time.Now().UTC()
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, upsertEntry, sessionstore.KeyToken, token, now); err != nil {
			return fmt.Errorf("write token: %w", err)
		}
		if _, err := tx.ExecContext(ctx, upsertEntry, sessionstore.KeyUser, string(user), now); err != nil {
			return fmt.Errorf("write user: %w", err)
		}
		return nil
	})
}

// Clear deletes both entries inside one transaction.
func (s *Store) Clear(ctx context.Context) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, deleteEntries, sessionstore.KeyToken, sessionstore.KeyUser)
		return err
	})
}

func (s *Store) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, selectEntry, key).Scan(&value)
	if err != nil {
		return "", mapNotFound(err)
	}
	return value, nil
}

// withTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return sessionstore.ErrNotFound
	}
	return err
}
