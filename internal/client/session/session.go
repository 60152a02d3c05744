// Package session persists the client's credentials and preferences in a
// local SQLite database.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/apetrenko/contentgen/internal/client/migrations"
)

const (
	keyAccessToken = "access_token"
	keyDarkMode    = "dark_mode"
)

// Store is a small durable key-value store. The access token is opaque to the
// client; it is never parsed or validated locally.
type Store struct {
	db *sql.DB
}

// Open creates or opens the settings database at path and applies migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening settings db: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating settings db: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Token returns the stored access token, if any.
func (s *Store) Token(ctx context.Context) (string, bool) {
	value, err := s.get(ctx, keyAccessToken)
	if err != nil || value == "" {
		return "", false
	}
	return value, true
}

func (s *Store) SetToken(ctx context.Context, token string) error {
	return s.set(ctx, keyAccessToken, token)
}

// Clear removes the stored token. Preferences survive logout.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, keyAccessToken)
	return err
}

func (s *Store) DarkMode(ctx context.Context) bool {
	value, err := s.get(ctx, keyDarkMode)
	return err == nil && value == "1"
}

func (s *Store) SetDarkMode(ctx context.Context, on bool) error {
	value := "0"
	if on {
		value = "1"
	}
	return s.set(ctx, keyDarkMode, value)
}

func (s *Store) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}

func (s *Store) set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}
