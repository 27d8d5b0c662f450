// Package store persists the client's process-wide state: the cart
// identifier, the admin profile and the chosen language. It is the CLI
// equivalent of the browser's local storage, a single SQLite file.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/elyvra/storefront/internal/domain"
)

const (
	keyCartID       = "cart_id"
	keyAdminProfile = "admin_profile"
	keyLanguage     = "language"
)

type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open opens (creating if needed) the local state database
func Open(path string, logger *zap.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS local_state (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create state schema: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close releases the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM local_state WHERE key = $1`

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		s.logger.Error("Failed to read local state", zap.String("key", key), zap.Error(err))
		return "", false, err
	}
	return value, true, nil
}

func (s *Store) set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO local_state (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT(key) DO UPDATE SET value = $2, updated_at = $3
	`

	_, err := s.db.ExecContext(ctx, query, key, value, time.Now().UTC())
	if err != nil {
		s.logger.Error("Failed to write local state", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (s *Store) clear(ctx context.Context, key string) error {
	query := `DELETE FROM local_state WHERE key = $1`

	_, err := s.db.ExecContext(ctx, query, key)
	if err != nil {
		s.logger.Error("Failed to clear local state", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// CartID returns the persisted cart identifier, or an empty string when
// no cart session has been created yet
func (s *Store) CartID(ctx context.Context) (string, error) {
	value, _, err := s.get(ctx, keyCartID)
	return value, err
}

// SaveCartID persists the server-issued cart identifier
func (s *Store) SaveCartID(ctx context.Context, id string) error {
	return s.set(ctx, keyCartID, id)
}

// ClearCartID removes the persisted cart identifier
func (s *Store) ClearCartID(ctx context.Context) error {
	return s.clear(ctx, keyCartID)
}

// AdminProfile returns the persisted admin profile, or nil when nobody
// is logged in. The profile is stored verbatim as the backend returned
// it; its presence alone gates the management views.
func (s *Store) AdminProfile(ctx context.Context) (*domain.Admin, error) {
	value, ok, err := s.get(ctx, keyAdminProfile)
	if err != nil || !ok {
		return nil, err
	}

	var admin domain.Admin
	if err := json.Unmarshal([]byte(value), &admin); err != nil {
		s.logger.Warn("Discarding unreadable admin profile", zap.Error(err))
		return nil, nil
	}
	return &admin, nil
}

// SaveAdminProfile persists the admin profile verbatim
func (s *Store) SaveAdminProfile(ctx context.Context, admin *domain.Admin) error {
	data, err := json.Marshal(admin)
	if err != nil {
		return fmt.Errorf("failed to marshal admin profile: %w", err)
	}
	return s.set(ctx, keyAdminProfile, string(data))
}

// ClearAdminProfile removes the persisted admin profile
func (s *Store) ClearAdminProfile(ctx context.Context) error {
	return s.clear(ctx, keyAdminProfile)
}

// Language returns the persisted UI language, defaulting to English
func (s *Store) Language(ctx context.Context) (domain.Language, error) {
	value, ok, err := s.get(ctx, keyLanguage)
	if err != nil {
		return domain.LanguageEN, err
	}
	if !ok || !domain.Language(value).IsValid() {
		return domain.LanguageEN, nil
	}
	return domain.Language(value), nil
}

// SaveLanguage persists the UI language
func (s *Store) SaveLanguage(ctx context.Context, lang domain.Language) error {
	return s.set(ctx, keyLanguage, string(lang))
}
