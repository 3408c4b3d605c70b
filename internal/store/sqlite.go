package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Registers the "sqlite" driver (pure Go).
	_ "modernc.org/sqlite"

	"github.com/koaskas/life-counter-bot/internal/domain"
	"github.com/koaskas/life-counter-bot/internal/registry"
)

// SQLite implements registry.Registry on an embedded SQLite database, giving
// reference timestamps that survive process restarts.
type SQLite struct{ db *sql.DB }

// Open opens (or creates) the database at path, applies PRAGMAs, runs the
// embedded migrations, and returns a durable registry.
func Open(ctx context.Context, path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Single-writer engine; one connection avoids SQLITE_BUSY churn.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := applyPragmas(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return &SQLite{db: db}, nil
}

func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// SetReference inserts or overwrites the reference timestamp for chatID.
func (s *SQLite) SetReference(ctx context.Context, chatID int64, birthAt time.Time) error {
	now := time.Now().UTC().Unix()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (chat_id, birth_at, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(chat_id) DO UPDATE SET
			birth_at   = excluded.birth_at,
			updated_at = excluded.updated_at`,
		chatID, birthAt.UTC().Unix(), now, now,
	)
	return err
}

// GetReference returns the stored reference for chatID in UTC, or
// registry.ErrNotRegistered.
func (s *SQLite) GetReference(ctx context.Context, chatID int64) (time.Time, error) {
	var unix int64
	err := s.db.QueryRowContext(ctx,
		`SELECT birth_at FROM users WHERE chat_id = ?`, chatID,
	).Scan(&unix)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, registry.ErrNotRegistered
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(unix, 0).UTC(), nil
}

// All returns every registered user, ordered by chat id. Used at startup to
// re-install daily jobs after a restart.
func (s *SQLite) All(ctx context.Context) ([]domain.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT chat_id, birth_at FROM users ORDER BY chat_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.User
	for rows.Next() {
		var (
			chatID int64
			unix   int64
		)
		if err := rows.Scan(&chatID, &unix); err != nil {
			return nil, err
		}
		res = append(res, domain.User{ChatID: chatID, BirthAt: time.Unix(unix, 0).UTC()})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
