package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteStateRepo implements StateRepo using a SQLite database.
type SQLiteStateRepo struct {
	db *sql.DB
}

// NewSQLiteStateRepo creates a new SQLiteStateRepo.
func NewSQLiteStateRepo(db *sql.DB) *SQLiteStateRepo {
	return &SQLiteStateRepo{db: db}
}

func (r *SQLiteStateRepo) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM app_state WHERE key = ?`
	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("state key %q: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("reading state key %q: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteStateRepo) Put(ctx context.Context, key, value string) error {
	query := `INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, key, value, nowUTC()); err != nil {
		return fmt.Errorf("writing state key %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteStateRepo) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM app_state WHERE key = ?`
	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("deleting state key %q: %w", key, err)
	}
	return nil
}
