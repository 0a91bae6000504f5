package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Running migrations again on an up-to-date database must succeed.
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAppStateTable(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='app_state'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "app_state", name)
}

func TestMigrate_AppStateKeyIsPrimaryKey(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO app_state (key, value, updated_at) VALUES ('k', 'v1', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO app_state (key, value, updated_at) VALUES ('k', 'v2', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err, "duplicate key must violate the primary key")
}

func TestMigrate_WALModeRequested(t *testing.T) {
	// In-memory SQLite reports "memory"; WAL only applies to file DBs.
	// This verifies OpenDB issues the PRAGMA without error.
	db := openTestDB(t)

	var mode string
	err := db.QueryRow(`PRAGMA journal_mode`).Scan(&mode)
	require.NoError(t, err)
	assert.Equal(t, "memory", mode)
}
