package db_test

import (
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"portal/backend/internal/db"

	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "portal-db-test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "test.db")
	database, err := db.Open(dbPath)
	require.NoError(t, err)
	require.NotNil(t, database)
	defer database.Close()

	// Verify table exists (basic check)
	var name string
	err = database.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='weekly_accomplishments'").Scan(&name)
	require.NoError(t, err)
	require.Equal(t, "weekly_accomplishments", name)
}

func TestBuildDSN(t *testing.T) {
	dsn := db.BuildDSN("test.db")
	require.Contains(t, dsn, "file:test.db")
	require.Contains(t, dsn, "journal_mode")
	require.Contains(t, dsn, "WAL")
	require.Contains(t, dsn, "foreign_keys")
	require.Contains(t, dsn, "busy_timeout")
	require.Contains(t, dsn, "30000")
}

// The composite unique index over (user_badge, start_week_date,
// end_week_date) is the backstop that turns a lost concurrent
// double-submit into a constraint error instead of a duplicate row.
func TestMigrate_NaturalKeyIndex(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "portal-db-test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	database, err := db.Open(filepath.Join(tempDir, "test.db"))
	require.NoError(t, err)
	defer database.Close()

	var name string
	err = database.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_wa_user_week'`).Scan(&name)
	require.NoError(t, err)
	require.Equal(t, "idx_wa_user_week", name)

	// Migrations must be idempotent.
	require.NoError(t, db.Migrate(database))
}
