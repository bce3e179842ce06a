package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"portal/backend/internal/db"
	"portal/backend/internal/model"
	"portal/backend/internal/repository"
	"portal/backend/internal/snowflake"
)

var snowflakeOnce sync.Once

// NewTestDB opens a migrated sqlite database in a per-test temp dir.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(1); err != nil {
			panic(err)
		}
	})

	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	return database
}

// SeedUser inserts a user and returns its badge.
func SeedUser(t *testing.T, database *sql.DB, user model.User) int64 {
	t.Helper()

	if user.FirstName == "" {
		user.FirstName = "Test"
	}
	if user.LastName == "" {
		user.LastName = "User"
	}

	created, err := repository.NewUserRepository(database).Create(context.Background(), user)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return created.Badge
}

// SeedServer inserts a server and returns its ID.
func SeedServer(t *testing.T, database *sql.DB, server model.Server) int64 {
	t.Helper()

	created, err := repository.NewServerRepository(database).Create(context.Background(), server)
	if err != nil {
		t.Fatalf("seed server: %v", err)
	}
	return created.ID
}

// SeedAccomplishment inserts a weekly accomplishment and returns its ID.
func SeedAccomplishment(t *testing.T, database *sql.DB, a model.Accomplishment) int64 {
	t.Helper()

	if a.DateSubmitted == "" {
		a.DateSubmitted = a.StartWeekDate
	}
	if a.TaskStatus == "" {
		a.TaskStatus = "Submitted"
	}

	created, err := repository.NewAccomplishmentRepository(database).Insert(context.Background(), a)
	if err != nil {
		t.Fatalf("seed accomplishment: %v", err)
	}
	return created.ID
}
