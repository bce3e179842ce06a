package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx so repositories can run
// inside or outside a transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// IsUniqueViolation reports whether err is a sqlite UNIQUE constraint
// failure, e.g. a concurrent insert losing the natural-key race.
func IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
