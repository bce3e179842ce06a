package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT). Users keep their
// HR badge number as the primary key.
const baseSchema = `
CREATE TABLE IF NOT EXISTS users (
  badge INTEGER PRIMARY KEY,
  email TEXT,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  position TEXT,
  read_only INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS servers (
  id INTEGER PRIMARY KEY,
  hostname TEXT NOT NULL,
  ip_address TEXT NOT NULL,
  os TEXT NOT NULL,
  status TEXT NOT NULL,
  environment TEXT NOT NULL,
  role TEXT NOT NULL,
  location TEXT NOT NULL,
  folder TEXT,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_servers_hostname ON servers(hostname);

CREATE TABLE IF NOT EXISTS projects (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT NOT NULL,
  status TEXT NOT NULL,
  github_url TEXT,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS applications (
  id INTEGER PRIMARY KEY,
  owner_badge INTEGER,
  app_name TEXT NOT NULL,
  app_description TEXT,
  status TEXT,
  dev_server_id INTEGER,
  prod_server_id INTEGER,
  dev_domain TEXT,
  last_updated TEXT,
  last_updated_by TEXT,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL,
  FOREIGN KEY (owner_badge) REFERENCES users(badge) ON DELETE SET NULL,
  FOREIGN KEY (dev_server_id) REFERENCES servers(id) ON DELETE SET NULL,
  FOREIGN KEY (prod_server_id) REFERENCES servers(id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS idx_applications_owner ON applications(owner_badge);

CREATE TABLE IF NOT EXISTS weekly_accomplishments (
  id INTEGER PRIMARY KEY,
  user_badge INTEGER NOT NULL,
  application_id INTEGER,
  accomplishments TEXT NOT NULL DEFAULT '',
  start_week_date TEXT NOT NULL,
  end_week_date TEXT NOT NULL,
  date_submitted TEXT NOT NULL,
  task_status TEXT NOT NULL,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL,
  FOREIGN KEY (user_badge) REFERENCES users(badge) ON DELETE CASCADE,
  FOREIGN KEY (application_id) REFERENCES applications(id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS idx_wa_user_badge ON weekly_accomplishments(user_badge);

CREATE TABLE IF NOT EXISTS settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: composite unique index over the accomplishment natural
	// key. This is the correctness backstop for concurrent double-submits
	// of the same week: the losing writer hits the constraint instead of
	// inserting a duplicate.
	if _, err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_wa_user_week
		ON weekly_accomplishments(user_badge, start_week_date, end_week_date)`); err != nil {
		return fmt.Errorf("create idx_wa_user_week: %w", err)
	}

	// Migration 2: index for week-window queries used by the summarizer.
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_wa_week
		ON weekly_accomplishments(start_week_date, end_week_date)`); err != nil {
		return fmt.Errorf("create idx_wa_week: %w", err)
	}

	// Migration 3: add folder column to servers if the table predates it.
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM pragma_table_info('servers') WHERE name = 'folder'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("check folder column: %w", err)
	}
	if count == 0 {
		if _, err := db.Exec(`ALTER TABLE servers ADD COLUMN folder TEXT`); err != nil {
			return fmt.Errorf("add folder column: %w", err)
		}
	}

	// Migration 4: add github_url column to projects if missing.
	err = db.QueryRow(`
		SELECT COUNT(*) FROM pragma_table_info('projects') WHERE name = 'github_url'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("check github_url column: %w", err)
	}
	if count == 0 {
		if _, err := db.Exec(`ALTER TABLE projects ADD COLUMN github_url TEXT`); err != nil {
			return fmt.Errorf("add github_url column: %w", err)
		}
	}

	return nil
}
