package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations run in order on every open. Statements must be safe to re-run.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		code TEXT,
		name TEXT NOT NULL,
		department TEXT NOT NULL,
		owner_name TEXT NOT NULL,
		fiscal_year INTEGER NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'on_track',
		progress INTEGER NOT NULL DEFAULT 0,
		budget INTEGER NOT NULL DEFAULT 0,
		objective TEXT,
		target_group TEXT,
		outcomes TEXT,
		risks TEXT,
		mitigation TEXT,
		timeline_note TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_fiscal_year ON projects(fiscal_year)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_code ON projects(code) WHERE code IS NOT NULL`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
