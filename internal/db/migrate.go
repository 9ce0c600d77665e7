package db

import (
	"database/sql"
	"fmt"
	"strings"
)

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

var migrations = []string{
	// One row at most: the client holds a single credential at a time.
	`CREATE TABLE IF NOT EXISTS credentials (
		id         TEXT PRIMARY KEY CHECK(id = 'default'),
		token      TEXT NOT NULL,
		saved_at   TEXT NOT NULL
	)`,

	`ALTER TABLE credentials ADD COLUMN backend_url TEXT NOT NULL DEFAULT ''`,
}
