package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS entries (
			id                   TEXT PRIMARY KEY,
			date                 DATE NOT NULL,
			activity             TEXT NOT NULL,
			category             TEXT NOT NULL,
			start_time           TIME NOT NULL,
			end_time             TIME NOT NULL,
			notes                TEXT NOT NULL DEFAULT '',
			created_at           DATETIME NOT NULL,
			updated_at           DATETIME NOT NULL,
			provenance_source    TEXT NOT NULL,
			provenance_client_id TEXT NOT NULL,
			provenance_time_zone TEXT NOT NULL,
			schema_version       TEXT NOT NULL,
			app_version          TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date);

		CREATE TABLE IF NOT EXISTS drafts (
			id       INTEGER PRIMARY KEY CHECK(id = 1),
			fields   TEXT NOT NULL,
			saved_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS settings (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
