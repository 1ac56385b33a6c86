package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS groups (
			id   INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE
		);

		CREATE TABLE IF NOT EXISTS entries (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			group_id    INTEGER NOT NULL REFERENCES groups(id),
			date        DATE NOT NULL,
			start_time  TIME,
			end_time    TIME,
			location    TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL,
			notes       TEXT NOT NULL DEFAULT '',
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
			CHECK (start_time IS NULL OR end_time > start_time)
		);

		CREATE TABLE IF NOT EXISTS daily_cards (
			group_id  INTEGER NOT NULL REFERENCES groups(id),
			date      DATE NOT NULL,
			breakfast TEXT NOT NULL DEFAULT '',
			lunch     TEXT NOT NULL DEFAULT '',
			dinner    TEXT NOT NULL DEFAULT '',
			lodging   TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (group_id, date)
		);

		CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date);
		CREATE INDEX IF NOT EXISTS idx_entries_group_date ON entries(group_id, date);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	return nil
}
