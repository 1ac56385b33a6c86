// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"tourboard/internal/schedule"
)

// SQLite implements schedule.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// ListGroups returns all travel groups ordered by id.
func (s *SQLite) ListGroups(ctx context.Context) ([]schedule.Group, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM groups ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying groups: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var groups []schedule.Group
	for rows.Next() {
		var g schedule.Group
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("scanning group: %w", err)
		}
		groups = append(groups, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating groups: %w", err)
	}

	return groups, nil
}

// CreateGroup adds a new group and fills in its ID.
func (s *SQLite) CreateGroup(ctx context.Context, g *schedule.Group) error {
	result, err := s.db.ExecContext(ctx, `INSERT INTO groups (name) VALUES (?)`, g.Name)
	if err != nil {
		return fmt.Errorf("inserting group: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	g.ID = id

	return nil
}

// CreateEntry adds a new entry to the repository.
func (s *SQLite) CreateEntry(ctx context.Context, e *schedule.Entry) error {
	if err := schedule.ValidateWindow(e.Start, e.End); err != nil {
		return err
	}

	query := `
		INSERT INTO entries (
			group_id, date, start_time, end_time, location, description, notes, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		e.GroupID,
		e.Date.Format("2006-01-02"),
		nullable(e.Start),
		nullable(e.End),
		e.Location,
		e.Description,
		e.Notes,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	e.ID = id

	return nil
}

// ListEntries returns all entries with dates in [start, end] inclusive,
// unscheduled entries included. This is the complete snapshot the index
// rebuilds from.
func (s *SQLite) ListEntries(ctx context.Context, start, end time.Time) ([]*schedule.Entry, error) {
	query := `
		SELECT id, group_id, date, start_time, end_time, location, description, notes, created_at
		FROM entries
		WHERE date >= ? AND date <= ?
		ORDER BY date, group_id, id
	`

	rows, err := s.db.QueryContext(ctx, query, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*schedule.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}

	return entries, nil
}

// GetEntry retrieves an entry by ID. Returns nil if not found.
func (s *SQLite) GetEntry(ctx context.Context, id int64) (*schedule.Entry, error) {
	query := `
		SELECT id, group_id, date, start_time, end_time, location, description, notes, created_at
		FROM entries
		WHERE id = ?
	`

	row := s.db.QueryRowContext(ctx, query, id)
	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// UpdateEntryTimes persists a finalized time window for one entry. The
// window is re-validated here; the store does not trust client-side
// clamping.
func (s *SQLite) UpdateEntryTimes(ctx context.Context, u schedule.TimeUpdate) error {
	if err := schedule.ValidateWindow(u.Start, u.End); err != nil {
		return err
	}

	query := `UPDATE entries SET start_time = ?, end_time = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, nullable(u.Start), nullable(u.End), u.ID)
	if err != nil {
		return fmt.Errorf("updating entry times: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: id %d", schedule.ErrEntryNotFound, u.ID)
	}

	return nil
}

// GetDailyCard returns the card for a group and date, or nil if no card
// exists for that date.
func (s *SQLite) GetDailyCard(ctx context.Context, groupID int64, date time.Time) (*schedule.DailyCard, error) {
	query := `
		SELECT group_id, date, breakfast, lunch, dinner, lodging
		FROM daily_cards
		WHERE group_id = ? AND date = ?
	`

	card, err := scanCard(s.db.QueryRowContext(ctx, query, groupID, date.Format("2006-01-02")))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return card, nil
}

// ListDailyCards returns all cards with dates in [start, end] inclusive.
func (s *SQLite) ListDailyCards(ctx context.Context, start, end time.Time) ([]*schedule.DailyCard, error) {
	query := `
		SELECT group_id, date, breakfast, lunch, dinner, lodging
		FROM daily_cards
		WHERE date >= ? AND date <= ?
		ORDER BY date, group_id
	`

	rows, err := s.db.QueryContext(ctx, query, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("querying daily cards: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var cards []*schedule.DailyCard
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily cards: %w", err)
	}

	return cards, nil
}

// PutDailyCard inserts or replaces the card for its group and date.
func (s *SQLite) PutDailyCard(ctx context.Context, card *schedule.DailyCard) error {
	query := `
		INSERT INTO daily_cards (group_id, date, breakfast, lunch, dinner, lodging)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (group_id, date) DO UPDATE SET
			breakfast = excluded.breakfast,
			lunch     = excluded.lunch,
			dinner    = excluded.dinner,
			lodging   = excluded.lodging
	`

	_, err := s.db.ExecContext(ctx, query,
		card.GroupID,
		card.Date.Format("2006-01-02"),
		card.Breakfast,
		card.Lunch,
		card.Dinner,
		card.Lodging,
	)
	if err != nil {
		return fmt.Errorf("upserting daily card: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*schedule.Entry, error) {
	var (
		e         schedule.Entry
		date      string
		start     sql.NullString
		end       sql.NullString
		createdAt string
	)

	err := row.Scan(
		&e.ID,
		&e.GroupID,
		&date,
		&start,
		&end,
		&e.Location,
		&e.Description,
		&e.Notes,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning entry: %w", err)
	}

	e.Date, err = parseDate(date)
	if err != nil {
		return nil, fmt.Errorf("parsing entry date: %w", err)
	}

	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}

	e.Start = start.String
	e.End = end.String

	return &e, nil
}

func scanCard(row scanner) (*schedule.DailyCard, error) {
	var (
		card schedule.DailyCard
		date string
	)

	err := row.Scan(
		&card.GroupID,
		&date,
		&card.Breakfast,
		&card.Lunch,
		&card.Dinner,
		&card.Lodging,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning daily card: %w", err)
	}

	card.Date, err = parseDate(date)
	if err != nil {
		return nil, fmt.Errorf("parsing card date: %w", err)
	}

	return &card, nil
}

// parseDate parses dates stored as YYYY-MM-DD, tolerating a full
// timestamp if one sneaks in.
func parseDate(s string) (time.Time, error) {
	if len(s) >= 10 {
		s = s[:10]
	}
	return time.Parse("2006-01-02", s)
}

// nullable maps empty time strings to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
