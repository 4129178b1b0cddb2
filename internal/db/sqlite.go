// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/microdiary/internal/diary"
)

const settingClientID = "client_id"

// SQLite implements diary.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

var _ diary.Repository = (*SQLite)(nil)

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

const entryColumns = `
	id, date, activity, category, start_time, end_time, notes,
	created_at, updated_at, provenance_source, provenance_client_id,
	provenance_time_zone, schema_version, app_version`

// CreateEntry persists a new entry after checking the record schema.
// Overlap rules are not enforced here; callers validate first.
func (s *SQLite) CreateEntry(ctx context.Context, e *diary.Entry) error {
	if err := e.Check(); err != nil {
		return err
	}

	query := `INSERT INTO entries (` + entryColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		e.ID,
		e.Date,
		e.Activity,
		e.Category,
		e.StartTime,
		e.EndTime,
		e.Notes,
		e.CreatedAt.UTC().Format(time.RFC3339Nano),
		e.UpdatedAt.UTC().Format(time.RFC3339Nano),
		e.Provenance.Source,
		e.Provenance.ClientID,
		e.Provenance.TimeZone,
		e.SchemaVersion,
		e.AppVersion,
	)
	if err != nil {
		return fmt.Errorf("inserting entry: %w", err)
	}

	return nil
}

// UpdateEntry replaces a stored entry in place.
func (s *SQLite) UpdateEntry(ctx context.Context, e *diary.Entry) error {
	if err := e.Check(); err != nil {
		return err
	}

	query := `
		UPDATE entries SET
			date = ?, activity = ?, category = ?, start_time = ?, end_time = ?,
			notes = ?, created_at = ?, updated_at = ?, provenance_source = ?,
			provenance_client_id = ?, provenance_time_zone = ?,
			schema_version = ?, app_version = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		e.Date,
		e.Activity,
		e.Category,
		e.StartTime,
		e.EndTime,
		e.Notes,
		e.CreatedAt.UTC().Format(time.RFC3339Nano),
		e.UpdatedAt.UTC().Format(time.RFC3339Nano),
		e.Provenance.Source,
		e.Provenance.ClientID,
		e.Provenance.TimeZone,
		e.SchemaVersion,
		e.AppVersion,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating entry: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %s", diary.ErrEntryNotFound, e.ID)
	}

	return nil
}

// GetEntry retrieves an entry by ID.
func (s *SQLite) GetEntry(ctx context.Context, id string) (*diary.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE id = ?`

	e, err := scanEntry(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying entry: %w", err)
	}
	return e, nil
}

// DeleteEntry removes an entry by ID.
func (s *SQLite) DeleteEntry(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %s", diary.ErrEntryNotFound, id)
	}

	return nil
}

// ListEntriesForDate returns the entries on date ordered by start time.
func (s *SQLite) ListEntriesForDate(ctx context.Context, date string) ([]*diary.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE date = ? ORDER BY start_time, created_at`
	return s.queryEntries(ctx, query, date)
}

// ListEntries returns entries dated within the range (inclusive).
func (s *SQLite) ListEntries(ctx context.Context, start, end string) ([]*diary.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE date >= ? AND date <= ?
		ORDER BY date, start_time, created_at
	`
	return s.queryEntries(ctx, query, start, end)
}

// ListAllEntries returns every entry ordered by date then start time.
func (s *SQLite) ListAllEntries(ctx context.Context) ([]*diary.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries ORDER BY date, start_time, created_at`
	return s.queryEntries(ctx, query)
}

func (s *SQLite) queryEntries(ctx context.Context, query string, args ...any) ([]*diary.Entry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*diary.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}

	return entries, nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*diary.Entry, error) {
	var (
		e         diary.Entry
		date      string
		createdAt string
		updatedAt string
	)

	err := row.Scan(
		&e.ID,
		&date,
		&e.Activity,
		&e.Category,
		&e.StartTime,
		&e.EndTime,
		&e.Notes,
		&createdAt,
		&updatedAt,
		&e.Provenance.Source,
		&e.Provenance.ClientID,
		&e.Provenance.TimeZone,
		&e.SchemaVersion,
		&e.AppVersion,
	)
	if err != nil {
		return nil, err
	}

	e.Date, err = parseDate(date)
	if err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}

	e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}

	e.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated at: %w", err)
	}

	return &e, nil
}

// parseDate normalizes the forms SQLite may return for a DATE column
// back to YYYY-MM-DD.
func parseDate(s string) (string, error) {
	if len(s) == 10 {
		if _, err := time.Parse("2006-01-02", s); err == nil {
			return s, nil
		}
	}

	// SQLite returns DATE columns as "2006-01-02T00:00:00Z"
	formats := []string{
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unrecognized date format: %s", s)
}

// SaveDraft stores the form draft, replacing any previous one.
func (s *SQLite) SaveDraft(ctx context.Context, d diary.Draft) error {
	fields, err := json.Marshal(d.Fields)
	if err != nil {
		return fmt.Errorf("encoding draft: %w", err)
	}

	query := `
		INSERT INTO drafts (id, fields, saved_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET fields = excluded.fields, saved_at = excluded.saved_at
	`
	if _, err := s.db.ExecContext(ctx, query, string(fields), d.SavedAt.UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}
	return nil
}

// LoadDraft returns the saved draft, or nil if none exists.
// A draft that cannot be decoded is treated as absent.
func (s *SQLite) LoadDraft(ctx context.Context) (*diary.Draft, error) {
	var fields, savedAt string
	err := s.db.QueryRowContext(ctx, `SELECT fields, saved_at FROM drafts WHERE id = 1`).Scan(&fields, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying draft: %w", err)
	}

	var d diary.Draft
	if err := json.Unmarshal([]byte(fields), &d.Fields); err != nil {
		return nil, nil
	}
	d.SavedAt, err = time.Parse(time.RFC3339Nano, savedAt)
	if err != nil {
		return nil, nil
	}
	return &d, nil
}

// ClearDraft discards the saved draft.
func (s *SQLite) ClearDraft(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM drafts`); err != nil {
		return fmt.Errorf("clearing draft: %w", err)
	}
	return nil
}

// ClientID returns the stable client identifier, generating it on first use.
func (s *SQLite) ClientID(ctx context.Context) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var id string
	err = tx.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, settingClientID).Scan(&id)
	switch {
	case err == nil:
		return id, nil
	case !errors.Is(err, sql.ErrNoRows):
		return "", fmt.Errorf("querying client id: %w", err)
	}

	id = uuid.NewString()
	if _, err := tx.ExecContext(ctx, `INSERT INTO settings (key, value) VALUES (?, ?)`, settingClientID, id); err != nil {
		return "", fmt.Errorf("storing client id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing transaction: %w", err)
	}
	return id, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}
