package diary

import (
	"context"
	"time"
)

// Draft is the autosaved, not yet submitted state of the entry form.
type Draft struct {
	Fields  Fields
	SavedAt time.Time
}

// Repository defines the storage interface for diary entries.
type Repository interface {
	// CreateEntry persists a new entry.
	CreateEntry(ctx context.Context, e *Entry) error

	// UpdateEntry replaces a stored entry.
	// Returns ErrEntryNotFound if no entry has e.ID.
	UpdateEntry(ctx context.Context, e *Entry) error

	// GetEntry retrieves an entry by ID. Returns nil if it does not exist.
	GetEntry(ctx context.Context, id string) (*Entry, error)

	// DeleteEntry removes an entry by ID.
	// Returns ErrEntryNotFound if no entry has the ID.
	DeleteEntry(ctx context.Context, id string) error

	// ListEntriesForDate returns the entries on date ordered by start time.
	ListEntriesForDate(ctx context.Context, date string) ([]*Entry, error)

	// ListEntries returns entries dated within the range (inclusive),
	// ordered by date then start time.
	ListEntries(ctx context.Context, start, end string) ([]*Entry, error)

	// ListAllEntries returns every entry ordered by date then start time.
	ListAllEntries(ctx context.Context) ([]*Entry, error)

	// SaveDraft stores the current form state, replacing any previous draft.
	SaveDraft(ctx context.Context, d Draft) error

	// LoadDraft returns the saved draft, or nil if there is none.
	LoadDraft(ctx context.Context) (*Draft, error)

	// ClearDraft discards the saved draft.
	ClearDraft(ctx context.Context) error

	// ClientID returns the stable pseudonymous client identifier,
	// creating it on first use.
	ClientID(ctx context.Context) (string, error)

	// Close releases any resources held by the repository.
	Close() error
}
