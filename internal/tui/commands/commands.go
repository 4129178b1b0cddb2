// Package commands provides form command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/microdiary/internal/debuglog"
	"github.com/javiermolinar/microdiary/internal/diary"
)

// DayLoadedMsg is sent when the entries of a day are loaded.
type DayLoadedMsg struct {
	Date    string
	Entries []*diary.Entry
}

// DraftLoadedMsg is sent with the stored draft, which may be nil.
type DraftLoadedMsg struct {
	Draft *diary.Draft
}

// DraftSavedMsg is sent after the draft was written or cleared.
type DraftSavedMsg struct {
	Cleared bool
}

// EntrySavedMsg is sent when an entry was created or updated.
type EntrySavedMsg struct {
	Entry   *diary.Entry
	Created bool
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadDay loads the entries recorded on date.
func LoadDay(repo diary.Repository, date string) tea.Cmd {
	return func() tea.Msg {
		entries, err := repo.ListEntriesForDate(context.Background(), date)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading %s: %w", date, err)}
		}
		return DayLoadedMsg{Date: date, Entries: entries}
	}
}

// LoadDraft loads the autosaved form draft.
func LoadDraft(repo diary.Repository) tea.Cmd {
	return func() tea.Msg {
		d, err := repo.LoadDraft(context.Background())
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading draft: %w", err)}
		}
		return DraftLoadedMsg{Draft: d}
	}
}

// SaveDraft stores the current form values.
func SaveDraft(repo diary.Repository, fields diary.Fields, now time.Time) tea.Cmd {
	return func() tea.Msg {
		if err := repo.SaveDraft(context.Background(), diary.Draft{Fields: fields, SavedAt: now}); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving draft: %w", err)}
		}
		return DraftSavedMsg{}
	}
}

// ClearDraft removes the stored draft.
func ClearDraft(repo diary.Repository) tea.Cmd {
	return func() tea.Msg {
		if err := repo.ClearDraft(context.Background()); err != nil {
			return ErrMsg{Err: fmt.Errorf("clearing draft: %w", err)}
		}
		return DraftSavedMsg{Cleared: true}
	}
}

// CreateEntry records a new entry built from validated fields.
func CreateEntry(repo diary.Repository, date string, fields diary.Fields, now time.Time) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		clientID, err := repo.ClientID(ctx)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading client id: %w", err)}
		}
		e := diary.NewEntry(fields, date, clientID, now)
		if err := repo.CreateEntry(ctx, e); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving entry: %w", err)}
		}
		debuglog.Store("create", e.ID)
		return EntrySavedMsg{Entry: e, Created: true}
	}
}

// UpdateEntry stores an edited entry.
func UpdateEntry(repo diary.Repository, e *diary.Entry) tea.Cmd {
	return func() tea.Msg {
		if err := repo.UpdateEntry(context.Background(), e); err != nil {
			return ErrMsg{Err: fmt.Errorf("updating entry: %w", err)}
		}
		debuglog.Store("update", e.ID)
		return EntrySavedMsg{Entry: e}
	}
}
