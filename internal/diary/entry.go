// Package diary defines the time-use diary domain: entries, time-of-day
// arithmetic, interval analysis and entry validation.
package diary

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/javiermolinar/microdiary/internal/dateutil"
)

// SchemaVersion is the stored record format version.
const SchemaVersion = "1.0"

// SourceManualEntry marks entries typed in by the user.
const SourceManualEntry = "manual-entry"

// AppVersion is set at build time.
var AppVersion = "0.1.0"

// Domain errors.
var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrInvalidEntry  = errors.New("invalid entry")
)

// Provenance records how and where an entry was created.
type Provenance struct {
	Source   string `json:"source"`
	ClientID string `json:"clientId"`
	TimeZone string `json:"timeZone"`
}

// Entry is a persisted diary record.
type Entry struct {
	ID            string     `json:"id"`
	Date          string     `json:"date"` // "YYYY-MM-DD"
	Activity      string     `json:"activity"`
	Category      string     `json:"category"`
	StartTime     string     `json:"startTime"` // "HH:MM"
	EndTime       string     `json:"endTime"`   // "HH:MM"
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	Provenance    Provenance `json:"provenance"`
	SchemaVersion string     `json:"schemaVersion"`
	AppVersion    string     `json:"appVersion"`
}

// Interval returns the span the entry occupies.
func (e *Entry) Interval() Interval {
	return Interval{Start: e.StartTime, End: e.EndTime}
}

// Duration returns the entry length in minutes.
func (e *Entry) Duration() int {
	return Duration(e.StartTime, e.EndTime)
}

// NewEntry builds a record from validated form fields.
// The caller must have run Validate on fields first.
func NewEntry(fields Fields, date, clientID string, now time.Time) *Entry {
	e := &Entry{
		ID:        uuid.NewString(),
		Date:      date,
		CreatedAt: now,
		Provenance: Provenance{
			Source:   SourceManualEntry,
			ClientID: clientID,
			TimeZone: localTimeZone(now),
		},
		SchemaVersion: SchemaVersion,
		AppVersion:    AppVersion,
	}
	e.Apply(fields, now)
	return e
}

// Apply overwrites the descriptive fields and times of an existing entry.
// Absent fields keep their current value, except notes which are cleared.
func (e *Entry) Apply(fields Fields, now time.Time) {
	if fields.Activity != nil {
		e.Activity = *fields.Activity
	}
	if fields.Category != nil {
		e.Category = *fields.Category
	}
	if fields.StartTime != nil {
		e.StartTime = *fields.StartTime
	}
	if fields.EndTime != nil {
		e.EndTime = *fields.EndTime
	}
	e.Notes = ""
	if fields.Notes != nil {
		e.Notes = *fields.Notes
	}
	e.UpdatedAt = now
	e.AppVersion = AppVersion
}

// Fields returns the entry's form fields, for editing.
func (e *Entry) Fields() Fields {
	return FieldsFrom(e.Activity, e.Category, e.StartTime, e.EndTime, e.Notes)
}

// Check verifies the stored-record schema. Storage and export run it
// before writing so malformed records never leave the process.
func (e *Entry) Check() error {
	if _, err := uuid.Parse(e.ID); err != nil {
		return fmt.Errorf("%w: id must be a valid UUID", ErrInvalidEntry)
	}
	if !dateutil.ValidDate(e.Date) {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidEntry)
	}
	if res := Validate(e.Fields(), nil, ""); !res.Valid() {
		return res.Err()
	}
	if e.CreatedAt.IsZero() || e.UpdatedAt.IsZero() {
		return fmt.Errorf("%w: timestamps must be set", ErrInvalidEntry)
	}
	if e.Provenance.Source != SourceManualEntry {
		return fmt.Errorf("%w: unknown provenance source %q", ErrInvalidEntry, e.Provenance.Source)
	}
	if e.Provenance.ClientID == "" {
		return fmt.Errorf("%w: clientId must not be empty", ErrInvalidEntry)
	}
	if e.Provenance.TimeZone == "" {
		return fmt.Errorf("%w: timeZone must not be empty", ErrInvalidEntry)
	}
	if e.SchemaVersion != SchemaVersion {
		return fmt.Errorf("%w: unsupported schema version %q", ErrInvalidEntry, e.SchemaVersion)
	}
	if e.AppVersion == "" {
		return fmt.Errorf("%w: appVersion must not be empty", ErrInvalidEntry)
	}
	return nil
}

func localTimeZone(now time.Time) string {
	if name := now.Location().String(); name != "" && name != "Local" {
		return name
	}
	name, _ := now.Zone()
	if name == "" {
		return "UTC"
	}
	return name
}

// Category is an entry category option.
type Category struct {
	Value string
	Label string
}

// Categories lists the selectable activity categories.
var Categories = []Category{
	{Value: "work", Label: "Work"},
	{Value: "education", Label: "Education"},
	{Value: "leisure", Label: "Leisure"},
	{Value: "personal-care", Label: "Personal Care"},
	{Value: "household", Label: "Household"},
	{Value: "travel", Label: "Travel"},
	{Value: "social", Label: "Social"},
	{Value: "sleep", Label: "Sleep / Rest"},
	{Value: "other", Label: "Other"},
}

// CategoryLabel returns the display label for a category value.
// Unknown values are returned unchanged.
func CategoryLabel(value string) string {
	for _, c := range Categories {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}
