package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/javiermolinar/microdiary/internal/diary"
)

// Envelope wraps exported entries with metadata.
type Envelope struct {
	ExportedAt    time.Time      `json:"exportedAt"`
	ClientID      string         `json:"clientId"`
	SchemaVersion string         `json:"schemaVersion"`
	AppVersion    string         `json:"appVersion"`
	Entries       []*diary.Entry `json:"entries"`
}

// BuildEnvelope wraps entries for export after checking every record.
func BuildEnvelope(entries []*diary.Entry, clientID string, now time.Time) (*Envelope, error) {
	for _, e := range entries {
		if err := e.Check(); err != nil {
			return nil, fmt.Errorf("entry %s: %w", e.ID, err)
		}
	}
	if entries == nil {
		entries = []*diary.Entry{}
	}
	return &Envelope{
		ExportedAt:    now.UTC(),
		ClientID:      clientID,
		SchemaVersion: diary.SchemaVersion,
		AppVersion:    diary.AppVersion,
		Entries:       entries,
	}, nil
}

// WriteJSON writes the envelope as indented JSON.
func WriteJSON(w io.Writer, env *Envelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
