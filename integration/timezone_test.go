package integration

import (
	"context"
	"testing"
	"time"

	"github.com/javiermolinar/microdiary/internal/dateutil"
	"github.com/javiermolinar/microdiary/internal/diary"
)

// Entry dates are calendar strings; late-evening entries recorded east or
// west of UTC must not drift to a neighbouring day.
func TestEntryDateIgnoresTimeZone(t *testing.T) {
	zones := []*time.Location{
		time.FixedZone("UTC-8", -8*3600),
		time.FixedZone("UTC+13", 13*3600),
		time.UTC,
	}

	for _, loc := range zones {
		t.Run(loc.String(), func(t *testing.T) {
			repo := openRepo(t)
			ctx := context.Background()

			created := time.Date(2025, 1, 20, 23, 30, 0, 0, loc)
			date := dateutil.DateOf(created)
			if date != "2025-01-20" {
				t.Fatalf("DateOf = %s, want 2025-01-20", date)
			}

			clientID, err := repo.ClientID(ctx)
			if err != nil {
				t.Fatal(err)
			}
			e := diary.NewEntry(diary.FieldsFrom("Late reading", "leisure", "22:30", "23:30", ""), date, clientID, created)
			if err := repo.CreateEntry(ctx, e); err != nil {
				t.Fatalf("CreateEntry: %v", err)
			}

			entries, err := repo.ListEntriesForDate(ctx, "2025-01-20")
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != 1 {
				t.Fatalf("got %d entries on 2025-01-20, want 1", len(entries))
			}
			got := entries[0]
			if got.Date != "2025-01-20" {
				t.Errorf("Date = %s", got.Date)
			}
			if !got.CreatedAt.Equal(created) {
				t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created)
			}
			if got.Provenance.TimeZone != loc.String() {
				t.Errorf("TimeZone = %q, want %q", got.Provenance.TimeZone, loc.String())
			}

			for _, other := range []string{"2025-01-19", "2025-01-21"} {
				if n, _ := repo.ListEntriesForDate(ctx, other); len(n) != 0 {
					t.Errorf("entry leaked onto %s", other)
				}
			}
		})
	}
}
