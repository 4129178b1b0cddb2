package diary

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestEntry(id, activity, start, end string) *Entry {
	now := time.Date(2024, 1, 15, 7, 0, 0, 0, time.UTC)
	return &Entry{
		ID:        id,
		Date:      "2024-01-15",
		Activity:  activity,
		Category:  "leisure",
		StartTime: start,
		EndTime:   end,
		CreatedAt: now,
		UpdatedAt: now,
		Provenance: Provenance{
			Source:   SourceManualEntry,
			ClientID: "test-client",
			TimeZone: "Europe/London",
		},
		SchemaVersion: SchemaVersion,
		AppVersion:    "0.1.0",
	}
}

func fieldIDs(errs []FieldError) []string {
	ids := make([]string, len(errs))
	for i, e := range errs {
		ids[i] = e.FieldID
	}
	return ids
}

func TestValidate_ValidFields(t *testing.T) {
	res := Validate(FieldsFrom("Breakfast", "personal-care", "08:00", "09:00", ""), nil, "")
	if !res.Valid() {
		t.Fatalf("expected valid, got errors %v", res.Errors)
	}
	if res.Err() != nil {
		t.Errorf("Err() = %v, want nil", res.Err())
	}
}

func TestValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		fields  Fields
		wantIDs []string
		wantMsg string
	}{
		{
			name:    "empty activity",
			fields:  FieldsFrom("", "work", "09:00", "10:00", ""),
			wantIDs: []string{FieldActivity},
			wantMsg: "Activity is required",
		},
		{
			name:    "whitespace activity",
			fields:  FieldsFrom("   ", "work", "09:00", "10:00", ""),
			wantIDs: []string{FieldActivity},
		},
		{
			name:    "activity too long",
			fields:  FieldsFrom(strings.Repeat("a", MaxActivityLength+1), "work", "09:00", "10:00", ""),
			wantIDs: []string{FieldActivity},
			wantMsg: "Activity must be at most 200 characters",
		},
		{
			name:    "activity at limit",
			fields:  FieldsFrom(strings.Repeat("é", MaxActivityLength), "work", "09:00", "10:00", ""),
			wantIDs: []string{},
		},
		{
			name:    "empty category",
			fields:  FieldsFrom("Work", "", "09:00", "10:00", ""),
			wantIDs: []string{FieldCategory},
			wantMsg: "Category is required",
		},
		{
			name:    "malformed start",
			fields:  FieldsFrom("Work", "work", "9:00", "10:00", ""),
			wantIDs: []string{FieldStartTime},
			wantMsg: "Start time must be in HH:MM format",
		},
		{
			name:    "missing end",
			fields:  FieldsFrom("Work", "work", "09:00", "", ""),
			wantIDs: []string{FieldEndTime},
			wantMsg: "End time must be in HH:MM format",
		},
		{
			name:    "end before start",
			fields:  FieldsFrom("Lunch", "personal-care", "13:00", "12:00", ""),
			wantIDs: []string{FieldEndTime},
			wantMsg: "End time must be after start time.",
		},
		{
			name:    "end equals start",
			fields:  FieldsFrom("Nap", "sleep", "14:00", "14:00", ""),
			wantIDs: []string{FieldEndTime},
		},
		{
			name:    "notes too long",
			fields:  FieldsFrom("Work", "work", "09:00", "10:00", strings.Repeat("n", MaxNotesLength+1)),
			wantIDs: []string{FieldNotes},
			wantMsg: "Notes must be at most 2000 characters",
		},
		{
			name:    "no fields at all",
			fields:  Fields{},
			wantIDs: []string{FieldActivity, FieldCategory, FieldStartTime, FieldEndTime},
		},
		{
			name:    "malformed end is reported once",
			fields:  FieldsFrom("Work", "work", "10:00", "9:00", ""),
			wantIDs: []string{FieldEndTime},
			wantMsg: "End time must be in HH:MM format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.fields, nil, "")
			got := fieldIDs(res.Errors)
			if strings.Join(got, ",") != strings.Join(tt.wantIDs, ",") {
				t.Fatalf("error fields = %v, want %v (errors: %v)", got, tt.wantIDs, res.Errors)
			}
			if res.Valid() != (len(tt.wantIDs) == 0) {
				t.Errorf("Valid() = %v disagrees with %d errors", res.Valid(), len(res.Errors))
			}
			if tt.wantMsg != "" && res.Errors[0].Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", res.Errors[0].Message, tt.wantMsg)
			}
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	res := Validate(FieldsFrom("", "", "13:00", "12:00", ""), nil, "")
	want := []string{FieldActivity, FieldCategory, FieldEndTime}
	if got := fieldIDs(res.Errors); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("error fields = %v, want %v", got, want)
	}
	if res.Valid() {
		t.Error("expected invalid result")
	}
}

func TestValidate_Overlap(t *testing.T) {
	existing := []*Entry{newTestEntry("00000000-0000-0000-0000-000000000001", "Meeting", "09:00", "10:30")}

	t.Run("overlapping candidate fails on start time", func(t *testing.T) {
		res := Validate(FieldsFrom("Call", "work", "10:00", "11:00", ""), existing, "")
		if res.Valid() {
			t.Fatal("expected overlap error")
		}
		if len(res.Errors) != 1 || res.Errors[0].FieldID != FieldStartTime {
			t.Fatalf("errors = %v, want one start-time error", res.Errors)
		}
		want := `Time slot overlaps with "Meeting" (09:00–10:30). Please adjust the times.`
		if res.Errors[0].Message != want {
			t.Errorf("message = %q, want %q", res.Errors[0].Message, want)
		}
	})

	t.Run("back to back succeeds", func(t *testing.T) {
		res := Validate(FieldsFrom("Call", "work", "10:30", "11:00", ""), existing, "")
		if !res.Valid() {
			t.Fatalf("expected valid, got %v", res.Errors)
		}
	})

	t.Run("contained candidate fails", func(t *testing.T) {
		res := Validate(FieldsFrom("Call", "work", "10:00", "10:30", ""), existing, "")
		if !res.HasError(FieldStartTime) {
			t.Fatalf("expected start-time error, got %v", res.Errors)
		}
	})

	t.Run("only first conflict reported", func(t *testing.T) {
		many := []*Entry{
			newTestEntry("00000000-0000-0000-0000-000000000002", "Second", "11:00", "12:00"),
			newTestEntry("00000000-0000-0000-0000-000000000001", "First", "09:00", "10:00"),
		}
		res := Validate(FieldsFrom("Long", "work", "08:00", "13:00", ""), many, "")
		if len(res.Errors) != 1 {
			t.Fatalf("errors = %v, want exactly one", res.Errors)
		}
		if !strings.Contains(res.Errors[0].Message, `"Second"`) {
			t.Errorf("expected conflict in existing order, got %q", res.Errors[0].Message)
		}
	})

	t.Run("overlap skipped when end before start", func(t *testing.T) {
		res := Validate(FieldsFrom("Call", "work", "10:00", "09:30", ""), existing, "")
		if got := fieldIDs(res.Errors); strings.Join(got, ",") != FieldEndTime {
			t.Fatalf("error fields = %v, want only end-time", got)
		}
	})

	t.Run("structural errors come before overlap", func(t *testing.T) {
		res := Validate(FieldsFrom("", "work", "10:00", "11:00", ""), existing, "")
		want := []string{FieldActivity, FieldStartTime}
		if got := fieldIDs(res.Errors); strings.Join(got, ",") != strings.Join(want, ",") {
			t.Fatalf("error fields = %v, want %v", got, want)
		}
	})
}

func TestValidate_EditExcludesSelf(t *testing.T) {
	self := newTestEntry("00000000-0000-0000-0000-000000000001", "Run", "07:00", "08:00")
	other := newTestEntry("00000000-0000-0000-0000-000000000002", "Shower", "08:30", "09:00")
	existing := []*Entry{self, other}

	t.Run("extending own end time", func(t *testing.T) {
		res := Validate(FieldsFrom("Run", "leisure", "07:00", "08:30", ""), existing, self.ID)
		if !res.Valid() {
			t.Fatalf("expected valid, got %v", res.Errors)
		}
	})

	t.Run("still conflicts with others", func(t *testing.T) {
		res := Validate(FieldsFrom("Run", "leisure", "07:00", "08:45", ""), existing, self.ID)
		if !res.HasError(FieldStartTime) {
			t.Fatalf("expected conflict with other entry, got %v", res.Errors)
		}
	})

	t.Run("no editing id compares against all", func(t *testing.T) {
		res := Validate(FieldsFrom("Run", "leisure", "07:00", "08:30", ""), existing, "")
		if res.Valid() {
			t.Fatal("expected conflict with the entry itself when no editing id is given")
		}
	})
}

func TestValidationResult_Err(t *testing.T) {
	res := Validate(FieldsFrom("", "work", "09:00", "10:00", ""), nil, "")
	err := res.Err()
	if !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("Err() = %v, want ErrInvalidEntry", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || len(verr.Errors) != 1 {
		t.Fatalf("errors.As failed or wrong count: %v", err)
	}
	if !strings.Contains(err.Error(), "activity: Activity is required") {
		t.Errorf("Error() = %q", err.Error())
	}
}
