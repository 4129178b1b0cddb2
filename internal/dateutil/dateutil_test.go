package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDateRelative(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "empty is today", input: "", want: "2025-03-01"},
		{name: "today keyword", input: "Today", want: "2025-03-01"},
		{name: "yesterday crosses month", input: "yesterday", want: "2025-02-28"},
		{name: "absolute date", input: "2025-01-15", want: "2025-01-15"},
		{name: "surrounding space", input: " 2025-01-15 ", want: "2025-01-15"},
		{name: "wrong order", input: "01-15-2025", wantErr: ErrInvalidDateFormat},
		{name: "not padded", input: "2025-1-15", wantErr: ErrInvalidDateFormat},
		{name: "impossible day", input: "2025-02-30", wantErr: ErrInvalidDateFormat},
		{name: "tomorrow unsupported", input: "tomorrow", wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateRelative(tt.input, now)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseDateRelative(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseDateRelative(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewDateRange(t *testing.T) {
	t.Run("valid date range", func(t *testing.T) {
		dr, err := NewDateRange("2025-01-15", "2025-01-20")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dr.Start != "2025-01-15" || dr.End != "2025-01-20" {
			t.Errorf("got %s..%s, want 2025-01-15..2025-01-20", dr.Start, dr.End)
		}
	})

	t.Run("empty end defaults to start", func(t *testing.T) {
		dr, err := NewDateRange("2025-01-15", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dr.End != dr.Start {
			t.Errorf("expected end %s to equal start %s", dr.End, dr.Start)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := NewDateRange("2025-01-20", "2025-01-15")
		if !errors.Is(err, ErrEndDateBeforeStart) {
			t.Errorf("got error %v, want %v", err, ErrEndDateBeforeStart)
		}
	})

	t.Run("invalid end", func(t *testing.T) {
		_, err := NewDateRange("2025-01-20", "soon")
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("got error %v, want %v", err, ErrInvalidDateFormat)
		}
	})
}

func TestToday(t *testing.T) {
	got := Today()
	if !ValidDate(got) {
		t.Fatalf("Today() = %q, not a valid date", got)
	}
}

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2025, 1, 15, 14, 30, 45, 123, time.UTC)
	want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	if got := TruncateToDay(in); !got.Equal(want) {
		t.Errorf("TruncateToDay() = %v, want %v", got, want)
	}
}

func TestFormatDayHeader(t *testing.T) {
	if got := FormatDayHeader("2025-01-15"); got != "Wednesday, January 15, 2025" {
		t.Errorf("FormatDayHeader() = %q", got)
	}
	if got := FormatDayHeader("bad"); got != "bad" {
		t.Errorf("FormatDayHeader(bad) = %q, want input unchanged", got)
	}
}
