package diary

import (
	"slices"
	"testing"
)

func TestNewDay_SortsAndFilters(t *testing.T) {
	entries := []*Entry{
		newTestEntry("00000000-0000-0000-0000-000000000002", "Lunch", "12:00", "13:00"),
		newTestEntry("00000000-0000-0000-0000-000000000001", "Run", "07:00", "08:00"),
		nil,
	}
	other := newTestEntry("00000000-0000-0000-0000-000000000003", "Elsewhere", "09:00", "10:00")
	other.Date = "2024-01-16"
	entries = append(entries, other)

	day := NewDay("2024-01-15", entries)

	if day.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", day.Len())
	}
	got := day.Entries()
	if got[0].Activity != "Run" || got[1].Activity != "Lunch" {
		t.Errorf("entries not sorted by start: %s, %s", got[0].Activity, got[1].Activity)
	}

	got[0] = nil
	if day.Entries()[0] == nil {
		t.Error("Entries() must return a copy")
	}
}

func TestDay_Gaps(t *testing.T) {
	day := NewDay("2024-01-15", []*Entry{
		newTestEntry("00000000-0000-0000-0000-000000000001", "Run", "06:00", "07:00"),
		newTestEntry("00000000-0000-0000-0000-000000000002", "Work", "09:00", "10:00"),
	})

	got := day.Gaps(GapOptions{DayStart: "06:00", DayEnd: "10:00"})
	want := []Gap{{From: "07:00", To: "09:00"}}
	if !slices.Equal(got, want) {
		t.Errorf("Gaps() = %v, want %v", got, want)
	}

	if empty := NewDay("2024-01-15", nil).Gaps(DefaultGapOptions()); len(empty) != 0 {
		t.Errorf("empty day gaps = %v, want none", empty)
	}
}

func TestDay_FindOverlapping(t *testing.T) {
	run := newTestEntry("00000000-0000-0000-0000-000000000001", "Run", "07:00", "08:00")
	day := NewDay("2024-01-15", []*Entry{run})

	if got := day.FindOverlapping(Interval{"07:30", "09:00"}, ""); got != run {
		t.Errorf("FindOverlapping() = %v, want run", got)
	}
	if got := day.FindOverlapping(Interval{"07:30", "09:00"}, run.ID); got != nil {
		t.Errorf("FindOverlapping() excluding self = %v, want nil", got)
	}
	if got := day.FindOverlapping(Interval{"08:00", "09:00"}, ""); got != nil {
		t.Errorf("touching interval overlapped: %v", got)
	}
}

func TestDay_Stats(t *testing.T) {
	work1 := newTestEntry("00000000-0000-0000-0000-000000000001", "Email", "09:00", "10:00")
	work1.Category = "work"
	work2 := newTestEntry("00000000-0000-0000-0000-000000000002", "Code", "10:00", "11:30")
	work2.Category = "work"
	run := newTestEntry("00000000-0000-0000-0000-000000000003", "Run", "07:00", "07:30")

	stats := NewDay("2024-01-15", []*Entry{work1, work2, run}).Stats()

	if stats.Entries != 3 {
		t.Errorf("Entries = %d, want 3", stats.Entries)
	}
	if stats.TotalMinutes != 180 {
		t.Errorf("TotalMinutes = %d, want 180", stats.TotalMinutes)
	}
	if stats.CategoryMinutes["work"] != 150 || stats.CategoryMinutes["leisure"] != 30 {
		t.Errorf("CategoryMinutes = %v", stats.CategoryMinutes)
	}
	if got := stats.CategoryPercent("work"); got != 83 {
		t.Errorf("CategoryPercent(work) = %d, want 83", got)
	}
	if got := (DayStats{}).CategoryPercent("work"); got != 0 {
		t.Errorf("empty CategoryPercent = %d, want 0", got)
	}
}
