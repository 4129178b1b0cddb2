package diary

import (
	"slices"
	"strings"
)

// Day holds all entries recorded on a single date.
type Day struct {
	Date    string
	entries []*Entry // sorted by StartTime
}

// NewDay creates a Day from entries recorded on date.
// Entries for other dates are ignored.
func NewDay(date string, entries []*Entry) *Day {
	d := &Day{Date: date, entries: make([]*Entry, 0, len(entries))}
	for _, e := range entries {
		if e != nil && e.Date == date {
			d.entries = append(d.entries, e)
		}
	}
	slices.SortStableFunc(d.entries, func(a, b *Entry) int {
		return strings.Compare(a.StartTime, b.StartTime)
	})
	return d
}

// Entries returns a copy of the entry slice.
func (d *Day) Entries() []*Entry {
	return slices.Clone(d.entries)
}

// Len returns the number of entries in the day.
func (d *Day) Len() int {
	return len(d.entries)
}

// Intervals returns the interval of every entry.
func (d *Day) Intervals() []Interval {
	result := make([]Interval, len(d.entries))
	for i, e := range d.entries {
		result[i] = e.Interval()
	}
	return result
}

// Gaps returns the uncovered spans of the day.
func (d *Day) Gaps(opts GapOptions) []Gap {
	return FindGaps(d.Intervals(), opts)
}

// FindOverlapping returns the first entry that overlaps iv, skipping excludeID.
// Returns nil if no overlap is found.
func (d *Day) FindOverlapping(iv Interval, excludeID string) *Entry {
	return firstOverlap(iv, d.entries, excludeID)
}

// DayStats holds time-use statistics for a single day.
type DayStats struct {
	Entries         int
	TotalMinutes    int
	CategoryMinutes map[string]int
}

// CategoryPercent returns the share of recorded time spent on category.
func (s DayStats) CategoryPercent(category string) int {
	if s.TotalMinutes == 0 {
		return 0
	}
	return (s.CategoryMinutes[category] * 100) / s.TotalMinutes
}

// Stats calculates statistics for the day.
func (d *Day) Stats() DayStats {
	stats := DayStats{CategoryMinutes: make(map[string]int)}
	for _, e := range d.entries {
		stats.Entries++
		minutes := max(e.Duration(), 0)
		stats.TotalMinutes += minutes
		stats.CategoryMinutes[e.Category] += minutes
	}
	return stats
}
