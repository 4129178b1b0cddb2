package diary

import (
	"slices"
)

// Interval is the span an activity occupies within one day.
// Start before End is a business rule, not a property of the type.
type Interval struct {
	Start string // "HH:MM"
	End   string // "HH:MM"
}

// Overlaps reports whether two intervals share any time.
// Intervals are half-open, so one ending exactly when the other starts
// does not overlap.
func Overlaps(a, b Interval) bool {
	return ParseTime(a.Start) < ParseTime(b.End) && ParseTime(a.End) > ParseTime(b.Start)
}

// OverlapMinutes returns the length of the intersection of two intervals.
// Returns 0 if there is no overlap.
func OverlapMinutes(a, b Interval) int {
	overlapStart := max(ParseTime(a.Start), ParseTime(b.Start))
	overlapEnd := min(ParseTime(a.End), ParseTime(b.End))
	if overlapEnd <= overlapStart {
		return 0
	}
	return overlapEnd - overlapStart
}

// Gap is an uncovered span of the day.
type Gap struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Minutes returns the length of the gap.
func (g Gap) Minutes() int {
	return Duration(g.From, g.To)
}

// Default gap window and threshold.
const (
	DefaultDayStart      = "06:00"
	DefaultDayEnd        = "23:59"
	DefaultMinGapMinutes = 15
)

// GapOptions configures FindGaps. Zero values fall back to the defaults.
type GapOptions struct {
	DayStart      string
	DayEnd        string
	MinGapMinutes int
}

// DefaultGapOptions returns the default analysis window.
func DefaultGapOptions() GapOptions {
	return GapOptions{
		DayStart:      DefaultDayStart,
		DayEnd:        DefaultDayEnd,
		MinGapMinutes: DefaultMinGapMinutes,
	}
}

func (o GapOptions) withDefaults() GapOptions {
	if o.DayStart == "" {
		o.DayStart = DefaultDayStart
	}
	if o.DayEnd == "" {
		o.DayEnd = DefaultDayEnd
	}
	if o.MinGapMinutes <= 0 {
		o.MinGapMinutes = DefaultMinGapMinutes
	}
	return o
}

// FindGaps returns the uncovered spans of at least MinGapMinutes between
// the given intervals, in chronological order.
// A day with no intervals has no gaps: gaps describe the coverage between
// entries, not an empty day.
func FindGaps(intervals []Interval, opts GapOptions) []Gap {
	if len(intervals) == 0 {
		return nil
	}
	opts = opts.withDefaults()

	sorted := slices.Clone(intervals)
	slices.SortStableFunc(sorted, func(a, b Interval) int {
		return ParseTime(a.Start) - ParseTime(b.Start)
	})

	var gaps []Gap
	cursor := ParseTime(opts.DayStart)
	for _, iv := range sorted {
		start := ParseTime(iv.Start)
		if start-cursor >= opts.MinGapMinutes {
			gaps = append(gaps, Gap{From: FormatMinutes(cursor), To: iv.Start})
		}
		cursor = max(cursor, ParseTime(iv.End))
	}

	if ParseTime(opts.DayEnd)-cursor >= opts.MinGapMinutes {
		gaps = append(gaps, Gap{From: FormatMinutes(cursor), To: opts.DayEnd})
	}

	return gaps
}
