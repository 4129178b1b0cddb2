package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/microdiary/internal/diary"
)

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}

// shortID returns the first block of an entry UUID.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// truncate shortens s to at most width display columns.
func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// padRight pads s with spaces to width display columns.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// categoryColumnWidth is wide enough for the longest category label.
var categoryColumnWidth = func() int {
	w := 0
	for _, c := range diary.Categories {
		w = max(w, runewidth.StringWidth(c.Label))
	}
	return w + 2
}()

// activityWidth returns the room left for the activity column.
func activityWidth() int {
	// "  HH:MM-HH:MM  " + category + "  " + "  12h59m  12345678"
	overhead := 15 + categoryColumnWidth + 2 + 18
	return max(termWidth()-overhead, 20)
}

// printEntryRow prints a single entry row with consistent formatting.
func printEntryRow(w io.Writer, e *diary.Entry, actWidth int) {
	category := padRight("["+diary.CategoryLabel(e.Category)+"]", categoryColumnWidth)
	activity := padRight(truncate(e.Activity, actWidth), actWidth)
	fmt.Fprintf(w, "  %s  %s  %s  %6s  %s\n",
		formatTime(e.StartTime+"-"+e.EndTime),
		category,
		activity,
		FormatDuration(e.Duration()),
		formatMuted(shortID(e.ID)),
	)
	if e.Notes != "" {
		fmt.Fprintf(w, "               %s\n", formatMuted(truncate(e.Notes, actWidth+categoryColumnWidth)))
	}
}

// printGaps prints the advisory gaps of a day.
func printGaps(w io.Writer, gaps []diary.Gap) {
	for _, g := range gaps {
		fmt.Fprintf(w, "  %s  %s\n", formatGap(g.From+"-"+g.To), FormatDuration(g.Minutes()))
	}
}

// printFieldErrors prints every field error of a failed validation.
func printFieldErrors(w io.Writer, res diary.ValidationResult) {
	fmt.Fprintln(w, formatError("Please fix the following:"))
	for _, fe := range res.Errors {
		fmt.Fprintf(w, "  - %s: %s\n", fe.FieldID, fe.Message)
	}
}

// printStats prints the recorded time and per-category breakdown.
func printStats(w io.Writer, stats diary.DayStats) {
	fmt.Fprintf(w, "Recorded: %s across %d entries\n",
		formatStats(FormatDuration(stats.TotalMinutes)), stats.Entries)
	for _, c := range diary.Categories {
		m := stats.CategoryMinutes[c.Value]
		if m == 0 {
			continue
		}
		pct := stats.CategoryPercent(c.Value)
		fmt.Fprintf(w, "  %s %6s  %s %3d%%\n",
			padRight(c.Label, categoryColumnWidth), FormatDuration(m), shareBar(pct, 20), pct)
	}
}

// shareBar renders pct as a fixed-width bar.
func shareBar(pct, width int) string {
	pct = min(max(pct, 0), 100)
	filled := (pct * width) / 100
	return formatStats(strings.Repeat("█", filled)) + strings.Repeat("░", width-filled)
}
