// Package summary builds the per-day overview shared by the CLI and the form.
package summary

import (
	"context"
	"errors"
	"fmt"

	"github.com/javiermolinar/microdiary/internal/dateutil"
	"github.com/javiermolinar/microdiary/internal/diary"
	"github.com/javiermolinar/microdiary/internal/llm"
)

// DaySummary holds one day's entries, statistics, gaps and optional insight.
type DaySummary struct {
	Date    string
	Entries []*diary.Entry
	Stats   diary.DayStats
	Gaps    []diary.Gap
	Insight *llm.Reflection
}

// GapMinutes returns the total length of the reported gaps.
func (s *DaySummary) GapMinutes() int {
	total := 0
	for _, g := range s.Gaps {
		total += g.Minutes()
	}
	return total
}

// BuildDaySummaryOptions configures the repository-backed summary builder.
type BuildDaySummaryOptions struct {
	Date           string // YYYY-MM-DD, defaults to today
	Gaps           diary.GapOptions
	IncludeInsight bool
	Provider       string
	Model          string
	BaseURL        string

	// Client overrides the provider settings when set.
	Client llm.Client
}

// SummarizeDay computes statistics and gaps for the entries recorded on date.
func SummarizeDay(date string, entries []*diary.Entry, opts diary.GapOptions) *DaySummary {
	day := diary.NewDay(date, entries)
	return &DaySummary{
		Date:    date,
		Entries: day.Entries(),
		Stats:   day.Stats(),
		Gaps:    day.Gaps(opts),
	}
}

// BuildDaySummary loads the day's entries and optionally adds an LLM reflection.
func BuildDaySummary(ctx context.Context, repo diary.Repository, opts BuildDaySummaryOptions) (*DaySummary, error) {
	date := opts.Date
	if date == "" {
		date = dateutil.Today()
	}

	entries, err := repo.ListEntriesForDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("fetching entries: %w", err)
	}

	summary := SummarizeDay(date, entries, opts.Gaps)

	if opts.IncludeInsight && len(summary.Entries) > 0 {
		client := opts.Client
		if client == nil {
			if opts.Model == "" {
				return nil, errors.New("model is required for insight")
			}
			client, err = llm.NewClient(opts.Provider, opts.Model, opts.BaseURL)
			if err != nil {
				return nil, fmt.Errorf("creating LLM client: %w", err)
			}
		}

		reflection, err := llm.NewReflector(client).ReflectDay(ctx, date, summary.Entries, summary.Gaps)
		if err != nil {
			return nil, err
		}
		summary.Insight = reflection
	}

	return summary, nil
}
