package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/microdiary/internal/dateutil"
	"github.com/javiermolinar/microdiary/internal/diary"
)

func (a *App) gapsCmd() *cobra.Command {
	var (
		date   string
		minGap int
	)

	cmd := &cobra.Command{
		Use:   "gaps",
		Short: "Show unrecorded stretches of a day",
		Long: `Show the parts of the day window that no entry covers.

The window and the shortest reported gap come from the [diary] section of
the config file. Gaps are informational; nothing requires filling them.`,
		Example: `  microdiary gaps
  microdiary gaps --date=yesterday --min=30`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("min") && minGap < 1 {
				return fmt.Errorf("--min must be at least 1, got %d", minGap)
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}
			day, err := dateutil.ParseDateRelative(date, a.now())
			if err != nil {
				return err
			}

			entries, err := a.repo.ListEntriesForDate(cmd.Context(), day)
			if err != nil {
				return fmt.Errorf("fetching entries: %w", err)
			}

			opts := a.config.GapOptions()
			if cmd.Flags().Changed("min") {
				opts.MinGapMinutes = minGap
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "=== %s ===\n", formatHeader(dateutil.FormatDayHeader(day)))

			d := diary.NewDay(day, entries)
			if d.Len() == 0 {
				fmt.Fprintln(out, "No entries recorded.")
				return nil
			}

			gaps := d.Gaps(opts)
			if len(gaps) == 0 {
				fmt.Fprintf(out, "No gaps of %d+ minutes between %s and %s.\n",
					opts.MinGapMinutes, opts.DayStart, opts.DayEnd)
				return nil
			}
			printGaps(out, gaps)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, today or yesterday; default: today)")
	cmd.Flags().IntVar(&minGap, "min", 0, "Shortest gap to report in minutes (default from config)")

	return cmd
}
