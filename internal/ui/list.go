package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/microdiary/internal/dateutil"
)

func (a *App) listCmd() *cobra.Command {
	var (
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries in a date range",
		Long: `List all entries recorded within a date range.

If no dates are specified, lists today's entries.
If only --start is specified, lists entries for that single day.
If both --start and --end are specified, lists entries in that range (inclusive).`,
		Example: `  microdiary list
  microdiary list --start=yesterday
  microdiary list --start=2024-01-15 --end=2024-01-20`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			dateRange, err := a.dateRange(startDate, endDate)
			if err != nil {
				return err
			}

			entries, err := a.repo.ListEntries(cmd.Context(), dateRange.Start, dateRange.End)
			if err != nil {
				return fmt.Errorf("listing entries: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No entries found in the specified date range.")
				return nil
			}

			width := activityWidth()
			var currentDate string
			for _, e := range entries {
				if e.Date != currentDate {
					if currentDate != "" {
						fmt.Fprintln(out)
					}
					fmt.Fprintf(out, "=== %s ===\n", formatHeader(dateutil.FormatDayHeader(e.Date)))
					currentDate = e.Date
				}
				printEntryRow(out, e, width)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD, defaults to start date)")

	return cmd
}

// dateRange resolves --start/--end flags, accepting relative dates. An
// empty start means today and an empty end means the start date.
func (a *App) dateRange(startDate, endDate string) (*dateutil.DateRange, error) {
	start, err := dateutil.ParseDateRelative(startDate, a.now())
	if err != nil {
		return nil, err
	}
	end := ""
	if endDate != "" {
		if end, err = dateutil.ParseDateRelative(endDate, a.now()); err != nil {
			return nil, err
		}
	}
	return dateutil.NewDateRange(start, end)
}
