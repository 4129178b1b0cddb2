package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/microdiary/internal/dateutil"
	"github.com/javiermolinar/microdiary/internal/summary"
)

func (a *App) showCmd() *cobra.Command {
	var (
		date    string
		insight bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Summarize a day",
		Long: `Display a day's entries, time per category and unrecorded gaps.

With --insight the day is also sent to the configured LLM provider for a
short reflection.`,
		Example: `  microdiary show
  microdiary show --date=yesterday --insight`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}
			day, err := dateutil.ParseDateRelative(date, a.now())
			if err != nil {
				return err
			}

			s, err := summary.BuildDaySummary(cmd.Context(), a.repo, summary.BuildDaySummaryOptions{
				Date:           day,
				Gaps:           a.config.GapOptions(),
				IncludeInsight: insight,
				Provider:       a.config.LLM.Provider,
				Model:          a.config.LLM.Model,
				BaseURL:        a.config.LLM.BaseURL,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "=== %s ===\n\n", formatHeader(dateutil.FormatDayHeader(day)))
			if len(s.Entries) == 0 {
				fmt.Fprintln(out, "Nothing recorded for this day.")
				return nil
			}

			width := activityWidth()
			for _, e := range s.Entries {
				printEntryRow(out, e, width)
			}

			fmt.Fprintln(out)
			printStats(out, s.Stats)

			if len(s.Gaps) > 0 {
				fmt.Fprintf(out, "\nUnrecorded: %s\n", formatGap(FormatDuration(s.GapMinutes())))
				printGaps(out, s.Gaps)
			}

			if s.Insight != nil {
				fmt.Fprintf(out, "\n%s\n", formatHeader("Reflection"))
				for _, line := range strings.Split(s.Insight.String(), "\n") {
					fmt.Fprintln(out, formatInsight("  "+line))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, today or yesterday; default: today)")
	cmd.Flags().BoolVar(&insight, "insight", false, "Ask the LLM for a short reflection on the day")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
