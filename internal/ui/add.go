package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/microdiary/internal/dateutil"
	"github.com/javiermolinar/microdiary/internal/debuglog"
	"github.com/javiermolinar/microdiary/internal/diary"
)

func (a *App) addCmd() *cobra.Command {
	var (
		date     string
		start    string
		end      string
		category string
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "add [activity]",
		Short: "Record an activity",
		Long: `Record what you did between two times of a day.

The entry is rejected if it overlaps another entry of the same day.

Categories: work, education, leisure, personal-care, household, travel,
social, sleep, other.`,
		Example: `  microdiary add "Standup" --start=09:00 --end=09:15 --category=work
  microdiary add "Gym" --date=yesterday --start=18:00 --end=19:00 --category=leisure --notes="legs"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			day, err := dateutil.ParseDateRelative(date, a.now())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			fields := diary.FieldsFrom(args[0], category, start, end, notes)
			e, err := a.createEntry(ctx, day, fields)
			if err != nil {
				if res, ok := validationResult(err); ok {
					printFieldErrors(cmd.ErrOrStderr(), res)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s: %s [%s] %s %s-%s\n",
				shortID(e.ID), e.Activity, diary.CategoryLabel(e.Category), e.Date, e.StartTime, e.EndTime)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, today or yesterday; default: today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, required)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM, required)")
	cmd.Flags().StringVar(&category, "category", "", "Category (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "Optional notes")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

// createEntry validates fields against the entries already on day and saves
// a new record. A rejected candidate returns a *diary.ValidationError.
func (a *App) createEntry(ctx context.Context, day string, fields diary.Fields) (*diary.Entry, error) {
	existing, err := a.repo.ListEntriesForDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("fetching entries: %w", err)
	}

	res := diary.Validate(fields, existing, "")
	debuglog.Validation("add", res.Valid(), failedFields(res))
	if !res.Valid() {
		return nil, res.Err()
	}

	clientID, err := a.repo.ClientID(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading client id: %w", err)
	}

	e := diary.NewEntry(fields, day, clientID, a.now())
	if err := a.repo.CreateEntry(ctx, e); err != nil {
		return nil, fmt.Errorf("saving entry: %w", err)
	}
	debuglog.Store("create", e.ID)
	return e, nil
}

func failedFields(res diary.ValidationResult) []string {
	ids := make([]string, 0, len(res.Errors))
	for _, fe := range res.Errors {
		ids = append(ids, fe.FieldID)
	}
	return ids
}
