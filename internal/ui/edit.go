package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/microdiary/internal/debuglog"
	"github.com/javiermolinar/microdiary/internal/diary"
)

func (a *App) editCmd() *cobra.Command {
	var (
		activity string
		category string
		start    string
		end      string
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Change a recorded entry",
		Long: `Change the activity, category, times or notes of an entry.

Only the flags you pass are changed. The id may be shortened to its first
block, as shown by 'microdiary list'. Pass --notes="" to clear notes.`,
		Example: `  microdiary edit 3f2a9c1e --end=10:00
  microdiary edit 3f2a9c1e --activity="Planning" --category=work`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			ctx := cmd.Context()

			e, err := a.resolveEntry(ctx, args[0])
			if err != nil {
				return err
			}

			fields := e.Fields()
			flags := cmd.Flags()
			override := func(name string, dst **string, value string) {
				if flags.Changed(name) {
					v := strings.TrimSpace(value)
					*dst = &v
					if v == "" {
						*dst = nil
					}
				}
			}
			override("activity", &fields.Activity, activity)
			override("category", &fields.Category, category)
			override("start", &fields.StartTime, start)
			override("end", &fields.EndTime, end)
			override("notes", &fields.Notes, notes)

			if err := a.updateEntry(ctx, e, fields); err != nil {
				if res, ok := validationResult(err); ok {
					printFieldErrors(cmd.ErrOrStderr(), res)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s [%s] %s %s-%s\n",
				shortID(e.ID), e.Activity, diary.CategoryLabel(e.Category), e.Date, e.StartTime, e.EndTime)
			return nil
		},
	}

	cmd.Flags().StringVar(&activity, "activity", "", "New activity")
	cmd.Flags().StringVar(&category, "category", "", "New category")
	cmd.Flags().StringVar(&start, "start", "", "New start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "New end time (HH:MM)")
	cmd.Flags().StringVar(&notes, "notes", "", "New notes")

	return cmd
}

// updateEntry validates fields with e excluded from the overlap check and
// saves the change.
func (a *App) updateEntry(ctx context.Context, e *diary.Entry, fields diary.Fields) error {
	existing, err := a.repo.ListEntriesForDate(ctx, e.Date)
	if err != nil {
		return fmt.Errorf("fetching entries: %w", err)
	}

	res := diary.Validate(fields, existing, e.ID)
	debuglog.Validation("edit", res.Valid(), failedFields(res))
	if !res.Valid() {
		return res.Err()
	}

	e.Apply(fields, a.now())
	if err := a.repo.UpdateEntry(ctx, e); err != nil {
		return fmt.Errorf("updating entry: %w", err)
	}
	debuglog.Store("update", e.ID)
	return nil
}

// resolveEntry finds an entry by full id or by unique id prefix.
func (a *App) resolveEntry(ctx context.Context, id string) (*diary.Entry, error) {
	e, err := a.repo.GetEntry(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching entry: %w", err)
	}
	if e != nil {
		return e, nil
	}

	all, err := a.repo.ListAllEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching entries: %w", err)
	}
	var match *diary.Entry
	for _, candidate := range all {
		if !strings.HasPrefix(candidate.ID, id) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("id %q is ambiguous", id)
		}
		match = candidate
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", diary.ErrEntryNotFound, id)
	}
	return match, nil
}

func validationResult(err error) (diary.ValidationResult, bool) {
	var ve *diary.ValidationError
	if errors.As(err, &ve) {
		return diary.ValidationResult{Errors: ve.Errors}, true
	}
	return diary.ValidationResult{}, false
}
