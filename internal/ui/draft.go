package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/microdiary/internal/dateutil"
	"github.com/javiermolinar/microdiary/internal/diary"
)

func (a *App) draftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Inspect or discard the unsaved form draft",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the autosaved form draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			d, err := a.repo.LoadDraft(cmd.Context())
			if err != nil {
				return fmt.Errorf("loading draft: %w", err)
			}

			out := cmd.OutOrStdout()
			if d == nil {
				fmt.Fprintln(out, "No draft saved.")
				return nil
			}

			fmt.Fprintf(out, "Draft saved %s\n", formatMuted(dateutil.FormatDateTime(d.SavedAt)))
			value := func(p *string) string {
				if p == nil {
					return formatMuted("(empty)")
				}
				return *p
			}
			fmt.Fprintf(out, "  activity:   %s\n", value(d.Fields.Activity))
			category := formatMuted("(empty)")
			if d.Fields.Category != nil {
				category = diary.CategoryLabel(*d.Fields.Category)
			}
			fmt.Fprintf(out, "  category:   %s\n", category)
			fmt.Fprintf(out, "  start-time: %s\n", value(d.Fields.StartTime))
			fmt.Fprintf(out, "  end-time:   %s\n", value(d.Fields.EndTime))
			fmt.Fprintf(out, "  notes:      %s\n", value(d.Fields.Notes))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Discard the autosaved form draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			if err := a.repo.ClearDraft(cmd.Context()); err != nil {
				return fmt.Errorf("clearing draft: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Draft cleared.")
			return nil
		},
	})

	return cmd
}
