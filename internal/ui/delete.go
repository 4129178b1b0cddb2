package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/microdiary/internal/debuglog"
)

func (a *App) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete [id]",
		Aliases: []string{"rm"},
		Short:   "Delete a recorded entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			ctx := cmd.Context()

			e, err := a.resolveEntry(ctx, args[0])
			if err != nil {
				return err
			}
			if err := a.repo.DeleteEntry(ctx, e.ID); err != nil {
				return fmt.Errorf("deleting entry: %w", err)
			}
			debuglog.Store("delete", e.ID)

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s: %s %s %s-%s\n",
				shortID(e.ID), e.Activity, e.Date, e.StartTime, e.EndTime)
			return nil
		},
	}
}
