package ui

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/microdiary/internal/diary"
	"github.com/javiermolinar/microdiary/internal/export"
)

func (a *App) exportCmd() *cobra.Command {
	var (
		format    string
		output    string
		copyClip  bool
		withBOM   bool
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export entries as CSV or JSON",
		Long: `Export recorded entries for use in spreadsheets or other tools.

Without --output or --copy the export is written to stdout. If --output
names a directory, a dated file name is chosen inside it. --bom prefixes
CSV output with a UTF-8 byte order mark for spreadsheet apps.`,
		Example: `  microdiary export --format=csv --output=diary.csv
  microdiary export --format=json --start=2024-01-01 --end=2024-01-31 --copy`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if format != "csv" && format != "json" {
				return fmt.Errorf("unsupported export format %q: must be csv or json", format)
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}
			ctx := cmd.Context()

			var (
				entries []*diary.Entry
				err     error
			)
			if startDate == "" && endDate == "" {
				entries, err = a.repo.ListAllEntries(ctx)
			} else {
				r, rangeErr := a.dateRange(startDate, endDate)
				if rangeErr != nil {
					return rangeErr
				}
				entries, err = a.repo.ListEntries(ctx, r.Start, r.End)
			}
			if err != nil {
				return fmt.Errorf("fetching entries: %w", err)
			}

			var buf bytes.Buffer
			switch format {
			case "csv":
				err = export.WriteCSV(&buf, entries, withBOM)
			case "json":
				var clientID string
				if clientID, err = a.repo.ClientID(ctx); err != nil {
					return fmt.Errorf("loading client id: %w", err)
				}
				var env *export.Envelope
				if env, err = export.BuildEnvelope(entries, clientID, a.now()); err != nil {
					return err
				}
				err = export.WriteJSON(&buf, env)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output == "" && !copyClip {
				_, err := out.Write(buf.Bytes())
				return err
			}

			if output != "" {
				path := output
				if info, err := os.Stat(path); err == nil && info.IsDir() {
					path = filepath.Join(path, export.FileName(format, a.now()))
				}
				if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
					return fmt.Errorf("writing export: %w", err)
				}
				fmt.Fprintf(out, "Exported %d entries to %s\n", len(entries), path)
			}
			if copyClip {
				if err := clipboard.WriteAll(buf.String()); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Fprintf(out, "Copied %d entries to the clipboard\n", len(entries))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "Export format: csv or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file or directory instead of stdout")
	cmd.Flags().BoolVar(&copyClip, "copy", false, "Copy the export to the clipboard")
	cmd.Flags().BoolVar(&withBOM, "bom", false, "Prefix CSV output with a UTF-8 BOM")
	cmd.Flags().StringVar(&startDate, "start", "", "First date to export (default: all)")
	cmd.Flags().StringVar(&endDate, "end", "", "Last date to export (default: start date)")

	return cmd
}
