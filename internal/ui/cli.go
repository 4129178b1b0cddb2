package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/microdiary/internal/config"
	"github.com/javiermolinar/microdiary/internal/dateutil"
	"github.com/javiermolinar/microdiary/internal/db"
	"github.com/javiermolinar/microdiary/internal/debuglog"
	"github.com/javiermolinar/microdiary/internal/diary"
	"github.com/javiermolinar/microdiary/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   diary.Repository
	owned  bool // repo was opened by the app and must be closed
	config *config.Config
	root   *cobra.Command
	debug  bool
	now    func() time.Time
}

// NewApp creates a new CLI application. A nil repo is opened lazily from
// the configured database path on the first command that needs it.
func NewApp(repo diary.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg, now: time.Now}
	var (
		date   string
		editID string
	)

	a.root = &cobra.Command{
		Use:   "microdiary",
		Short: "A time-use diary for the terminal",
		Long: `MicroDiary records what you did, when, and in which category.

Entries on the same day may not overlap. Unrecorded stretches of the day
are reported as gaps so you can fill them in later.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := debuglog.Init(a.debug, ""); err != nil {
				return err
			}
			debuglog.Command(cmd.CommandPath(), args)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			day, err := dateutil.ParseDateRelative(date, a.now())
			if err != nil {
				return err
			}
			opts := tui.Options{
				Date:  day,
				Theme: a.config.UI.Theme,
				Gaps:  a.config.GapOptions(),
			}
			if editID != "" {
				e, err := a.resolveEntry(cmd.Context(), editID)
				if err != nil {
					return err
				}
				opts.Entry = e
			}
			return tui.Run(cmd.Context(), a.repo, opts)
		},
	}

	a.root.Flags().StringVarP(&date, "date", "d", "", "Day to record on (YYYY-MM-DD, today, yesterday)")
	a.root.Flags().StringVar(&editID, "edit", "", "Open the form on an existing entry")
	a.root.MarkFlagsMutuallyExclusive("date", "edit")

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Write debug events to "+debuglog.DefaultPath)

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.editCmd())
	a.root.AddCommand(a.deleteCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.gapsCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.draftCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "microdiary %s (commit: %s, schema %s)\n", Version, Commit, diary.SchemaVersion)
		},
	}
}

// ensureRepo opens the configured database if no repository was injected.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	path := a.config.Storage.DBPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.repo = repo
	a.owned = true
	return nil
}

// SetOutput redirects command output, for tests and scripting.
func (a *App) SetOutput(out, errOut io.Writer) {
	a.root.SetOut(out)
	a.root.SetErr(errOut)
}

// SetArgs overrides os.Args for the next Execute.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	defer debuglog.Close()
	err := a.root.Execute()
	debuglog.Error("execute", err)
	return err
}

// Close releases the repository if the app opened it.
func (a *App) Close() error {
	if a.owned && a.repo != nil {
		a.owned = false
		return a.repo.Close()
	}
	return nil
}
