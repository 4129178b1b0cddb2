package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the CLI.
var (
	colorHeader  = color.New(color.Bold)
	colorTime    = color.New(color.FgCyan)
	colorStats   = color.New(color.FgGreen)
	colorGap     = color.New(color.FgYellow)
	colorError   = color.New(color.FgRed, color.Bold)
	colorInsight = color.New(color.FgMagenta)
	colorMuted   = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

func formatHeader(s string) string  { return colorHeader.Sprint(s) }
func formatTime(s string) string    { return colorTime.Sprint(s) }
func formatStats(s string) string   { return colorStats.Sprint(s) }
func formatGap(s string) string     { return colorGap.Sprint(s) }
func formatError(s string) string   { return colorError.Sprint(s) }
func formatInsight(s string) string { return colorInsight.Sprint(s) }
func formatMuted(s string) string   { return colorMuted.Sprint(s) }
