package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/microdiary/internal/tui/theme"
)

// Styles holds all lipgloss styles for the form, derived from a theme.
type Styles struct {
	palette *theme.Palette

	Title        lipgloss.Style
	Badge        lipgloss.Style // edit mode marker
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	FieldError   lipgloss.Style
	Summary      lipgloss.Style
	SummaryTitle lipgloss.Style
	Muted        lipgloss.Style
	Gap          lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
	Help         lipgloss.Style

	InputText   lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style
	Prompt      lipgloss.Style
	PromptFocus lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)

	return &Styles{
		palette: p,

		Title:        lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Badge:        lipgloss.NewStyle().Bold(true).Padding(0, 1).Background(p.Accent).Foreground(p.TextOnAccent),
		Label:        lipgloss.NewStyle().Foreground(p.FgMuted),
		LabelFocused: lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		FieldError:   lipgloss.NewStyle().Foreground(p.Error),
		Summary: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Error).
			Background(p.ErrorBg).
			Foreground(p.Fg).
			Padding(0, 1),
		SummaryTitle: lipgloss.NewStyle().Bold(true).Foreground(p.Error).Background(p.ErrorBg),
		Muted:        lipgloss.NewStyle().Foreground(p.FgMuted),
		Gap:          lipgloss.NewStyle().Foreground(p.Warning),
		Status:       lipgloss.NewStyle().Foreground(p.Success),
		StatusError:  lipgloss.NewStyle().Bold(true).Foreground(p.Error),
		Help:         lipgloss.NewStyle().Foreground(p.FgMuted),

		InputText:   lipgloss.NewStyle().Foreground(p.Fg),
		Placeholder: lipgloss.NewStyle().Foreground(p.Border),
		Cursor:      lipgloss.NewStyle().Foreground(p.Accent),
		Prompt:      lipgloss.NewStyle().Foreground(p.Border),
		PromptFocus: lipgloss.NewStyle().Foreground(p.Accent),
	}
}

// Category returns the swatch style for a category value.
func (s *Styles) Category(category string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.palette.Category(category))
}
