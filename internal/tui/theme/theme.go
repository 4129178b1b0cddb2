// Package theme provides color themes for the entry form.
package theme

import (
	"embed"
	"fmt"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// DefaultName is the theme used when none is configured.
const DefaultName = "mocha"

// Theme holds all colors for a form theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`
	BgHighlight string `toml:"bg_highlight"` // Focused input background
	Border      string `toml:"border"`       // Unfocused input border
	Fg          string `toml:"fg"`
	FgMuted     string `toml:"fg_muted"` // Help text, placeholders
	Accent      string `toml:"accent"`   // Title, focused border
	Error       string `toml:"error"`
	Success     string `toml:"success"`
	Warning     string `toml:"warning"` // Gaps, draft notices

	// Categories maps category values to their swatch color.
	Categories map[string]string `toml:"categories"`
}

// Load loads a theme by name from embedded files.
// Unknown names fall back to the default theme.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = DefaultName
	}
	name = strings.ToLower(name)

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		if name != DefaultName {
			return Load(DefaultName)
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()
	return &t, nil
}

func (t *Theme) applyDefaults() {
	t.BgHighlight = coalesce(t.BgHighlight, t.Bg)
	t.Border = coalesce(t.Border, t.FgMuted)
	t.Warning = coalesce(t.Warning, t.Accent)
	if t.Categories == nil {
		t.Categories = map[string]string{}
	}
}

// CategoryColor returns the swatch color for a category value, or the
// accent color for unknown values.
func (t *Theme) CategoryColor(category string) string {
	if c, ok := t.Categories[category]; ok && c != "" {
		return c
	}
	return t.Accent
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte", "light"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	return slices.Contains(Available(), strings.ToLower(name))
}
