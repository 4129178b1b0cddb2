package theme

import (
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds lipgloss colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	Border      lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Error       lipgloss.Color
	Success     lipgloss.Color
	Warning     lipgloss.Color

	// ErrorBg tints the background of the error summary.
	ErrorBg      lipgloss.Color
	TextOnAccent lipgloss.Color

	theme *Theme
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(DefaultName)
	}

	ratio := 0.80
	if IsLight(t.Bg) {
		ratio = 0.90
	}

	return &Palette{
		Bg:           lipgloss.Color(t.Bg),
		BgHighlight:  lipgloss.Color(t.BgHighlight),
		Border:       lipgloss.Color(t.Border),
		Fg:           lipgloss.Color(t.Fg),
		FgMuted:      lipgloss.Color(t.FgMuted),
		Accent:       lipgloss.Color(t.Accent),
		Error:        lipgloss.Color(t.Error),
		Success:      lipgloss.Color(t.Success),
		Warning:      lipgloss.Color(t.Warning),
		ErrorBg:      lipgloss.Color(Blend(t.Error, t.Bg, ratio)),
		TextOnAccent: lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),
		theme:        t,
	}
}

// Category returns the swatch color for a category value.
func (p *Palette) Category(category string) lipgloss.Color {
	return lipgloss.Color(p.theme.CategoryColor(category))
}

// IsLight reports whether a background color reads as a light theme.
func IsLight(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

// Blend mixes a towards b by ratio (0 keeps a, 1 yields b).
// Malformed colors return a unchanged.
func Blend(a, b string, ratio float64) string {
	ar, ag, ab, ok1 := parseRGB(a)
	br, bg, bb, ok2 := parseRGB(b)
	if !ok1 || !ok2 {
		return a
	}
	ratio = min(max(ratio, 0), 1)
	mix := func(x, y int) int {
		return int(math.Round(float64(x)*(1-ratio) + float64(y)*ratio))
	}
	return fmt.Sprintf("#%02x%02x%02x", mix(ar, br), mix(ag, bg), mix(ab, bb))
}

func parseRGB(hex string) (r, g, b int, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}

func chooseTextColor(bg, lightText, darkText string) string {
	if contrastRatio(bg, lightText) >= contrastRatio(bg, darkText) {
		return lightText
	}
	return darkText
}

func contrastRatio(a, b string) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(hex string) float64 {
	r, g, b, ok := parseRGB(hex)
	if !ok {
		return 0
	}
	return 0.2126*srgbToLinear(r) + 0.7152*srgbToLinear(g) + 0.0722*srgbToLinear(b)
}

func srgbToLinear(c int) float64 {
	v := float64(c) / 255.0
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
