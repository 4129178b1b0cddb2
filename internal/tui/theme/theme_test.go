package theme

import (
	"testing"

	"github.com/javiermolinar/microdiary/internal/diary"
)

func TestLoad_AllAvailable(t *testing.T) {
	for _, name := range Available() {
		t.Run(name, func(t *testing.T) {
			th, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%q) error = %v", name, err)
			}
			for field, v := range map[string]string{
				"bg": th.Bg, "fg": th.Fg, "fg_muted": th.FgMuted, "accent": th.Accent,
				"error": th.Error, "success": th.Success, "border": th.Border,
			} {
				if _, _, _, ok := parseRGB(v); !ok {
					t.Errorf("%s = %q is not a hex color", field, v)
				}
			}
			for _, c := range diary.Categories {
				if _, ok := th.Categories[c.Value]; !ok {
					t.Errorf("missing color for category %q", c.Value)
				}
			}
		})
	}
}

func TestLoad_FallbackToDefault(t *testing.T) {
	th, err := Load("does-not-exist")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if th.Name != "Catppuccin Mocha" {
		t.Errorf("fallback theme = %q, want Catppuccin Mocha", th.Name)
	}

	empty, err := Load("")
	if err != nil || empty.Name != th.Name {
		t.Errorf("Load(\"\") = %v, %v", empty, err)
	}
}

func TestCategoryColor(t *testing.T) {
	th, _ := Load("mocha")
	if got := th.CategoryColor("work"); got != "#89b4fa" {
		t.Errorf("CategoryColor(work) = %q", got)
	}
	if got := th.CategoryColor("unknown"); got != th.Accent {
		t.Errorf("CategoryColor(unknown) = %q, want accent %q", got, th.Accent)
	}
}

func TestIsAvailable(t *testing.T) {
	if !IsAvailable("Latte") {
		t.Error("Latte should be available (case-insensitive)")
	}
	if IsAvailable("dracula") {
		t.Error("dracula should not be available")
	}
}
