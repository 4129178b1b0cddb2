package theme

import "testing"

func TestBlend(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		ratio float64
		want  string
	}{
		{"keep a", "#000000", "#ffffff", 0, "#000000"},
		{"full b", "#000000", "#ffffff", 1, "#ffffff"},
		{"half", "#000000", "#ffffff", 0.5, "#808080"},
		{"clamped", "#102030", "#ffffff", -3, "#102030"},
		{"malformed", "red", "#ffffff", 0.5, "red"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blend(tt.a, tt.b, tt.ratio); got != tt.want {
				t.Errorf("Blend(%q, %q, %v) = %q, want %q", tt.a, tt.b, tt.ratio, got, tt.want)
			}
		})
	}
}

func TestIsLight(t *testing.T) {
	for _, name := range []string{"latte", "light"} {
		th, _ := Load(name)
		if !IsLight(th.Bg) {
			t.Errorf("%s should be a light theme", name)
		}
	}
	for _, name := range []string{"mocha", "macchiato", "frappe"} {
		th, _ := Load(name)
		if IsLight(th.Bg) {
			t.Errorf("%s should be a dark theme", name)
		}
	}
}

func TestNewPalette(t *testing.T) {
	p := NewPalette(nil)
	if p.Accent == "" || p.ErrorBg == "" {
		t.Fatalf("palette missing colors: %+v", p)
	}
	if string(p.Category("leisure")) != "#a6e3a1" {
		t.Errorf("Category(leisure) = %q", p.Category("leisure"))
	}
	if p.ErrorBg == p.Error {
		t.Error("ErrorBg should be blended with the background")
	}
}
