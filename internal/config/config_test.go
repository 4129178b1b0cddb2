package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Diary.DayStart != "06:00" {
		t.Errorf("expected day_start 06:00, got %s", cfg.Diary.DayStart)
	}
	if cfg.Diary.DayEnd != "23:59" {
		t.Errorf("expected day_end 23:59, got %s", cfg.Diary.DayEnd)
	}
	if cfg.Diary.MinGapMinutes != 15 {
		t.Errorf("expected min_gap_minutes 15, got %d", cfg.Diary.MinGapMinutes)
	}
	if cfg.LLM.Provider != "copilot" {
		t.Errorf("expected provider copilot, got %s", cfg.LLM.Provider)
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha, got %s", cfg.UI.Theme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Diary.DayStart != "06:00" {
		t.Errorf("expected default day_start, got %s", cfg.Diary.DayStart)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[diary]
day_start = "07:00"
day_end = "22:00"
min_gap_minutes = 30

[llm]
provider = "ollama"
model = "llama3"

[storage]
db_path = "/tmp/test.db"

[ui]
theme = "latte"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Diary.DayStart != "07:00" || cfg.Diary.DayEnd != "22:00" {
		t.Errorf("day window = %s-%s, want 07:00-22:00", cfg.Diary.DayStart, cfg.Diary.DayEnd)
	}
	if cfg.Diary.MinGapMinutes != 30 {
		t.Errorf("expected min_gap_minutes 30, got %d", cfg.Diary.MinGapMinutes)
	}
	if cfg.LLM.Provider != "ollama" || cfg.LLM.Model != "llama3" {
		t.Errorf("llm = %+v", cfg.LLM)
	}
	// Unset keys keep defaults
	if cfg.LLM.BaseURL != "http://localhost:11434" {
		t.Errorf("expected default base_url, got %s", cfg.LLM.BaseURL)
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")
	if err := os.WriteFile(configPath, []byte("[diary\nday_start ="), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[diary]
day_start = "07:00"
day_end = "21:00"

[storage]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("MICRODIARY_DAY_START", "08:00")
	t.Setenv("MICRODIARY_MIN_GAP_MINUTES", "20")
	t.Setenv("MICRODIARY_LLM_MODEL", "gpt-4o-mini")
	t.Setenv("MICRODIARY_DB_PATH", "/tmp/env.db")
	t.Setenv("MICRODIARY_UI_THEME", "frappe")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Diary.DayStart != "08:00" {
		t.Errorf("expected day_start 08:00 from env, got %s", cfg.Diary.DayStart)
	}
	if cfg.Diary.DayEnd != "21:00" {
		t.Errorf("expected day_end 21:00 from file, got %s", cfg.Diary.DayEnd)
	}
	if cfg.Diary.MinGapMinutes != 20 {
		t.Errorf("expected min_gap_minutes 20 from env, got %d", cfg.Diary.MinGapMinutes)
	}
	if cfg.LLM.Model != "gpt-4o-mini" {
		t.Errorf("expected model from env, got %s", cfg.LLM.Model)
	}
	if cfg.Storage.DBPath != "/tmp/env.db" {
		t.Errorf("expected db_path from env, got %s", cfg.Storage.DBPath)
	}
	if cfg.UI.Theme != "frappe" {
		t.Errorf("expected theme from env, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_InvalidEnvMinGap(t *testing.T) {
	t.Setenv("MICRODIARY_MIN_GAP_MINUTES", "quarter")

	if _, err := LoadFrom("/nonexistent/path/config.toml"); err == nil {
		t.Fatal("expected error for non-numeric min gap")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "day start missing leading zero", mutate: func(c *Config) { c.Diary.DayStart = "6:00" }},
		{name: "day end out of range", mutate: func(c *Config) { c.Diary.DayEnd = "24:00" }},
		{name: "start after end", mutate: func(c *Config) { c.Diary.DayStart, c.Diary.DayEnd = "18:00", "09:00" }},
		{name: "start equals end", mutate: func(c *Config) { c.Diary.DayStart, c.Diary.DayEnd = "09:00", "09:00" }},
		{name: "zero min gap", mutate: func(c *Config) { c.Diary.MinGapMinutes = 0 }},
		{name: "empty db path", mutate: func(c *Config) { c.Storage.DBPath = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestGapOptions(t *testing.T) {
	cfg := Default()
	cfg.Diary.MinGapMinutes = 25

	opts := cfg.GapOptions()
	if opts.DayStart != "06:00" || opts.DayEnd != "23:59" || opts.MinGapMinutes != 25 {
		t.Errorf("GapOptions() = %+v", opts)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/test.db", filepath.Join(home, "test.db")},
		{"/absolute/path.db", "/absolute/path.db"},
		{"relative/path.db", "relative/path.db"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := expandPath(tc.input)
			if got != tc.want {
				t.Errorf("expandPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.toml")

	cfg := Default()
	cfg.Diary.DayStart = "05:30"
	cfg.Diary.DayEnd = "22:30"
	cfg.Diary.MinGapMinutes = 10

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Diary.DayStart != "05:30" || loaded.Diary.DayEnd != "22:30" {
		t.Errorf("day window = %s-%s", loaded.Diary.DayStart, loaded.Diary.DayEnd)
	}
	if loaded.Diary.MinGapMinutes != 10 {
		t.Errorf("expected min_gap_minutes 10, got %d", loaded.Diary.MinGapMinutes)
	}
}
