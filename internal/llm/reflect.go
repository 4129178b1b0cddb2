package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/javiermolinar/microdiary/internal/diary"
)

const reflectorSystemPrompt = `You are a calm, non-judgemental time-use coach. You read one day of a time-use diary and reply with JSON only. Be concise and concrete.`

const reflectorUserPrompt = `Reflect on this day of a time-use diary.

Reply with EXACTLY this JSON shape:
{"headline": "3-6 word summary", "observations": ["...", "..."], "suggestion": "one sentence"}

Rules:
- At most 3 observations, each under 80 characters
- Mention specific times and durations from the data
- Unrecorded gaps are informational, never a failure
- No markdown

%s`

// Reflection is the model's take on a single day.
type Reflection struct {
	Headline     string   `json:"headline"`
	Observations []string `json:"observations"`
	Suggestion   string   `json:"suggestion"`
}

// String renders the reflection as plain text.
func (r *Reflection) String() string {
	if r == nil {
		return ""
	}
	var sb strings.Builder
	if r.Headline != "" {
		sb.WriteString(r.Headline)
		sb.WriteString("\n")
	}
	for _, o := range r.Observations {
		fmt.Fprintf(&sb, "  - %s\n", o)
	}
	if r.Suggestion != "" {
		fmt.Fprintf(&sb, "Next: %s\n", r.Suggestion)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Reflector asks an LLM to comment on a recorded day.
type Reflector struct {
	client Client
}

// NewReflector creates a Reflector backed by client.
func NewReflector(client Client) *Reflector {
	return &Reflector{client: client}
}

// ReflectDay sends the day's entries and gaps to the model.
func (r *Reflector) ReflectDay(ctx context.Context, date string, entries []*diary.Entry, gaps []diary.Gap) (*Reflection, error) {
	if len(entries) == 0 {
		return nil, errors.New("nothing recorded for this day")
	}

	var out Reflection
	err := r.client.ChatJSON(ctx, []Message{
		{Role: RoleSystem, Content: reflectorSystemPrompt},
		{Role: RoleUser, Content: fmt.Sprintf(reflectorUserPrompt, FormatDay(date, entries, gaps))},
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("reflecting on %s: %w", date, err)
	}
	if out.Headline == "" && len(out.Observations) == 0 && out.Suggestion == "" {
		return nil, errors.New("empty reflection")
	}
	return &out, nil
}

// FormatDay renders a day in the compact line format sent to the model.
func FormatDay(date string, entries []*diary.Entry, gaps []diary.Gap) string {
	day := diary.NewDay(date, entries)
	stats := day.Stats()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Day: %s\n\nEntries:\n", date)
	for _, e := range day.Entries() {
		fmt.Fprintf(&sb, "  %s-%s  [%s]  %s  %s\n",
			e.StartTime, e.EndTime, diary.CategoryLabel(e.Category), e.Activity, formatDuration(e.Duration()))
	}

	sb.WriteString("\nBy category:\n")
	for _, c := range diary.Categories {
		if m := stats.CategoryMinutes[c.Value]; m > 0 {
			fmt.Fprintf(&sb, "  %s  %s (%d%%)\n", c.Label, formatDuration(m), stats.CategoryPercent(c.Value))
		}
	}

	if len(gaps) > 0 {
		sb.WriteString("\nUnrecorded gaps:\n")
		for _, g := range gaps {
			fmt.Fprintf(&sb, "  %s-%s  %s\n", g.From, g.To, formatDuration(g.Minutes()))
		}
	}
	return sb.String()
}

// formatDuration formats minutes as a human-readable duration.
func formatDuration(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	hours, mins := minutes/60, minutes%60
	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", mins)
	case mins == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh%dm", hours, mins)
	}
}
