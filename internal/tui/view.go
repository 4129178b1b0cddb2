package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/microdiary/internal/dateutil"
	"github.com/javiermolinar/microdiary/internal/diary"
)

const helpText = "tab/shift+tab move · ←/→ category · ctrl+s save · esc "

// View renders the form.
func (m Model) View() string {
	s := m.styles
	var lines []string
	add := func(l ...string) { lines = append(lines, l...) }

	title := s.Title.Render("MicroDiary · " + dateutil.FormatDayHeader(m.date))
	if m.editing != nil {
		title += " " + s.Badge.Render("EDITING")
	}
	add(title, "")

	for f := range fieldCount {
		label := s.Label.Render(fieldLabels[f])
		if f == m.focus {
			label = s.LabelFocused.Render(fieldLabels[f])
		}
		add(label)
		if f == fieldCategory {
			add(m.renderCategory())
		} else {
			add(m.inputs[f].View())
		}
		for _, fe := range m.result.FieldErrors(fieldIDs[f]) {
			add(s.FieldError.Render("  ✗ " + fe.Message))
		}
	}

	if !m.result.Valid() {
		add("", m.renderSummary())
	}

	add("")
	add(m.renderDay()...)

	add("")
	if m.statusMsg != "" {
		if m.statusErr {
			add(s.StatusError.Render(m.statusMsg))
		} else {
			add(s.Status.Render(m.statusMsg))
		}
	}
	quitLabel := "quit"
	if m.editing != nil {
		quitLabel = "cancel edit"
	}
	add(s.Help.Render(helpText + quitLabel))

	out := strings.Join(lines, "\n")
	if m.width <= 0 {
		return out
	}
	rows := strings.Split(out, "\n")
	for i, r := range rows {
		rows[i] = ansi.Truncate(r, m.width, "…")
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderCategory() string {
	s := m.styles
	if m.category < 0 {
		hint := "  ‹ choose a category ›"
		if m.focus != fieldCategory {
			hint = "  (none)"
		}
		return s.Muted.Render(hint)
	}
	c := diary.Categories[m.category]
	swatch := s.Category(c.Value).Render("●")
	text := fmt.Sprintf("%s %s", swatch, c.Label)
	if m.focus == fieldCategory {
		return fmt.Sprintf("  ‹ %s ›  %s", text, s.Muted.Render(fmt.Sprintf("%d/%d", m.category+1, len(diary.Categories))))
	}
	return "  " + text
}

// renderSummary lists every problem in the order it was found.
func (m Model) renderSummary() string {
	s := m.styles
	n := len(m.result.Errors)
	noun := "problem"
	if n != 1 {
		noun = "problems"
	}
	rows := []string{s.SummaryTitle.Render(fmt.Sprintf("Please fix %d %s:", n, noun))}
	for _, fe := range m.result.Errors {
		rows = append(rows, fmt.Sprintf("• %s: %s", fieldLabel(fe.FieldID), fe.Message))
	}
	return s.Summary.Render(strings.Join(rows, "\n"))
}

func fieldLabel(id string) string {
	for f, fid := range fieldIDs {
		if fid == id {
			return fieldLabels[f]
		}
	}
	return id
}

// renderDay lists the day's entries interleaved with its gaps.
func (m Model) renderDay() []string {
	s := m.styles
	day := diary.NewDay(m.date, m.entries)
	if day.Len() == 0 {
		return []string{s.Muted.Render("Nothing recorded yet for this day.")}
	}

	out := []string{s.Label.Render("Recorded")}
	gaps := day.Gaps(m.gapOpts)
	gi := 0
	for _, e := range day.Entries() {
		for gi < len(gaps) && gaps[gi].From <= e.StartTime {
			out = append(out, m.renderGap(gaps[gi]))
			gi++
		}
		marker := " "
		if m.editing != nil && e.ID == m.editing.ID {
			marker = "›"
		}
		out = append(out, fmt.Sprintf("%s %s-%s %s %s %s",
			marker,
			e.StartTime, e.EndTime,
			s.Category(e.Category).Render("●"),
			e.Activity,
			s.Muted.Render(diary.CategoryLabel(e.Category)),
		))
	}
	for ; gi < len(gaps); gi++ {
		out = append(out, m.renderGap(gaps[gi]))
	}
	return out
}

func (m Model) renderGap(g diary.Gap) string {
	return m.styles.Gap.Render(fmt.Sprintf("  %s-%s unrecorded (%dm)", g.From, g.To, g.Minutes()))
}
