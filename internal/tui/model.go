// Package tui provides the interactive entry form.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/microdiary/internal/diary"
	"github.com/javiermolinar/microdiary/internal/tui/commands"
	"github.com/javiermolinar/microdiary/internal/tui/theme"
)

// draftDelay is how long typing must pause before the draft is saved.
const draftDelay = 500 * time.Millisecond

// field identifies a form control in focus order.
type field int

const (
	fieldActivity field = iota
	fieldCategory
	fieldStart
	fieldEnd
	fieldNotes
	fieldCount
)

var fieldIDs = [fieldCount]string{
	diary.FieldActivity,
	diary.FieldCategory,
	diary.FieldStartTime,
	diary.FieldEndTime,
	diary.FieldNotes,
}

var fieldLabels = [fieldCount]string{"Activity", "Category", "Start time", "End time", "Notes"}

// Options configures the form.
type Options struct {
	Date  string // YYYY-MM-DD the new entry is recorded on
	Theme string
	Gaps  diary.GapOptions

	// Entry puts the form in edit mode for an existing record.
	Entry *diary.Entry

	Now func() time.Time
}

// Model is the entry form model.
type Model struct {
	repo    diary.Repository
	date    string
	gapOpts diary.GapOptions
	now     func() time.Time
	styles  *Styles

	inputs   [fieldCount]textinput.Model // the category slot is unused
	category int                         // index into diary.Categories, -1 when unset
	focus    field

	editing   *diary.Entry
	entries   []*diary.Entry
	dayLoaded bool // entries reflect the stored day; submit waits for it

	result    diary.ValidationResult
	submitted bool
	saving    bool
	draftSeq  int

	width      int
	statusMsg  string
	statusErr  bool
	statusTime time.Time
}

// draftTickMsg fires draftDelay after a change; only the latest one saves.
type draftTickMsg struct {
	seq int
}

// New creates a new form model.
func New(repo diary.Repository, opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	date := opts.Date
	if date == "" {
		date = now().Format("2006-01-02")
	}

	t, err := theme.Load(opts.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	m := Model{
		repo:     repo,
		date:     date,
		gapOpts:  opts.Gaps,
		now:      now,
		styles:   styles,
		category: -1,
	}

	limits := [fieldCount]int{diary.MaxActivityLength, 0, 5, 5, diary.MaxNotesLength}
	placeholders := [fieldCount]string{"What were you doing?", "", "HH:MM", "HH:MM", "Optional"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		ti.Width = 40
		ti.Prompt = "> "
		ti.TextStyle = styles.InputText
		ti.PlaceholderStyle = styles.Placeholder
		ti.PromptStyle = styles.Prompt
		ti.Cursor.Style = styles.Cursor
		m.inputs[i] = ti
	}
	m.inputs[fieldStart].Width = 5
	m.inputs[fieldEnd].Width = 5

	if opts.Entry != nil {
		e := *opts.Entry
		m.editing = &e
		m.date = e.Date
		m.setFields(e.Fields())
	}

	m.setFocus(fieldActivity)
	return m
}

// Init loads the day and, for new entries, the stored draft.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, commands.LoadDay(m.repo, m.date)}
	if m.editing == nil {
		cmds = append(cmds, commands.LoadDraft(m.repo))
	}
	return tea.Batch(cmds...)
}

// Run starts the form and blocks until it exits.
func Run(ctx context.Context, repo diary.Repository, opts Options) error {
	p := tea.NewProgram(New(repo, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// fields returns the current form values.
func (m Model) fields() diary.Fields {
	category := ""
	if m.category >= 0 {
		category = diary.Categories[m.category].Value
	}
	return diary.FieldsFrom(
		m.inputs[fieldActivity].Value(),
		category,
		m.inputs[fieldStart].Value(),
		m.inputs[fieldEnd].Value(),
		m.inputs[fieldNotes].Value(),
	)
}

// setFields loads values into the form controls.
func (m *Model) setFields(f diary.Fields) {
	value := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	m.inputs[fieldActivity].SetValue(value(f.Activity))
	m.inputs[fieldStart].SetValue(value(f.StartTime))
	m.inputs[fieldEnd].SetValue(value(f.EndTime))
	m.inputs[fieldNotes].SetValue(value(f.Notes))

	m.category = -1
	for i, c := range diary.Categories {
		if f.Category != nil && c.Value == *f.Category {
			m.category = i
		}
	}
}

// isEmpty reports whether no control holds a value.
func (m Model) isEmpty() bool {
	f := m.fields()
	return f.Activity == nil && f.Category == nil && f.StartTime == nil && f.EndTime == nil && f.Notes == nil
}

// reset clears the form and leaves edit mode.
func (m *Model) reset() {
	m.editing = nil
	m.setFields(diary.Fields{})
	m.result = diary.ValidationResult{}
	m.submitted = false
	m.setFocus(fieldActivity)
}

func (m *Model) setFocus(f field) {
	m.focus = f
	for i := range m.inputs {
		if field(i) == f {
			m.inputs[i].Focus()
			m.inputs[i].PromptStyle = m.styles.PromptFocus
		} else {
			m.inputs[i].Blur()
			m.inputs[i].PromptStyle = m.styles.Prompt
		}
	}
}
