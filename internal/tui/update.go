package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/microdiary/internal/debuglog"
	"github.com/javiermolinar/microdiary/internal/diary"
	"github.com/javiermolinar/microdiary/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := min(max(msg.Width-8, 20), 72)
		m.inputs[fieldActivity].Width = w
		m.inputs[fieldNotes].Width = w
		return m, nil

	case commands.DayLoadedMsg:
		if msg.Date == m.date {
			m.entries = msg.Entries
			m.dayLoaded = true
			if m.submitted {
				m.revalidate()
			}
		}
		return m, nil

	case commands.DraftLoadedMsg:
		if msg.Draft == nil || m.editing != nil || !m.isEmpty() {
			return m, nil
		}
		m.setFields(msg.Draft.Fields)
		return m, m.setStatus("Restored unsaved draft", false)

	case draftTickMsg:
		if msg.seq != m.draftSeq || m.editing != nil {
			return m, nil
		}
		return m, m.persistDraft()

	case commands.DraftSavedMsg:
		return m, nil

	case commands.EntrySavedMsg:
		m.saving = false
		verb := "Updated"
		if msg.Created {
			verb = "Saved"
		}
		status := fmt.Sprintf("%s %s %s-%s", verb, msg.Entry.Activity, msg.Entry.StartTime, msg.Entry.EndTime)
		wasEditing := m.editing != nil
		m.reset()
		m.draftSeq++
		m.dayLoaded = false
		cmds := []tea.Cmd{m.setStatus(status, false), commands.LoadDay(m.repo, m.date)}
		if !wasEditing {
			cmds = append(cmds, commands.ClearDraft(m.repo))
		}
		return m, tea.Batch(cmds...)

	case commands.ErrMsg:
		m.saving = false
		debuglog.Error("form", msg.Err)
		return m, m.setStatus("Error: "+msg.Err.Error(), true)

	case commands.ClearStatusMsg:
		if !m.now().Before(m.statusTime) {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	// Cursor blink and other input messages
	var cmd tea.Cmd
	if m.focus != fieldCategory {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	return m, cmd
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	debuglog.Key(msg.String())

	switch msg.String() {
	case "ctrl+c":
		return m, m.quit()
	case "esc":
		if m.editing != nil {
			m.reset()
			return m, m.setStatus("Edit cancelled", false)
		}
		return m, m.quit()
	case "tab", "down":
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil
	case "ctrl+s":
		return m.submit()
	case "enter":
		if m.focus == fieldNotes {
			return m.submit()
		}
		m.setFocus(m.focus + 1)
		return m, nil
	}

	if m.focus == fieldCategory {
		if !m.handleCategoryKey(msg) {
			return m, nil
		}
		return m, m.changed()
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.changed())
}

// handleCategoryKey moves the category selection. It reports whether the
// selection changed.
func (m *Model) handleCategoryKey(msg tea.KeyMsg) bool {
	n := len(diary.Categories)
	prev := m.category

	switch key := msg.String(); key {
	case "right", "l", " ":
		m.category = (m.category + 1) % n
	case "left", "h":
		if m.category <= 0 {
			m.category = n - 1
		} else {
			m.category--
		}
	case "backspace", "delete":
		m.category = -1
	default:
		if len(key) == 1 && key[0] >= '1' && int(key[0]-'0') <= n {
			m.category = int(key[0] - '1')
		}
	}
	return m.category != prev
}

// changed schedules a draft save and refreshes errors after a failed submit.
func (m *Model) changed() tea.Cmd {
	if m.submitted {
		m.revalidate()
	}
	if m.editing != nil {
		return nil
	}
	m.draftSeq++
	seq := m.draftSeq
	return tea.Tick(draftDelay, func(time.Time) tea.Msg {
		return draftTickMsg{seq: seq}
	})
}

// persistDraft stores the form values, or clears the draft when empty.
func (m Model) persistDraft() tea.Cmd {
	if m.isEmpty() {
		return commands.ClearDraft(m.repo)
	}
	return commands.SaveDraft(m.repo, m.fields(), m.now())
}

func (m *Model) revalidate() diary.ValidationResult {
	excludeID := ""
	if m.editing != nil {
		excludeID = m.editing.ID
	}
	m.result = diary.Validate(m.fields(), m.entries, excludeID)
	return m.result
}

// submit validates the form and saves it when valid.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	if !m.dayLoaded {
		return m, m.setStatus("Still loading this day's entries, try again", true)
	}
	m.submitted = true
	res := m.revalidate()

	ids := make([]string, 0, len(res.Errors))
	for _, fe := range res.Errors {
		ids = append(ids, fe.FieldID)
	}
	debuglog.Validation("form", res.Valid(), ids)

	if !res.Valid() {
		for f := range fieldCount {
			if res.HasError(fieldIDs[f]) {
				m.setFocus(f)
				break
			}
		}
		return m, nil
	}

	m.saving = true
	fields := m.fields()
	if m.editing != nil {
		e := *m.editing
		e.Apply(fields, m.now())
		return m, commands.UpdateEntry(m.repo, &e)
	}
	return m, commands.CreateEntry(m.repo, m.date, fields, m.now())
}

// quit flushes a pending draft before exiting.
func (m Model) quit() tea.Cmd {
	if m.editing == nil && m.draftSeq > 0 {
		return tea.Sequence(m.persistDraft(), tea.Quit)
	}
	return tea.Quit
}

func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	const ttl = 3 * time.Second
	m.statusMsg = msg
	m.statusErr = isErr
	m.statusTime = m.now().Add(ttl)
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}
