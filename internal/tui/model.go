// Package tui is the terminal front end built on Bubble Tea. Key presses
// call focus.Controller operations; ticks from the controller's scheduler
// arrive as messages so every state change happens inside Update.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"focusflow/internal/focus"
	"focusflow/internal/models"
)

type mode int

const (
	modeNormal mode = iota
	modeDuration
	modeAdd
	modeEdit
)

// runMsg carries a scheduler callback onto the Update goroutine.
type runMsg func()

// Notices holds the completion banner. The controller writes it from
// inside Update, so no locking is needed.
type Notices struct {
	message string
}

func (n *Notices) SessionComplete(models.CompletedSession) {
	n.message = focus.CompletionMessage
}

func (n *Notices) clear() {
	n.message = ""
}

// Model represents the TUI state. It holds only input widgets and the
// cursor; the session and tasks live in the controller.
type Model struct {
	ctrl    *focus.Controller
	notices *Notices
	keys    keyMap

	mode   mode
	cursor int
	field  int

	durationInput textinput.Model
	taskInput     textinput.Model
	estimateInput textinput.Model
	editText      textinput.Model
	editTime      textinput.Model

	width  int
	height int
}

func NewModel(ctrl *focus.Controller, notices *Notices) Model {
	if notices == nil {
		notices = &Notices{}
	}

	di := textinput.New()
	di.Placeholder = "1-120"
	di.CharLimit = 3
	di.Width = 5

	ti := textinput.New()
	ti.Placeholder = "What are you working on?"
	ti.CharLimit = 200
	ti.Width = 40

	ei := textinput.New()
	ei.Placeholder = "Min (optional)"
	ei.CharLimit = 4
	ei.Width = 14

	et := textinput.New()
	et.CharLimit = 200
	et.Width = 40

	em := textinput.New()
	em.Placeholder = "Min"
	em.CharLimit = 4
	em.Width = 6

	return Model{
		ctrl:          ctrl,
		notices:       notices,
		keys:          defaultKeyMap(),
		durationInput: di,
		taskInput:     ti,
		estimateInput: ei,
		editText:      et,
		editTime:      em,
	}
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case runMsg:
		msg()
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		m.notices.clear()
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch m.mode {
		case modeDuration:
			return m.updateDuration(msg)
		case modeAdd:
			return m.updateAdd(msg)
		case modeEdit:
			return m.updateEdit(msg)
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.ctrl.Snapshot()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.ctrl.ToggleRunning()
	case key.Matches(msg, m.keys.Reset):
		m.ctrl.Reset()
	case key.Matches(msg, m.keys.Longer):
		m.ctrl.SetDuration(s.Session.DurationMinutes + 1)
	case key.Matches(msg, m.keys.Shorter):
		m.ctrl.SetDuration(s.Session.DurationMinutes - 1)
	case key.Matches(msg, m.keys.SetDuration):
		m.mode = modeDuration
		m.durationInput.Reset()
		return m, m.durationInput.Focus()
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.field = 0
		m.taskInput.Reset()
		m.estimateInput.Reset()
		m.estimateInput.Blur()
		return m, m.taskInput.Focus()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(s.Tasks)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Complete):
		if id, ok := m.selected(s); ok {
			_ = m.ctrl.ToggleComplete(id)
		}
	case key.Matches(msg, m.keys.Edit):
		id, ok := m.selected(s)
		if !ok || m.ctrl.BeginEdit(id) != nil {
			return m, nil
		}
		buf := m.ctrl.Snapshot().Editing
		m.mode = modeEdit
		m.field = 0
		m.editText.SetValue(buf.DraftText)
		m.editText.CursorEnd()
		m.editTime.SetValue(buf.DraftTime)
		m.editTime.CursorEnd()
		m.editTime.Blur()
		return m, m.editText.Focus()
	case key.Matches(msg, m.keys.Remove):
		if id, ok := m.selected(s); ok {
			_ = m.ctrl.RemoveTask(id)
			m.clampCursor()
		}
	}
	return m, nil
}

func (m Model) updateDuration(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		_ = m.ctrl.SetDurationInput(m.durationInput.Value())
		m.mode = modeNormal
		m.durationInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeNormal
		m.durationInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.durationInput, cmd = m.durationInput.Update(msg)
	return m, cmd
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		if _, ok := m.ctrl.AddTask(m.taskInput.Value(), m.estimateInput.Value()); !ok {
			return m, nil
		}
		m.mode = modeNormal
		m.taskInput.Blur()
		m.estimateInput.Blur()
		m.cursor = len(m.ctrl.Snapshot().Tasks) - 1
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeNormal
		m.taskInput.Blur()
		m.estimateInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		return m, m.switchField(&m.taskInput, &m.estimateInput)
	}

	var cmd tea.Cmd
	if m.field == 0 {
		m.taskInput, cmd = m.taskInput.Update(msg)
	} else {
		m.estimateInput, cmd = m.estimateInput.Update(msg)
	}
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	buf := m.ctrl.Snapshot().Editing
	if buf == nil {
		m.mode = modeNormal
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		_ = m.ctrl.SaveEdit(buf.TaskID)
		m.mode = modeNormal
		m.editText.Blur()
		m.editTime.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.ctrl.CancelEdit()
		m.mode = modeNormal
		m.editText.Blur()
		m.editTime.Blur()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		return m, m.switchField(&m.editText, &m.editTime)
	}

	var cmd tea.Cmd
	if m.field == 0 {
		m.editText, cmd = m.editText.Update(msg)
	} else {
		m.editTime, cmd = m.editTime.Update(msg)
	}
	_ = m.ctrl.UpdateDraft(m.editText.Value(), m.editTime.Value())
	return m, cmd
}

// switchField moves focus between the text and estimate inputs of a form.
func (m *Model) switchField(text, est *textinput.Model) tea.Cmd {
	if m.field == 0 {
		m.field = 1
		text.Blur()
		return est.Focus()
	}
	m.field = 0
	est.Blur()
	return text.Focus()
}

func (m Model) selected(s focus.Snapshot) (string, bool) {
	if m.cursor < 0 || m.cursor >= len(s.Tasks) {
		return "", false
	}
	return s.Tasks[m.cursor].ID, true
}

func (m *Model) clampCursor() {
	n := len(m.ctrl.Snapshot().Tasks)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

