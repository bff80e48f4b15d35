package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"focusflow/internal/focus"
	"focusflow/internal/models"
	"focusflow/internal/timer"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6363"))
	subtitleStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#888888"))
	clockStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 2)
	runningStyle  = clockStyle.Foreground(lipgloss.Color("#FF6363"))
	pausedStyle   = clockStyle.Foreground(lipgloss.Color("#DDDDDD"))
	headingStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4081"))
	doneStyle     = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("#777777"))
	badgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#448AFF"))
	bannerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4CAF50")).MarginTop(1)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).MarginTop(1)
)

// View renders the TUI.
func (m Model) View() string {
	s := m.ctrl.Snapshot()

	sections := []string{
		titleStyle.Render("Focus Flow"),
		subtitleStyle.Render("Stay in the flow with timed sessions and task tracking."),
		"",
		m.viewSession(s.Session),
		headingStyle.Render("Tasks"),
	}
	if m.mode == modeAdd {
		sections = append(sections, fmt.Sprintf("+ %s %s", m.taskInput.View(), m.estimateInput.View()))
	}
	sections = append(sections, m.viewTasks(s)...)

	if m.notices.message != "" {
		sections = append(sections, bannerStyle.Render(m.notices.message))
	}
	sections = append(sections, helpStyle.Render(focus.StatsLine(s.Stats)))
	sections = append(sections, m.viewHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewSession(s models.Session) string {
	length := fmt.Sprintf("Session Length: %d min", s.DurationMinutes)
	if m.mode == modeDuration {
		length = fmt.Sprintf("Session Length: %s min", m.durationInput.View())
	}

	style := pausedStyle
	if s.IsRunning {
		style = runningStyle
	}
	clock := style.Render(timer.Format(s.RemainingSeconds))

	return lipgloss.JoinVertical(lipgloss.Left,
		length,
		clock+"  "+focus.ToggleLabel(s),
	)
}

func (m Model) viewTasks(s focus.Snapshot) []string {
	if len(s.Tasks) == 0 {
		return []string{subtitleStyle.Render("No tasks yet. Press a to add one.")}
	}

	lines := make([]string, 0, len(s.Tasks))
	for i, task := range s.Tasks {
		prefix := "  "
		if i == m.cursor && m.mode != modeAdd {
			prefix = cursorStyle.Render("> ")
		}

		if m.mode == modeEdit && s.Editing != nil && s.Editing.TaskID == task.ID {
			lines = append(lines, prefix+m.editText.View()+" "+m.editTime.View())
			continue
		}

		box := "[ ]"
		text := task.Text
		if task.Completed {
			box = "[x]"
			text = doneStyle.Render(text)
		}
		line := prefix + box + " " + text
		if badge := focus.EstimateBadge(task); badge != "" {
			line += " " + badgeStyle.Render(badge)
		}
		lines = append(lines, line)
	}
	return lines
}

func (m Model) viewHelp() string {
	bindings := m.keys.normalHelp()
	if m.mode != modeNormal {
		bindings = m.keys.formHelp()
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
	}
	return helpStyle.Render(strings.Join(parts, "  "))
}

