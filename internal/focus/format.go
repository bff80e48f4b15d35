package focus

import (
	"fmt"

	"focusflow/internal/models"
)

// EstimateBadge renders a task estimate, or "" when there is none.
func EstimateBadge(t models.Task) string {
	if !t.HasEstimate() {
		return ""
	}
	return fmt.Sprintf("%d min", *t.EstimatedTime)
}

// ToggleLabel is the caption of the Start/Pause control.
func ToggleLabel(s models.Session) string {
	if s.IsRunning {
		return "Pause Session"
	}
	return "Start Session"
}

// StatsLine summarises completed sessions and tasks.
func StatsLine(s models.Stats) string {
	line := fmt.Sprintf("Sessions: %d  Focus: %d min",
		s.Sessions.CompletedSessions, s.Sessions.FocusSeconds/60)
	if s.Tasks.TotalTasks > 0 {
		line += fmt.Sprintf("  Tasks done: %d/%d (%.0f%%)",
			s.Tasks.CompletedTasks, s.Tasks.TotalTasks, s.Tasks.CompletionRate)
	}
	return line
}

// SameTasks reports whether two snapshots render the same task area. The
// draft contents are ignored: they live in the edit inputs.
func SameTasks(a, b Snapshot) bool {
	if len(a.Tasks) != len(b.Tasks) {
		return false
	}
	for i := range a.Tasks {
		if !a.Tasks[i].Equal(b.Tasks[i]) {
			return false
		}
	}
	switch {
	case a.Editing == nil && b.Editing == nil:
		return true
	case a.Editing == nil || b.Editing == nil:
		return false
	default:
		return a.Editing.TaskID == b.Editing.TaskID
	}
}
