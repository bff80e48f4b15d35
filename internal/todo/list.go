// Package todo manages the ordered task checklist and its single edit
// buffer.
package todo

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"focusflow/internal/models"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrNotEditing   = errors.New("task is not being edited")
)

// EditBuffer is the draft for the task currently being renamed or
// re-estimated. DraftTime holds the raw estimate field.
type EditBuffer struct {
	TaskID    string
	DraftText string
	DraftTime string
}

// List keeps tasks in insertion order. Edit targets are tracked by task ID,
// so removing another task never moves an edit onto a different task.
type List struct {
	tasks   []*models.Task
	editing *EditBuffer
	newID   func() string
}

func NewList() *List {
	return &List{newID: uuid.NewString}
}

// ParseEstimate reads an estimate field. Empty, non-numeric and non-positive
// input all mean "no estimate".
func ParseEstimate(input string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}

// FormatEstimate is the inverse of ParseEstimate for filling edit fields.
func FormatEstimate(est *int) string {
	if est == nil {
		return ""
	}
	return strconv.Itoa(*est)
}

// Add appends a task. It reports false and changes nothing when text is
// blank.
func (l *List) Add(text, estimate string) (models.Task, bool) {
	if strings.TrimSpace(text) == "" {
		return models.Task{}, false
	}
	task := &models.Task{
		ID:            l.newID(),
		Text:          text,
		EstimatedTime: ParseEstimate(estimate),
	}
	l.tasks = append(l.tasks, task)
	return task.Clone(), true
}

// Remove deletes a task, cancelling its edit if it was the edit target.
func (l *List) Remove(id string) error {
	i := l.Index(id)
	if i < 0 {
		return ErrTaskNotFound
	}
	l.tasks = slices.Delete(l.tasks, i, i+1)
	if l.editing != nil && l.editing.TaskID == id {
		l.editing = nil
	}
	return nil
}

// ToggleComplete flips the completed flag of one task.
func (l *List) ToggleComplete(id string) (models.Task, error) {
	task := l.find(id)
	if task == nil {
		return models.Task{}, ErrTaskNotFound
	}
	task.Completed = !task.Completed
	return task.Clone(), nil
}

// BeginEdit loads a task into the edit buffer, discarding any other draft.
func (l *List) BeginEdit(id string) error {
	task := l.find(id)
	if task == nil {
		return ErrTaskNotFound
	}
	l.editing = &EditBuffer{
		TaskID:    id,
		DraftText: task.Text,
		DraftTime: FormatEstimate(task.EstimatedTime),
	}
	return nil
}

// SetDraft replaces the draft values of the active edit.
func (l *List) SetDraft(text, estimate string) error {
	if l.editing == nil {
		return ErrNotEditing
	}
	l.editing.DraftText = text
	l.editing.DraftTime = estimate
	return nil
}

// SaveEdit commits the draft into the task and clears the buffer. A draft
// text that is blank keeps the old text rather than committing it as
// typed; created tasks are never blank and edits keep it that way.
func (l *List) SaveEdit(id string) (models.Task, error) {
	if l.editing == nil || l.editing.TaskID != id {
		return models.Task{}, ErrNotEditing
	}
	task := l.find(id)
	if task == nil {
		l.editing = nil
		return models.Task{}, ErrTaskNotFound
	}
	if strings.TrimSpace(l.editing.DraftText) != "" {
		task.Text = l.editing.DraftText
	}
	task.EstimatedTime = ParseEstimate(l.editing.DraftTime)
	l.editing = nil
	return task.Clone(), nil
}

// CancelEdit drops the draft without touching any task.
func (l *List) CancelEdit() {
	l.editing = nil
}

// Editing returns a copy of the edit buffer, or nil.
func (l *List) Editing() *EditBuffer {
	if l.editing == nil {
		return nil
	}
	buf := *l.editing
	return &buf
}

// Tasks returns copies of all tasks in order.
func (l *List) Tasks() []models.Task {
	out := make([]models.Task, len(l.tasks))
	for i, t := range l.tasks {
		out[i] = t.Clone()
	}
	return out
}

func (l *List) Len() int {
	return len(l.tasks)
}

// IDAt returns the ID of the task at a position.
func (l *List) IDAt(index int) (string, bool) {
	if index < 0 || index >= len(l.tasks) {
		return "", false
	}
	return l.tasks[index].ID, true
}

// Index returns the position of a task, or -1.
func (l *List) Index(id string) int {
	for i, t := range l.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Stats counts completed tasks.
func (l *List) Stats() models.TaskStats {
	stats := models.TaskStats{TotalTasks: len(l.tasks)}
	for _, t := range l.tasks {
		if t.Completed {
			stats.CompletedTasks++
		}
	}
	if stats.TotalTasks > 0 {
		stats.CompletionRate = float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
	}
	return stats
}

func (l *List) find(id string) *models.Task {
	if i := l.Index(id); i >= 0 {
		return l.tasks[i]
	}
	return nil
}
