package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"focusflow/internal/focus"
	"focusflow/internal/models"
	"focusflow/internal/todo"
)

var (
	badgeColor = color.NRGBA{R: 68, G: 138, B: 255, A: 255}
	doneColor  = color.NRGBA{R: 150, G: 150, B: 150, A: 255}
)

// taskPanel holds the add form and the task rows. Rows are rebuilt from
// the snapshot whenever the task area changes.
type taskPanel struct {
	ctrl *focus.Controller

	container     *fyne.Container
	input         *widget.Entry
	estimateInput *widget.Entry
	addBtn        *widget.Button
	rows          *fyne.Container

	// set while a task is in edit mode
	editText *widget.Entry
	editTime *widget.Entry

	focusEntry func(fyne.Focusable)

	last     focus.Snapshot
	rendered bool
}

func newTaskPanel(ctrl *focus.Controller) *taskPanel {
	p := &taskPanel{ctrl: ctrl}

	p.input = widget.NewEntry()
	p.input.SetPlaceHolder("What are you working on?")
	p.input.OnSubmitted = func(string) { p.addTask() }

	p.estimateInput = widget.NewEntry()
	p.estimateInput.SetPlaceHolder("Min (optional)")
	p.estimateInput.OnSubmitted = func(string) { p.addTask() }

	p.addBtn = widget.NewButtonWithIcon("Add Task", theme.ContentAddIcon(), p.addTask)

	p.rows = container.NewVBox()

	title := widget.NewLabelWithStyle("Tasks", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	inputRow := container.NewBorder(
		nil, nil, nil,
		container.NewHBox(p.estimateInput, p.addBtn),
		p.input,
	)

	p.container = container.NewBorder(
		container.NewVBox(title, inputRow),
		nil, nil, nil,
		container.NewVScroll(p.rows),
	)
	return p
}

func (p *taskPanel) addTask() {
	if _, ok := p.ctrl.AddTask(p.input.Text, p.estimateInput.Text); !ok {
		return
	}
	p.input.SetText("")
	p.estimateInput.SetText("")
}

func (p *taskPanel) render(s focus.Snapshot) {
	if p.rendered && focus.SameTasks(p.last, s) {
		return
	}
	p.last = s
	p.rendered = true
	p.editText, p.editTime = nil, nil

	objects := make([]fyne.CanvasObject, 0, len(s.Tasks))
	for _, task := range s.Tasks {
		if s.Editing != nil && s.Editing.TaskID == task.ID {
			objects = append(objects, p.editRow(task, s.Editing))
			continue
		}
		objects = append(objects, p.taskRow(task))
	}
	p.rows.Objects = objects
	p.rows.Refresh()

	if p.editText != nil && p.focusEntry != nil {
		p.focusEntry(p.editText)
	}
}

func (p *taskPanel) taskRow(task models.Task) fyne.CanvasObject {
	id := task.ID

	check := widget.NewCheck("", nil)
	check.Checked = task.Completed
	check.OnChanged = func(bool) {
		_ = p.ctrl.ToggleComplete(id)
	}

	label := canvas.NewText(task.Text, theme.Color(theme.ColorNameForeground))
	if task.Completed {
		label.Color = doneColor
		label.TextStyle = fyne.TextStyle{Italic: true}
	}

	details := container.NewHBox(label)
	if badge := focus.EstimateBadge(task); badge != "" {
		b := canvas.NewText(badge, badgeColor)
		b.TextSize = theme.CaptionTextSize()
		details.Add(b)
	}

	editBtn := widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
		_ = p.ctrl.BeginEdit(id)
	})
	deleteBtn := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		_ = p.ctrl.RemoveTask(id)
	})

	return container.NewHBox(
		check,
		details,
		layout.NewSpacer(),
		editBtn,
		deleteBtn,
	)
}

func (p *taskPanel) editRow(task models.Task, buf *todo.EditBuffer) fyne.CanvasObject {
	id := task.ID

	p.editText = widget.NewEntry()
	p.editText.SetText(buf.DraftText)
	p.editTime = widget.NewEntry()
	p.editTime.SetPlaceHolder("Min")
	p.editTime.SetText(buf.DraftTime)

	text, est := p.editText, p.editTime
	update := func(string) {
		_ = p.ctrl.UpdateDraft(text.Text, est.Text)
	}
	text.OnChanged = update
	est.OnChanged = update
	text.OnSubmitted = func(string) { _ = p.ctrl.SaveEdit(id) }

	save := widget.NewButtonWithIcon("Save", theme.ConfirmIcon(), func() {
		_ = p.ctrl.SaveEdit(id)
	})
	save.Importance = widget.HighImportance
	cancel := widget.NewButtonWithIcon("Cancel", theme.CancelIcon(), p.ctrl.CancelEdit)

	return container.NewBorder(
		nil, nil, nil,
		container.NewHBox(est, save, cancel),
		text,
	)
}
