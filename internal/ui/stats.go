package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"focusflow/internal/focus"
)

// statsView is the status line under the task list.
type statsView struct {
	container *fyne.Container
	label     *widget.Label
}

func newStatsView() *statsView {
	sv := &statsView{
		label: widget.NewLabel(""),
	}
	sv.container = container.NewVBox(widget.NewSeparator(), sv.label)
	return sv
}

func (sv *statsView) render(s focus.Snapshot) {
	sv.label.SetText(focus.StatsLine(s.Stats))
}
