// Package ui is the fyne desktop front end. Every widget callback calls a
// focus.Controller operation, and the window re-renders from the
// controller's snapshot after each change.
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"focusflow/internal/config"
	"focusflow/internal/focus"
	"focusflow/internal/models"
)

type MainWindow struct {
	window fyne.Window
	ctrl   *focus.Controller

	timer *timerPanel
	tasks *taskPanel
	stats *statsView
}

func NewMainWindow(app fyne.App, ctrl *focus.Controller, cfg *config.Config) *MainWindow {
	w := &MainWindow{
		window: app.NewWindow(cfg.App.Name),
		ctrl:   ctrl,
		timer:  newTimerPanel(ctrl),
		tasks:  newTaskPanel(ctrl),
		stats:  newStatsView(),
	}
	w.tasks.focusEntry = w.window.Canvas().Focus
	w.setup()
	w.SetSize(float32(cfg.App.WindowWidth), float32(cfg.App.WindowHeight))

	ctrl.OnChange(w.render)
	w.window.SetOnClosed(ctrl.Close)
	w.render()
	return w
}

func (w *MainWindow) SetSize(width, height float32) {
	w.window.Resize(fyne.NewSize(width, height))
}

func (w *MainWindow) setup() {
	header := container.NewVBox(
		widget.NewLabelWithStyle("Focus Flow", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Stay in the flow with timed sessions and task tracking.",
			fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
	)

	top := container.NewVBox(header, w.timer.container, widget.NewSeparator())
	w.window.SetContent(container.NewBorder(
		top,
		w.stats.container,
		nil, nil,
		w.tasks.container,
	))
}

func (w *MainWindow) render() {
	s := w.ctrl.Snapshot()
	w.timer.render(s)
	w.tasks.render(s)
	w.stats.render(s)
}

// SessionComplete shows the completion notice. fyne dialogs do not block
// the caller.
func (w *MainWindow) SessionComplete(models.CompletedSession) {
	dialog.ShowInformation("Session complete", focus.CompletionMessage, w.window)
}

func (w *MainWindow) Window() fyne.Window {
	return w.window
}

func (w *MainWindow) Show() {
	w.window.ShowAndRun()
}
