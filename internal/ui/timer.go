package ui

import (
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"focusflow/internal/focus"
	"focusflow/internal/timer"
)

var (
	timeColor    = color.NRGBA{R: 25, G: 25, B: 25, A: 255}
	runningColor = color.NRGBA{R: 255, G: 99, B: 99, A: 255}
)

// timerPanel shows the session length, the countdown and its controls.
type timerPanel struct {
	ctrl *focus.Controller

	container     *fyne.Container
	durationEntry *widget.Entry
	timeLabel     *canvas.Text
	startButton   *widget.Button
	resetButton   *widget.Button
}

func newTimerPanel(ctrl *focus.Controller) *timerPanel {
	p := &timerPanel{ctrl: ctrl}

	p.durationEntry = widget.NewEntry()
	p.durationEntry.SetText(strconv.Itoa(ctrl.Snapshot().Session.DurationMinutes))
	p.durationEntry.Validator = func(s string) error {
		_, err := timer.ParseDuration(s)
		return err
	}
	p.durationEntry.OnChanged = func(s string) {
		_ = p.ctrl.SetDurationInput(s)
	}

	p.timeLabel = canvas.NewText("", timeColor)
	p.timeLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	p.timeLabel.TextSize = 48
	p.timeLabel.Alignment = fyne.TextAlignCenter

	p.startButton = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), p.ctrl.ToggleRunning)
	p.startButton.Importance = widget.HighImportance

	p.resetButton = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), p.ctrl.Reset)
	p.resetButton.Importance = widget.MediumImportance

	settings := container.NewBorder(
		nil, nil,
		widget.NewLabel("Session Length"),
		widget.NewLabel("min"),
		p.durationEntry,
	)
	controls := container.NewGridWithColumns(2,
		p.startButton,
		p.resetButton,
	)

	p.container = container.NewVBox(
		settings,
		container.NewPadded(p.timeLabel),
		controls,
	)
	return p
}

func (p *timerPanel) render(s focus.Snapshot) {
	p.timeLabel.Text = timer.Format(s.Session.RemainingSeconds)
	if s.Session.IsRunning {
		p.timeLabel.Color = runningColor
		p.startButton.SetIcon(theme.MediaPauseIcon())
	} else {
		p.timeLabel.Color = timeColor
		p.startButton.SetIcon(theme.MediaPlayIcon())
	}
	p.timeLabel.Refresh()
	p.startButton.SetText(focus.ToggleLabel(s.Session))

	// Leave half-typed input alone; only fix values the session clamped.
	if n, err := timer.ParseDuration(p.durationEntry.Text); err == nil && n != s.Session.DurationMinutes {
		p.durationEntry.SetText(strconv.Itoa(s.Session.DurationMinutes))
	} else if err == nil && strings.TrimSpace(p.durationEntry.Text) != strconv.Itoa(n) {
		p.durationEntry.SetText(strconv.Itoa(n))
	}
}
