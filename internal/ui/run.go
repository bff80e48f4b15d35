package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"github.com/rs/zerolog"

	"focusflow/internal/config"
	"focusflow/internal/focus"
	"focusflow/internal/models"
	"focusflow/internal/timer"
)

// Run opens the main window and blocks until it is closed. Ticks are
// marshalled onto the fyne main goroutine with fyne.Do.
func Run(logger zerolog.Logger, cfg *config.Config, chime focus.Notifier) {
	a := app.NewWithID("com.focusflow.app")
	if cfg.Theme.DarkMode {
		a.Settings().SetTheme(theme.DarkTheme())
	}

	var w *MainWindow
	ctrl := focus.NewController(logger, timer.NewIntervalScheduler(fyne.Do),
		focus.WithDuration(cfg.Session.DurationMinutes),
		focus.WithNotifier(focus.MultiNotifier{
			focus.NotifierFunc(func(s models.CompletedSession) { w.SessionComplete(s) }),
			chime,
		}),
	)
	defer ctrl.Close()

	w = NewMainWindow(a, ctrl, cfg)
	w.Show()
}
