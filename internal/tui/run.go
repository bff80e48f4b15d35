package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"focusflow/internal/config"
	"focusflow/internal/focus"
	"focusflow/internal/timer"
)

// Run starts the terminal UI and blocks until the user quits. chime is
// told about completed sessions alongside the on-screen banner.
func Run(logger zerolog.Logger, cfg *config.Config, chime focus.Notifier) error {
	notices := &Notices{}

	var program *tea.Program
	scheduler := timer.NewIntervalScheduler(func(fn func()) {
		program.Send(runMsg(fn))
	})

	ctrl := focus.NewController(logger, scheduler,
		focus.WithDuration(cfg.Session.DurationMinutes),
		focus.WithNotifier(focus.MultiNotifier{notices, chime}),
	)
	defer ctrl.Close()

	program = tea.NewProgram(NewModel(ctrl, notices), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
