package app

import (
	"focusflow/internal/config"
	"focusflow/internal/sound"
	"focusflow/internal/tui"
	"focusflow/internal/ui"
)

// MustRunUI starts the configured front end and returns when it exits.
func MustRunUI() {
	cfg := config.Global()

	player := sound.NewPlayer(
		globalLogger.With().Str("component", "sound").Logger(),
		sound.Options{
			Enabled: cfg.Sound.Enabled,
			File:    cfg.Sound.File,
			Volume:  cfg.Sound.Volume,
		},
	)
	logger := globalLogger.With().Str("component", "focus").Logger()

	globalLogger.Info().
		Str("ui", cfg.App.UI).
		Int("duration_minutes", cfg.Session.DurationMinutes).
		Msg("starting ui")

	switch cfg.App.UI {
	case config.UITUI:
		if err := tui.Run(logger, cfg, player); err != nil {
			globalLogger.Error().
				Err(err).
				Msg("terminal ui failed")
			panic(err)
		}
	default:
		ui.Run(logger, cfg, player)
	}

	globalLogger.Info().Msg("ui closed")
}
