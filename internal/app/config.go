package app

import (
	_ "github.com/joho/godotenv/autoload"

	"focusflow/internal/config"
)

var globalConfigManager *config.Manager

// MustReadConfig loads the config file (path may be empty) and applies
// the command line UI choice on top.
func MustReadConfig(path, ui string) {
	manager, err := config.NewManager(path)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to read config")
		panic(err)
	}

	cfg := manager.GetConfig()
	if ui != "" {
		cfg.App.UI = ui
		if err := cfg.Validate(); err != nil {
			globalLogger.Error().
				Err(err).
				Msg("invalid ui flag")
			panic(err)
		}
	}
	globalLogger.Info().
		Str("path", manager.Path()).
		Str("ui", cfg.App.UI).
		Msg("read config")

	globalConfigManager = manager
	config.SetGlobal(cfg)
}
