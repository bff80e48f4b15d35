package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"focusflow/internal/config"
)

const logFileName = "focusflow.log"

var (
	globalLogger  zerolog.Logger
	globalLogFile *os.File
)

func InitDefaultLogger() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimestampFieldName = "timestamp"

	globalLogger = zerolog.New(os.Stderr).
		With().
		Timestamp().
		Caller().
		Int("pid", os.Getpid()).
		Logger()

	globalLogger.Debug().Msg("initialized default logger")
}

// MustInitApplicationLogger picks level and output from the config. The
// terminal UI owns stdout, so it always logs to a file.
func MustInitApplicationLogger() {
	cfg := config.Global()

	w, err := logWriter(cfg)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to open log file")
		panic(err)
	}

	switch cfg.Env {
	case config.EnvDev:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case config.EnvProd:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case config.EnvLocal:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)

		if w == io.Writer(os.Stdout) {
			consoleWriter := zerolog.NewConsoleWriter()
			consoleWriter.TimeFormat = time.DateTime
			consoleWriter.Out = os.Stdout
			w = consoleWriter
		}
	default:
		globalLogger.Error().
			Str("env", cfg.Env).
			Msg("unknown env")
		panic(fmt.Errorf("%w: %s", config.ErrUnknownEnv, cfg.Env))
	}

	globalLogger = globalLogger.Output(w)
	globalLogger.Info().
		Str("env", cfg.Env).
		Str("ui", cfg.App.UI).
		Msg("initialized application logger")
}

func logWriter(cfg *config.Config) (io.Writer, error) {
	path := cfg.Log.File
	if path == "" && cfg.App.UI == config.UITUI {
		path = filepath.Join(globalConfigManager.Dir(), logFileName)
	}
	if path == "" {
		return os.Stdout, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	globalLogFile = f
	return f, nil
}

func CloseLogFile() {
	if globalLogFile == nil {
		return
	}
	_ = globalLogFile.Close()
	globalLogFile = nil
}
