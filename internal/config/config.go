package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"focusflow/internal/models"
)

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"

	UIGUI = "gui"
	UITUI = "tui"

	dirName  = ".focusflow"
	fileName = "config.yaml"
)

var (
	ErrUnknownEnv = errors.New("unknown env")
	ErrUnknownUI  = errors.New("unknown ui")
)

type Config struct {
	Env     string        `yaml:"env" env:"FOCUSFLOW_ENV"`
	App     AppConfig     `yaml:"app"`
	Session SessionConfig `yaml:"session"`
	Sound   SoundConfig   `yaml:"sound"`
	Log     LogConfig     `yaml:"log"`
	Theme   ThemeConfig   `yaml:"theme"`
}

type AppConfig struct {
	Name         string `yaml:"name"`
	Version      string `yaml:"version"`
	UI           string `yaml:"ui" env:"FOCUSFLOW_UI"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
}

type SessionConfig struct {
	DurationMinutes int `yaml:"duration_minutes" env:"FOCUSFLOW_DURATION"`
}

type SoundConfig struct {
	Enabled bool    `yaml:"enabled" env:"FOCUSFLOW_SOUND"`
	File    string  `yaml:"file" env:"FOCUSFLOW_SOUND_FILE"`
	// Volume is a base-2 gain; 0 plays at source level.
	Volume  float64 `yaml:"volume"`
}

type LogConfig struct {
	// File receives log output. Empty means stdout for the GUI and
	// focusflow.log next to the config file for the TUI.
	File string `yaml:"file" env:"FOCUSFLOW_LOG_FILE"`
}

type ThemeConfig struct {
	DarkMode bool `yaml:"dark_mode"`
}

// DefaultConfig is written to disk the first time the app runs.
func DefaultConfig() *Config {
	return &Config{
		Env: EnvProd,
		App: AppConfig{
			Name:         "Focus Flow",
			Version:      "1.0.0",
			UI:           UIGUI,
			WindowWidth:  480,
			WindowHeight: 640,
		},
		Session: SessionConfig{
			DurationMinutes: models.DefaultDurationMinutes,
		},
		Sound: SoundConfig{
			Enabled: true,
		},
	}
}

// Validate checks enumerated fields and clamps the session length.
func (c *Config) Validate() error {
	switch c.Env {
	case EnvDev, EnvProd, EnvLocal:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEnv, c.Env)
	}
	switch c.App.UI {
	case UIGUI, UITUI:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownUI, c.App.UI)
	}
	if c.Session.DurationMinutes < models.MinDurationMinutes {
		c.Session.DurationMinutes = models.MinDurationMinutes
	}
	if c.Session.DurationMinutes > models.MaxDurationMinutes {
		c.Session.DurationMinutes = models.MaxDurationMinutes
	}
	return nil
}

type Manager struct {
	config     *Config
	configPath string
}

// NewManager loads the config file at path, or the default location when
// path is empty. A missing file is created with defaults. Environment
// variables override both.
func NewManager(path string) (*Manager, error) {
	if path == "" {
		configDir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(configDir, fileName)
	}

	manager := &Manager{
		configPath: path,
	}

	if err := manager.loadConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		manager.config = DefaultConfig()
		if err := manager.SaveConfig(); err != nil {
			return nil, err
		}
		if err := cleanenv.ReadEnv(manager.config); err != nil {
			return nil, fmt.Errorf("read env: %w", err)
		}
	}

	if err := manager.config.Validate(); err != nil {
		return nil, err
	}
	return manager, nil
}

func (m *Manager) loadConfig() error {
	if _, err := os.Stat(m.configPath); err != nil {
		return err
	}

	config := DefaultConfig()
	if err := cleanenv.ReadConfig(m.configPath, config); err != nil {
		return fmt.Errorf("read config %s: %w", m.configPath, err)
	}

	m.config = config
	return nil
}

// SaveConfig writes the current config, creating its directory.
func (m *Manager) SaveConfig() error {
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	return os.WriteFile(m.configPath, data, 0644)
}

func (m *Manager) GetConfig() *Config {
	return m.config
}

func (m *Manager) Path() string {
	return m.configPath
}

// Dir is the directory holding the config file.
func (m *Manager) Dir() string {
	return filepath.Dir(m.configPath)
}

// DefaultDir returns ~/.focusflow.
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, dirName), nil
}

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}
