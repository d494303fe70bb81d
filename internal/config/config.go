// Package config handles the XDG configuration directory, the optional
// config.yaml settings file, and the process logger.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application directory name.
	AppName = "taskmgr"

	// SettingsFile is the optional settings filename inside the config dir.
	SettingsFile = "config.yaml"

	// DatabaseFile is the default SQLite database filename.
	DatabaseFile = "taskmgr.db"

	// SlotsDir is the default directory for the file slot backend.
	SlotsDir = "slots"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Settings are loaded from config.yaml, or defaults.
	Settings Settings

	// LogOutput receives log records. Defaults to os.Stderr.
	LogOutput io.Writer

	logger *slog.Logger
}

// Settings is the content of config.yaml.
type Settings struct {
	Storage StorageSettings `yaml:"storage" mapstructure:"storage"`
	UI      UISettings      `yaml:"ui" mapstructure:"ui"`
	Log     LogSettings     `yaml:"log" mapstructure:"log"`
}

// StorageSettings selects where the task slot lives.
type StorageSettings struct {
	Backend string `yaml:"backend" mapstructure:"backend"`
	Path    string `yaml:"path" mapstructure:"path"`
}

// UISettings holds display strings.
type UISettings struct {
	Title        string `yaml:"title" mapstructure:"title"`
	Placeholder  string `yaml:"placeholder" mapstructure:"placeholder"`
	EmptyMessage string `yaml:"empty_message" mapstructure:"empty_message"`
}

// LogSettings configures the logger.
type LogSettings struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// DefaultSettings returns the settings used when config.yaml is absent.
func DefaultSettings() Settings {
	return Settings{
		Storage: StorageSettings{Backend: BackendSQLite},
		UI: UISettings{
			Title:        "Task Manager",
			Placeholder:  "Enter your task...",
			EmptyMessage: "No tasks here!",
		},
		Log: LogSettings{Level: "warn"},
	}
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/taskmgr or $HOME/.config/taskmgr.
// Settings are read from config.yaml in that directory when present.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir, Settings: DefaultSettings()}
	if err := cfg.loadSettings(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SettingsPath returns the path to config.yaml.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// StoragePath returns the database file or slot directory for the
// configured backend.
func (c *Config) StoragePath() string {
	if p := c.Settings.Storage.Path; p != "" {
		return p
	}
	if c.Backend() == BackendFile {
		return filepath.Join(c.Dir, SlotsDir)
	}
	return filepath.Join(c.Dir, DatabaseFile)
}

// Backend returns the configured storage backend, defaulting to sqlite.
func (c *Config) Backend() string {
	if b := strings.ToLower(strings.TrimSpace(c.Settings.Storage.Backend)); b != "" {
		return b
	}
	return BackendSQLite
}

// UI returns the display settings with defaults filled in.
func (c *Config) UI() UISettings {
	ui := c.Settings.UI
	def := DefaultSettings().UI
	if ui.Title == "" {
		ui.Title = def.Title
	}
	if ui.Placeholder == "" {
		ui.Placeholder = def.Placeholder
	}
	if ui.EmptyMessage == "" {
		ui.EmptyMessage = def.EmptyMessage
	}
	return ui
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasSettings checks if config.yaml exists.
func (c *Config) HasSettings() bool {
	_, err := os.Stat(c.SettingsPath())
	return err == nil
}

// Logger returns the process logger. Debug output is enabled by --debug or
// log.level: debug.
func (c *Config) Logger() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	w := c.LogOutput
	if w == nil {
		w = os.Stderr
	}
	level := parseLevel(c.Settings.Log.Level)
	if c.Debug {
		level = slog.LevelDebug
	}
	c.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return c.logger
}

func (c *Config) loadSettings() error {
	if !c.HasSettings() {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(c.SettingsPath())
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("invalid %s: %w", SettingsFile, err)
	}
	if err := v.Unmarshal(&c.Settings); err != nil {
		return fmt.Errorf("invalid %s: %w", SettingsFile, err)
	}

	switch c.Backend() {
	case BackendSQLite, BackendFile:
	default:
		return errors.New("unknown storage backend: " + c.Settings.Storage.Backend)
	}
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
