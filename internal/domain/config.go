package domain

import (
	"fmt"
	"path/filepath"
)

// ConfigFileName is the name of the global configuration file.
const ConfigFileName = "config.toml"

// LocalConfigFileName is the configuration file looked up in the working directory.
const LocalConfigFileName = ".procrastinot.toml"

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string    `toml:"-"`
	Log      LogConfig   `toml:"log"`
	Shell    ShellConfig `toml:"shell"`
	Views    ViewsConfig `toml:"views"`
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
	File  string `toml:"file,omitempty"`  // log file path (empty = disabled)
}

// ShellConfig holds interactive shell settings from [shell] section.
type ShellConfig struct {
	Prompt string `toml:"prompt,omitempty"` // printed before each line when non-empty
	Color  bool   `toml:"color,omitempty"`  // style ERROR lines
}

// ViewsConfig holds view settings from [views] section.
type ViewsConfig struct {
	UpcomingDays int `toml:"upcoming_days,omitempty"` // days after today in the upcoming view
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Views: ViewsConfig{
			UpcomingDays: UpcomingDays,
		},
	}
}

// GlobalConfigDir returns the global configuration directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "procrastinot")
}

// ConfigInfo describes one configuration file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// RenderConfigTemplate returns a commented config file with the default values.
func RenderConfigTemplate() string {
	def := NewDefaultConfig()
	return fmt.Sprintf(`# procrastinot configuration

[log]
# debug, info, warn or error
level = %q
# Command log file. Empty disables logging.
file = %q

[shell]
# Printed before each input line when non-empty.
prompt = %q
# Style ERROR lines.
color = %t

[views]
# Days after the start date covered by "upcoming".
upcoming_days = %d
`, def.Log.Level, def.Log.File, def.Shell.Prompt, def.Shell.Color, def.Views.UpcomingDays)
}
