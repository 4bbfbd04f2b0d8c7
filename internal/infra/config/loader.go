// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/procrastinot/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// knownKeys lists the accepted keys per section.
var knownKeys = map[string][]string{
	"log":   {"level", "file"},
	"shell": {"prompt", "color"},
	"views": {"upcoming_days"},
}

// Loader loads configuration from TOML files.
type Loader struct {
	localPath     string // Path to the local config file (may not exist)
	globalConfDir string // Path to global config directory (e.g., ~/.config/procrastinot)
}

// NewLoader creates a new Loader. localPath is usually
// ./.procrastinot.toml or the value of --config.
func NewLoader(localPath string) *Loader {
	return &Loader{
		localPath:     localPath,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(localPath, globalConfDir string) *Loader {
	return &Loader{
		localPath:     localPath,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (local + global).
// Local config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	var global *fileConfig
	if l.globalConfDir != "" {
		var err error
		global, err = l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	var local *fileConfig
	if l.localPath != "" {
		var err error
		local, err = l.loadFile(l.localPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	// Merge: default <- global <- local (later takes precedence)
	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	fc, err := l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
	if err != nil {
		return nil, err
	}
	return fc.cfg, nil
}

// fileConfig is one decoded config file with its raw key tree.
type fileConfig struct {
	cfg *domain.Config
	raw map[string]any
}

// has reports whether key was written in section.
func (f *fileConfig) has(section, key string) bool {
	m, ok := f.raw[section].(map[string]any)
	if !ok {
		return false
	}
	_, ok = m[key]
	return ok
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg domain.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Warnings = unknownKeyWarnings(raw)
	return &fileConfig{cfg: &cfg, raw: raw}, nil
}

// unknownKeyWarnings reports sections and keys the application does not use.
func unknownKeyWarnings(raw map[string]any) []string {
	var warnings []string
	for section, value := range raw {
		keys, ok := knownKeys[section]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown section: [%s]", section))
			continue
		}
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("[%s] must be a table", section))
			continue
		}
		for k := range m {
			if !slices.Contains(keys, k) {
				warnings = append(warnings, fmt.Sprintf("unknown key in [%s]: %s", section, k))
			}
		}
	}
	sort.Strings(warnings)
	return warnings
}

// mergeConfigs merges two configs, with override taking precedence.
// Booleans are taken from override only when its file sets them.
func mergeConfigs(base *domain.Config, file *fileConfig) *domain.Config {
	override := file.cfg
	result := &domain.Config{
		Log:      base.Log,
		Shell:    base.Shell,
		Views:    base.Views,
		Warnings: append([]string{}, base.Warnings...),
	}
	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Log.File != "" {
		result.Log.File = override.Log.File
	}
	if override.Shell.Prompt != "" {
		result.Shell.Prompt = override.Shell.Prompt
	}
	if file.has("shell", "color") {
		result.Shell.Color = override.Shell.Color
	}
	if override.Views.UpcomingDays > 0 {
		result.Views.UpcomingDays = override.Views.UpcomingDays
	}
	return result
}
