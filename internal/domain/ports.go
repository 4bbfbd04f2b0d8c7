package domain

import "time"

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Today returns the clock's current calendar date.
func Today(c Clock) time.Time {
	return truncateDate(c.Now())
}

// Logger records executed commands. taskID 0 means no specific task.
type Logger interface {
	Info(taskID int, category, msg string)
	Debug(taskID int, category, msg string)
	Warn(taskID int, category, msg string)
	Error(taskID int, category, msg string)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (local + global + defaults).
	Load() (*Config, error)
}

// ConfigManager inspects and creates configuration files.
type ConfigManager interface {
	GlobalConfigInfo() ConfigInfo
	LocalConfigInfo() ConfigInfo
	InitGlobalConfig() (string, error)
	InitLocalConfig() (string, error)
}

// Exporter writes a snapshot of the registry.
type Exporter interface {
	Export(r *Registry, format string) ([]byte, error)
}
