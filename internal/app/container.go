// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/runoshun/procrastinot/internal/domain"
	"github.com/runoshun/procrastinot/internal/infra/config"
	"github.com/runoshun/procrastinot/internal/infra/logging"
	"github.com/runoshun/procrastinot/internal/infra/snapshot"
	"github.com/runoshun/procrastinot/internal/usecase"
)

// Options holds the paths the container is built from.
type Options struct {
	ConfigPath string // Local config file (empty = ./.procrastinot.toml)
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
// Fields are ordered to minimize memory padding.
type Container struct {
	// Ports (interfaces bound to implementations)
	Clock         domain.Clock
	TaskLogger    domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Exporter      domain.Exporter

	// Pointer fields
	Registry  *domain.Registry
	AppConfig *domain.Config
	Logger    *slog.Logger

	closers []io.Closer
}

// New creates a new Container. A missing config file falls back to defaults;
// a malformed one is an error.
func New(opts Options) (*Container, error) {
	localPath := opts.ConfigPath
	if localPath == "" {
		localPath = domain.LocalConfigFileName
	}
	configLoader := config.NewLoader(localPath)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(appConfig.Log.Level),
	}))
	for _, w := range appConfig.Warnings {
		logger.Warn("config", "warning", w)
	}

	taskLogger := logging.New(appConfig.Log.File, logging.ParseLevel(appConfig.Log.Level))

	return &Container{
		Clock:         domain.RealClock{},
		TaskLogger:    taskLogger,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(localPath),
		Exporter:      snapshot.Exporter{},
		Registry:      domain.NewRegistry(),
		AppConfig:     appConfig,
		Logger:        logger,
		closers:       []io.Closer{taskLogger},
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// A nil appConfig means defaults.
func NewWithDeps(clock domain.Clock, taskLogger domain.Logger, appConfig *domain.Config, logger *slog.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	return &Container{
		Clock:      clock,
		TaskLogger: taskLogger,
		Exporter:   snapshot.Exporter{},
		Registry:   domain.NewRegistry(),
		AppConfig:  appConfig,
		Logger:     logger,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	var firstErr error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Registry, c.TaskLogger)
}

// AddListUseCase returns a new AddList use case.
func (c *Container) AddListUseCase() *usecase.AddList {
	return usecase.NewAddList(c.Registry, c.TaskLogger)
}

// TagUseCase returns a new Tag use case.
func (c *Container) TagUseCase() *usecase.Tag {
	return usecase.NewTag(c.Registry, c.TaskLogger)
}

// AssignUseCase returns a new Assign use case.
func (c *Container) AssignUseCase() *usecase.Assign {
	return usecase.NewAssign(c.Registry, c.TaskLogger)
}

// ChangeDateUseCase returns a new ChangeDate use case.
func (c *Container) ChangeDateUseCase() *usecase.ChangeDate {
	return usecase.NewChangeDate(c.Registry, c.TaskLogger)
}

// ChangePriorityUseCase returns a new ChangePriority use case.
func (c *Container) ChangePriorityUseCase() *usecase.ChangePriority {
	return usecase.NewChangePriority(c.Registry, c.TaskLogger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Registry, c.TaskLogger)
}

// RestoreTaskUseCase returns a new RestoreTask use case.
func (c *Container) RestoreTaskUseCase() *usecase.RestoreTask {
	return usecase.NewRestoreTask(c.Registry, c.TaskLogger)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Registry, c.TaskLogger)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Registry)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Registry)
}

// DuplicatesUseCase returns a new Duplicates use case.
func (c *Container) DuplicatesUseCase() *usecase.Duplicates {
	return usecase.NewDuplicates(c.Registry)
}

// ExportUseCase returns a new Export use case.
func (c *Container) ExportUseCase() *usecase.Export {
	return usecase.NewExport(c.Registry, c.Exporter)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager, c.TaskLogger)
}
