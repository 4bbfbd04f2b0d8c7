// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/procrastinot/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
// Fields are ordered to minimize memory padding.
type AddTaskInput struct {
	Due      time.Time       // Due date (zero = none)
	Name     string          // Task name (required)
	Priority domain.Priority // Priority (PriorityNone when omitted)
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task *domain.Task // The created task
}

// AddTask is the use case for adding a root task.
type AddTask struct {
	registry *domain.Registry
	logger   domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(registry *domain.Registry, logger domain.Logger) *AddTask {
	return &AddTask{
		registry: registry,
		logger:   logger,
	}
}

// Execute adds a task with the next sequential id.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	if in.Name == "" {
		return nil, domain.ErrEmptyName
	}

	task := uc.registry.AddTask(in.Name, in.Priority, in.Due)

	if uc.logger != nil {
		uc.logger.Info(task.ID(), "add", fmt.Sprintf("added: %q", in.Name))
	}

	return &AddTaskOutput{Task: task}, nil
}
