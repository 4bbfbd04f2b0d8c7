package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/procrastinot/internal/domain"
)

// ToggleTaskInput contains the parameters for toggling a task's completion.
type ToggleTaskInput struct {
	TaskID int // Task id (required)
}

// ToggleTaskOutput contains the result of toggling a task's completion.
type ToggleTaskOutput struct {
	Task     *domain.Task // The task itself
	Subtasks int          // Number of affected subtasks
}

// ToggleTask is the use case for toggling a task's completion.
type ToggleTask struct {
	registry *domain.Registry
	logger   domain.Logger
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(registry *domain.Registry, logger domain.Logger) *ToggleTask {
	return &ToggleTask{
		registry: registry,
		logger:   logger,
	}
}

// Execute flips the task's completion and applies it to every descendant.
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	task, n, err := uc.registry.Toggle(in.TaskID)
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID(), "toggle", fmt.Sprintf("toggled with %d subtasks", n))
	}

	return &ToggleTaskOutput{Task: task, Subtasks: n}, nil
}
