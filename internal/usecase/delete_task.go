package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/procrastinot/internal/domain"
)

// DeleteTaskInput contains the parameters for soft-deleting a task.
type DeleteTaskInput struct {
	TaskID int // Task id (required)
}

// DeleteTaskOutput contains the result of soft-deleting a task.
type DeleteTaskOutput struct {
	Task     *domain.Task // The task itself
	Subtasks int          // Number of affected subtasks
}

// DeleteTask is the use case for soft-deleting a task.
type DeleteTask struct {
	registry *domain.Registry
	logger   domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(registry *domain.Registry, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		registry: registry,
		logger:   logger,
	}
}

// Execute hides the task and all of its descendants.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	task, n, err := uc.registry.Delete(in.TaskID)
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID(), "delete", fmt.Sprintf("deleted with %d subtasks", n))
	}

	return &DeleteTaskOutput{Task: task, Subtasks: n}, nil
}
