package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/procrastinot/internal/domain"
)

// RestoreTaskInput contains the parameters for restoring a deleted task.
type RestoreTaskInput struct {
	TaskID int // Task id (required)
}

// RestoreTaskOutput contains the result of restoring a deleted task.
type RestoreTaskOutput struct {
	Task     *domain.Task // The task itself
	Subtasks int          // Number of affected subtasks
}

// RestoreTask is the use case for restoring a deleted task.
type RestoreTask struct {
	registry *domain.Registry
	logger   domain.Logger
}

// NewRestoreTask creates a new RestoreTask use case.
func NewRestoreTask(registry *domain.Registry, logger domain.Logger) *RestoreTask {
	return &RestoreTask{
		registry: registry,
		logger:   logger,
	}
}

// Execute restores the task and its deleted descendants, moving each to
// the tail of its parent's children and of its lists.
func (uc *RestoreTask) Execute(_ context.Context, in RestoreTaskInput) (*RestoreTaskOutput, error) {
	task, n, err := uc.registry.Restore(in.TaskID)
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID(), "restore", fmt.Sprintf("restored with %d subtasks", n))
	}

	return &RestoreTaskOutput{Task: task, Subtasks: n}, nil
}
