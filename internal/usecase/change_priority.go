package usecase

import (
	"context"

	"github.com/runoshun/procrastinot/internal/domain"
)

// ChangePriorityInput contains the parameters for changing a priority.
type ChangePriorityInput struct {
	TaskID   int             // Task id (required)
	Priority domain.Priority // New priority; PriorityNone clears it
}

// ChangePriorityOutput contains the result of changing a priority.
type ChangePriorityOutput struct {
	Task *domain.Task
}

// ChangePriority is the use case for setting a task's priority.
type ChangePriority struct {
	registry *domain.Registry
	logger   domain.Logger
}

// NewChangePriority creates a new ChangePriority use case.
func NewChangePriority(registry *domain.Registry, logger domain.Logger) *ChangePriority {
	return &ChangePriority{
		registry: registry,
		logger:   logger,
	}
}

// Execute sets the priority.
func (uc *ChangePriority) Execute(_ context.Context, in ChangePriorityInput) (*ChangePriorityOutput, error) {
	task, err := uc.registry.SetPriority(in.TaskID, in.Priority)
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID(), "change-priority", "priority "+in.Priority.String())
	}

	return &ChangePriorityOutput{Task: task}, nil
}
