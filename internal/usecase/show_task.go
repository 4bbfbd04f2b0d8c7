package usecase

import (
	"context"

	"github.com/runoshun/procrastinot/internal/domain"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	TaskID int // Task id (required)
}

// ShowTaskOutput contains the rendered task.
type ShowTaskOutput struct {
	Lines []domain.Line // The task followed by its visible subtree
}

// ShowTask is the use case for displaying one task.
type ShowTask struct {
	registry *domain.Registry
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(registry *domain.Registry) *ShowTask {
	return &ShowTask{
		registry: registry,
	}
}

// Execute renders the task. Deleted tasks cannot be shown.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	lines, err := uc.registry.Show(in.TaskID)
	if err != nil {
		return nil, err
	}
	return &ShowTaskOutput{Lines: lines}, nil
}
