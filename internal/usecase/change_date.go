package usecase

import (
	"context"
	"time"

	"github.com/runoshun/procrastinot/internal/domain"
)

// ChangeDateInput contains the parameters for changing a due date.
type ChangeDateInput struct {
	Due    time.Time // New due date
	TaskID int       // Task id (required)
}

// ChangeDateOutput contains the result of changing a due date.
type ChangeDateOutput struct {
	Task *domain.Task
}

// ChangeDate is the use case for setting a task's due date.
type ChangeDate struct {
	registry *domain.Registry
	logger   domain.Logger
}

// NewChangeDate creates a new ChangeDate use case.
func NewChangeDate(registry *domain.Registry, logger domain.Logger) *ChangeDate {
	return &ChangeDate{
		registry: registry,
		logger:   logger,
	}
}

// Execute sets the due date.
func (uc *ChangeDate) Execute(_ context.Context, in ChangeDateInput) (*ChangeDateOutput, error) {
	task, err := uc.registry.SetDue(in.TaskID, in.Due)
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID(), "change-date", "due "+in.Due.Format(domain.DateLayout))
	}

	return &ChangeDateOutput{Task: task}, nil
}
