package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/procrastinot/internal/domain"
)

// AssignInput contains the parameters for an assignment.
// Either ParentID or List names the target.
// Fields are ordered to minimize memory padding.
type AssignInput struct {
	List     string // Target list name
	TaskID   int    // Task to assign (required)
	ParentID int    // Target parent task id
}

// AssignOutput contains the result of an assignment.
type AssignOutput struct {
	Name   string // Name of the assigned task
	Target string // Name of the parent task or list
}

// Assign is the use case for making a task a subtask of another task or
// a member of a list.
type Assign struct {
	registry *domain.Registry
	logger   domain.Logger
}

// NewAssign creates a new Assign use case.
func NewAssign(registry *domain.Registry, logger domain.Logger) *Assign {
	return &Assign{
		registry: registry,
		logger:   logger,
	}
}

// Execute performs the assignment.
func (uc *Assign) Execute(_ context.Context, in AssignInput) (*AssignOutput, error) {
	if in.ParentID == 0 {
		task, list, err := uc.registry.AssignToList(in.TaskID, in.List)
		if err != nil {
			return nil, err
		}
		if uc.logger != nil {
			uc.logger.Info(task.ID(), "assign", "assigned to list "+list.Name())
		}
		return &AssignOutput{Name: task.Name(), Target: list.Name()}, nil
	}

	sub, parent, err := uc.registry.AssignTask(in.TaskID, in.ParentID)
	if err != nil {
		return nil, err
	}
	if uc.logger != nil {
		uc.logger.Info(sub.ID(), "assign", fmt.Sprintf("assigned to task %d", parent.ID()))
	}
	return &AssignOutput{Name: sub.Name(), Target: parent.Name()}, nil
}
