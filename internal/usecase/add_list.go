package usecase

import (
	"context"

	"github.com/runoshun/procrastinot/internal/domain"
)

// AddListInput contains the parameters for adding a list.
type AddListInput struct {
	Name string // List name (required, unique)
}

// AddListOutput contains the result of adding a list.
type AddListOutput struct {
	List *domain.TaskList
}

// AddList is the use case for adding a named list.
type AddList struct {
	registry *domain.Registry
	logger   domain.Logger
}

// NewAddList creates a new AddList use case.
func NewAddList(registry *domain.Registry, logger domain.Logger) *AddList {
	return &AddList{
		registry: registry,
		logger:   logger,
	}
}

// Execute adds an empty list.
func (uc *AddList) Execute(_ context.Context, in AddListInput) (*AddListOutput, error) {
	if in.Name == "" {
		return nil, domain.ErrEmptyName
	}

	list, err := uc.registry.AddList(in.Name)
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(0, "add-list", "added list "+in.Name)
	}

	return &AddListOutput{List: list}, nil
}
