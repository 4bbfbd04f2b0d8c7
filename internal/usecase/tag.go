package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/procrastinot/internal/domain"
)

// TagInput contains the parameters for tagging a task or a list.
// Exactly one of TaskID and List is set.
// Fields are ordered to minimize memory padding.
type TagInput struct {
	List   string // List name
	Tag    string // Tag (required)
	TaskID int    // Task id
}

// TagOutput contains the result of tagging.
type TagOutput struct {
	Name string // Name of the tagged task or list
}

// Tag is the use case for tagging a task or a list.
type Tag struct {
	registry *domain.Registry
	logger   domain.Logger
}

// NewTag creates a new Tag use case.
func NewTag(registry *domain.Registry, logger domain.Logger) *Tag {
	return &Tag{
		registry: registry,
		logger:   logger,
	}
}

// Execute adds the tag. Deleted tasks can be tagged.
func (uc *Tag) Execute(_ context.Context, in TagInput) (*TagOutput, error) {
	if in.TaskID == 0 {
		list, err := uc.registry.TagList(in.List, in.Tag)
		if err != nil {
			return nil, err
		}
		if uc.logger != nil {
			uc.logger.Info(0, "tag", fmt.Sprintf("tagged list %s with %s", list.Name(), in.Tag))
		}
		return &TagOutput{Name: list.Name()}, nil
	}

	task, err := uc.registry.TagTask(in.TaskID, in.Tag)
	if err != nil {
		return nil, err
	}
	if uc.logger != nil {
		uc.logger.Info(task.ID(), "tag", "tagged with "+in.Tag)
	}
	return &TagOutput{Name: task.Name()}, nil
}
