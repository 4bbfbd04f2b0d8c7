package usecase

import (
	"context"

	"github.com/runoshun/procrastinot/internal/domain"
)

// DuplicatesInput is empty; duplicates are computed over every task.
type DuplicatesInput struct{}

// DuplicatesOutput contains the duplicate ids.
type DuplicatesOutput struct {
	IDs []int // Ids after the first occurrence of each name, ascending
}

// Duplicates is the use case for reporting tasks that repeat an earlier name.
type Duplicates struct {
	registry *domain.Registry
}

// NewDuplicates creates a new Duplicates use case.
func NewDuplicates(registry *domain.Registry) *Duplicates {
	return &Duplicates{
		registry: registry,
	}
}

// Execute finds the duplicates.
func (uc *Duplicates) Execute(_ context.Context, _ DuplicatesInput) (*DuplicatesOutput, error) {
	return &DuplicatesOutput{IDs: uc.registry.Duplicates()}, nil
}
