package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/procrastinot/internal/domain"
)

// ExportInput contains the parameters for exporting a snapshot.
type ExportInput struct {
	Format string // yaml or json
}

// ExportOutput contains the rendered document.
type ExportOutput struct {
	Data []byte
}

// Export is the use case for writing a read-only snapshot of all tasks and lists.
type Export struct {
	registry *domain.Registry
	exporter domain.Exporter
}

// NewExport creates a new Export use case.
func NewExport(registry *domain.Registry, exporter domain.Exporter) *Export {
	return &Export{
		registry: registry,
		exporter: exporter,
	}
}

// Execute renders the snapshot.
func (uc *Export) Execute(_ context.Context, in ExportInput) (*ExportOutput, error) {
	data, err := uc.exporter.Export(uc.registry, in.Format)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return &ExportOutput{Data: data}, nil
}
