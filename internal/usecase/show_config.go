package usecase

import (
	"context"

	"github.com/runoshun/procrastinot/internal/domain"
)

// ShowConfigInput contains the parameters for showing configuration.
type ShowConfigInput struct{}

// ShowConfigOutput contains the configuration files and the merged result.
// Fields are ordered to minimize memory padding.
type ShowConfigOutput struct {
	Effective *domain.Config
	Global    domain.ConfigInfo
	Local     domain.ConfigInfo
}

// ShowConfig is the use case for displaying configuration.
type ShowConfig struct {
	manager domain.ConfigManager
	loader  domain.ConfigLoader
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(manager domain.ConfigManager, loader domain.ConfigLoader) *ShowConfig {
	return &ShowConfig{
		manager: manager,
		loader:  loader,
	}
}

// Execute reads both config files and loads the effective configuration.
func (uc *ShowConfig) Execute(_ context.Context, _ ShowConfigInput) (*ShowConfigOutput, error) {
	effective, err := uc.loader.Load()
	if err != nil {
		return nil, err
	}
	return &ShowConfigOutput{
		Effective: effective,
		Global:    uc.manager.GlobalConfigInfo(),
		Local:     uc.manager.LocalConfigInfo(),
	}, nil
}
