package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/procrastinot/internal/domain"
)

// InitConfigInput contains the parameters for creating a config file.
type InitConfigInput struct {
	Global bool // write the global file instead of the local one
}

// InitConfigOutput contains the path of the created file.
type InitConfigOutput struct {
	Path string
}

// InitConfig is the use case for writing the default config template.
type InitConfig struct {
	manager domain.ConfigManager
	logger  domain.Logger
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(manager domain.ConfigManager, logger domain.Logger) *InitConfig {
	return &InitConfig{
		manager: manager,
		logger:  logger,
	}
}

// Execute creates the config file. An existing file is never overwritten.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	var (
		path string
		err  error
	)
	if in.Global {
		path, err = uc.manager.InitGlobalConfig()
	} else {
		path, err = uc.manager.InitLocalConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("init config %s: %w", path, err)
	}

	if uc.logger != nil {
		uc.logger.Info(0, "config", fmt.Sprintf("created %s", path))
	}
	return &InitConfigOutput{Path: path}, nil
}
