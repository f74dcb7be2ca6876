package common

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/config"
	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/logger"
)

// NewCommandDeps creates CommandDeps from the merged viper settings.
func NewCommandDeps() (CommandDeps, error) {
	return NewCommandDepsFrom(viper.AllSettings())
}

// NewCommandDepsFrom creates CommandDeps from explicit settings.
func NewCommandDepsFrom(settings config.Settings) (CommandDeps, error) {
	cfg, err := config.Load(settings)
	if err != nil {
		return CommandDeps{}, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(&cfg.Logger)
	if err != nil {
		return CommandDeps{}, fmt.Errorf("create logger: %w", err)
	}

	runID := uuid.NewString()

	deps := CommandDeps{
		Logger: log.WithRunID(runID),
		Config: cfg,
		RunID:  runID,
	}

	if validateErr := deps.Validate(); validateErr != nil {
		return CommandDeps{}, fmt.Errorf("validate deps: %w", validateErr)
	}

	return deps, nil
}
