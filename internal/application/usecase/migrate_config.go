package usecase

import (
	"context"

	"github.com/bnema/tagwm/internal/application/port"
	"github.com/bnema/tagwm/internal/logging"
)

// CheckConfigMigrationInput holds the input for checking config migration.
type CheckConfigMigrationInput struct{}

// CheckConfigMigrationOutput holds the result of the migration check.
type CheckConfigMigrationOutput struct {
	NeedsMigration bool
	MissingKeys    []port.KeyInfo
	ConfigFile     string
}

// DetectChangesInput holds the input for detecting config changes.
type DetectChangesInput struct{}

// DetectChangesOutput holds the result of change detection.
type DetectChangesOutput struct {
	HasChanges bool
	Changes    []port.KeyChange
	// DiffText is the formatted diff, or "No changes detected.".
	DiffText string
}

// MigrateConfigInput holds the input for migrating config.
type MigrateConfigInput struct{}

// MigrateConfigOutput holds the result of the migration.
type MigrateConfigOutput struct {
	// AppliedChanges describes every change written to the file.
	AppliedChanges []string
	ConfigFile     string
}

// MigrateConfigUseCase brings a user config file in line with the current defaults.
type MigrateConfigUseCase struct {
	migrator      port.ConfigMigrator
	diffFormatter port.DiffFormatter
}

// NewMigrateConfigUseCase creates a new migrate config use case.
func NewMigrateConfigUseCase(migrator port.ConfigMigrator, diffFormatter port.DiffFormatter) *MigrateConfigUseCase {
	return &MigrateConfigUseCase{
		migrator:      migrator,
		diffFormatter: diffFormatter,
	}
}

// Check reports the default keys missing from the user config.
func (uc *MigrateConfigUseCase) Check(ctx context.Context, _ CheckConfigMigrationInput) (*CheckConfigMigrationOutput, error) {
	log := logging.FromContext(ctx)

	result, err := uc.migrator.CheckMigration()
	if err != nil {
		log.Warn().Err(err).Msg("config migration check failed")
		return nil, err
	}
	if result == nil || len(result.MissingKeys) == 0 {
		log.Debug().Msg("config is up to date, no migration needed")
		return &CheckConfigMigrationOutput{}, nil
	}

	keyInfos := make([]port.KeyInfo, 0, len(result.MissingKeys))
	for _, key := range result.MissingKeys {
		keyInfos = append(keyInfos, uc.migrator.GetKeyInfo(key))
	}

	log.Debug().
		Int("missing_keys", len(keyInfos)).
		Str("config_file", result.ConfigFile).
		Msg("config migration check completed")

	return &CheckConfigMigrationOutput{
		NeedsMigration: true,
		MissingKeys:    keyInfos,
		ConfigFile:     result.ConfigFile,
	}, nil
}

// DetectChanges lists every pending change with a diff-like rendering.
func (uc *MigrateConfigUseCase) DetectChanges(ctx context.Context, _ DetectChangesInput) (*DetectChangesOutput, error) {
	log := logging.FromContext(ctx)

	changes, err := uc.migrator.DetectChanges()
	if err != nil {
		log.Warn().Err(err).Msg("config change detection failed")
		return nil, err
	}

	out := &DetectChangesOutput{
		HasChanges: len(changes) > 0,
		Changes:    changes,
		DiffText:   uc.diffFormatter.FormatChangesAsDiff(changes),
	}
	log.Debug().Int("changes", len(changes)).Msg("config changes detected")
	return out, nil
}

// Execute applies pending changes to the user's config file.
func (uc *MigrateConfigUseCase) Execute(ctx context.Context, _ MigrateConfigInput) (*MigrateConfigOutput, error) {
	log := logging.FromContext(ctx)

	changes, err := uc.migrator.DetectChanges()
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		log.Debug().Msg("no migration needed")
		return &MigrateConfigOutput{}, nil
	}

	configFile, err := uc.migrator.GetConfigFile()
	if err != nil {
		return nil, err
	}

	applied, err := uc.migrator.Migrate()
	if err != nil {
		log.Error().Err(err).Str("config_file", configFile).Msg("config migration failed")
		return nil, err
	}

	log.Info().
		Int("applied_changes", len(applied)).
		Str("config_file", configFile).
		Msg("config migration completed")

	return &MigrateConfigOutput{
		AppliedChanges: applied,
		ConfigFile:     configFile,
	}, nil
}
