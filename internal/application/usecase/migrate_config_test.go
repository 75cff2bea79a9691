package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tagwm/internal/application/port"
	"github.com/bnema/tagwm/internal/application/port/mocks"
)

func newMigrateUseCase(t *testing.T) (*MigrateConfigUseCase, *mocks.MockConfigMigrator, *mocks.MockDiffFormatter) {
	t.Helper()
	migrator := mocks.NewMockConfigMigrator(t)
	formatter := mocks.NewMockDiffFormatter(t)
	return NewMigrateConfigUseCase(migrator, formatter), migrator, formatter
}

func TestMigrateConfigUseCase_Check_NoMigrationNeeded(t *testing.T) {
	uc, migrator, _ := newMigrateUseCase(t)
	migrator.EXPECT().CheckMigration().Return(nil, nil)

	result, err := uc.Check(context.Background(), CheckConfigMigrationInput{})

	require.NoError(t, err)
	assert.False(t, result.NeedsMigration)
	assert.Empty(t, result.MissingKeys)
}

func TestMigrateConfigUseCase_Check_EmptyMissingKeys(t *testing.T) {
	uc, migrator, _ := newMigrateUseCase(t)
	migrator.EXPECT().CheckMigration().Return(&port.MigrationResult{
		MissingKeys: []string{},
		ConfigFile:  "/path/to/config.toml",
	}, nil)

	result, err := uc.Check(context.Background(), CheckConfigMigrationInput{})

	require.NoError(t, err)
	assert.False(t, result.NeedsMigration)
}

func TestMigrateConfigUseCase_Check_MigrationNeeded(t *testing.T) {
	uc, migrator, _ := newMigrateUseCase(t)
	migrator.EXPECT().CheckMigration().Return(&port.MigrationResult{
		MissingKeys: []string{"layout.border", "layout.columns"},
		ConfigFile:  "/path/to/config.toml",
	}, nil)
	migrator.EXPECT().GetKeyInfo("layout.border").Return(port.KeyInfo{
		Key: "layout.border", Type: "int", DefaultValue: "0",
	})
	migrator.EXPECT().GetKeyInfo("layout.columns").Return(port.KeyInfo{
		Key: "layout.columns", Type: "int", DefaultValue: "2",
	})

	result, err := uc.Check(context.Background(), CheckConfigMigrationInput{})

	require.NoError(t, err)
	assert.True(t, result.NeedsMigration)
	assert.Equal(t, "/path/to/config.toml", result.ConfigFile)
	require.Len(t, result.MissingKeys, 2)
	assert.Equal(t, "layout.border", result.MissingKeys[0].Key)
	assert.Equal(t, "2", result.MissingKeys[1].DefaultValue)
}

func TestMigrateConfigUseCase_Check_Error(t *testing.T) {
	uc, migrator, _ := newMigrateUseCase(t)
	expectedErr := errors.New("check failed")
	migrator.EXPECT().CheckMigration().Return(nil, expectedErr)

	result, err := uc.Check(context.Background(), CheckConfigMigrationInput{})

	require.ErrorIs(t, err, expectedErr)
	assert.Nil(t, result)
}

func TestMigrateConfigUseCase_DetectChanges(t *testing.T) {
	changes := []port.KeyChange{
		{Type: port.KeyChangeAdded, NewKey: "layout.monocle_offset", NewValue: "0"},
		{Type: port.KeyChangeRemoved, OldKey: "layout.gaps", OldValue: "4"},
	}

	tests := []struct {
		name       string
		changes    []port.KeyChange
		diff       string
		hasChanges bool
	}{
		{name: "no changes", changes: nil, diff: "No changes detected.", hasChanges: false},
		{name: "with changes", changes: changes, diff: "  + layout.monocle_offset = 0\n", hasChanges: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, migrator, formatter := newMigrateUseCase(t)
			migrator.EXPECT().DetectChanges().Return(tt.changes, nil)
			formatter.EXPECT().FormatChangesAsDiff(tt.changes).Return(tt.diff)

			result, err := uc.DetectChanges(context.Background(), DetectChangesInput{})

			require.NoError(t, err)
			assert.Equal(t, tt.hasChanges, result.HasChanges)
			assert.Equal(t, tt.changes, result.Changes)
			assert.Equal(t, tt.diff, result.DiffText)
		})
	}
}

func TestMigrateConfigUseCase_DetectChanges_Error(t *testing.T) {
	uc, migrator, _ := newMigrateUseCase(t)
	expectedErr := errors.New("detect changes failed")
	migrator.EXPECT().DetectChanges().Return(nil, expectedErr)

	result, err := uc.DetectChanges(context.Background(), DetectChangesInput{})

	require.ErrorIs(t, err, expectedErr)
	assert.Nil(t, result)
}

func TestMigrateConfigUseCase_Execute_NoChanges(t *testing.T) {
	uc, migrator, _ := newMigrateUseCase(t)
	migrator.EXPECT().DetectChanges().Return(nil, nil)

	result, err := uc.Execute(context.Background(), MigrateConfigInput{})

	require.NoError(t, err)
	assert.Empty(t, result.AppliedChanges)
	migrator.AssertNotCalled(t, "Migrate")
}

func TestMigrateConfigUseCase_Execute_Success(t *testing.T) {
	uc, migrator, _ := newMigrateUseCase(t)
	migrator.EXPECT().DetectChanges().Return([]port.KeyChange{
		{Type: port.KeyChangeAdded, NewKey: "layout.border"},
	}, nil)
	migrator.EXPECT().GetConfigFile().Return("/path/to/config.toml", nil)
	migrator.EXPECT().Migrate().Return([]string{"layout.border"}, nil)

	result, err := uc.Execute(context.Background(), MigrateConfigInput{})

	require.NoError(t, err)
	assert.Equal(t, []string{"layout.border"}, result.AppliedChanges)
	assert.Equal(t, "/path/to/config.toml", result.ConfigFile)
}

func TestMigrateConfigUseCase_Execute_MigrateError(t *testing.T) {
	uc, migrator, _ := newMigrateUseCase(t)
	migrator.EXPECT().DetectChanges().Return([]port.KeyChange{
		{Type: port.KeyChangeAdded, NewKey: "layout.border"},
	}, nil)
	migrator.EXPECT().GetConfigFile().Return("/path/to/config.toml", nil)
	expectedErr := errors.New("migrate failed")
	migrator.EXPECT().Migrate().Return(nil, expectedErr)

	result, err := uc.Execute(context.Background(), MigrateConfigInput{})

	require.ErrorIs(t, err, expectedErr)
	assert.Nil(t, result)
}

func TestMigrateConfigUseCase_Execute_ConfigFileError(t *testing.T) {
	uc, migrator, _ := newMigrateUseCase(t)
	migrator.EXPECT().DetectChanges().Return([]port.KeyChange{
		{Type: port.KeyChangeRemoved, OldKey: "layout.gaps"},
	}, nil)
	migrator.EXPECT().GetConfigFile().Return("", errors.New("no path"))

	_, err := uc.Execute(context.Background(), MigrateConfigInput{})

	require.Error(t, err)
	migrator.AssertNotCalled(t, "Migrate")
}
