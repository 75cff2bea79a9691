package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tagwm/internal/application/port/mocks"
	"github.com/bnema/tagwm/internal/application/usecase"
	"github.com/bnema/tagwm/internal/domain/entity"
)

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	t.Run("returns schema keys from provider", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		expectedKeys := []entity.ConfigKeyInfo{
			{
				Key:         "layout.default",
				Type:        "string",
				Default:     "hstack",
				Description: "Layout used by views that do not name one",
				Values:      []string{"manual", "hstack", "monocle"},
				Section:     "Layout",
			},
			{
				Key:         "logging.level",
				Type:        "string",
				Default:     "info",
				Description: "Log verbosity level",
				Values:      []string{"trace", "debug", "info", "warn", "error", "disabled"},
				Section:     "Logging",
			},
		}
		mockProvider.EXPECT().GetSchema().Return(expectedKeys)

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Len(t, result.Keys, 2)
		assert.Equal(t, "layout.default", result.Keys[0].Key)
		assert.Equal(t, "logging.level", result.Keys[1].Key)
		mock.AssertExpectationsForObjects(t, mockProvider)
	})

	t.Run("returns empty slice when no keys", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return([]entity.ConfigKeyInfo{})

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result.Keys)
		mock.AssertExpectationsForObjects(t, mockProvider)
	})

	t.Run("keys include all expected fields", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		expectedKeys := []entity.ConfigKeyInfo{
			{
				Key:         "layout.master_factor",
				Type:        "int",
				Default:     "50",
				Description: "Master area share in percent",
				Range:       "0-100",
				Section:     "Layout",
			},
		}
		mockProvider.EXPECT().GetSchema().Return(expectedKeys)

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Len(t, result.Keys, 1)

		key := result.Keys[0]
		assert.Equal(t, "layout.master_factor", key.Key)
		assert.Equal(t, "int", key.Type)
		assert.Equal(t, "50", key.Default)
		assert.Equal(t, "Master area share in percent", key.Description)
		assert.Equal(t, "0-100", key.Range)
		assert.Equal(t, "Layout", key.Section)
		assert.Empty(t, key.Values) // No enum values for int type
		mock.AssertExpectationsForObjects(t, mockProvider)
	})
}

func TestGetConfigSchemaUseCase_Execute_FiltersSection(t *testing.T) {
	mockProvider := mocks.NewMockConfigSchemaProvider(t)
	mockProvider.EXPECT().GetSchema().Return([]entity.ConfigKeyInfo{
		{Key: "logging.level", Section: "Logging"},
		{Key: "layout.default", Section: "Layout"},
		{Key: "layout.border", Section: "Layout"},
	})

	uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

	result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "layout"})

	require.NoError(t, err)
	require.Len(t, result.Keys, 2)
	assert.Equal(t, "layout.default", result.Keys[0].Key)
	assert.Equal(t, "layout.border", result.Keys[1].Key)
}
