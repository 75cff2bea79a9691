package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tagwm/internal/domain/layout"
)

func TestSchemaProvider_GetSchema(t *testing.T) {
	keys := NewSchemaProvider().GetSchema()
	require.NotEmpty(t, keys)

	seen := make(map[string]bool)
	sections := make(map[string]bool)
	for _, k := range keys {
		assert.False(t, seen[k.Key], "duplicate key %s", k.Key)
		seen[k.Key] = true
		sections[k.Section] = true
		assert.NotEmpty(t, k.Type, k.Key)
		assert.NotEmpty(t, k.Description, k.Key)
	}

	assert.Equal(t, map[string]bool{
		SectionLogging: true,
		SectionLayout:  true,
		SectionTags:    true,
		SectionScreens: true,
	}, sections)

	for _, k := range keys {
		if k.Key == "layout.default" {
			assert.Equal(t, layout.Names(), k.Values)
			assert.Equal(t, layout.NameHStack, k.Default)
		}
	}
}

// Every viper default must be documented.
func TestSchemaProvider_CoversDefaults(t *testing.T) {
	documented := make(map[string]bool)
	for _, k := range NewSchemaProvider().GetSchema() {
		documented[k.Key] = true
	}
	for _, key := range defaultsViper().AllKeys() {
		if key == "screens" {
			continue
		}
		assert.True(t, documented[key], "undocumented key %s", key)
	}
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "tagwm Configuration", doc["title"])
	assert.Contains(t, string(data), `"master_factor"`)
	assert.Contains(t, string(data), `"monocle_offset"`)

	path, err := WriteSchemaFile(t.TempDir())
	require.NoError(t, err)
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, written)
}
