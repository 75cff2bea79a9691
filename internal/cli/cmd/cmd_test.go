package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tagwm/internal/domain/layout"
	"github.com/bnema/tagwm/internal/infrastructure/config"
)

// withRenderOpts restores the render flags after the test.
func withRenderOpts(t *testing.T) *cobra.Command {
	t.Helper()
	saved := renderOpts
	t.Cleanup(func() { renderOpts = saved })

	cmd := &cobra.Command{}
	cmd.Flags().IntVar(&renderOpts.masterFactor, "master-factor", 0, "")
	return cmd
}

func TestRenderConfig_Defaults(t *testing.T) {
	cmd := withRenderOpts(t)
	renderOpts.layout = ""
	renderOpts.width = 0
	renderOpts.height = 0

	base := config.DefaultConfig()
	cfg, err := renderConfig(base, cmd)
	require.NoError(t, err)

	require.Len(t, cfg.Screens, 1)
	assert.Equal(t, "render", cfg.Screens[0].Name)
	assert.Equal(t, base.Screens[0].Width, cfg.Screens[0].Width)
	assert.Equal(t, base.Screens[0].Height, cfg.Screens[0].Height)
	assert.Equal(t, base.Layout, cfg.Layout)
	assert.Len(t, base.Screens, 1, "base config is left alone")
	assert.Equal(t, "default", base.Screens[0].Name)
}

func TestRenderConfig_Overrides(t *testing.T) {
	cmd := withRenderOpts(t)
	renderOpts.layout = "Spiral"
	renderOpts.width = 800
	renderOpts.height = 600
	require.NoError(t, cmd.Flags().Set("master-factor", "70"))

	cfg, err := renderConfig(config.DefaultConfig(), cmd)
	require.NoError(t, err)

	assert.Equal(t, layout.NameSpiral, cfg.Layout.Default)
	assert.Equal(t, 800, cfg.Screens[0].Width)
	assert.Equal(t, 600, cfg.Screens[0].Height)
	assert.Equal(t, 70, cfg.Layout.MasterFactor)
}

func TestRenderConfig_Errors(t *testing.T) {
	cmd := withRenderOpts(t)
	renderOpts.width = 0
	renderOpts.height = 0

	base := config.DefaultConfig()
	base.Screens = []config.ScreenConfig{{Name: "x", Width: 0, Height: 10}}
	_, err := renderConfig(base, cmd)
	assert.ErrorContains(t, err, "not positive")

	require.NoError(t, cmd.Flags().Set("master-factor", "120"))
	_, err = renderConfig(config.DefaultConfig(), cmd)
	assert.ErrorContains(t, err, "--master-factor")
}

func TestRunConfigInit(t *testing.T) {
	savedFile, savedForce := configFile, configForce
	t.Cleanup(func() { configFile, configForce = savedFile, savedForce })

	dir := t.TempDir()
	configFile = filepath.Join(dir, "config.toml")
	configForce = false

	require.NoError(t, runConfigInit(nil, nil))
	assert.FileExists(t, configFile)
	assert.FileExists(t, filepath.Join(dir, "config.schema.json"))

	err := runConfigInit(nil, nil)
	assert.ErrorContains(t, err, "already exists")

	require.NoError(t, os.WriteFile(configFile, []byte("tags = [\"a\"]\n"), 0o644))
	configForce = true
	require.NoError(t, runConfigInit(nil, nil))
	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[layout]")
}

func TestCommandTree(t *testing.T) {
	for _, path := range [][]string{
		{"render"},
		{"preview"},
		{"version"},
		{"about"},
		{"config", "init"},
		{"config", "show"},
		{"config", "schema"},
		{"config", "keys"},
		{"config", "status"},
		{"config", "migrate"},
		{"config", "path"},
	} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.NotEqual(t, rootCmd, cmd, path)
	}

	assert.Equal(t, "true", previewCmd.Annotations[annotationInteractive])
	assert.Equal(t, "true", configInitCmd.Annotations[annotationSkipApp])
}
