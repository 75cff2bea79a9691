package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/tagwm/internal/cli/model"
	"github.com/bnema/tagwm/internal/infrastructure/config"
	"github.com/bnema/tagwm/internal/logging"
)

var previewWindows int

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Play with layouts interactively",
	Long: `Open an interactive playground using the screens, tags and layout
settings of the config file.

The playground follows edits to the config file while it runs.
Press ? for the list of keys.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationInteractive: "true"},
	RunE:        runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().IntVarP(&previewWindows, "windows", "n", defaultRenderWindows, "number of windows to start with")
}

func runPreview(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	m, err := model.NewPreviewModel(ctx, a.Theme, a.Config, previewWindows)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())

	if a.ConfigErr == nil {
		a.Manager.OnConfigChange(func(cfg *config.Config) {
			p.Send(model.ConfigReloadedMsg{Config: cfg})
		})
		if err := a.Manager.Watch(*logging.FromContext(ctx)); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("config watch disabled")
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}
	return nil
}
