// Package cmd provides Cobra CLI commands for tagwm.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tagwm/internal/cli"
	"github.com/bnema/tagwm/internal/domain/build"
)

// Command annotations read by the root pre-run hook.
const (
	annotationInteractive = "tagwm/interactive"
	annotationSkipApp     = "tagwm/skip-app"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "tagwm",
		Short: "A tag-based tiling layout engine",
		Long: `tagwm - the layout core of a tag-based tiling window manager.

Windows carry tags, screens show tag sets, and every tag set arranges its
windows with one of several layouts.

Layouts:
  - manual     nested horizontal, vertical and tabbed splits
  - hstack     master on top, stack below
  - vstack     master on the left, stack on the right
  - dualstack  master between two stacks
  - grid       fixed number of columns
  - spiral     each window takes half of what is left
  - monocle    one window at a time

Use 'tagwm render' to print the geometry a layout produces, or
'tagwm preview' to play with layouts interactively.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}
			if cmd.Annotations[annotationSkipApp] == "true" {
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				ConfigFile:  configFile,
				Interactive: cmd.Annotations[annotationInteractive] == "true",
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/tagwm/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// requireApp returns the initialized app or an error for commands that
// need one.
func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
