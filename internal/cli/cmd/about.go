package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tagwm/internal/cli/styles"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"about"},
	Short:   "Show version and build information",
	Long:    `Display version, build info, repository URL, and contributors.`,
	Args:    cobra.NoArgs,
	RunE:    runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "print the version only")
}

func runVersion(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	if versionShort {
		fmt.Println(a.BuildInfo.Version)
		return nil
	}

	renderer := styles.NewAboutRenderer(a.Theme)
	fmt.Println(renderer.Render(a.BuildInfo))
	return nil
}
