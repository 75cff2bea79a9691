package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/tagwm/internal/cli"
	"github.com/bnema/tagwm/internal/cli/styles"
	"github.com/bnema/tagwm/internal/infrastructure/config"
)

const (
	defaultRenderWindows = 3
	defaultCanvasCols    = 64
	defaultCanvasLines   = 18
)

var renderOpts struct {
	layout       string
	windows      int
	width        int
	height       int
	masterFactor int
	canvas       bool
	cols         int
	lines        int
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the geometry a layout gives to N windows",
	Long: `Open N windows on a single screen and print where the layout places them.

Layout parameters come from the config file; flags override them.

Examples:
  tagwm render                              # default layout, 3 windows
  tagwm render --layout spiral --windows 5
  tagwm render --layout grid --width 2560 --height 1440 --no-canvas`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	f := renderCmd.Flags()
	f.StringVarP(&renderOpts.layout, "layout", "l", "", "layout name (default from config)")
	f.IntVarP(&renderOpts.windows, "windows", "n", defaultRenderWindows, "number of windows")
	f.IntVar(&renderOpts.width, "width", 0, "screen width (default from config)")
	f.IntVar(&renderOpts.height, "height", 0, "screen height (default from config)")
	f.IntVar(&renderOpts.masterFactor, "master-factor", 0, "master area percentage")
	f.BoolVar(&renderOpts.canvas, "canvas", true, "draw the windows")
	f.IntVar(&renderOpts.cols, "cols", defaultCanvasCols, "canvas width in characters")
	f.IntVar(&renderOpts.lines, "lines", defaultCanvasLines, "canvas height in lines")
}

func runRender(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if renderOpts.windows < 0 {
		return fmt.Errorf("--windows must not be negative")
	}

	cfg, err := renderConfig(a.Config, cmd)
	if err != nil {
		return err
	}
	sandbox, err := cli.NewSandbox(cfg)
	if err != nil {
		return err
	}
	if err := sandbox.OpenN(a.Ctx(), renderOpts.windows); err != nil {
		return err
	}

	screen := sandbox.Screen()
	ts, err := sandbox.Current()
	if err != nil {
		return err
	}
	rows := sandbox.Rows()
	renderer := styles.NewLayoutRenderer(a.Theme)

	fmt.Println(renderer.RenderHeader(ts.Layout.Name(), len(rows), screen.Geometry))
	fmt.Println()
	if renderOpts.canvas {
		fmt.Println(renderer.RenderCanvas(screen.Geometry, rows, renderOpts.cols, renderOpts.lines))
		fmt.Println()
	}
	fmt.Println(renderer.RenderTable(rows))
	return nil
}

// renderConfig narrows cfg to one screen and applies the flag overrides.
func renderConfig(base *config.Config, cmd *cobra.Command) (*config.Config, error) {
	cfg := *base
	screen := config.ScreenConfig{Name: "render", Width: 1920, Height: 1080}
	if len(base.Screens) > 0 {
		screen.Width = base.Screens[0].Width
		screen.Height = base.Screens[0].Height
	}
	if renderOpts.width > 0 {
		screen.Width = renderOpts.width
	}
	if renderOpts.height > 0 {
		screen.Height = renderOpts.height
	}
	if screen.Width <= 0 || screen.Height <= 0 {
		return nil, fmt.Errorf("screen size %dx%d is not positive", screen.Width, screen.Height)
	}
	cfg.Screens = []config.ScreenConfig{screen}

	if renderOpts.layout != "" {
		cfg.Layout.Default = strings.ToLower(renderOpts.layout)
	}
	if cmd.Flags().Changed("master-factor") {
		if renderOpts.masterFactor < 0 || renderOpts.masterFactor > 100 {
			return nil, fmt.Errorf("--master-factor must be between 0 and 100")
		}
		cfg.Layout.MasterFactor = renderOpts.masterFactor
	}
	return &cfg, nil
}
