// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tagwm/internal/application/usecase"
	"github.com/bnema/tagwm/internal/cli"
	"github.com/bnema/tagwm/internal/cli/styles"
	"github.com/bnema/tagwm/internal/domain/layout"
	"github.com/bnema/tagwm/internal/infrastructure/config"
	"github.com/bnema/tagwm/internal/logging"
)

const (
	masterFactorStep = 5
	minCanvasCols    = 20
	minCanvasLines   = 6
	// header, blank, blank, status, help
	chromeLines = 5
)

// ConfigReloadedMsg carries a configuration that changed on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// PreviewModel is the Bubble Tea model for the interactive layout playground.
type PreviewModel struct {
	// UI components
	help     help.Model
	keys     styles.PreviewKeyMap
	renderer *styles.LayoutRenderer

	// State
	sandbox *cli.Sandbox
	cfg     *config.Config
	width   int
	height  int
	status  string
	err     error

	// Dependencies
	ctx   context.Context
	theme *styles.Theme
}

// NewPreviewModel creates a playground for cfg with windows clients open.
func NewPreviewModel(ctx context.Context, theme *styles.Theme, cfg *config.Config, windows int) (PreviewModel, error) {
	sandbox, err := cli.NewSandbox(cfg)
	if err != nil {
		return PreviewModel{}, err
	}
	if err := sandbox.OpenN(ctx, windows); err != nil {
		return PreviewModel{}, err
	}

	return PreviewModel{
		help:     styles.NewStyledHelp(theme),
		keys:     styles.DefaultPreviewKeyMap(),
		renderer: styles.NewLayoutRenderer(theme),
		sandbox:  sandbox,
		cfg:      cfg,
		width:    80,
		height:   24,
		ctx:      logging.WithComponent(ctx, "preview"),
		theme:    theme,
	}, nil
}

// Init implements tea.Model.
func (PreviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ConfigReloadedMsg:
		m.reload(msg.Config)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.err = nil
		m.status = ""
		m.handleKey(msg)
	}
	return m, nil
}

func (m *PreviewModel) handleKey(msg tea.KeyMsg) {
	uc := m.sandbox.Windows
	ctx := m.ctx

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.NewWindow):
		name, err := m.sandbox.Open(ctx)
		m.report(err, "opened "+name)

	case key.Matches(msg, m.keys.CloseWindow):
		name, err := m.sandbox.CloseFocused(ctx)
		m.report(err, "closed "+name)

	case key.Matches(msg, m.keys.FocusLeft):
		m.move(uc.MoveFocus(ctx, layout.Left))
	case key.Matches(msg, m.keys.FocusDown):
		m.move(uc.MoveFocus(ctx, layout.Down))
	case key.Matches(msg, m.keys.FocusUp):
		m.move(uc.MoveFocus(ctx, layout.Up))
	case key.Matches(msg, m.keys.FocusRight):
		m.move(uc.MoveFocus(ctx, layout.Right))
	case key.Matches(msg, m.keys.NextWindow):
		m.move(uc.MoveFocus(ctx, layout.InorderNext))

	case key.Matches(msg, m.keys.SwapLeft):
		m.move(uc.SwapFocused(ctx, layout.Left))
	case key.Matches(msg, m.keys.SwapDown):
		m.move(uc.SwapFocused(ctx, layout.Down))
	case key.Matches(msg, m.keys.SwapUp):
		m.move(uc.SwapFocused(ctx, layout.Up))
	case key.Matches(msg, m.keys.SwapRight):
		m.move(uc.SwapFocused(ctx, layout.Right))

	case key.Matches(msg, m.keys.CycleLayout):
		name, err := uc.CycleLayout(ctx)
		m.report(err, "layout "+name)

	case key.Matches(msg, m.keys.Grow):
		m.edit(layout.Add(layout.ParamMasterFactor, masterFactorStep))
	case key.Matches(msg, m.keys.Shrink):
		m.edit(layout.Add(layout.ParamMasterFactor, -masterFactorStep))

	case key.Matches(msg, m.keys.Float):
		floating, err := uc.ToggleFloating(ctx)
		m.report(err, fmt.Sprintf("floating %t", floating))

	case key.Matches(msg, m.keys.NextScreen):
		name, err := m.sandbox.NextScreen(ctx)
		m.report(err, "screen "+name)

	default:
		m.viewTag(msg.String())
	}
}

// viewTag shows the tag at the 1-based position typed by the user.
func (m *PreviewModel) viewTag(s string) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > len(m.cfg.Tags) {
		return
	}
	tag := m.cfg.Tags[n-1]
	m.report(m.sandbox.Windows.ViewTagSet(m.ctx, tag), "tag "+tag)
}

func (m *PreviewModel) move(changed bool, err error) {
	if err == nil && !changed {
		m.status = "nothing there"
		return
	}
	m.report(err, "")
}

func (m *PreviewModel) edit(msg layout.Message) {
	changed, err := m.sandbox.Windows.SendLayoutMessage(m.ctx, msg)
	if err == nil && !changed {
		m.status = "layout ignored the change"
		return
	}
	m.report(err, "")
}

func (m *PreviewModel) report(err error, status string) {
	if errors.Is(err, usecase.ErrNoFocus) {
		m.status = "no window focused"
		return
	}
	if err != nil {
		m.err = err
		logging.FromContext(m.ctx).Debug().Err(err).Msg("preview action failed")
		return
	}
	m.status = status
}

// reload rebuilds the playground from cfg, keeping the window count.
func (m *PreviewModel) reload(cfg *config.Config) {
	count := len(m.sandbox.Hierarchy().Clients())
	sandbox, err := cli.NewSandbox(cfg)
	if err == nil {
		err = sandbox.OpenN(m.ctx, count)
	}
	if err != nil {
		m.err = fmt.Errorf("reload config: %w", err)
		return
	}
	m.sandbox = sandbox
	m.cfg = cfg
	m.status = "config reloaded"
}

// View implements tea.Model.
func (m PreviewModel) View() string {
	screen := m.sandbox.Screen()
	if screen == nil {
		return m.theme.ErrorStyle.Render("no screen configured")
	}
	ts, err := m.sandbox.Current()
	if err != nil {
		return m.theme.ErrorStyle.Render(err.Error())
	}

	rows := m.sandbox.Rows()
	visible := 0
	for _, r := range rows {
		if r.Visible {
			visible++
		}
	}

	iconStyle := lipgloss.NewStyle().Foreground(m.theme.Accent)
	header := strings.Join([]string{
		m.renderer.RenderHeader(ts.Layout.Name(), visible, screen.Geometry),
		fmt.Sprintf("%s %s", iconStyle.Render(styles.IconScreen), m.theme.Normal.Render(screen.Name)),
		fmt.Sprintf("%s %s", iconStyle.Render(styles.IconTag), m.theme.Normal.Render(ts.Name)),
	}, "   ")

	cols := max(m.width-2, minCanvasCols)
	lines := max(m.height-chromeLines-m.helpLines(), minCanvasLines)
	canvas := m.renderer.RenderCanvas(screen.Geometry, rows, cols, lines)

	status := m.theme.Subtle.Render(m.status)
	if m.err != nil {
		status = m.theme.ErrorStyle.Render(m.err.Error())
	}

	return strings.Join([]string{
		header,
		"",
		canvas,
		"",
		status,
		m.help.View(m.keys),
	}, "\n")
}

func (m PreviewModel) helpLines() int {
	if !m.help.ShowAll {
		return 1
	}
	longest := 0
	for _, group := range m.keys.FullHelp() {
		longest = max(longest, len(group))
	}
	return longest
}
