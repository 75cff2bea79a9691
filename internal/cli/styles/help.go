package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// PreviewKeyMap defines keybindings for the layout playground.
type PreviewKeyMap struct {
	NewWindow   key.Binding
	CloseWindow key.Binding
	FocusLeft   key.Binding
	FocusDown   key.Binding
	FocusUp     key.Binding
	FocusRight  key.Binding
	SwapLeft    key.Binding
	SwapDown    key.Binding
	SwapUp      key.Binding
	SwapRight   key.Binding
	NextWindow  key.Binding
	CycleLayout key.Binding
	Grow        key.Binding
	Shrink      key.Binding
	Float       key.Binding
	NextScreen  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PreviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewWindow, k.CloseWindow, k.CycleLayout, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k PreviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NewWindow, k.CloseWindow, k.Float},
		{k.FocusLeft, k.FocusDown, k.FocusUp, k.FocusRight, k.NextWindow},
		{k.SwapLeft, k.SwapDown, k.SwapUp, k.SwapRight},
		{k.CycleLayout, k.Grow, k.Shrink, k.NextScreen},
		{k.Help, k.Quit},
	}
}

// DefaultPreviewKeyMap returns the default playground keybindings.
func DefaultPreviewKeyMap() PreviewKeyMap {
	return PreviewKeyMap{
		NewWindow: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new window"),
		),
		CloseWindow: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close"),
		),
		FocusLeft: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h", "focus left"),
		),
		FocusDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j", "focus down"),
		),
		FocusUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "focus up"),
		),
		FocusRight: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l", "focus right"),
		),
		SwapLeft: key.NewBinding(
			key.WithKeys("H", "shift+left"),
			key.WithHelp("H", "swap left"),
		),
		SwapDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "swap down"),
		),
		SwapUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "swap up"),
		),
		SwapRight: key.NewBinding(
			key.WithKeys("L", "shift+right"),
			key.WithHelp("L", "swap right"),
		),
		NextWindow: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next window"),
		),
		CycleLayout: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "next layout"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "grow master"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "shrink master"),
		),
		Float: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle floating"),
		),
		NextScreen: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "next screen"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
