package styles

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type confirmKeys struct {
	Yes    key.Binding
	No     key.Binding
	Toggle key.Binding
	Accept key.Binding
	Cancel key.Binding
}

func defaultConfirmKeys() confirmKeys {
	return confirmKeys{
		Yes:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		No:     key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "no")),
		Toggle: key.NewBinding(key.WithKeys("tab", "left", "right", "h", "l"), key.WithHelp("tab", "toggle")),
		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

// Confirm is an inline yes/no prompt that defaults to no. y and n answer
// at once; enter takes the highlighted choice.
type Confirm struct {
	Question string

	yes      bool
	answered bool
	canceled bool
	keys     confirmKeys
	theme    *Theme
}

func NewConfirm(theme *Theme, question string) Confirm {
	return Confirm{Question: question, keys: defaultConfirmKeys(), theme: theme}
}

// Update handles key presses. The returned command is always nil; callers
// check Done after each message.
func (c Confirm) Update(msg tea.Msg) (Confirm, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || c.Done() {
		return c, nil
	}

	switch {
	case key.Matches(k, c.keys.Yes):
		c.yes, c.answered = true, true
	case key.Matches(k, c.keys.No):
		c.yes, c.answered = false, true
	case key.Matches(k, c.keys.Toggle):
		c.yes = !c.yes
	case key.Matches(k, c.keys.Accept):
		c.answered = true
	case key.Matches(k, c.keys.Cancel):
		c.yes, c.canceled = false, true
	}
	return c, nil
}

func (c Confirm) View() string {
	t := c.theme
	choice := func(label string, on bool) string {
		if on {
			return t.ActiveTab.Render(label)
		}
		return t.InactiveTab.Render(label)
	}

	hint := ""
	for i, b := range []key.Binding{c.keys.Yes, c.keys.No, c.keys.Toggle, c.keys.Accept, c.keys.Cancel} {
		if i > 0 {
			hint += t.Subtle.Render(" · ")
		}
		hint += t.HelpKey.Render(b.Help().Key) + " " + t.HelpDesc.Render(b.Help().Desc)
	}

	warn := lipgloss.NewStyle().Foreground(t.Warning).Render(IconWarning)
	return fmt.Sprintf("\n  %s %s  %s %s\n\n  %s\n",
		warn, t.Normal.Render(c.Question), choice(" no ", !c.yes), choice(" yes ", c.yes), hint)
}

// Done reports whether the prompt was answered or canceled.
func (c Confirm) Done() bool {
	return c.answered || c.canceled
}

// Result reports whether the answer was yes.
func (c Confirm) Result() bool {
	return c.answered && c.yes
}
