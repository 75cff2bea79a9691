package styles

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name   string
		keys   []string
		done   bool
		result bool
	}{
		{"enter takes the default no", []string{"enter"}, true, false},
		{"y answers at once", []string{"y"}, true, true},
		{"n answers at once", []string{"tab", "n"}, true, false},
		{"tab then enter accepts yes", []string{"tab", "enter"}, true, true},
		{"toggling alone does not answer", []string{"tab", "l"}, false, false},
		{"esc cancels", []string{"tab", "esc"}, true, false},
		{"keys after the answer are ignored", []string{"n", "y"}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfirm(NewTheme(), "Apply?")
			for _, k := range tt.keys {
				c, _ = c.Update(keyPress(k))
			}
			assert.Equal(t, tt.done, c.Done())
			assert.Equal(t, tt.result, c.Result())
		})
	}
}

func TestConfirm_View(t *testing.T) {
	view := NewConfirm(NewTheme(), "Apply these changes?").View()
	assert.Contains(t, view, "Apply these changes?")
	assert.Contains(t, view, "esc")
	assert.Contains(t, view, "cancel")
}
