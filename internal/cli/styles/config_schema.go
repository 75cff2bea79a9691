package styles

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/tagwm/internal/domain/entity"
)

// schemaSections lists the config sections in file order. Unknown sections
// follow in alphabetical order.
var schemaSections = []string{"Logging", "Layout", "Tags", "Screens"}

// ConfigSchemaRenderer prints the config keys as one table per section.
type ConfigSchemaRenderer struct {
	theme *Theme
}

func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	bySection := make(map[string][]entity.ConfigKeyInfo)
	var extra []string
	for _, k := range keys {
		if _, seen := bySection[k.Section]; !seen && !slices.Contains(schemaSections, k.Section) {
			extra = append(extra, k.Section)
		}
		bySection[k.Section] = append(bySection[k.Section], k)
	}
	slices.Sort(extra)

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	out := []string{fmt.Sprintf("%s %s", iconStyle.Render(IconConfig), r.theme.Title.Render("Config Schema Reference"))}
	for _, section := range append(slices.Clone(schemaSections), extra...) {
		if rows, ok := bySection[section]; ok {
			out = append(out, "", r.theme.Highlight.Render(section), r.sectionTable(rows))
		}
	}
	return strings.Join(out, "\n")
}

func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}

func (r *ConfigSchemaRenderer) sectionTable(keys []entity.ConfigKeyInfo) string {
	data := make([][]string, 0, len(keys))
	for _, k := range keys {
		data = append(data, []string{k.Key, k.Type, k.Default, allowed(k), k.Description})
	}

	headerStyle := lipgloss.NewStyle().Foreground(r.theme.Muted).Bold(true)
	cell := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("Key", "Type", "Default", "Allowed", "Description").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cell.Foreground(r.theme.Text).Bold(true)
			case col == 2:
				return cell.Foreground(r.theme.Accent)
			}
			return cell.Foreground(r.theme.Muted)
		}).
		Render()
}

// allowed summarizes the accepted values of a key: an enumeration, a range,
// or nothing.
func allowed(k entity.ConfigKeyInfo) string {
	if len(k.Values) > 0 {
		return strings.Join(k.Values, ", ")
	}
	return k.Range
}
