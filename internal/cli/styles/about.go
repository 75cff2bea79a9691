package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tagwm/internal/domain/build"
	"github.com/bnema/tagwm/internal/domain/entity"
)

// logoArea is the screen the logo windows are laid out on.
var logoArea = entity.NewGeometry(0, 0, 100, 100)

// AboutRenderer prints build info next to a small master/stack drawing.
type AboutRenderer struct {
	theme  *Theme
	layout *LayoutRenderer
}

func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme, layout: NewLayoutRenderer(theme)}
}

func (r *AboutRenderer) Render(info build.Info) string {
	logo := r.layout.RenderCanvas(logoArea, []WindowRow{
		{Geometry: entity.NewGeometry(0, 0, 50, 100), Visible: true, Focused: true},
		{Geometry: entity.NewGeometry(50, 0, 50, 50), Visible: true},
		{Geometry: entity.NewGeometry(50, 50, 50, 50), Visible: true},
	}, 14, 6)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Margin(1, 3, 0, 2).Render(logo),
		r.details(info),
	)
}

func (r *AboutRenderer) details(info build.Info) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)
	label := r.theme.Subtle.Width(8)

	fields := []struct{ icon, name, value string }{
		{IconVersion, "Version", info.Version},
		{IconGitBranch, "Commit", info.Commit},
		{IconCalendar, "Built", info.BuildDate},
		{IconGo, "Go", info.GoVersion},
	}
	lines := []string{r.theme.Title.Render("tagwm"), ""}
	for _, f := range fields {
		lines = append(lines, icon.Render(f.icon)+" "+label.Render(f.name)+r.theme.Highlight.Render(f.value))
	}
	lines = append(lines, "",
		icon.Render(IconGithub)+" "+r.theme.Subtle.Render(build.RepoURL()),
		icon.Render(IconHeart)+" "+r.theme.Subtle.Render("by ")+r.theme.Highlight.Render(strings.Join(build.Contributors(), ", ")),
	)
	return strings.Join(lines, "\n")
}
