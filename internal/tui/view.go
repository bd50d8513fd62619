package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/carousel/internal/ui/components"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	descStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	footStyle  = lipgloss.NewStyle().MarginTop(1)
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.header(), m.frame()}
	if m.lastErr != "" {
		sections = append(sections, errorStyle.Render(m.lastErr))
	}
	if m.reloadNote != "" {
		sections = append(sections, descStyle.Render(m.reloadNote))
	}
	if m.activity.last != "" {
		sections = append(sections, descStyle.Render("last change "+m.activity.last))
	}
	sections = append(sections, footStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) header() string {
	title := m.title
	if title == "" {
		title = "carousel"
	}
	lines := []string{titleStyle.Render(title)}
	if m.description != "" {
		lines = append(lines, descStyle.Render(m.description))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) frame() string {
	ctx := components.DefaultContext().WithTheme(m.theme).WithWidth(m.width)
	return components.NewCarousel(m.nav).ViewWithContext(ctx)
}
