package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/winchester/internal/shell"
)

// desktopNavPixels is the site width at which the inline nav replaces the
// hamburger button.
const desktopNavPixels = 768

// View renders the current state to a string.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 100
	}
	state := a.shell.Snapshot()

	body := a.page.View()
	switch {
	case state.ModalOpen:
		modal := a.form.view(state, a.required)
		body = lipgloss.Place(width, max(lipgloss.Height(modal), a.page.Height), lipgloss.Center, lipgloss.Center, modal)
	case state.MenuOpen:
		menu := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5B8DEF")).
			Render(a.navMenu.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, menu, " ", body)
	}

	sections := []string{a.renderHeader(state, width), body}
	if logPanel := a.renderLogPanel(); logPanel != "" && a.help.ShowAll {
		sections = append(sections, logPanel)
	}
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Render(a.statusMsg)
	sections = append(sections, footer, a.help.View(a.keys))
	return strings.Join(sections, "\n")
}

func (a *App) renderHeader(state shell.State, width int) string {
	brand := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF6B6B")).
		Render(a.catalog.Firm())
	cta := activeStyle.Render("Free Consultation [c]")

	// Two rows plus the border, matching headerHeight.
	var rows []string
	if a.viewportPixels() >= desktopNavPixels {
		links := make([]string, len(shell.Sections))
		for i, section := range shell.Sections {
			if section == state.Section {
				links[i] = accentStyle.Render(section.Label())
			} else {
				links[i] = mutedStyle.Render(section.Label())
			}
		}
		rows = []string{
			lipgloss.JoinHorizontal(lipgloss.Center, brand, "   ", cta),
			strings.Join(links, "  "),
		}
	} else {
		icon := "☰"
		if state.MenuOpen {
			icon = "✕"
		}
		rows = []string{
			lipgloss.JoinHorizontal(lipgloss.Center, brand, "  ", mutedStyle.Render(fmt.Sprintf("%s menu [m]", icon))),
			cta,
		}
	}
	return lipgloss.NewStyle().
		Width(width).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color("#444444")).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines, total := a.logbook.Tail(logPanelLines)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.logbook.Path())
	if fileName == "." || fileName == "" {
		fileName = "log"
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(fmt.Sprintf("LOG · %s (%d entries)", fileName, total))
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(fmt.Sprintf("%s\n%s", head, body))
}
