package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/winchester/internal/catalog"
	"github.com/kingrea/winchester/internal/chart"
	"github.com/kingrea/winchester/internal/shell"
)

var (
	sectionTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")).MarginTop(1)
	cardStyle         = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#444444")).
				Padding(0, 1)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#1D4ED8")).Padding(0, 1)
	tabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")).Padding(0, 1)
)

// page is the rendered site body plus the line each anchor starts on.
type page struct {
	content string
	anchors map[shell.Section]int
}

type pageBuilder struct {
	lines   []string
	anchors map[shell.Section]int
}

func (b *pageBuilder) section(s shell.Section, title string, blocks ...string) {
	b.anchors[s] = len(b.lines)
	b.lines = append(b.lines, strings.Split(sectionTitleStyle.Render(title), "\n")...)
	for _, block := range blocks {
		if block == "" {
			continue
		}
		b.lines = append(b.lines, strings.Split(block, "\n")...)
	}
}

// buildPage lays out every section of the site for the given width.
func (a *App) buildPage(width int) page {
	width = max(30, width)
	state := a.shell.Snapshot()
	active := a.shell.ActiveItems()
	b := &pageBuilder{anchors: map[shell.Section]int{}}

	b.section(shell.SectionHome, strings.ToUpper(a.catalog.Firm()),
		lipgloss.NewStyle().Bold(true).Render(a.catalog.Tagline()),
		mutedStyle.Render("Dedicated to delivering exceptional legal services with integrity, expertise, and a commitment to client success."),
		accentStyle.Render("[c] Schedule Consultation"),
	)

	b.section(shell.SectionPracticeAreas, "Our Practice Areas",
		a.renderFilterBar(state, width),
		renderCards(catalog.OfKind(active, catalog.KindPracticeArea), width, "No practice areas match this filter."),
	)

	b.section(shell.SectionAttorneys, "Our Expert Attorneys",
		renderCards(catalog.OfKind(active, catalog.KindAttorney), width, "No attorneys match this filter."),
	)

	b.section(shell.SectionAbout, "Why Choose Us",
		chart.RenderBars(a.chartSpec, min(width, 72)),
	)

	b.section(shell.SectionResources, "Case Results",
		a.renderCarousel(state, width),
	)

	b.section(shell.SectionContact, "Contact",
		mutedStyle.Render("Newsletter · Subscribe for legal updates."),
		a.newsletter.View(),
		mutedStyle.Render(fmt.Sprintf("© 2025 %s. All rights reserved.", a.catalog.Firm())),
	)

	return page{content: strings.Join(b.lines, "\n"), anchors: b.anchors}
}

func (a *App) renderFilterBar(state shell.State, width int) string {
	var tabs []string
	for _, tag := range a.shell.Filters() {
		label := tag
		if tag == catalog.FilterAll {
			label = "All"
		}
		if tag == state.ActiveFilter {
			tabs = append(tabs, activeStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(tabs, " "))
}

func renderCards(items []catalog.Item, width int, empty string) string {
	if len(items) == 0 {
		return mutedStyle.Render(empty)
	}
	cardWidth := 34
	perRow := max(1, width/(cardWidth+2))
	var rows []string
	for start := 0; start < len(items); start += perRow {
		end := min(start+perRow, len(items))
		var cards []string
		for _, item := range items[start:end] {
			cards = append(cards, renderCard(item, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(item catalog.Item, width int) string {
	lines := []string{lipgloss.NewStyle().Bold(true).Render(item.Title)}
	switch item.Kind {
	case catalog.KindAttorney:
		lines = append(lines, mutedStyle.Render(item.Role), accentStyle.Render(item.Category))
	case catalog.KindCaseResult:
		lines = append(lines, accentStyle.Render(item.Outcome), mutedStyle.Render(item.Category))
	}
	if item.Description != "" {
		lines = append(lines, item.Description)
	}
	return cardStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// renderCarousel draws the visible slides for the current viewport and the
// pagination dots underneath.
func (a *App) renderCarousel(state shell.State, width int) string {
	snap := a.carousel.Snapshot()
	if snap.SlideCount == 0 {
		return mutedStyle.Render(fmt.Sprintf("No case results for %s.", state.ActiveFilter))
	}
	visible := a.carousel.VisibleSlides(a.viewportPixels())
	cardWidth := max(20, width/len(visible)-2)
	cards := make([]string, len(visible))
	for i, item := range visible {
		cards[i] = renderCard(item, cardWidth)
	}
	dots := make([]string, snap.SlideCount)
	for i := range dots {
		if i == snap.CurrentIndex {
			dots[i] = accentStyle.Render("●")
		} else {
			dots[i] = mutedStyle.Render("○")
		}
	}
	status := "autoplay on"
	if !a.autoplay.Running() {
		status = "paused"
	}
	footer := fmt.Sprintf("%s  %s", strings.Join(dots, " "), mutedStyle.Render(fmt.Sprintf("%d/%d · %s", snap.CurrentIndex+1, snap.SlideCount, status)))
	return lipgloss.JoinVertical(lipgloss.Left, lipgloss.JoinHorizontal(lipgloss.Top, cards...), footer)
}
