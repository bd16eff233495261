package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"garmin-wrapped/internal/service"
)

// SportsModel renders the per-sport breakdown and the full week-by-week
// history in a scrollable viewport
type SportsModel struct {
	wrapped  *service.WrappedService
	viewport viewport.Model
}

// NewSportsModel creates a new sports model
func NewSportsModel(ws *service.WrappedService) SportsModel {
	return SportsModel{
		wrapped:  ws,
		viewport: viewport.New(80, 20),
	}
}

// Init implements tea.Model
func (m SportsModel) Init() tea.Cmd {
	return nil
}

// Refresh rebuilds the viewport content from the current snapshot
func (m *SportsModel) Refresh() {
	m.viewport.SetContent(m.renderWeeks())
	m.viewport.GotoTop()
}

// Resize adjusts the viewport to the window
func (m *SportsModel) Resize(width, height int) {
	m.viewport.Width = width - 4
	// Leave room for chrome and the breakdown table above the viewport.
	if h := height - 24; h > 5 {
		m.viewport.Height = h
	} else {
		m.viewport.Height = 5
	}
}

// Update handles messages; scrolling is delegated to the viewport
func (m SportsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the sports screen
func (m SportsModel) View() string {
	if msg := m.wrapped.Err(service.CategoryActivities); msg != "" {
		return errorStyle.Render(fmt.Sprintf("\n  Activities: %s", msg))
	}

	snap := m.wrapped.Activities()
	if snap == nil {
		return "\n  No activities loaded."
	}

	var sections []string
	sections = append(sections, m.renderBreakdown())
	sections = append(sections, m.renderTopSports())

	weeksTitle := cardTitleStyle.Render("Week by Week  (j/k to scroll)")
	sections = append(sections, cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, weeksTitle, m.viewport.View())))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m SportsModel) renderBreakdown() string {
	snap := m.wrapped.Activities()
	title := cardTitleStyle.Render("Sport Breakdown")

	header := tableHeaderStyle.Render(fmt.Sprintf("%-12s  %10s  %10s  %10s", "Sport", "Sessions", "Distance", "Time"))
	rows := []string{header}
	for _, st := range snap.Sports {
		rows = append(rows, tableRowStyle.Render(fmt.Sprintf("%-12s  %10d  %10s  %10s",
			st.Sport, st.Sessions, formatMiles(st.Miles), formatDuration(st.Seconds))))
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}

func (m SportsModel) renderTopSports() string {
	title := cardTitleStyle.Render("Top Sports")

	top := m.wrapped.TopSports()
	if len(top) == 0 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "No sessions"))
	}

	var lines []string
	for i, st := range top {
		lines = append(lines, fmt.Sprintf("%d. %s — %d sessions, %s",
			i+1, highlightStyle.Render(string(st.Sport)), st.Sessions, formatMiles(st.Miles)))
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinVertical(lipgloss.Left, lines...)))
}

func (m SportsModel) renderWeeks() string {
	snap := m.wrapped.Activities()
	if snap == nil {
		return ""
	}

	var rows []string
	for _, w := range snap.Weeks {
		rows = append(rows, fmt.Sprintf("%-22s  %8s  %3d sessions", w.Label, formatDuration(w.Seconds), w.Sessions))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
