package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	navSection := m.renderSection("Navigation", []keyHelp{
		{"1", "Overview"},
		{"2", "Sport breakdown"},
		{"3", "Steps"},
		{"4", "Sleep"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	})
	sections = append(sections, navSection)

	globalSection := m.renderSection("Global", []keyHelp{
		{"r", "Re-read the configured export files"},
	})
	sections = append(sections, globalSection)

	sportsSection := m.renderSection("Sport Breakdown", []keyHelp{
		{"j / down", "Scroll weeks down"},
		{"k / up", "Scroll weeks up"},
		{"pgdn / pgup", "Page through weeks"},
	})
	sections = append(sections, sportsSection)

	sections = append(sections, m.renderNotes())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	header := helpDescStyle.Bold(true).Render(title)

	var lines []string
	for _, k := range keys {
		padded := k.key + strings.Repeat(" ", max(1, 14-len(k.key)))
		lines = append(lines, "  "+RenderKeyHelp(padded, k.desc))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m HelpModel) renderNotes() string {
	header := helpDescStyle.Bold(true).Render("Notes")
	notes := []string{
		"  Distances from meter-denominated sports (pool and open water",
		"  swims, track running) are converted to miles automatically.",
		"  A dash means no qualifying record was found in the export.",
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, helpDescStyle.Render(strings.Join(notes, "\n")))
}
