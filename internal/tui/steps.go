package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"garmin-wrapped/internal/service"
)

// StepsModel renders the steps summary
type StepsModel struct {
	wrapped *service.WrappedService
}

// NewStepsModel creates a new steps model
func NewStepsModel(ws *service.WrappedService) StepsModel {
	return StepsModel{wrapped: ws}
}

// View renders the steps screen
func (m StepsModel) View() string {
	if msg := m.wrapped.Err(service.CategorySteps); msg != "" {
		return errorStyle.Render(fmt.Sprintf("\n  Steps: %s", msg))
	}

	snap := m.wrapped.Steps()
	if snap == nil {
		return "\n  No steps loaded. Pass -steps or set files.steps in the config."
	}

	title := cardTitleStyle.Render("Steps")

	granularity := "daily"
	if snap.DaysPerPeriod > 1 {
		granularity = fmt.Sprintf("weekly (%d-day periods)", snap.DaysPerPeriod)
	}

	best := "-"
	if b := snap.Best; b != nil {
		best = fmt.Sprintf("%s (%s)", formatCount(b.Steps), orDash(b.Label))
	}

	lines := []string{
		RenderMetric("Total steps", highlightStyle.Render(formatCount(snap.TotalSteps))),
		RenderMetric("Periods", fmt.Sprintf("%d %s", snap.Periods, granularity)),
		RenderMetric("Days covered", formatCount(snap.TotalDays)),
		RenderMetric("Avg steps / day", formatCount(int(snap.AvgPerDay))),
		RenderMetric("Best period", best),
		RenderMetric("Distance equivalent", formatMiles(snap.Miles)),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(64).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}
