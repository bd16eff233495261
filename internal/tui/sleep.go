package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"garmin-wrapped/internal/analysis"
	"garmin-wrapped/internal/service"
)

// SleepModel renders the sleep summary
type SleepModel struct {
	wrapped *service.WrappedService
}

// NewSleepModel creates a new sleep model
func NewSleepModel(ws *service.WrappedService) SleepModel {
	return SleepModel{wrapped: ws}
}

// View renders the sleep screen
func (m SleepModel) View() string {
	if msg := m.wrapped.Err(service.CategorySleep); msg != "" {
		return errorStyle.Render(fmt.Sprintf("\n  Sleep: %s", msg))
	}

	snap := m.wrapped.Sleep()
	if snap == nil {
		return "\n  No sleep data loaded. Pass -sleep or set files.sleep in the config."
	}

	title := cardTitleStyle.Render("Sleep")

	avgScore := "-"
	if snap.AvgScore != nil {
		avgScore = fmt.Sprintf("%.1f", *snap.AvgScore)
	}
	avgDuration := "-"
	if snap.AvgMinutes != nil {
		avgDuration = formatMinutes(int(*snap.AvgMinutes))
	}

	lines := []string{
		RenderMetric("Periods", formatCount(snap.Periods)),
		RenderMetric("Avg score", avgScore),
		RenderMetric("Avg duration", avgDuration),
		RenderMetric("Best score", sleepScoreLine(snap.BestScore)),
		RenderMetric("Worst score", sleepScoreLine(snap.WorstScore)),
		RenderMetric("Longest sleep", sleepDurationLine(snap.LongestSleep)),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(64).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func sleepScoreLine(p *analysis.SleepPeriod) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%.0f (%s)", p.Score, orDash(p.Label))
}

func sleepDurationLine(p *analysis.SleepPeriod) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%s (%s)", formatMinutes(p.Minutes), orDash(p.Label))
}
