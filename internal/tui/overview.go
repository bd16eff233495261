package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"garmin-wrapped/internal/analysis"
	"garmin-wrapped/internal/service"
)

// OverviewModel renders the year-in-sport summary cards
type OverviewModel struct {
	wrapped *service.WrappedService
}

// NewOverviewModel creates a new overview model
func NewOverviewModel(ws *service.WrappedService) OverviewModel {
	return OverviewModel{wrapped: ws}
}

// View renders the overview screen
func (m OverviewModel) View() string {
	if msg := m.wrapped.Err(service.CategoryActivities); msg != "" {
		return errorStyle.Render(fmt.Sprintf("\n  Activities: %s", msg))
	}

	snap := m.wrapped.Activities()
	if snap == nil {
		return "\n  No activities loaded. Pass -activities or set files.activities in the config."
	}

	var sections []string

	totals := m.renderTotalsCard()
	bests := m.renderBestsCard()
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, totals, "  ", bests))

	streaks := m.renderStreakCard()
	sections = append(sections, streaks)

	if len(snap.Weeks) > 2 {
		sections = append(sections, m.renderWeeklyChart())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m OverviewModel) renderTotalsCard() string {
	snap := m.wrapped.Activities()
	title := cardTitleStyle.Render("Totals")

	span := "-"
	if snap.First != nil && snap.Last != nil {
		span = snap.First.Format("Jan 02, 2006") + " – " + snap.Last.Format("Jan 02, 2006")
	}

	avgHR := "-"
	if snap.AvgHR != nil {
		avgHR = fmt.Sprintf("%.0f bpm", *snap.AvgHR)
	}

	lines := []string{
		RenderMetric("Sessions", formatCount(snap.Sessions)),
		RenderMetric("Distance", formatMiles(snap.Miles)),
		RenderMetric("Time", formatDuration(snap.Seconds)),
		RenderMetric("Calories", formatCount(int(snap.Calories))),
		RenderMetric("Avg HR", avgHR),
		RenderMetric("Span", span),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(56).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m OverviewModel) renderBestsCard() string {
	snap := m.wrapped.Activities()
	title := cardTitleStyle.Render("Personal Bests")

	longest := "-"
	if a := snap.LongestActivity; a != nil {
		longest = fmt.Sprintf("%s (%s, %s)", formatDuration(a.Seconds), truncate(a.Label, 18), a.Date.Format("Jan 02"))
	}

	hottest := "-"
	if a := snap.HighestCalories; a != nil {
		hottest = fmt.Sprintf("%s kcal (%s)", formatCount(int(a.Calories)), a.Date.Format("Jan 02"))
	}

	lines := []string{
		RenderMetric("Longest session", longest),
		RenderMetric("Most calories", hottest),
		RenderMetric("Longest run", bestDistance(snap.LongestRun)),
		RenderMetric("Longest ride", bestDistance(snap.LongestRide)),
		RenderMetric("Longest swim", bestDistance(snap.LongestSwim)),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(60).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m OverviewModel) renderStreakCard() string {
	snap := m.wrapped.Activities()
	title := cardTitleStyle.Render("Streaks & Habits")

	streak := "-"
	if s := snap.Streak; s != nil {
		streak = fmt.Sprintf("%d days (%s – %s)", s.Days, s.Start.Format("Jan 02"), s.End.Format("Jan 02, 2006"))
	}

	busiestWeek := "-"
	if w := snap.BusiestWeek; w != nil {
		busiestWeek = fmt.Sprintf("%s: %s across %d sessions", w.Label, formatDuration(w.Seconds), w.Sessions)
	}

	busiestDay := "-"
	if d := snap.BusiestDay; d != nil {
		busiestDay = fmt.Sprintf("%s: %s", d.Date, formatDuration(d.Seconds))
	}

	grind := "-"
	if g := snap.GrindDay; g != nil {
		grind = fmt.Sprintf("%s (%d sessions, %s)", g.Weekday, g.Sessions, formatDuration(g.Seconds))
	}

	lines := []string{
		RenderMetric("Longest streak", highlightStyle.Render(streak)),
		RenderMetric("Busiest week", busiestWeek),
		RenderMetric("Busiest day", busiestDay),
		RenderMetric("Grind day", grind),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(118).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m OverviewModel) renderWeeklyChart() string {
	snap := m.wrapped.Activities()
	title := cardTitleStyle.Render("Weekly Hours")

	data := make([]float64, len(snap.Weeks))
	for i, w := range snap.Weeks {
		data[i] = float64(w.Seconds) / 3600
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(100),
		asciigraph.Precision(1),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

// bestDistance formats a per-sport longest-distance pointer
func bestDistance(a *analysis.Activity) string {
	if a == nil {
		return "-"
	}
	return fmt.Sprintf("%s (%s)", formatMiles(a.Miles), a.Date.Format("Jan 02"))
}
