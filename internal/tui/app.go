package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"garmin-wrapped/internal/config"
	"garmin-wrapped/internal/service"
)

// Screen identifiers
type Screen int

const (
	ScreenOverview Screen = iota
	ScreenSports
	ScreenSteps
	ScreenSleep
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	overview OverviewModel
	sports   SportsModel
	steps    StepsModel
	sleep    SleepModel
	help     HelpModel

	// Services
	wrapped *service.WrappedService
	files   config.FilesConfig

	// Window dimensions
	width  int
	height int
}

// loadedMsg signals that all configured export files were (re)loaded
type loadedMsg struct{}

// NewApp creates a new App with all dependencies
func NewApp(wrapped *service.WrappedService, files config.FilesConfig) *App {
	return &App{
		screen:   ScreenOverview,
		wrapped:  wrapped,
		files:    files,
		overview: NewOverviewModel(wrapped),
		sports:   NewSportsModel(wrapped),
		steps:    NewStepsModel(wrapped),
		sleep:    NewSleepModel(wrapped),
		help:     NewHelpModel(),
	}
}

// Init initializes the app by loading the configured export files
func (a *App) Init() tea.Cmd {
	return a.loadFiles
}

// loadFiles runs the one-shot aggregation pipeline for every configured
// category. Failures stay category-scoped: the service records a message and
// the other categories still load.
func (a *App) loadFiles() tea.Msg {
	if a.files.Activities != "" {
		_ = a.wrapped.Load(service.CategoryActivities, a.files.Activities)
	}
	if a.files.Steps != "" {
		_ = a.wrapped.Load(service.CategorySteps, a.files.Steps)
	}
	if a.files.Sleep != "" {
		_ = a.wrapped.Load(service.CategorySleep, a.files.Sleep)
	}
	return loadedMsg{}
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			a.screen = ScreenOverview
			return a, nil
		case "2":
			a.screen = ScreenSports
			return a, nil
		case "3":
			a.screen = ScreenSteps
			return a, nil
		case "4":
			a.screen = ScreenSleep
			return a, nil
		case "r":
			return a, a.loadFiles
		case "?":
			if a.screen != ScreenHelp {
				a.prevScreen = a.screen
				a.screen = ScreenHelp
			}
			return a, nil
		case "esc":
			if a.screen == ScreenHelp {
				a.screen = a.prevScreen
			}
			return a, nil
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.sports.Resize(msg.Width, msg.Height)

	case loadedMsg:
		// Rebuild the scrollable sports view from the fresh snapshot.
		a.sports.Refresh()
		return a, nil
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenSports:
		var m tea.Model
		m, cmd = a.sports.Update(msg)
		a.sports = m.(SportsModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenOverview:
		content = a.overview.View()
	case ScreenSports:
		content = a.sports.View()
	case ScreenSteps:
		content = a.steps.View()
	case ScreenSleep:
		content = a.sleep.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := statusStyle.Render("Press 'r' to reload files, '?' for help, 'q' to quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Garmin Wrapped")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Overview", ScreenOverview},
		{"2", "Sports", ScreenSports},
		{"3", "Steps", ScreenSteps},
		{"4", "Sleep", ScreenSleep},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}
	return nav
}
