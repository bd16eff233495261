package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"garmin-wrapped/internal/config"
	"garmin-wrapped/internal/service"
	"garmin-wrapped/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	activitiesPath := flag.String("activities", "", "path to the activities CSV export")
	stepsPath := flag.String("steps", "", "path to the steps CSV export")
	sleepPath := flag.String("sleep", "", "path to the sleep CSV export")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		fmt.Println("No config file found. Creating example config...")
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		fmt.Printf("\nAn example config was written to:\n  %s/config.json\n\n", configDir)
		fmt.Println("Set your export file paths there, or pass them with")
		fmt.Println("-activities, -steps and -sleep.")
		defaults := config.DefaultConfig()
		cfg = &defaults
	} else if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	// Flags override configured file paths
	files := cfg.Files
	if *activitiesPath != "" {
		files.Activities = *activitiesPath
	}
	if *stepsPath != "" {
		files.Steps = *stepsPath
	}
	if *sleepPath != "" {
		files.Sleep = *sleepPath
	}

	if files.Activities == "" && files.Steps == "" && files.Sleep == "" {
		fmt.Println("Nothing to do: no export files configured.")
		fmt.Println("Pass -activities, -steps or -sleep, or set them in the config file.")
		return nil
	}

	// Create the aggregation service and launch the TUI
	wrapped := service.NewWrappedService(cfg.Wrapped)

	app := tui.NewApp(wrapped, files)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
