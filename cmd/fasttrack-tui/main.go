package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/WesternSpaces/delta-fast-track-simulator/internal/config"
	"github.com/WesternSpaces/delta-fast-track-simulator/internal/domain"
	"github.com/WesternSpaces/delta-fast-track-simulator/internal/tui"
)

func main() {
	project := domain.DefaultProjectParams()

	// Optional config file seeds the project; policy levers start at the
	// program defaults and are adjusted live.
	if len(os.Args) > 1 {
		configData, err := config.NewInputParser().LoadFromFile(os.Args[1])
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		project = configData.Project
	}

	p := tea.NewProgram(
		tui.NewModel(project),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
