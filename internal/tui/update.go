package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the keybindings for the dashboard
type KeyMap struct {
	Up             key.Binding
	Down           key.Binding
	Left           key.Binding
	Right          key.Binding
	SwitchScene    key.Binding
	TogglePlanning key.Binding
	TogglePermit   key.Binding
	Reset          key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous parameter"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next parameter"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "decrease"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "increase"),
		),
		SwitchScene: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "dashboard/worksheet"),
		),
		TogglePlanning: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "toggle planning waiver"),
		),
		TogglePermit: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle permit waiver"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset defaults"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case NavigateMsg:
		m.currentScene = msg.Scene
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.SwitchScene):
		if m.currentScene == SceneDashboard {
			m.currentScene = SceneWorksheet
		} else {
			m.currentScene = SceneDashboard
		}
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.reset()
		return m, nil
	}

	if m.currentScene != SceneDashboard {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.sliders[m.focusIndex].SetFocused(false)
		m.focusIndex = (m.focusIndex + len(m.sliders) - 1) % len(m.sliders)
		m.sliders[m.focusIndex].SetFocused(true)

	case key.Matches(msg, m.keys.Down):
		m.sliders[m.focusIndex].SetFocused(false)
		m.focusIndex = (m.focusIndex + 1) % len(m.sliders)
		m.sliders[m.focusIndex].SetFocused(true)

	case key.Matches(msg, m.keys.Left):
		m.sliders[m.focusIndex].Decrement()
		m.recalculate()

	case key.Matches(msg, m.keys.Right):
		m.sliders[m.focusIndex].Increment()
		m.recalculate()

	case key.Matches(msg, m.keys.TogglePlanning):
		m.waivePlanning = !m.waivePlanning
		m.recalculate()

	case key.Matches(msg, m.keys.TogglePermit):
		m.waivePermit = !m.waivePermit
		m.recalculate()
	}
	return m, nil
}
