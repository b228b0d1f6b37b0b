package tui

// Scene represents different screens in the TUI
type Scene int

const (
	SceneDashboard Scene = iota
	SceneWorksheet
)

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
