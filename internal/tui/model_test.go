package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WesternSpaces/delta-fast-track-simulator/internal/domain"
)

func TestNewModel(t *testing.T) {
	m := NewModel(domain.DefaultProjectParams())

	require.Len(t, m.sliders, sliderCount)
	require.NotNil(t, m.result)
	require.NotNil(t, m.community)
	require.NotNil(t, m.worksheet)
	assert.Equal(t, 24, m.result.TotalUnits)
	assert.NoError(t, m.err)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up", "down", "left", "right", "tab":
		types := map[string]tea.KeyType{
			"up": tea.KeyUp, "down": tea.KeyDown,
			"left": tea.KeyLeft, "right": tea.KeyRight,
			"tab": tea.KeyTab,
		}
		return tea.KeyMsg{Type: types[s]}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestUpdateNavigation(t *testing.T) {
	m := NewModel(domain.DefaultProjectParams())

	next, _ := m.Update(keyMsg("down"))
	m = next.(Model)
	assert.Equal(t, 1, m.focusIndex)

	next, _ = m.Update(keyMsg("up"))
	m = next.(Model)
	assert.Equal(t, 0, m.focusIndex)

	// Wraps from the first slider to the last.
	next, _ = m.Update(keyMsg("up"))
	m = next.(Model)
	assert.Equal(t, sliderCount-1, m.focusIndex)
}

func TestUpdateAdjustRecalculates(t *testing.T) {
	m := NewModel(domain.DefaultProjectParams())
	before := m.result.TotalUnits

	// First slider is base units; one step right adds a unit.
	next, _ := m.Update(keyMsg("right"))
	m = next.(Model)
	require.NoError(t, m.err)
	assert.Equal(t, 21, m.project.BaseUnits)
	assert.NotEqual(t, before, m.result.TotalUnits)
}

func TestUpdateToggleWaivers(t *testing.T) {
	m := NewModel(domain.DefaultProjectParams())
	require.True(t, m.waivePlanning)

	next, _ := m.Update(keyMsg("p"))
	m = next.(Model)
	assert.False(t, m.waivePlanning)
	assert.True(t, m.result.PlanningFeesWaived.IsZero())

	next, _ = m.Update(keyMsg("b"))
	m = next.(Model)
	assert.False(t, m.waivePermit)
	assert.True(t, m.result.BuildingPermitWaived.IsZero())
}

func TestUpdateSceneSwitch(t *testing.T) {
	m := NewModel(domain.DefaultProjectParams())
	assert.Equal(t, SceneDashboard, m.currentScene)

	next, _ := m.Update(keyMsg("tab"))
	m = next.(Model)
	assert.Equal(t, SceneWorksheet, m.currentScene)

	// Slider keys are inert on the worksheet scene.
	next, _ = m.Update(keyMsg("right"))
	m = next.(Model)
	assert.Equal(t, 20, m.project.BaseUnits)

	next, _ = m.Update(keyMsg("tab"))
	m = next.(Model)
	assert.Equal(t, SceneDashboard, m.currentScene)
}

func TestUpdateReset(t *testing.T) {
	m := NewModel(domain.DefaultProjectParams())

	next, _ := m.Update(keyMsg("right"))
	m = next.(Model)
	next, _ = m.Update(keyMsg("p"))
	m = next.(Model)
	require.Equal(t, 21, m.project.BaseUnits)

	next, _ = m.Update(keyMsg("r"))
	m = next.(Model)
	assert.Equal(t, 20, m.project.BaseUnits)
	assert.True(t, m.waivePlanning)
}

func TestUpdateQuit(t *testing.T) {
	m := NewModel(domain.DefaultProjectParams())

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewScenes(t *testing.T) {
	m := NewModel(domain.DefaultProjectParams())

	out := m.View()
	assert.Contains(t, out, "Delta Fast Track Simulator")
	assert.Contains(t, out, "Base units")

	m.currentScene = SceneWorksheet
	out = m.View()
	assert.Contains(t, out, "No Fast Track")
	assert.Contains(t, out, "Maximum Commitment")
}
