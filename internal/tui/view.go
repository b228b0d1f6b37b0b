package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/WesternSpaces/delta-fast-track-simulator/internal/tui/components"
)

// View renders the current state of the application
func (m Model) View() string {
	var content string
	switch m.currentScene {
	case SceneDashboard:
		content = m.renderDashboard()
	case SceneWorksheet:
		content = m.renderWorksheet()
	default:
		content = "Unknown scene"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		AppStyle.Render(content),
		m.renderStatusBar(),
	)
}

func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("Delta Fast Track Simulator")
	scene := "Policy Dashboard"
	if m.currentScene == SceneWorksheet {
		scene = "Decision Worksheet"
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, SubtitleStyle.Render(" › "+scene))
}

func (m Model) renderStatusBar() string {
	bindings := []struct {
		keys string
		desc string
	}{
		{"↑↓", "navigate"},
		{"←→", "adjust"},
		{"p/b", "waivers"},
		{"tab", "worksheet"},
		{"r", "reset"},
		{"q", "quit"},
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, StatusKeyStyle.Render(b.keys)+" "+b.desc)
	}
	return StatusBarStyle.Render(strings.Join(parts, "  •  "))
}

// renderDashboard shows the sliders beside the live outcome metrics.
func (m Model) renderDashboard() string {
	var left strings.Builder
	for i, slider := range m.sliders {
		left.WriteString(slider.Render())
		if i < len(m.sliders)-1 {
			left.WriteString("\n")
		}
	}
	left.WriteString("\n")
	left.WriteString(m.renderToggles())

	leftPanel := lipgloss.NewStyle().Width(44).Render(left.String())
	rightPanel := m.renderMetrics()

	return lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, "  ", rightPanel)
}

func (m Model) renderToggles() string {
	check := func(on bool) string {
		if on {
			return MetricPositiveStyle.Render("[x]")
		}
		return SubtitleStyle.Render("[ ]")
	}
	return fmt.Sprintf("%s Waive planning fees (p)\n%s Waive building permit (b)",
		check(m.waivePlanning), check(m.waivePermit))
}

func (m Model) renderMetrics() string {
	if m.err != nil {
		return ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.result == nil || m.community == nil {
		return SubtitleStyle.Render("No results yet")
	}
	p := m.result
	c := m.community

	verdict := "May not pencil"
	verdictPositive := false
	if p.DeveloperFeasible {
		verdict = "Adds value"
		verdictPositive = true
	}

	cards := []*components.MetricCard{
		components.NewMetricCard("Total Units", fmt.Sprintf("%d", p.TotalUnits)).
			WithDescription(fmt.Sprintf("%d affordable, %d market", p.TotalAffordable, p.MarketRateUnits)),
		components.NewMetricCard("Developer Benefits", FormatCurrency(p.TotalBenefits)).
			WithDescription(FormatCurrency(p.TotalFeeWaivers) + " in fee relief"),
		components.NewMetricCard("Developer Costs", FormatCurrency(p.TotalDeveloperCosts)).
			WithDescription("Rent gap " + FormatCurrency(p.MonthlyRentGap) + "/mo"),
		components.NewMetricCard("Net Gain", FormatCurrency(p.NetDeveloperGain)).
			WithTrend(verdictPositive, verdict),
		components.NewMetricCard("ROI", p.ROIPct.StringFixed(2)+"%"),
		components.NewMetricCard("City Investment", FormatCurrency(c.CityInvestment)).
			WithDescription("Fee waivers only"),
		components.NewMetricCard("Cost / Unit-Year", FormatCurrency(c.CostPerUnitYear)).
			WithDescription(fmt.Sprintf("%d unit-years", c.UnitYears)),
		components.NewMetricCard("Affordability", m.policy.PeriodLabel()),
	}
	return components.MetricGrid(cards, 2)
}

// renderWorksheet shows the four decision options side by side.
func (m Model) renderWorksheet() string {
	if m.err != nil {
		return ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.worksheet == nil {
		return SubtitleStyle.Render("No results yet")
	}

	cards := make([]string, 0, len(m.worksheet.Cards))
	for _, card := range m.worksheet.Cards {
		oc := components.NewOptionCard(card.Name, card.Tagline).WithWidth(28)
		oc.AddLine(fmt.Sprintf("Extra units:     %d", card.BonusUnits))
		oc.AddLine(fmt.Sprintf("Affordable:      %d", card.AffordableUnits))
		if card.AffordabilityYears > 0 {
			oc.AddLine(fmt.Sprintf("Years:           %d", card.AffordabilityYears))
		} else {
			oc.AddLine("Years:           -")
		}
		if card.FeeWaivers.IsPositive() {
			oc.AddLine("City waives:     " + FormatCurrency(card.FeeWaivers))
		} else {
			oc.AddLine("City waives:     -")
		}
		if card.AddsValue != nil {
			oc.AddLine("Builder gain:    " + FormatCurrency(card.NetDeveloperGain))
			oc.WithVerdict(*card.AddsValue)
		} else {
			oc.AddLine("Builder gain:    -")
		}
		cards = append(cards, oc.Render())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
