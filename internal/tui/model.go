// Package tui implements the interactive policy dashboard: live sliders for
// every incentive lever with the developer and community outcomes
// recalculated on each change.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/WesternSpaces/delta-fast-track-simulator/internal/calculation"
	"github.com/WesternSpaces/delta-fast-track-simulator/internal/compare"
	"github.com/WesternSpaces/delta-fast-track-simulator/internal/domain"
	"github.com/WesternSpaces/delta-fast-track-simulator/internal/tui/components"
)

// Slider positions in the parameter list.
const (
	sliderBaseUnits = iota
	sliderPeriod
	sliderRentalAMI
	sliderOwnershipAMI
	sliderMinAffordable
	sliderOwnershipShare
	sliderDensityBonus
	sliderBonusReq
	sliderTapReduction
	sliderUseTaxRebate
	sliderTimeValue
	sliderCount
)

// Model represents the entire application state
type Model struct {
	currentScene Scene

	width  int
	height int

	calcEngine    *calculation.Engine
	compareEngine *compare.Engine

	project domain.ProjectParams

	sliders       []*components.ParameterSlider
	focusIndex    int
	waivePlanning bool
	waivePermit   bool

	policy    domain.PolicySettings
	result    *domain.ProFormaResult
	community *domain.CommunityResult
	worksheet *compare.WorksheetResult

	keys KeyMap
	err  error
}

// NewModel creates the application model seeded with the program defaults.
func NewModel(project domain.ProjectParams) Model {
	calcEngine := calculation.NewEngine()
	policy := domain.DefaultPolicySettings()

	m := Model{
		currentScene:  SceneDashboard,
		calcEngine:    calcEngine,
		compareEngine: compare.NewEngine(calcEngine),
		project:       project.Normalized(),
		waivePlanning: policy.WaivePlanningFees,
		waivePermit:   policy.WaiveBuildingPermit,
		keys:          DefaultKeyMap(),
		width:         100,
		height:        32,
	}
	m.sliders = m.buildSliders(policy)
	m.recalculate()
	return m
}

func (m *Model) buildSliders(policy domain.PolicySettings) []*components.ParameterSlider {
	pct := func(d decimal.Decimal) float64 {
		f, _ := d.Mul(decimal.NewFromInt(100)).Float64()
		return f
	}
	dollars := func(d decimal.Decimal) float64 {
		f, _ := d.Float64()
		return f
	}

	sliders := make([]*components.ParameterSlider, sliderCount)
	sliders[sliderBaseUnits] = components.
		NewParameterSlider("Base units", float64(m.project.BaseUnits), 2, 100, 1).
		WithDescription("Units the developer proposes before any bonus")
	sliders[sliderPeriod] = components.
		NewParameterSlider("Affordability period", float64(policy.AffordabilityPeriodYears), 0, 99, 5).
		WithOptions([]float64{0, 5, 10, 15, 20, 30, 50, 99}).
		WithUnit(" yrs").
		WithDescription("99 years displays as permanent")
	sliders[sliderRentalAMI] = components.
		NewParameterSlider("Rental AMI threshold", pct(policy.RentalAMIThreshold), 60, 120, 10).
		WithUnit("%").
		WithDescription("CHFA rent ceiling for affordable rentals")
	sliders[sliderOwnershipAMI] = components.
		NewParameterSlider("Ownership AMI threshold", pct(policy.OwnershipAMIThreshold), 100, 120, 10).
		WithUnit("%").
		WithDescription("Purchase price ceiling for affordable ownership")
	sliders[sliderMinAffordable] = components.
		NewParameterSlider("Min affordable share", pct(policy.MinAffordablePct), 0, 50, 5).
		WithUnit("%")
	sliders[sliderOwnershipShare] = components.
		NewParameterSlider("Ownership share", pct(policy.OwnershipPct), 0, 100, 10).
		WithUnit("%").
		WithDescription("Share of affordable units sold rather than rented")
	sliders[sliderDensityBonus] = components.
		NewParameterSlider("Density bonus", pct(policy.DensityBonusPct), 0, 50, 5).
		WithUnit("%")
	sliders[sliderBonusReq] = components.
		NewParameterSlider("Bonus affordable req", pct(policy.BonusAffordableReq), 0, 100, 10).
		WithUnit("%").
		WithDescription("Share of bonus units that must be affordable")
	sliders[sliderTapReduction] = components.
		NewParameterSlider("Tap fee reduction", pct(policy.TapFeeReductionPct), 0, 100, 10).
		WithUnit("%")
	sliders[sliderUseTaxRebate] = components.
		NewParameterSlider("Use tax rebate", pct(policy.UseTaxRebatePct), 0, 100, 10).
		WithUnit("%")
	sliders[sliderTimeValue] = components.
		NewParameterSlider("Fast track time value", dollars(policy.FastTrackTimeValue), 0, 200000, 10000).
		WithFormat("$%.0f").
		WithDescription("Carrying cost saved by the expedited timeline")

	sliders[m.focusIndex].SetFocused(true)
	return sliders
}

// currentPolicy assembles the policy from the slider and toggle state.
func (m *Model) currentPolicy() domain.PolicySettings {
	frac := func(i int) decimal.Decimal {
		return decimal.NewFromFloat(m.sliders[i].Value).Div(decimal.NewFromInt(100))
	}
	return domain.PolicySettings{
		AffordabilityPeriodYears: int(m.sliders[sliderPeriod].Value),
		RentalAMIThreshold:       frac(sliderRentalAMI),
		OwnershipAMIThreshold:    frac(sliderOwnershipAMI),
		MinAffordablePct:         frac(sliderMinAffordable),
		OwnershipPct:             frac(sliderOwnershipShare),
		DensityBonusPct:          frac(sliderDensityBonus),
		BonusAffordableReq:       frac(sliderBonusReq),
		WaivePlanningFees:        m.waivePlanning,
		WaiveBuildingPermit:      m.waivePermit,
		TapFeeReductionPct:       frac(sliderTapReduction),
		UseTaxRebatePct:          frac(sliderUseTaxRebate),
		FastTrackTimeValue:       decimal.NewFromFloat(m.sliders[sliderTimeValue].Value),
	}
}

// recalculate re-runs the pro forma against the current slider state.
func (m *Model) recalculate() {
	project := m.project
	units := int(m.sliders[sliderBaseUnits].Value)
	if units != project.BaseUnits && project.BaseUnits > 0 {
		// Scale the valuation with the unit count so the permit fee tracks
		// the project size.
		perUnit := project.ConstructionValuation.Div(decimal.NewFromInt(int64(project.BaseUnits)))
		project.ConstructionValuation = perUnit.Mul(decimal.NewFromInt(int64(units)))
	}
	project.BaseUnits = units
	m.project = project.Normalized()

	m.policy = m.currentPolicy()

	result, err := m.calcEngine.Evaluate(m.project, m.policy)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.result = result
	m.community = m.calcEngine.AnalyzeCommunity(result, m.policy)

	worksheet, err := m.compareEngine.Worksheet(m.project)
	if err != nil {
		m.err = err
		return
	}
	m.worksheet = worksheet
}

// reset restores the default policy and refocuses the first slider.
func (m *Model) reset() {
	policy := domain.DefaultPolicySettings()
	m.project = domain.DefaultProjectParams()
	m.waivePlanning = policy.WaivePlanningFees
	m.waivePermit = policy.WaiveBuildingPermit
	m.focusIndex = 0
	m.sliders = m.buildSliders(policy)
	m.recalculate()
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return nil
}
