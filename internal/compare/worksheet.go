package compare

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/WesternSpaces/delta-fast-track-simulator/internal/domain"
)

// WorksheetOption identifies one of the four council decision options.
type WorksheetOption string

const (
	OptionNone    WorksheetOption = "none"
	OptionLight   WorksheetOption = "light"
	OptionMiddle  WorksheetOption = "middle"
	OptionMaximum WorksheetOption = "maximum"
)

// WorksheetOptions lists the options in presentation order.
var WorksheetOptions = []WorksheetOption{OptionNone, OptionLight, OptionMiddle, OptionMaximum}

// WorksheetCard is one option's summary for the side-by-side comparison.
// AddsValue is nil on the no-participation baseline, where the question does
// not apply.
type WorksheetCard struct {
	Option  WorksheetOption `json:"option"`
	Name    string          `json:"name"`
	Tagline string          `json:"tagline"`

	TotalUnits      int `json:"totalUnits"`
	BonusUnits      int `json:"bonusUnits"`
	AffordableUnits int `json:"affordableUnits"`
	MarketRateUnits int `json:"marketRateUnits"`

	FeeWaivers        decimal.Decimal `json:"feeWaivers"`
	DensityBonusValue decimal.Decimal `json:"densityBonusValue"`
	TotalBenefits     decimal.Decimal `json:"totalBenefits"`
	RentImpact        decimal.Decimal `json:"rentImpact"`
	NetDeveloperGain  decimal.Decimal `json:"netDeveloperGain"`
	AddsValue         *bool           `json:"addsValue"`

	AffordabilityYears int             `json:"affordabilityYears"`
	UnitYears          int             `json:"unitYears"`
	CostPerUnitYear    decimal.Decimal `json:"costPerUnitYear"`
}

// WorksheetResult holds all four option cards for one project.
type WorksheetResult struct {
	Project domain.ProjectParams `json:"project"`
	Cards   []WorksheetCard      `json:"cards"`
}

// worksheetPolicy returns the preset policy for a participating option.
func worksheetPolicy(opt WorksheetOption) (domain.PolicySettings, bool) {
	policy := domain.DefaultPolicySettings()
	switch opt {
	case OptionLight:
		policy.AffordabilityPeriodYears = 15
		policy.DensityBonusPct = decimal.NewFromFloat(0.10)
		policy.TapFeeReductionPct = decimal.Zero
		policy.UseTaxRebatePct = decimal.Zero
	case OptionMiddle:
		policy.AffordabilityPeriodYears = 15
	case OptionMaximum:
		policy.AffordabilityPeriodYears = 30
	default:
		return domain.PolicySettings{}, false
	}
	return policy, true
}

func optionLabel(opt WorksheetOption) (name, tagline string) {
	switch opt {
	case OptionNone:
		return "No Fast Track", "Status quo, no program participation"
	case OptionLight:
		return "Light Touch", "15 years, modest incentives"
	case OptionMiddle:
		return "Middle Ground", "15 years, full incentives"
	case OptionMaximum:
		return "Maximum Commitment", "30 years, full incentives"
	}
	return string(opt), ""
}

// Worksheet evaluates the four decision options for one project. The "none"
// option is the direct baseline: the builder keeps the base units, pays every
// fee, and guarantees no affordable units.
func (e *Engine) Worksheet(project domain.ProjectParams) (*WorksheetResult, error) {
	project = project.Normalized()
	result := &WorksheetResult{
		Project: project,
		Cards:   make([]WorksheetCard, 0, len(WorksheetOptions)),
	}

	for _, opt := range WorksheetOptions {
		name, tagline := optionLabel(opt)
		card := WorksheetCard{Option: opt, Name: name, Tagline: tagline}

		policy, participates := worksheetPolicy(opt)
		if !participates {
			card.TotalUnits = project.BaseUnits
			card.MarketRateUnits = project.BaseUnits
			result.Cards = append(result.Cards, card)
			continue
		}

		proForma, err := e.Calc.Evaluate(project, policy)
		if err != nil {
			return nil, fmt.Errorf("option %s: %w", opt, err)
		}
		community := e.Calc.AnalyzeCommunity(proForma, policy)

		addsValue := proForma.DeveloperFeasible
		card.TotalUnits = proForma.TotalUnits
		card.BonusUnits = proForma.BonusUnits
		card.AffordableUnits = proForma.TotalAffordable
		card.MarketRateUnits = proForma.MarketRateUnits
		card.FeeWaivers = proForma.TotalFeeWaivers
		card.DensityBonusValue = proForma.DensityBonusValue
		card.TotalBenefits = proForma.TotalBenefits
		card.RentImpact = proForma.TotalLostRent
		card.NetDeveloperGain = proForma.NetDeveloperGain
		card.AddsValue = &addsValue
		card.AffordabilityYears = policy.AffordabilityPeriodYears
		card.UnitYears = community.UnitYears
		card.CostPerUnitYear = community.CostPerUnitYear

		result.Cards = append(result.Cards, card)
	}
	return result, nil
}
