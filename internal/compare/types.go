// Package compare runs side-by-side policy scenario comparisons: named
// scenarios from a configuration file, single-lever sweeps, and the council
// decision worksheet.
package compare

import (
	"github.com/shopspring/decimal"

	"github.com/WesternSpaces/delta-fast-track-simulator/internal/domain"
)

// Outcome is one evaluated scenario with its comparison deltas against the
// base scenario.
type Outcome struct {
	ScenarioName string                  `json:"scenarioName"`
	Policy       domain.PolicySettings   `json:"policy"`
	ProForma     *domain.ProFormaResult  `json:"proForma"`
	Community    *domain.CommunityResult `json:"community"`

	// Deltas from the base scenario, zero on the base itself
	NetGainDiffFromBase    decimal.Decimal `json:"netGainDiffFromBase"`
	CityCostDiffFromBase   decimal.Decimal `json:"cityCostDiffFromBase"`
	AffordableDiffFromBase int             `json:"affordableDiffFromBase"`
}

// ComparisonSet is a complete comparison run: the base scenario plus its
// alternatives.
type ComparisonSet struct {
	BaseScenarioName   string    `json:"baseScenarioName"`
	BaseResult         *Outcome  `json:"baseResult"`
	AlternativeResults []Outcome `json:"alternativeResults"`
	ConfigPath         string    `json:"configPath,omitempty"`
}

// diffFromBase fills an outcome's delta fields relative to the base outcome.
func diffFromBase(alt Outcome, base *Outcome) Outcome {
	alt.NetGainDiffFromBase = alt.ProForma.NetDeveloperGain.Sub(base.ProForma.NetDeveloperGain)
	alt.CityCostDiffFromBase = alt.Community.CityInvestment.Sub(base.Community.CityInvestment)
	alt.AffordableDiffFromBase = alt.ProForma.TotalAffordable - base.ProForma.TotalAffordable
	return alt
}
