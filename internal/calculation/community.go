package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/WesternSpaces/delta-fast-track-simulator/internal/domain"
)

// Illustrative per-unit multipliers for workforce and population impact.
var (
	constructionJobsPerUnit = decimal.NewFromFloat(0.5)
	permanentJobsPerUnit    = decimal.NewFromFloat(0.1)
	residentsPerUnit        = decimal.NewFromFloat(2.3)
	workersPerAffordable    = decimal.NewFromFloat(1.5)
)

// AnalyzeCommunity derives the city's cost-efficiency metrics from a pro
// forma result. The city's investment counts fee waivers only: the density
// bonus moves no city cash and the time savings accrue to the developer.
func (e *Engine) AnalyzeCommunity(result *domain.ProFormaResult, policy domain.PolicySettings) *domain.CommunityResult {
	investment := result.TotalFeeWaivers
	affordable := result.TotalAffordable
	years := policy.AffordabilityPeriodYears

	out := &domain.CommunityResult{
		CityInvestment:     investment,
		AffordableUnits:    affordable,
		AffordabilityYears: years,
		UnitYears:          affordable * years,
	}

	if affordable > 0 {
		out.CostPerUnitTotal = investment.Div(decimal.NewFromInt(int64(affordable)))
		if years > 0 {
			out.CostPerUnitPerYear = out.CostPerUnitTotal.Div(decimal.NewFromInt(int64(years)))
		}
	}
	if out.UnitYears > 0 {
		out.CostPerUnitYear = investment.Div(decimal.NewFromInt(int64(out.UnitYears)))
	}

	// Projected cost of re-running the incentive every time a cohort's
	// affordability period expires over a 20-year horizon.
	if years > 0 {
		out.CyclesIn20Years = decimal.NewFromInt(20).Div(decimal.NewFromInt(int64(years)))
		out.Cost20Year = investment.Mul(out.CyclesIn20Years)
	}

	totalUnits := decimal.NewFromInt(int64(result.TotalUnits))
	out.ConstructionJobs = totalUnits.Mul(constructionJobsPerUnit)
	out.PermanentJobs = totalUnits.Mul(permanentJobsPerUnit)
	out.ResidentsServed = totalUnits.Mul(residentsPerUnit)
	out.WorkersHoused = decimal.NewFromInt(int64(affordable)).Mul(workersPerAffordable)

	return out
}
