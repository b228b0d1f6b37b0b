// Package calculation runs the Fast Track pro forma: it turns a project and a
// policy configuration into the developer's economic outcome and the city's
// cost-efficiency metrics.
package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/WesternSpaces/delta-fast-track-simulator/internal/ami"
	"github.com/WesternSpaces/delta-fast-track-simulator/internal/domain"
	"github.com/WesternSpaces/delta-fast-track-simulator/internal/fees"
)

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// Engine evaluates incentive scenarios against a fixed AMI table and fee
// schedule. Evaluate is safe for concurrent use; the engine holds no mutable
// state between runs.
type Engine struct {
	AMI    *ami.Table
	Fees   *fees.Schedule
	Logger Logger
	Debug  bool
}

// NewEngine creates an engine with the default AMI table and fee schedule.
func NewEngine() *Engine {
	return &Engine{
		AMI:    ami.DefaultTable(),
		Fees:   fees.NewSchedule(),
		Logger: NopLogger{},
	}
}

// SetLogger replaces the engine's logger. A nil logger resets to the no-op
// logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
}

// mulFloor multiplies a unit count by a fraction and truncates toward zero.
// Unit requirements always round in the developer's favor.
func mulFloor(units int, frac decimal.Decimal) int {
	return int(decimal.NewFromInt(int64(units)).Mul(frac).IntPart())
}

// Evaluate runs the complete pro forma for one project under one policy.
func (e *Engine) Evaluate(project domain.ProjectParams, policy domain.PolicySettings) (*domain.ProFormaResult, error) {
	project = project.Normalized()
	if err := project.Validate(); err != nil {
		return nil, err
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	// Unit accounting
	bonusUnits := mulFloor(project.BaseUnits, policy.DensityBonusPct)
	totalUnits := project.BaseUnits + bonusUnits
	baseAffordable := mulFloor(project.BaseUnits, policy.MinAffordablePct)
	bonusAffordable := mulFloor(bonusUnits, policy.BonusAffordableReq)
	totalAffordable := baseAffordable + bonusAffordable
	ownershipAffordable := mulFloor(totalAffordable, policy.OwnershipPct)
	rentalAffordable := totalAffordable - ownershipAffordable
	marketRateUnits := totalUnits - totalAffordable

	if e.Debug {
		e.Logger.Debugf("units: base=%d bonus=%d total=%d affordable=%d (rental=%d ownership=%d)",
			project.BaseUnits, bonusUnits, totalUnits, totalAffordable, rentalAffordable, ownershipAffordable)
	}

	perUnitValue := project.ConstructionCostPerUnit.Add(project.LandDevValuePerUnit)

	// Developer benefits
	densityBonusValue := decimal.NewFromInt(int64(bonusUnits)).Mul(perUnitValue)

	var planningWaived decimal.Decimal
	var planningBreakdown domain.PlanningFeeBreakdown
	if policy.WaivePlanningFees {
		planningBreakdown = e.Fees.PlanningApplicationFee(totalUnits)
		planningWaived = planningBreakdown.Total()
	}

	var permitWaived decimal.Decimal
	if policy.WaiveBuildingPermit {
		permitWaived = e.Fees.BuildingPermitFee(project.ConstructionValuation)
	}

	tapBreakdown := e.Fees.TapAndSystemFees(totalUnits, fees.TapSizeForUnits(totalUnits))
	tapFeeSavings := tapBreakdown.Total().Mul(policy.TapFeeReductionPct)

	useTaxSavings := e.Fees.UseTaxRebate(project.ConstructionValuation, policy.UseTaxRebatePct)
	parkFeesWaived := e.Fees.ParkFee(totalUnits)

	totalFeeWaivers := planningWaived.
		Add(permitWaived).
		Add(tapFeeSavings).
		Add(useTaxSavings).
		Add(parkFeesWaived)

	timeSavings := policy.FastTrackTimeValue
	totalBenefits := densityBonusValue.Add(totalFeeWaivers).Add(timeSavings)

	// Rental income impact over the affordability period. The gap keeps its
	// sign: capped rents above market become extra rental income, not a cost.
	marketRent := project.WeightedMarketRent()
	affordableRent, err := e.AMI.WeightedRent(policy.RentalAMIThreshold, project.UnitMix)
	if err != nil {
		return nil, domain.NewParameterError("rental_ami_threshold", err.Error())
	}
	monthlyGap := marketRent.Sub(affordableRent)
	totalLostRent := monthlyGap.
		Mul(decimal.NewFromInt(int64(rentalAffordable))).
		Mul(twelve).
		Mul(decimal.NewFromInt(int64(policy.AffordabilityPeriodYears)))

	// Ownership sale impact, one-time at sale and floored at zero.
	affordablePrice, err := e.AMI.PurchasePrice(policy.OwnershipAMIThreshold)
	if err != nil {
		return nil, domain.NewParameterError("ownership_ami_threshold", err.Error())
	}
	perUnitSaleGap := project.MarketSalePrice.Sub(affordablePrice)
	if perUnitSaleGap.IsNegative() {
		perUnitSaleGap = decimal.Zero
	}
	totalLostSaleProfit := perUnitSaleGap.Mul(decimal.NewFromInt(int64(ownershipAffordable)))

	totalDeveloperCosts := totalLostRent.Add(totalLostSaleProfit)
	netGain := totalBenefits.Sub(totalDeveloperCosts)

	totalProjectCost := decimal.NewFromInt(int64(totalUnits)).Mul(perUnitValue)
	roi := decimal.Zero
	if !totalProjectCost.IsZero() {
		roi = netGain.Div(totalProjectCost).Mul(hundred)
	}

	if e.Debug {
		e.Logger.Debugf("benefits=%s costs=%s net=%s roi=%s%%",
			totalBenefits.StringFixed(2), totalDeveloperCosts.StringFixed(2),
			netGain.StringFixed(2), roi.StringFixed(2))
	}

	return &domain.ProFormaResult{
		BaseUnits:           project.BaseUnits,
		BonusUnits:          bonusUnits,
		TotalUnits:          totalUnits,
		BaseAffordable:      baseAffordable,
		BonusAffordable:     bonusAffordable,
		TotalAffordable:     totalAffordable,
		RentalAffordable:    rentalAffordable,
		OwnershipAffordable: ownershipAffordable,
		MarketRateUnits:     marketRateUnits,

		DensityBonusValue:    densityBonusValue,
		PlanningFeesWaived:   planningWaived,
		PlanningFeeBreakdown: planningBreakdown,
		BuildingPermitWaived: permitWaived,
		TapFeeSavings:        tapFeeSavings,
		TapFeeBreakdown:      tapBreakdown,
		UseTaxSavings:        useTaxSavings,
		ParkFeesWaived:       parkFeesWaived,
		TotalFeeWaivers:      totalFeeWaivers,
		TimeSavings:          timeSavings,
		TotalBenefits:        totalBenefits,

		MarketRentWeighted:     marketRent,
		AffordableRentWeighted: affordableRent,
		MonthlyRentGap:         monthlyGap,
		TotalLostRent:          totalLostRent,

		MarketSalePrice:     project.MarketSalePrice,
		AffordableSalePrice: affordablePrice,
		PerUnitSaleGap:      perUnitSaleGap,
		TotalLostSaleProfit: totalLostSaleProfit,

		TotalDeveloperCosts: totalDeveloperCosts,

		TotalProjectCost:  totalProjectCost,
		NetDeveloperGain:  netGain,
		ROIPct:            roi,
		DeveloperFeasible: netGain.GreaterThan(decimal.Zero),
	}, nil
}
