// Package fees implements the municipal fee schedules: building permit fees
// by construction valuation, water and sewer tap fees by tap size, use tax,
// and planning application fees.
package fees

import (
	"github.com/shopspring/decimal"

	"github.com/WesternSpaces/delta-fast-track-simulator/internal/domain"
)

// TapSize selects which tap fee schedule applies to a project.
type TapSize string

const (
	// SmallTap is the 3/4" residential schedule.
	SmallTap TapSize = "small"
	// LargeTap is the 4" combination schedule for multifamily projects.
	LargeTap TapSize = "large"
)

// SmallTapMaxUnits is the largest project the small tap schedule serves.
const SmallTapMaxUnits = 6

// TapSizeForUnits picks the tap schedule by project size. Projects beyond
// SmallTapMaxUnits need the 4" combination tap.
func TapSizeForUnits(units int) TapSize {
	if units <= SmallTapMaxUnits {
		return SmallTap
	}
	return LargeTap
}

// Schedule computes the adopted fee schedule. The zero value is not usable;
// construct with NewSchedule.
type Schedule struct {
	useTaxRate       decimal.Decimal
	materialsShare   decimal.Decimal
	planningBaseFee  decimal.Decimal
	planningPerUnit  decimal.Decimal
	planningFinalFee decimal.Decimal
}

// NewSchedule returns the current adopted schedule: 3% use tax on a 60%
// materials share, $500 preliminary plat plus $20 per unit, $250 final plat.
func NewSchedule() *Schedule {
	return &Schedule{
		useTaxRate:       decimal.NewFromFloat(0.03),
		materialsShare:   decimal.NewFromFloat(0.60),
		planningBaseFee:  decimal.NewFromInt(500),
		planningPerUnit:  decimal.NewFromInt(20),
		planningFinalFee: decimal.NewFromInt(250),
	}
}

// permit fee tiers: base fee at the tier floor plus a per-increment rate.
type permitTier struct {
	ceiling   decimal.Decimal
	floor     decimal.Decimal
	base      decimal.Decimal
	increment decimal.Decimal
	rate      decimal.Decimal
}

var permitTiers = []permitTier{
	{ceiling: decimal.NewFromInt(2000), floor: decimal.NewFromInt(500), base: decimal.NewFromFloat(23.50), increment: decimal.NewFromInt(100), rate: decimal.NewFromFloat(3.05)},
	{ceiling: decimal.NewFromInt(25000), floor: decimal.NewFromInt(2000), base: decimal.NewFromFloat(69.25), increment: decimal.NewFromInt(1000), rate: decimal.NewFromFloat(14.00)},
	{ceiling: decimal.NewFromInt(50000), floor: decimal.NewFromInt(25000), base: decimal.NewFromFloat(391.25), increment: decimal.NewFromInt(1000), rate: decimal.NewFromFloat(10.10)},
	{ceiling: decimal.NewFromInt(100000), floor: decimal.NewFromInt(50000), base: decimal.NewFromFloat(643.75), increment: decimal.NewFromInt(1000), rate: decimal.NewFromFloat(7.00)},
	{ceiling: decimal.NewFromInt(500000), floor: decimal.NewFromInt(100000), base: decimal.NewFromFloat(993.75), increment: decimal.NewFromInt(1000), rate: decimal.NewFromFloat(5.60)},
	{ceiling: decimal.NewFromInt(1000000), floor: decimal.NewFromInt(500000), base: decimal.NewFromFloat(3233.75), increment: decimal.NewFromInt(1000), rate: decimal.NewFromFloat(4.75)},
}

// BuildingPermitFee computes the permit fee for a construction valuation
// using the adopted valuation-tiered table. Non-positive valuations owe
// nothing.
func (s *Schedule) BuildingPermitFee(valuation decimal.Decimal) decimal.Decimal {
	if valuation.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if valuation.LessThanOrEqual(decimal.NewFromInt(500)) {
		return decimal.NewFromFloat(23.50)
	}
	for _, tier := range permitTiers {
		if valuation.LessThanOrEqual(tier.ceiling) {
			excess := valuation.Sub(tier.floor)
			return tier.base.Add(excess.Div(tier.increment).Mul(tier.rate))
		}
	}
	excess := valuation.Sub(decimal.NewFromInt(1000000))
	return decimal.NewFromFloat(5608.75).
		Add(excess.Div(decimal.NewFromInt(1000)).Mul(decimal.NewFromFloat(3.15)))
}

// TapAndSystemFees computes the full (unreduced) water and sewer fees for a
// project of the given size. The large schedule charges one base tap plus a
// per-additional-unit system improvement fee for both water and sewer; the
// small schedule does the same at 3/4" rates.
func (s *Schedule) TapAndSystemFees(units int, size TapSize) domain.TapFeeBreakdown {
	extra := decimal.NewFromInt(int64(maxInt(0, units-1)))

	if size == SmallTap {
		return domain.TapFeeBreakdown{
			WaterBSIF: decimal.NewFromInt(3000).Add(decimal.NewFromInt(1500).Mul(extra)),
			WaterTap:  decimal.NewFromInt(1680),
			SewerBSIF: decimal.NewFromInt(5450).Add(decimal.NewFromInt(2600).Mul(extra)),
		}
	}
	return domain.TapFeeBreakdown{
		WaterBSIF: decimal.NewFromInt(86100).Add(decimal.NewFromInt(1500).Mul(extra)),
		WaterTap:  decimal.NewFromInt(12420),
		SewerBSIF: decimal.NewFromInt(154000).Add(decimal.NewFromInt(2600).Mul(extra)),
	}
}

// UseTax computes the construction use tax: the tax rate applied to the
// materials share of the valuation.
func (s *Schedule) UseTax(valuation decimal.Decimal) decimal.Decimal {
	return valuation.Mul(s.materialsShare).Mul(s.useTaxRate)
}

// UseTaxRebate computes the rebated portion of the use tax.
func (s *Schedule) UseTaxRebate(valuation, rebatePct decimal.Decimal) decimal.Decimal {
	return s.UseTax(valuation).Mul(rebatePct)
}

// PlanningApplicationFee computes the subdivision plat fees for a project of
// the given unit count.
func (s *Schedule) PlanningApplicationFee(units int) domain.PlanningFeeBreakdown {
	return domain.PlanningFeeBreakdown{
		PreliminaryPlat: s.planningBaseFee.Add(s.planningPerUnit.Mul(decimal.NewFromInt(int64(units)))),
		FinalPlat:       s.planningFinalFee,
	}
}

// ParkFee returns the park land dedication fee. The city currently assesses
// none.
func (s *Schedule) ParkFee(units int) decimal.Decimal {
	return decimal.Zero
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
