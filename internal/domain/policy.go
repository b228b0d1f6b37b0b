package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PermanentPeriodYears is the sentinel affordability period meaning
// "permanent". The arithmetic still uses the numeric value; only labels and
// tier guidance treat it specially.
const PermanentPeriodYears = 99

// PolicySettings describes one Fast Track incentive configuration: the
// affordability requirements a developer takes on and the levers the city
// offers in exchange.
type PolicySettings struct {
	// Affordability requirements
	AffordabilityPeriodYears int             `yaml:"affordability_period_years" json:"affordability_period_years"`
	RentalAMIThreshold       decimal.Decimal `yaml:"rental_ami_threshold" json:"rental_ami_threshold"`
	OwnershipAMIThreshold    decimal.Decimal `yaml:"ownership_ami_threshold" json:"ownership_ami_threshold"`
	MinAffordablePct         decimal.Decimal `yaml:"min_affordable_pct" json:"min_affordable_pct"`
	OwnershipPct             decimal.Decimal `yaml:"ownership_pct" json:"ownership_pct"`

	// Density bonus
	DensityBonusPct    decimal.Decimal `yaml:"density_bonus_pct" json:"density_bonus_pct"`
	BonusAffordableReq decimal.Decimal `yaml:"bonus_affordable_req" json:"bonus_affordable_req"`

	// Fee waivers and reductions
	WaivePlanningFees   bool            `yaml:"waive_planning_fees" json:"waive_planning_fees"`
	WaiveBuildingPermit bool            `yaml:"waive_building_permit" json:"waive_building_permit"`
	TapFeeReductionPct  decimal.Decimal `yaml:"tap_fee_reduction_pct" json:"tap_fee_reduction_pct"`
	UseTaxRebatePct     decimal.Decimal `yaml:"use_tax_rebate_pct" json:"use_tax_rebate_pct"`

	// Time savings
	FastTrackTimeValue decimal.Decimal `yaml:"fast_track_time_value" json:"fast_track_time_value"`
}

// DefaultPolicySettings returns the current program draft: 15-year
// affordability, 80% rental AMI, 100% ownership AMI, 25% minimum affordable,
// 20% density bonus with half the bonus units affordable, full planning and
// permit waivers, 60% tap fee reduction, 50% use tax rebate, and $50,000 of
// reduced carrying costs from the expedited timeline.
func DefaultPolicySettings() PolicySettings {
	return PolicySettings{
		AffordabilityPeriodYears: 15,
		RentalAMIThreshold:       decimal.NewFromFloat(0.80),
		OwnershipAMIThreshold:    decimal.NewFromInt(1),
		MinAffordablePct:         decimal.NewFromFloat(0.25),
		OwnershipPct:             decimal.Zero,
		DensityBonusPct:          decimal.NewFromFloat(0.20),
		BonusAffordableReq:       decimal.NewFromFloat(0.50),
		WaivePlanningFees:        true,
		WaiveBuildingPermit:      true,
		TapFeeReductionPct:       decimal.NewFromFloat(0.60),
		UseTaxRebatePct:          decimal.NewFromFloat(0.50),
		FastTrackTimeValue:       decimal.NewFromInt(50000),
	}
}

// HasAffordabilityTerm reports whether the policy carries any affordability
// commitment at all.
func (p PolicySettings) HasAffordabilityTerm() bool {
	return p.AffordabilityPeriodYears > 0
}

// IsPermanent reports whether the affordability period is the permanent
// sentinel.
func (p PolicySettings) IsPermanent() bool {
	return p.AffordabilityPeriodYears >= PermanentPeriodYears
}

// PeriodLabel renders the affordability period for display.
func (p PolicySettings) PeriodLabel() string {
	switch {
	case !p.HasAffordabilityTerm():
		return "none"
	case p.IsPermanent():
		return "Permanent (99+ years)"
	default:
		return fmt.Sprintf("%d years", p.AffordabilityPeriodYears)
	}
}

// Validate checks the policy levers, returning a *ParameterError naming the
// first offending field. The density bonus may exceed 1.0; all other
// fractions must fall in [0,1].
func (p PolicySettings) Validate() error {
	one := decimal.NewFromInt(1)

	if p.AffordabilityPeriodYears < 0 {
		return NewParameterError("affordability_period_years", "cannot be negative")
	}
	if p.RentalAMIThreshold.LessThanOrEqual(decimal.Zero) {
		return NewParameterError("rental_ami_threshold", "must be positive")
	}
	if p.OwnershipAMIThreshold.LessThanOrEqual(decimal.Zero) {
		return NewParameterError("ownership_ami_threshold", "must be positive")
	}
	if p.MinAffordablePct.IsNegative() || p.MinAffordablePct.GreaterThan(one) {
		return NewParameterError("min_affordable_pct", "must be between 0 and 1")
	}
	if p.OwnershipPct.IsNegative() || p.OwnershipPct.GreaterThan(one) {
		return NewParameterError("ownership_pct", "must be between 0 and 1")
	}
	if p.DensityBonusPct.IsNegative() {
		return NewParameterError("density_bonus_pct", "cannot be negative")
	}
	if p.BonusAffordableReq.IsNegative() || p.BonusAffordableReq.GreaterThan(one) {
		return NewParameterError("bonus_affordable_req", "must be between 0 and 1")
	}
	if p.TapFeeReductionPct.IsNegative() || p.TapFeeReductionPct.GreaterThan(one) {
		return NewParameterError("tap_fee_reduction_pct", "must be between 0 and 1")
	}
	if p.UseTaxRebatePct.IsNegative() || p.UseTaxRebatePct.GreaterThan(one) {
		return NewParameterError("use_tax_rebate_pct", "must be between 0 and 1")
	}
	if p.FastTrackTimeValue.IsNegative() {
		return NewParameterError("fast_track_time_value", "cannot be negative")
	}
	return nil
}
