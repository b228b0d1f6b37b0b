package domain

import "github.com/shopspring/decimal"

// PlanningFeeBreakdown itemizes the land-development planning fees.
type PlanningFeeBreakdown struct {
	PreliminaryPlat decimal.Decimal `json:"preliminary_plat"`
	FinalPlat       decimal.Decimal `json:"final_plat"`
}

// Total returns the combined planning fee.
func (b PlanningFeeBreakdown) Total() decimal.Decimal {
	return b.PreliminaryPlat.Add(b.FinalPlat)
}

// TapFeeBreakdown itemizes water and sewer tap and system improvement fees.
type TapFeeBreakdown struct {
	WaterBSIF decimal.Decimal `json:"water_bsif"`
	WaterTap  decimal.Decimal `json:"water_tap"`
	SewerBSIF decimal.Decimal `json:"sewer_bsif"`
}

// Total returns the combined tap and system improvement fee.
func (b TapFeeBreakdown) Total() decimal.Decimal {
	return b.WaterBSIF.Add(b.WaterTap).Add(b.SewerBSIF)
}

// ProFormaResult is the full economic outcome of one scenario evaluation.
// It is immutable once produced; each evaluation builds a fresh record.
type ProFormaResult struct {
	// Unit accounting
	BaseUnits           int `json:"base_units"`
	BonusUnits          int `json:"bonus_units"`
	TotalUnits          int `json:"total_units"`
	BaseAffordable      int `json:"base_affordable"`
	BonusAffordable     int `json:"bonus_affordable"`
	TotalAffordable     int `json:"total_affordable"`
	RentalAffordable    int `json:"rental_affordable"`
	OwnershipAffordable int `json:"ownership_affordable"`
	MarketRateUnits     int `json:"market_rate_units"`

	// Developer benefits
	DensityBonusValue    decimal.Decimal      `json:"density_bonus_value"`
	PlanningFeesWaived   decimal.Decimal      `json:"planning_fees_waived"`
	PlanningFeeBreakdown PlanningFeeBreakdown `json:"planning_fee_breakdown"`
	BuildingPermitWaived decimal.Decimal      `json:"building_permit_waived"`
	TapFeeSavings        decimal.Decimal      `json:"tap_fee_savings"`
	TapFeeBreakdown      TapFeeBreakdown      `json:"tap_fee_breakdown"`
	UseTaxSavings        decimal.Decimal      `json:"use_tax_savings"`
	ParkFeesWaived       decimal.Decimal      `json:"park_fees_waived"`
	TotalFeeWaivers      decimal.Decimal      `json:"total_fee_waivers"`
	TimeSavings          decimal.Decimal      `json:"time_savings"`
	TotalBenefits        decimal.Decimal      `json:"total_benefits"`

	// Developer costs: rental. MonthlyRentGap keeps its sign; a negative gap
	// means the AMI-capped rent exceeds market rent and the "cost" is a
	// premium flowing back to the developer.
	MarketRentWeighted     decimal.Decimal `json:"market_rent_weighted"`
	AffordableRentWeighted decimal.Decimal `json:"affordable_rent_weighted"`
	MonthlyRentGap         decimal.Decimal `json:"monthly_rent_gap"`
	TotalLostRent          decimal.Decimal `json:"total_lost_rent"`

	// Developer costs: ownership (one-time at sale, floored at zero)
	MarketSalePrice     decimal.Decimal `json:"market_sale_price"`
	AffordableSalePrice decimal.Decimal `json:"affordable_sale_price"`
	PerUnitSaleGap      decimal.Decimal `json:"per_unit_sale_gap"`
	TotalLostSaleProfit decimal.Decimal `json:"total_lost_sale_profit"`

	TotalDeveloperCosts decimal.Decimal `json:"total_developer_costs"`

	// Bottom line
	TotalProjectCost  decimal.Decimal `json:"total_project_cost"`
	NetDeveloperGain  decimal.Decimal `json:"net_developer_gain"`
	ROIPct            decimal.Decimal `json:"roi_pct"`
	DeveloperFeasible bool            `json:"developer_feasible"`
}

// CommunityResult holds the municipal cost-efficiency metrics derived from a
// pro forma result. CityInvestment counts only fee dollars actually foregone;
// the density bonus and time savings move no city cash.
type CommunityResult struct {
	CityInvestment     decimal.Decimal `json:"city_investment"`
	AffordableUnits    int             `json:"affordable_units"`
	AffordabilityYears int             `json:"affordability_years"`

	CostPerUnitTotal   decimal.Decimal `json:"cost_per_unit_total"`
	CostPerUnitPerYear decimal.Decimal `json:"cost_per_unit_per_year"`
	UnitYears          int             `json:"unit_years"`
	CostPerUnitYear    decimal.Decimal `json:"cost_per_unit_year"`

	// Repeated-incentive projection: the city re-subsidizes a new cohort
	// every affordability period.
	CyclesIn20Years decimal.Decimal `json:"cycles_in_20_years"`
	Cost20Year      decimal.Decimal `json:"cost_20_year"`

	// Illustrative workforce and population multipliers
	ConstructionJobs decimal.Decimal `json:"construction_jobs"`
	PermanentJobs    decimal.Decimal `json:"permanent_jobs"`
	ResidentsServed  decimal.Decimal `json:"residents_served"`
	WorkersHoused    decimal.Decimal `json:"workers_housed"`
}
