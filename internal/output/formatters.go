package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
)

// Formatter renders a scenario report to a byte stream.
type Formatter interface {
	Name() string
	Format(report *ScenarioReport) ([]byte, error)
}

// GetFormatterByName returns the formatter for a format name.
func GetFormatterByName(name string) (Formatter, error) {
	switch name {
	case "csv":
		return CSVExporter{}, nil
	case "json":
		return JSONExporter{}, nil
	case "json-pretty":
		return JSONExporter{Pretty: true}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", name)
	}
}

// CSVExporter writes the report as section/metric/value rows, one metric per
// line, for spreadsheet import.
type CSVExporter struct{}

func (CSVExporter) Name() string { return "csv" }

func (CSVExporter) Format(report *ScenarioReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write([]string{"Section", "Metric", "Value"}); err != nil {
		return nil, err
	}

	p := report.ProForma
	c := report.Community
	rows := [][]string{
		{"Units", "Base Units", fmt.Sprintf("%d", p.BaseUnits)},
		{"Units", "Bonus Units", fmt.Sprintf("%d", p.BonusUnits)},
		{"Units", "Total Units", fmt.Sprintf("%d", p.TotalUnits)},
		{"Units", "Affordable Units", fmt.Sprintf("%d", p.TotalAffordable)},
		{"Units", "Rental Affordable", fmt.Sprintf("%d", p.RentalAffordable)},
		{"Units", "Ownership Affordable", fmt.Sprintf("%d", p.OwnershipAffordable)},
		{"Units", "Market Rate Units", fmt.Sprintf("%d", p.MarketRateUnits)},
		{"Benefits", "Density Bonus Value", p.DensityBonusValue.StringFixed(2)},
		{"Benefits", "Planning Fees Waived", p.PlanningFeesWaived.StringFixed(2)},
		{"Benefits", "Building Permit Waived", p.BuildingPermitWaived.StringFixed(2)},
		{"Benefits", "Tap Fee Savings", p.TapFeeSavings.StringFixed(2)},
		{"Benefits", "Use Tax Savings", p.UseTaxSavings.StringFixed(2)},
		{"Benefits", "Park Fees Waived", p.ParkFeesWaived.StringFixed(2)},
		{"Benefits", "Total Fee Waivers", p.TotalFeeWaivers.StringFixed(2)},
		{"Benefits", "Time Savings", p.TimeSavings.StringFixed(2)},
		{"Benefits", "Total Benefits", p.TotalBenefits.StringFixed(2)},
		{"Costs", "Monthly Rent Gap", p.MonthlyRentGap.StringFixed(2)},
		{"Costs", "Total Rent Impact", p.TotalLostRent.StringFixed(2)},
		{"Costs", "Per Unit Sale Gap", p.PerUnitSaleGap.StringFixed(2)},
		{"Costs", "Lost Sale Profit", p.TotalLostSaleProfit.StringFixed(2)},
		{"Costs", "Total Developer Costs", p.TotalDeveloperCosts.StringFixed(2)},
		{"Bottom Line", "Net Developer Gain", p.NetDeveloperGain.StringFixed(2)},
		{"Bottom Line", "ROI %", p.ROIPct.StringFixed(2)},
		{"Bottom Line", "Feasible", fmt.Sprintf("%t", p.DeveloperFeasible)},
		{"Community", "City Investment", c.CityInvestment.StringFixed(2)},
		{"Community", "Unit Years", fmt.Sprintf("%d", c.UnitYears)},
		{"Community", "Cost Per Unit Year", c.CostPerUnitYear.StringFixed(2)},
		{"Community", "20-Year Cost", c.Cost20Year.StringFixed(2)},
		{"Community", "Construction Jobs", c.ConstructionJobs.StringFixed(1)},
		{"Community", "Permanent Jobs", c.PermanentJobs.StringFixed(1)},
		{"Community", "Residents Served", c.ResidentsServed.StringFixed(1)},
		{"Community", "Workers Housed", c.WorkersHoused.StringFixed(1)},
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// JSONExporter writes the full report structure as JSON.
type JSONExporter struct {
	Pretty bool
}

func (JSONExporter) Name() string { return "json" }

func (je JSONExporter) Format(report *ScenarioReport) ([]byte, error) {
	if je.Pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}
