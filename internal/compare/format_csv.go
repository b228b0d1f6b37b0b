package compare

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Total Units",
		"Affordable Units",
		"Market Rate Units",
		"Total Benefits",
		"Total Developer Costs",
		"Net Developer Gain",
		"ROI %",
		"Feasible",
		"City Investment",
		"Cost Per Unit-Year",
		"Net Gain Diff from Base",
		"City Cost Diff from Base",
		"Affordable Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}
	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *Outcome, scenarioType string) []string {
	feasible := "no"
	if result.ProForma.DeveloperFeasible {
		feasible = "yes"
	}
	return []string{
		result.ScenarioName,
		scenarioType,
		fmt.Sprintf("%d", result.ProForma.TotalUnits),
		fmt.Sprintf("%d", result.ProForma.TotalAffordable),
		fmt.Sprintf("%d", result.ProForma.MarketRateUnits),
		result.ProForma.TotalBenefits.StringFixed(2),
		result.ProForma.TotalDeveloperCosts.StringFixed(2),
		result.ProForma.NetDeveloperGain.StringFixed(2),
		result.ProForma.ROIPct.StringFixed(2),
		feasible,
		result.Community.CityInvestment.StringFixed(2),
		result.Community.CostPerUnitYear.StringFixed(2),
		result.NetGainDiffFromBase.StringFixed(2),
		result.CityCostDiffFromBase.StringFixed(2),
		fmt.Sprintf("%d", result.AffordableDiffFromBase),
	}
}
