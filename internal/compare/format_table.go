package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("FAST TRACK SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 92) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 28
	numWidth := 15

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Affordable",
		numWidth, "City Cost",
		numWidth, "Net Gain",
		numWidth, "ROI"))
	sb.WriteString(strings.Repeat("-", 92) + "\n")

	sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 92) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 92) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 92) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))

			gainSymbol := tf.deltaSymbol(alt.NetGainDiffFromBase)
			sb.WriteString(fmt.Sprintf("  Developer Net Gain: %s$%s\n",
				gainSymbol, tf.formatDecimal(alt.NetGainDiffFromBase.Abs())))

			if !alt.CityCostDiffFromBase.IsZero() {
				// Lower city cost is the favorable direction.
				costSymbol := tf.deltaSymbol(alt.CityCostDiffFromBase.Neg())
				sb.WriteString(fmt.Sprintf("  City Investment:    %s$%s\n",
					costSymbol, tf.formatDecimal(alt.CityCostDiffFromBase.Abs())))
			}

			if alt.AffordableDiffFromBase != 0 {
				unitSymbol := "+"
				if alt.AffordableDiffFromBase < 0 {
					unitSymbol = ""
				}
				sb.WriteString(fmt.Sprintf("  Affordable Units:   %s%d\n",
					unitSymbol, alt.AffordableDiffFromBase))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *Outcome, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}
	if len(name) > nameWidth {
		name = name[:nameWidth-3] + "..."
	}

	feasible := " "
	if result.ProForma.DeveloperFeasible {
		feasible = "*"
	}

	return fmt.Sprintf("%-*s %*d %*s %*s %*s %s\n",
		nameWidth, name,
		numWidth, result.ProForma.TotalAffordable,
		numWidth, "$"+tf.formatDecimal(result.Community.CityInvestment),
		numWidth, "$"+tf.formatDecimal(result.ProForma.NetDeveloperGain),
		numWidth, result.ProForma.ROIPct.StringFixed(2)+"%",
		feasible)
}

// deltaSymbol returns the sign prefix for a delta value
func (tf *TableFormatter) deltaSymbol(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-"
	}
	return "+"
}

// formatDecimal formats a decimal with thousands separators
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	s := d.StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var out strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out.WriteRune(',')
		}
		out.WriteRune(r)
	}
	if neg {
		return "-" + out.String()
	}
	return out.String()
}

// FormatWorksheet renders the four-option decision worksheet
func (tf *TableFormatter) FormatWorksheet(result *WorksheetResult) string {
	var sb strings.Builder

	sb.WriteString("FAST TRACK DECISION WORKSHEET\n")
	sb.WriteString(strings.Repeat("=", 100) + "\n")
	sb.WriteString(fmt.Sprintf("Project: %d base units\n\n", result.Project.BaseUnits))

	nameWidth := 22
	numWidth := 12

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s %s\n",
		nameWidth, "Option",
		numWidth, "Extra Units",
		numWidth, "Affordable",
		numWidth, "Years",
		numWidth, "City Waives",
		numWidth+3, "Builder Gain",
		"Worth It?"))
	sb.WriteString(strings.Repeat("-", 100) + "\n")

	for _, card := range result.Cards {
		years := "-"
		if card.AffordabilityYears > 0 {
			years = fmt.Sprintf("%d", card.AffordabilityYears)
		}
		waives := "-"
		if card.FeeWaivers.IsPositive() {
			waives = "$" + tf.formatDecimal(card.FeeWaivers)
		}
		gain := "-"
		worthIt := "N/A"
		if card.AddsValue != nil {
			gain = "$" + tf.formatDecimal(card.NetDeveloperGain)
			if *card.AddsValue {
				worthIt = "Yes"
			} else {
				worthIt = "Maybe not"
			}
		}

		sb.WriteString(fmt.Sprintf("%-*s %*d %*d %*s %*s %*s %s\n",
			nameWidth, card.Name,
			numWidth, card.BonusUnits,
			numWidth, card.AffordableUnits,
			numWidth, years,
			numWidth, waives,
			numWidth+3, gain,
			worthIt))
	}
	sb.WriteString(strings.Repeat("=", 100) + "\n")

	return sb.String()
}
