// Package output renders single-scenario analysis reports.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/WesternSpaces/delta-fast-track-simulator/internal/domain"
)

// ScenarioReport bundles everything one evaluated scenario produced.
// IncomeLimit is the 2-person household limit at the rental AMI threshold,
// nil when the threshold is not a tabulated row.
type ScenarioReport struct {
	Name        string                  `json:"name"`
	Policy      domain.PolicySettings   `json:"policy"`
	ProForma    *domain.ProFormaResult  `json:"proForma"`
	Community   *domain.CommunityResult `json:"community"`
	IncomeLimit *decimal.Decimal        `json:"incomeLimit,omitempty"`
}

// ReportGenerator handles report generation in various formats
type ReportGenerator struct {
	Out io.Writer
}

// NewReportGenerator creates a report generator writing to the given output.
func NewReportGenerator(out io.Writer) *ReportGenerator {
	return &ReportGenerator{Out: out}
}

// GenerateReport renders a report in the named format.
func (rg *ReportGenerator) GenerateReport(report *ScenarioReport, format string) error {
	switch format {
	case "console":
		return rg.GenerateConsoleReport(report)
	case "csv", "json", "json-pretty":
		formatter, err := GetFormatterByName(format)
		if err != nil {
			return err
		}
		data, err := formatter.Format(report)
		if err != nil {
			return err
		}
		_, err = rg.Out.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// GenerateConsoleReport renders the detailed two-perspective analysis.
func (rg *ReportGenerator) GenerateConsoleReport(report *ScenarioReport) error {
	w := rg.Out
	p := report.ProForma
	c := report.Community
	rule := strings.Repeat("=", 78)
	thin := strings.Repeat("-", 78)

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "FAST TRACK SCENARIO ANALYSIS: %s\n", report.Name)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "UNITS")
	fmt.Fprintln(w, thin)
	fmt.Fprintf(w, "Base units:            %d\n", p.BaseUnits)
	fmt.Fprintf(w, "Density bonus units:   %d\n", p.BonusUnits)
	fmt.Fprintf(w, "Total units:           %d\n", p.TotalUnits)
	fmt.Fprintf(w, "Affordable units:      %d (%d rental, %d ownership)\n",
		p.TotalAffordable, p.RentalAffordable, p.OwnershipAffordable)
	fmt.Fprintf(w, "Market-rate units:     %d\n", p.MarketRateUnits)
	fmt.Fprintf(w, "Affordability period:  %s\n", report.Policy.PeriodLabel())
	fmt.Fprintln(w)

	fmt.Fprintln(w, "DEVELOPER BENEFITS")
	fmt.Fprintln(w, thin)
	fmt.Fprintf(w, "Density bonus value:   %s\n", FormatCurrency(p.DensityBonusValue))
	fmt.Fprintf(w, "Planning fees waived:  %s\n", FormatCurrency(p.PlanningFeesWaived))
	fmt.Fprintf(w, "Building permit:       %s\n", FormatCurrency(p.BuildingPermitWaived))
	fmt.Fprintf(w, "Tap fee savings:       %s  (full fees %s)\n",
		FormatCurrency(p.TapFeeSavings), FormatCurrency(p.TapFeeBreakdown.Total()))
	fmt.Fprintf(w, "Use tax rebate:        %s\n", FormatCurrency(p.UseTaxSavings))
	fmt.Fprintf(w, "Time savings:          %s\n", FormatCurrency(p.TimeSavings))
	fmt.Fprintf(w, "Total benefits:        %s\n", FormatCurrency(p.TotalBenefits))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "DEVELOPER COSTS")
	fmt.Fprintln(w, thin)
	fmt.Fprintf(w, "Market rent (weighted):     %s/mo\n", FormatCurrency(p.MarketRentWeighted))
	fmt.Fprintf(w, "Affordable rent (weighted): %s/mo\n", FormatCurrency(p.AffordableRentWeighted))
	if p.MonthlyRentGap.IsNegative() {
		fmt.Fprintf(w, "Monthly rent gap:           %s/unit (affordable rents exceed market)\n",
			FormatCurrency(p.MonthlyRentGap))
	} else {
		fmt.Fprintf(w, "Monthly rent gap:           %s/unit\n", FormatCurrency(p.MonthlyRentGap))
	}
	fmt.Fprintf(w, "Rent impact over period:    %s\n", FormatCurrency(p.TotalLostRent))
	if report.IncomeLimit != nil {
		fmt.Fprintf(w, "Income limit (2-person):    %s/yr at %s%% AMI\n",
			FormatCurrency(*report.IncomeLimit),
			report.Policy.RentalAMIThreshold.Mul(decimal.NewFromInt(100)).String())
	}
	if p.OwnershipAffordable > 0 {
		fmt.Fprintf(w, "Sale gap per unit:          %s\n", FormatCurrency(p.PerUnitSaleGap))
		fmt.Fprintf(w, "Lost sale profit:           %s\n", FormatCurrency(p.TotalLostSaleProfit))
	}
	fmt.Fprintf(w, "Total developer costs:      %s\n", FormatCurrency(p.TotalDeveloperCosts))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "BOTTOM LINE")
	fmt.Fprintln(w, thin)
	fmt.Fprintf(w, "Net developer gain:    %s\n", FormatCurrency(p.NetDeveloperGain))
	fmt.Fprintf(w, "ROI:                   %s%%\n", p.ROIPct.StringFixed(2))
	if p.DeveloperFeasible {
		fmt.Fprintln(w, "Verdict:               participation adds value for the developer")
	} else {
		fmt.Fprintln(w, "Verdict:               participation may not pencil for the developer")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "COMMUNITY PERSPECTIVE")
	fmt.Fprintln(w, thin)
	fmt.Fprintf(w, "City investment:       %s (fee waivers only)\n", FormatCurrency(c.CityInvestment))
	fmt.Fprintf(w, "Unit-years:            %d\n", c.UnitYears)
	fmt.Fprintf(w, "Cost per unit-year:    %s\n", FormatCurrency(c.CostPerUnitYear))
	fmt.Fprintf(w, "20-year cost:          %s (%s cycles)\n",
		FormatCurrency(c.Cost20Year), c.CyclesIn20Years.StringFixed(2))
	fmt.Fprintf(w, "Construction jobs:     %s\n", c.ConstructionJobs.StringFixed(1))
	fmt.Fprintf(w, "Permanent jobs:        %s\n", c.PermanentJobs.StringFixed(1))
	fmt.Fprintf(w, "Residents served:      %s\n", c.ResidentsServed.StringFixed(0))
	fmt.Fprintf(w, "Workers housed:        %s\n", c.WorkersHoused.StringFixed(1))
	fmt.Fprintln(w, rule)

	return nil
}

// FormatCurrency renders a dollar amount with thousands separators and no
// cents.
func FormatCurrency(d decimal.Decimal) string {
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
		return "-$" + out.String()
	}
	return "$" + out.String()
}
