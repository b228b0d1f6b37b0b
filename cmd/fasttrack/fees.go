package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/WesternSpaces/delta-fast-track-simulator/internal/fees"
	"github.com/WesternSpaces/delta-fast-track-simulator/internal/output"
)

var feesCmd = &cobra.Command{
	Use:   "fees",
	Short: "Show the full municipal fee schedule for a project",
	Long: "Itemizes the fees a project owes before any waivers: building permit,\n" +
		"water and sewer taps, use tax, and planning application fees.",
	RunE: func(cmd *cobra.Command, args []string) error {
		units, _ := cmd.Flags().GetInt("units")
		if units <= 0 {
			return fmt.Errorf("--units must be positive")
		}
		valuationStr, _ := cmd.Flags().GetString("valuation")
		valuation, err := decimal.NewFromString(valuationStr)
		if err != nil {
			return fmt.Errorf("invalid valuation %q: %w", valuationStr, err)
		}

		schedule := fees.NewSchedule()
		size := fees.TapSizeForUnits(units)
		tap := schedule.TapAndSystemFees(units, size)
		planning := schedule.PlanningApplicationFee(units)
		permit := schedule.BuildingPermitFee(valuation)
		useTax := schedule.UseTax(valuation)

		w := os.Stdout
		fmt.Fprintf(w, "Fee schedule for %d units, $%s valuation (%s tap)\n\n",
			units, valuation.StringFixed(0), size)
		fmt.Fprintf(w, "Building permit:        %s\n", output.FormatCurrency(permit))
		fmt.Fprintf(w, "Water system (BSIF):    %s\n", output.FormatCurrency(tap.WaterBSIF))
		fmt.Fprintf(w, "Water tap:              %s\n", output.FormatCurrency(tap.WaterTap))
		fmt.Fprintf(w, "Sewer system (BSIF):    %s\n", output.FormatCurrency(tap.SewerBSIF))
		fmt.Fprintf(w, "Tap fees total:         %s\n", output.FormatCurrency(tap.Total()))
		fmt.Fprintf(w, "Use tax (3%% of 60%%):    %s\n", output.FormatCurrency(useTax))
		fmt.Fprintf(w, "Preliminary plat:       %s\n", output.FormatCurrency(planning.PreliminaryPlat))
		fmt.Fprintf(w, "Final plat:             %s\n", output.FormatCurrency(planning.FinalPlat))
		fmt.Fprintf(w, "Park fee:               %s\n", output.FormatCurrency(schedule.ParkFee(units)))

		total := permit.Add(tap.Total()).Add(useTax).Add(planning.Total())
		fmt.Fprintf(w, "\nTotal before waivers:   %s\n", output.FormatCurrency(total))
		return nil
	},
}

func init() {
	feesCmd.Flags().Int("units", 20, "Total unit count")
	feesCmd.Flags().String("valuation", "9600000", "Construction valuation in dollars")
}
