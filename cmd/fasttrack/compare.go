package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/WesternSpaces/delta-fast-track-simulator/internal/compare"
)

var compareCmd = &cobra.Command{
	Use:   "compare [config-file]",
	Short: "Compare policy scenarios side by side",
	Long: "Compares the base policy against the named scenarios in the configuration,\n" +
		"or sweeps a single lever with --sweep (period, rental-ami, ownership-ami).",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		configData, err := loadConfiguration(path)
		if err != nil {
			return err
		}

		engine := compare.NewEngine(newEngine(cmd))
		baseName, _ := cmd.Flags().GetString("base-name")

		var set *compare.ComparisonSet
		sweep, _ := cmd.Flags().GetString("sweep")
		switch sweep {
		case "":
			set, err = engine.Compare(configData, baseName)
		case "period":
			years, parseErr := parseYears(cmd)
			if parseErr != nil {
				return parseErr
			}
			set, err = engine.Sweep(configData.Project, configData.Policy, baseName,
				compare.VaryAffordabilityPeriod(configData.Policy, years))
		case "rental-ami":
			fracs, parseErr := parseFracs(cmd)
			if parseErr != nil {
				return parseErr
			}
			set, err = engine.Sweep(configData.Project, configData.Policy, baseName,
				compare.VaryRentalAMI(configData.Policy, fracs))
		case "ownership-ami":
			fracs, parseErr := parseFracs(cmd)
			if parseErr != nil {
				return parseErr
			}
			set, err = engine.Sweep(configData.Project, configData.Policy, baseName,
				compare.VaryOwnershipAMI(configData.Policy, fracs))
		default:
			return fmt.Errorf("unknown sweep %q (use period, rental-ami, or ownership-ami)", sweep)
		}
		if err != nil {
			return err
		}
		set.ConfigPath = path

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "table":
			fmt.Fprint(os.Stdout, (&compare.TableFormatter{}).Format(set))
			return nil
		case "csv":
			out, err := (&compare.CSVFormatter{}).Format(set)
			if err != nil {
				return err
			}
			fmt.Fprint(os.Stdout, out)
			return nil
		case "json", "json-pretty":
			out, err := (&compare.JSONFormatter{Pretty: format == "json-pretty"}).Format(set)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, out)
			return nil
		default:
			return fmt.Errorf("unsupported format: %s", format)
		}
	},
}

// parseYears reads the --values flag as a comma-separated year list.
func parseYears(cmd *cobra.Command) ([]int, error) {
	raw, _ := cmd.Flags().GetString("values")
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	years := make([]int, 0, len(parts))
	for _, part := range parts {
		y, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid year %q: %w", part, err)
		}
		years = append(years, y)
	}
	return years, nil
}

// parseFracs reads the --values flag as comma-separated AMI fractions
// (0.80) or percents (80).
func parseFracs(cmd *cobra.Command) ([]decimal.Decimal, error) {
	raw, _ := cmd.Flags().GetString("values")
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	fracs := make([]decimal.Decimal, 0, len(parts))
	for _, part := range parts {
		d, err := decimal.NewFromString(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid AMI value %q: %w", part, err)
		}
		if d.GreaterThan(decimal.NewFromInt(3)) {
			d = d.Div(decimal.NewFromInt(100))
		}
		fracs = append(fracs, d)
	}
	return fracs, nil
}

func init() {
	compareCmd.Flags().String("format", "table", "Output format (table, csv, json, json-pretty)")
	compareCmd.Flags().String("base-name", "current draft", "Label for the base scenario")
	compareCmd.Flags().String("sweep", "", "Sweep one lever (period, rental-ami, ownership-ami)")
	compareCmd.Flags().String("values", "", "Comma-separated sweep values (defaults per lever)")
	compareCmd.Flags().Bool("debug", false, "Enable debug logging")
}
