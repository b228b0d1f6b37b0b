package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/WesternSpaces/delta-fast-track-simulator/internal/compare"
)

var worksheetCmd = &cobra.Command{
	Use:   "worksheet [config-file]",
	Short: "Render the four-option council decision worksheet",
	Long: "Evaluates the project under the four preset options: no participation,\n" +
		"light touch, middle ground, and maximum commitment.",
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

		if units, _ := cmd.Flags().GetInt("units"); units > 0 {
			configData.Project.BaseUnits = units
		}

		engine := compare.NewEngine(newEngine(cmd))
		result, err := engine.Worksheet(configData.Project)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "table":
			fmt.Fprint(os.Stdout, (&compare.TableFormatter{}).FormatWorksheet(result))
			return nil
		case "json", "json-pretty":
			out, err := (&compare.JSONFormatter{Pretty: format == "json-pretty"}).FormatWorksheet(result)
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

func init() {
	worksheetCmd.Flags().String("format", "table", "Output format (table, json, json-pretty)")
	worksheetCmd.Flags().Int("units", 0, "Override the project's base unit count")
	worksheetCmd.Flags().Bool("debug", false, "Enable debug logging")
}
