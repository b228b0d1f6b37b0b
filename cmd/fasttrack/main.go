package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/WesternSpaces/delta-fast-track-simulator/internal/calculation"
	"github.com/WesternSpaces/delta-fast-track-simulator/internal/config"
	"github.com/WesternSpaces/delta-fast-track-simulator/internal/domain"
	"github.com/WesternSpaces/delta-fast-track-simulator/internal/output"
)

// cliLogger implements calculation.Logger on top of zerolog
type cliLogger struct {
	log zerolog.Logger
}

func newCLILogger() cliLogger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return cliLogger{log: zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger()}
}

func (l cliLogger) Debugf(format string, args ...any) { l.log.Debug().Msgf(format, args...) }
func (l cliLogger) Infof(format string, args ...any)  { l.log.Info().Msgf(format, args...) }
func (l cliLogger) Warnf(format string, args ...any)  { l.log.Warn().Msgf(format, args...) }
func (l cliLogger) Errorf(format string, args ...any) { l.log.Error().Msgf(format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "fasttrack %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "fasttrack",
	Short: "Fast Track affordable housing incentive calculator",
	Long: "Models the Fast Track incentive program from both sides: what a developer gains\n" +
		"from participating and what the city pays per affordable unit delivered.",
}

// loadConfiguration reads the config file, or returns the defaults when no
// path is given.
func loadConfiguration(path string) (*domain.Configuration, error) {
	if path == "" {
		return &domain.Configuration{
			Project: domain.DefaultProjectParams(),
			Policy:  domain.DefaultPolicySettings(),
		}, nil
	}
	return config.NewInputParser().LoadFromFile(path)
}

// newEngine builds a calculation engine honoring the debug flag.
func newEngine(cmd *cobra.Command) *calculation.Engine {
	engine := calculation.NewEngine()
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(newCLILogger())
		engine.Debug = true
	}
	return engine
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [config-file]",
	Short: "Run the pro forma for one scenario",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		configData, err := loadConfiguration(path)
		if err != nil {
			return err
		}

		engine := newEngine(cmd)
		result, err := engine.Evaluate(configData.Project, configData.Policy)
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		report := &output.ScenarioReport{
			Name:      name,
			Policy:    configData.Policy,
			ProForma:  result,
			Community: engine.AnalyzeCommunity(result, configData.Policy),
		}
		if limit, ok := engine.AMI.IncomeLimit(configData.Policy.RentalAMIThreshold); ok {
			report.IncomeLimit = &limit
		}

		format, _ := cmd.Flags().GetString("format")
		return output.NewReportGenerator(os.Stdout).GenerateReport(report, format)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [config-file]",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configData, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Configuration is valid: %d base units, %d scenario(s)\n",
			configData.Project.BaseUnits, len(configData.Scenarios))
		return nil
	},
}

func init() {
	calculateCmd.Flags().String("format", "console", "Output format (console, csv, json, json-pretty)")
	calculateCmd.Flags().String("name", "current policy", "Scenario name for the report")
	calculateCmd.Flags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(worksheetCmd)
	rootCmd.AddCommand(feesCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
