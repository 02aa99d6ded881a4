package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/solidarity-fund/fund-sim/sim"
)

var (
	// CLI flags for the economic model
	dailyOrders               float64 // Baseline orders per day
	averageOrderValue         float64 // Monetary value per order
	marketplaceCommissionRate float64 // Commission percentage (0-100)
	logisticFeeBase           float64 // Flat logistic fee per order
	activeDeliverers          int     // Informational driver count
	deliveriesPerDriver       int     // Shift capacity
	simulationDays            int     // Days to simulate

	// CLI flags for run options
	seed            int64   // Seed for the demand variation stream
	openingBalance  float64 // Fund balance on day 0
	noVariation     bool    // Fix the daily multiplier at 1.0
	noGovernance    bool    // Disable automatic fee adjustments
	presetName      string  // Preset from the presets file
	presetsFilePath string  // Path to presets.yaml
	outputFormat    string  // text or json
	outputPath      string  // Output file; stdout when empty
	logLevel        string  // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "fund-sim",
	Short: "Day-stepped simulator for a delivery-fee-funded solidarity fund",
}

// parameterFlags lists the flags that map onto sim.Parameters fields.
var parameterFlags = map[string]func(p *sim.Parameters){
	"daily-orders":          func(p *sim.Parameters) { p.DailyOrders = dailyOrders },
	"average-order-value":   func(p *sim.Parameters) { p.AverageOrderValue = averageOrderValue },
	"commission-rate":       func(p *sim.Parameters) { p.MarketplaceCommissionRate = marketplaceCommissionRate },
	"logistic-fee":          func(p *sim.Parameters) { p.LogisticFeeBase = logisticFeeBase },
	"active-deliverers":     func(p *sim.Parameters) { p.ActiveDeliverers = activeDeliverers },
	"deliveries-per-driver": func(p *sim.Parameters) { p.DeliveriesPerDriver = deliveriesPerDriver },
	"days":                  func(p *sim.Parameters) { p.SimulationDays = simulationDays },
}

// resolveParameters starts from the preset (when one is selected) and applies every
// parameter flag the user set explicitly. Without a preset, flag values (and defaults) are used as-is.
// An empty --preset value selects the presets file's default.
func resolveParameters(cmd *cobra.Command) (sim.Parameters, error) {
	var params sim.Parameters
	usePreset := presetName != "" || cmd.Flags().Changed("preset")
	if usePreset {
		cfg, err := loadPresetsConfig(presetsFilePath)
		if err != nil {
			return sim.Parameters{}, err
		}
		params, err = cfg.Lookup(presetName)
		if err != nil {
			return sim.Parameters{}, err
		}
		logrus.Infof("Using preset %q from %s", presetName, presetsFilePath)
	}
	for name, apply := range parameterFlags {
		// A preset's values win over flag defaults, but never over flags the user typed.
		if !usePreset || cmd.Flags().Changed(name) {
			apply(&params)
		}
	}
	return params, params.Validate()
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the fund simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if err := validateFormat(outputFormat); err != nil {
			logrus.Fatalf("Invalid output format: %v", err)
		}

		params, err := resolveParameters(cmd)
		if err != nil {
			logrus.Fatalf("Invalid simulation parameters: %v", err)
		}

		cfg := sim.SimConfig{
			Seed:              seed,
			DisableVariation:  noVariation,
			DisableGovernance: noGovernance,
		}.WithOpeningBalance(openingBalance)

		s, err := sim.NewSimulator(params, cfg)
		if err != nil {
			logrus.Fatalf("Unable to create simulator: %v", err)
		}
		s.Run()

		if err := saveResults(s, outputFormat, outputPath); err != nil {
			logrus.Fatalf("Unable to write results: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the daily demand variation")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().Float64Var(&openingBalance, "opening-balance", sim.DefaultOpeningBalance, "Fund balance on day 0")
	runCmd.Flags().BoolVar(&noVariation, "no-variation", false, "Disable daily demand variation (multiplier fixed at 1.0)")
	runCmd.Flags().BoolVar(&noGovernance, "no-governance", false, "Disable automatic logistic fee adjustments")

	// Economic model
	runCmd.Flags().Float64Var(&dailyOrders, "daily-orders", 1000, "Baseline orders per day")
	runCmd.Flags().Float64Var(&averageOrderValue, "average-order-value", 50, "Average order value")
	runCmd.Flags().Float64Var(&marketplaceCommissionRate, "commission-rate", 12, "Marketplace commission rate in percent")
	runCmd.Flags().Float64Var(&logisticFeeBase, "logistic-fee", 0.75, "Logistic fee charged per order")
	runCmd.Flags().IntVar(&activeDeliverers, "active-deliverers", 50, "Active delivery partners (informational)")
	runCmd.Flags().IntVar(&deliveriesPerDriver, "deliveries-per-driver", 20, "Deliveries handled per driver shift")
	runCmd.Flags().IntVar(&simulationDays, "days", 30, "Number of days to simulate")

	// Presets and output
	runCmd.Flags().StringVar(&presetName, "preset", "", "Named preset from the presets file (empty value: the file's default)")
	runCmd.Flags().StringVar(&presetsFilePath, "presets-file", "presets.yaml", "Path to the presets YAML file")
	runCmd.Flags().StringVar(&outputFormat, "format", formatText, "Output format (text, json)")
	runCmd.Flags().StringVar(&outputPath, "output", "", "Write results to this file instead of stdout")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
