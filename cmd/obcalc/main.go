package main

import (
	"fmt"
	"os"

	"github.com/obtools/obcalc/internal/chem"
	"github.com/obtools/obcalc/internal/common/config"
	"github.com/obtools/obcalc/internal/common/logger"
	"github.com/obtools/obcalc/internal/common/output"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "obcalc",
	Short: "Oxygen balance calculator",
	Long: `Compute molecular weights, oxygen balance percentages, mixture
aggregates and two-component stoichiometric splits for energetic
compositions (oxidizer + fuel).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure logging based on flags
		if verbose {
			logger.SetVerbose(true)
		}
		if quiet {
			logger.SetQuiet(true)
		}
		if noColor {
			output.NoColor()
		}
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// loadConfig reads the user config and registers any user-defined
// elements before the calculation commands run.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("loading config: %v", err)
		os.Exit(1)
	}
	for symbol, e := range cfg.Elements {
		logger.Debug("registering element %s (weight %.3f, demand %.2f)",
			symbol, e.Weight, e.OxygenDemand)
		chem.Register(symbol, e.Weight, e.OxygenDemand)
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
