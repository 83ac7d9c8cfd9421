package main

import (
	"fmt"
	"os"

	"github.com/obtools/obcalc/internal/chem"
	"github.com/obtools/obcalc/internal/common/output"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <formula>...",
	Short: "Show molecular weight and oxygen balance of compounds",
	Long: `Parse one or more chemical formulas and print each compound's
molecular weight and oxygen balance percentage.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	precision := cfg.Output.Precision

	failed := false
	output.HeaderLine("%-15s %-14s %s", "Compound", "MW (g/mol)", "OB%")
	output.Rule(40)
	for _, formula := range args {
		compound, err := chem.Evaluate(formula)
		if err != nil {
			output.PrintError("%v", err)
			failed = true
			continue
		}
		fmt.Printf("%-15s %-14.3f %s\n", compound.Formula, compound.Weight,
			output.FormatBalance(compound.Balance, precision))
	}

	if failed {
		os.Exit(1)
	}
}
