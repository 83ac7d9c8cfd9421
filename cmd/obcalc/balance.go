package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/obtools/obcalc/internal/common/output"
	"github.com/obtools/obcalc/internal/mixture"
	"github.com/spf13/cobra"
)

var balanceTarget float64

// metalFuels are the fuels whose formulations usually aim slightly
// negative rather than at exactly 0 OB%.
var metalFuels = []string{"Al", "Mg", "Ti"}

var balanceCmd = &cobra.Command{
	Use:   "balance <formulaA> <formulaB>",
	Short: "Solve the two-component mass split for a target OB%",
	Long: `Compute the mass-fraction split between two compounds so the mixture
reaches the target oxygen balance (default 0, i.e. neutral). The two
compounds must bracket the target: one above, one below.`,
	Args: cobra.ExactArgs(2),
	Run:  runBalance,
}

func init() {
	balanceCmd.Flags().Float64VarP(&balanceTarget, "target", "t", 0.0, "Target OB% for the mixture")
	rootCmd.AddCommand(balanceCmd)
}

func runBalance(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	precision := cfg.Output.Precision

	split, err := mixture.SolveBinary(args[0], args[1], balanceTarget)
	if err != nil {
		if errors.Is(err, mixture.ErrSameSide) || errors.Is(err, mixture.ErrEqualBalance) {
			output.PrintWarning("cannot balance: %v", err)
		} else {
			output.PrintError("%v", err)
		}
		os.Exit(1)
	}

	output.HeaderLine("Stoichiometric split (target OB %s)",
		output.FormatBalance(split.Target, precision))
	output.Rule(50)
	fmt.Printf("%-15s OB %-12s -> %.*f%%\n", split.A.Formula,
		output.FormatBalance(split.A.Balance, precision), precision, split.RatioA)
	fmt.Printf("%-15s OB %-12s -> %.*f%%\n", split.B.Formula,
		output.FormatBalance(split.B.Balance, precision), precision, split.RatioB)
	output.Rule(50)

	if hasMetalFuel(split.A.Formula) || hasMetalFuel(split.B.Formula) {
		output.PrintInfo("metal-fuel formulations are often run slightly oxygen-negative (-5%% to -10%%) to cut oxide dead weight")
	}

	fmt.Printf("Quick input: %q\n", fmt.Sprintf("%s:%.*f %s:%.*f",
		split.A.Formula, precision, split.RatioA,
		split.B.Formula, precision, split.RatioB))
}

func hasMetalFuel(formula string) bool {
	for _, m := range metalFuels {
		if strings.Contains(formula, m) {
			return true
		}
	}
	return false
}
