package main

import (
	"fmt"
	"sort"

	"github.com/obtools/obcalc/internal/chem"
	"github.com/obtools/obcalc/internal/common/output"
	"github.com/spf13/cobra"
)

var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "List supported elements with weights and oxygen demand",
	Run:   runElements,
}

func init() {
	rootCmd.AddCommand(elementsCmd)
}

func runElements(cmd *cobra.Command, args []string) {
	loadConfig()

	symbols := chem.KnownElements()
	sort.Strings(symbols)

	output.HeaderLine("%-8s %-14s %s", "Element", "Weight (g/mol)", "O demand")
	output.Rule(34)
	for _, s := range symbols {
		w, _ := chem.AtomicWeight(s)
		fmt.Printf("%-8s %-14.3f %.2f\n", s, w, chem.OxygenDemand(s))
	}
}
