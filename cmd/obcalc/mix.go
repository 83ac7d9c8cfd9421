package main

import (
	"fmt"
	"os"

	"github.com/obtools/obcalc/internal/common/config"
	"github.com/obtools/obcalc/internal/common/logger"
	"github.com/obtools/obcalc/internal/common/output"
	"github.com/obtools/obcalc/internal/mixture"
	"github.com/spf13/cobra"
)

var (
	mixInput  string
	mixFile   string
	mixPreset string
)

var mixCmd = &cobra.Command{
	Use:   "mix",
	Short: "Aggregate a weighted mixture into mass percentages and OB%",
	Long: `Aggregate a list of (formula, proportion) components into per-compound
mass percentages and the mixture-level oxygen balance.

Components come from one of three sources:
  -i  an inline list like "KClO4:65 Al:35"
  -f  a text file with one component per line ('#' starts a comment)
  -p  a named preset from presets.toml in the obcalc config directory`,
	Run: runMix,
}

func init() {
	mixCmd.Flags().StringVarP(&mixInput, "input", "i", "", `Inline component list, e.g. "KClO4:65 Al:35"`)
	mixCmd.Flags().StringVarP(&mixFile, "file", "f", "", "Read components from a file, one per line")
	mixCmd.Flags().StringVarP(&mixPreset, "preset", "p", "", "Use a named preset from presets.toml")
	mixCmd.MarkFlagsOneRequired("input", "file", "preset")
	mixCmd.MarkFlagsMutuallyExclusive("input", "file", "preset")
	rootCmd.AddCommand(mixCmd)
}

func runMix(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	components, err := collectComponents()
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	result, err := mixture.Aggregate(components)
	if err != nil {
		output.PrintError("%v", err)
		os.Exit(1)
	}

	printMixture(result, cfg.Output.Precision)
}

func collectComponents() ([]mixture.Component, error) {
	switch {
	case mixFile != "":
		return mixture.LoadFile(mixFile)
	case mixPreset != "":
		path, err := config.PresetsPath()
		if err != nil {
			return nil, err
		}
		presets, err := mixture.LoadPresets(path)
		if err != nil {
			return nil, err
		}
		return presets.Get(mixPreset)
	default:
		return mixture.ParseArg(mixInput), nil
	}
}

func printMixture(result *mixture.Result, precision int) {
	output.HeaderLine("%-15s %-14s %-10s %s", "Component", "MW (g/mol)", "OB%", "Mass %")
	output.Rule(50)
	for _, e := range result.Entries {
		fmt.Printf("%-15s %-14.3f %-10s %.*f%%\n",
			e.Formula, e.Weight,
			output.FormatBalance(e.Balance, precision),
			precision, e.MassPct)
	}
	output.Rule(50)
	fmt.Printf("Mixture OB%%: %s\n", output.FormatBalance(result.Balance, precision))
	output.Hint(result.Balance)
}
