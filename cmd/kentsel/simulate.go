package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kentsel/kentsel/internal/scenario"
)

func newSimulateCmd() *cobra.Command {
	var (
		key       string
		target    int
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate moving a scenario to a target green-space ratio",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(outputFmt, "text", "json"); err != nil {
				return err
			}
			return runSimulate(cmd.OutOrStdout(), scenario.Default(), key, target, outputFmt)
		},
	}

	cmd.Flags().StringVar(&key, "scenario", "merkez", "Scenario key")
	cmd.Flags().IntVar(&target, "target", 0, "Target green-space percentage (required)")
	cmd.Flags().StringVarP(&outputFmt, "output", "o", "text", "Output format: text or json")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func runSimulate(w io.Writer, cat *scenario.Catalog, key string, target int, outputFmt string) error {
	sim := cat.SimulateGreen(key, target)

	if outputFmt == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sim)
	}

	_, err := fmt.Fprintf(w, "Scenario: %s\nGreen: %%%d -> %%%d (%+d)\nLevel: %s\n%s\n",
		sim.Scenario, sim.CurrentGreen, sim.TargetGreen, sim.Difference, sim.Level, sim.Effect)
	return err
}
