package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kentsel/kentsel/internal/scenario"
)

func newScenariosCmd() *cobra.Command {
	var outputFmt string

	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "List the preset planning scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(outputFmt, "text", "json", "yaml"); err != nil {
				return err
			}
			return runScenarios(cmd.OutOrStdout(), scenario.Default(), outputFmt)
		},
	}

	cmd.Flags().StringVarP(&outputFmt, "output", "o", "text", "Output format: text, json or yaml")

	return cmd
}

// scenarioView is the exported shape of one catalog entry.
type scenarioView struct {
	Key        string              `json:"key" yaml:"key"`
	Label      string              `json:"label" yaml:"label"`
	Center     []float64           `json:"center" yaml:"center,flow"`
	Analysis   scenario.Analysis   `json:"analysis" yaml:"analysis"`
	Prediction scenario.Prediction `json:"prediction" yaml:"prediction"`
}

func runScenarios(w io.Writer, cat *scenario.Catalog, outputFmt string) error {
	views := make([]scenarioView, 0, len(cat.Keys()))
	for _, k := range cat.Keys() {
		sc := cat.Scenario(k.String())
		views = append(views, scenarioView{
			Key:        k.String(),
			Label:      sc.Label,
			Center:     sc.Center,
			Analysis:   sc.Analysis,
			Prediction: sc.Prediction,
		})
	}

	switch outputFmt {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(views); err != nil {
			return err
		}
		return enc.Close()
	}

	for _, v := range views {
		marker := ""
		if scenario.Key(v.Key) == cat.Fallback() {
			marker = " (default)"
		}
		if _, err := fmt.Fprintf(w, "%-8s %s%s\n         green %s, density %s\n",
			v.Key, v.Label, marker, v.Analysis.GreenRatio, v.Analysis.PopulationDensity); err != nil {
			return err
		}
	}
	return nil
}
