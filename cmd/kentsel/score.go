package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kentsel/kentsel/internal/risk"
)

func newScoreCmd() *cobra.Command {
	var (
		in        risk.Input
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute the urban risk score for one area",
		Long: `Combines scenario, green-space ratio, population density, flood risk and
infrastructure quality into a 0-100 risk score with a tier and explanation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(outputFmt, "text", "json"); err != nil {
				return err
			}
			return runScore(cmd.OutOrStdout(), in, outputFmt)
		},
	}

	cmd.Flags().StringVar(&in.Scenario, "scenario", "merkez", "Scenario key: merkez, gelisen or yesil")
	cmd.Flags().IntVar(&in.GreenRatio, "green", 20, "Green-space ratio percentage (0-100)")
	cmd.Flags().StringVar(&in.PopulationDensity, "density", risk.DensityMedium, "Population density: dusuk, orta, yuksek or cok_yuksek")
	cmd.Flags().IntVar(&in.FloodRisk, "flood", 0, "Flood risk (0-10)")
	cmd.Flags().IntVar(&in.InfrastructureScore, "infra", 10, "Infrastructure quality (0-10, 10 is best)")
	cmd.Flags().StringVarP(&outputFmt, "output", "o", "text", "Output format: text or json")

	return cmd
}

func runScore(w io.Writer, in risk.Input, outputFmt string) error {
	a := risk.Score(in)

	if outputFmt == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	}

	_, err := fmt.Fprintf(w, "Score: %d/100\nLevel: %s\n%s\n", a.Score, a.Level, a.Explanation)
	return err
}
