// Package main provides the kentsel CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kentsel",
		Short: "Urban transformation planning toolkit",
		Long: `Kentsel scores urban risk, lists the preset planning scenarios and
simulates green-space targets without a running API server.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newScoreCmd(),
		newScenariosCmd(),
		newSimulateCmd(),
	)
	return rootCmd
}

// checkFormat rejects output formats a command does not support.
func checkFormat(got string, allowed ...string) error {
	for _, a := range allowed {
		if got == a {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format %q (want one of %v)", got, allowed)
}
