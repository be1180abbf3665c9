// The quadgo command integrates polynomial functions over an interval with
// interchangeable integration backends and prints the results side by side,
// one line per function. A scenario names the functions, the integrators and
// the bounds; the built-in sample scenario is used unless a YAML file is
// given.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	scenarioPath string
	numberFormat string
	verbose      bool

	rootCmd = &cobra.Command{
		Use:   "quadgo",
		Short: "Compare exact and numerical integration of polynomial functions",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	compareCmd = &cobra.Command{
		Use:   "compare",
		Short: "Integrate every function of a scenario with every integrator and print the comparison table",
		RunE:  runCompare,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	compareCmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "path to a YAML scenario file (default: built-in sample scenario)")
	compareCmd.Flags().StringVar(&numberFormat, "number-format", "", "fmt verb used to render results, e.g. %.6f (default: %v)")
	rootCmd.AddCommand(compareCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
