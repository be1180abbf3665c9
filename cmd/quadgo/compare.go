package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuneinsight/quadgo/report"
)

func runCompare(cmd *cobra.Command, args []string) error {

	scenario := DefaultScenario()
	if scenarioPath != "" {
		var err error
		if scenario, err = LoadScenario(scenarioPath); err != nil {
			return fmt.Errorf("cannot load scenario %q: %w", scenarioPath, err)
		}
	}

	fns, ins, err := scenario.Build()
	if err != nil {
		return err
	}

	slog.Debug("scenario ready",
		"functions", len(fns),
		"integrators", len(ins),
		"a", scenario.Bounds.A,
		"b", scenario.Bounds.B)

	return report.WriteWith(os.Stdout, report.Options{NumberFormat: numberFormat}, fns, ins, scenario.Bounds.A, scenario.Bounds.B)
}
