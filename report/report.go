// Package report runs a list of functions against a list of integrators over
// shared bounds and renders the results as a textual comparison table.
package report

import (
	"fmt"
	"io"

	"github.com/tuneinsight/quadgo/function"
	"github.com/tuneinsight/quadgo/integrator"
)

// Row is a function's label paired with one integral per integrator, indexed
// like the integrator list the row was generated from.
type Row struct {
	Label   string
	Results []float64
}

// Options control the rendering of a report.
type Options struct {
	// NumberFormat is the fmt verb used to render each numeric result.
	// The empty string means "%v".
	NumberFormat string
}

// Generate integrates each function with each integrator over [a, b] and
// returns one Row per function, in order.
func Generate(fns []function.Function, ins []integrator.Integrator, a, b float64) (rows []Row) {
	rows = make([]Row, len(fns))
	for i, f := range fns {
		results := make([]float64, len(ins))
		for j, in := range ins {
			results[j] = in.Integrate(f, a, b)
		}
		rows[i] = Row{Label: f.Describe(), Results: results}
	}
	return
}

// Write renders the comparison table of fns by ins over [a, b] to w with
// default options: one line per function, holding its description, a tab,
// and the integral computed by each integrator followed by ";".
func Write(w io.Writer, fns []function.Function, ins []integrator.Integrator, a, b float64) error {
	return WriteWith(w, Options{}, fns, ins, a, b)
}

// WriteWith is Write with explicit rendering options.
func WriteWith(w io.Writer, opts Options, fns []function.Function, ins []integrator.Integrator, a, b float64) error {

	format := opts.NumberFormat
	if format == "" {
		format = "%v"
	}

	for _, row := range Generate(fns, ins, a, b) {
		if _, err := fmt.Fprintf(w, "%s\t", row.Label); err != nil {
			return fmt.Errorf("cannot write report: %w", err)
		}
		for _, y := range row.Results {
			if _, err := fmt.Fprintf(w, format+";", y); err != nil {
				return fmt.Errorf("cannot write report: %w", err)
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("cannot write report: %w", err)
		}
	}

	return nil
}
