package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/gridsearch/compare"
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/render"
)

// Table writes one aligned row per outcome:
// strategy, found, cost, expanded, elapsed.
func Table(w io.Writer, outcomes []compare.Outcome) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tFOUND\tCOST\tEXPANDED\tELAPSED")
	for _, o := range outcomes {
		fmt.Fprintf(tw, "%s\t%t\t%d\t%d\t%s\n",
			o.Strategy.Label(), o.Result.Found(), o.Summary.Cost, o.Summary.Expansions,
			o.Elapsed.Round(time.Microsecond))
	}
	return tw.Flush()
}

// Console writes the classic per-strategy listing: the grid with the path
// overlaid, the expansion order, the cost and the expansion count.
func Console(w io.Writer, g *gridgraph.Grid, outcomes []compare.Outcome) error {
	for _, o := range outcomes {
		var path, expanded []gridgraph.Cell
		if o.Result != nil {
			path, expanded = o.Result.Path, o.Result.Expanded
		}
		if _, err := fmt.Fprintf(w, "\n%s path:\n", o.Strategy.Label()); err != nil {
			return err
		}
		if err := render.Text(w, g, path); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s expanded: %v\nCost: %d\nExpanded nodes: %d\n",
			o.Strategy.Label(), expanded, o.Summary.Cost, o.Summary.Expansions); err != nil {
			return err
		}
	}
	return nil
}
