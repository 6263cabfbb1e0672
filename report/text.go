package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/qosroute/compare"
	"github.com/katalvlaran/qosroute/core"
	"github.com/katalvlaran/qosroute/solver"
)

// NoSolution is printed for a solver whose runs all failed.
const NoSolution = "no solution found"

// RenderSummary prints one aligned row per solver, then the best route of
// each solver that found one.
func RenderSummary(w io.Writer, rep *compare.Report) error {
	title := fmt.Sprintf("%s -> %s", rep.Source, rep.Destination)
	if rep.Scenario != "" {
		title = rep.Scenario + ": " + title
	}
	if rep.Demand > 0 {
		title += fmt.Sprintf(" (demand %g)", rep.Demand)
	}
	fmt.Fprintf(w, "%s, %d runs, weights %s\n", title, rep.Runs, rep.Weights)
	if ref := rep.Reference; ref != nil {
		if ref.Found {
			fmt.Fprintf(w, "optimum %.4f via %s\n", ref.Cost, strings.Join(ref.Path, " -> "))
		} else {
			fmt.Fprintln(w, "optimum: no route")
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SOLVER\tOK\tMEAN\tSTDDEV\tBEST\tWORST\tGAP\tRUNTIME\t")
	for _, s := range rep.Summaries {
		ok := fmt.Sprintf("%d/%d", s.Successes, s.Runs)
		if s.NoSolution {
			fmt.Fprintf(tw, "%s\t%s\t%s\t\t\t\t\t%s\t\n", s.Solver, ok, NoSolution, round(s.MeanRuntime))
			continue
		}
		gap := "-"
		if s.HasGap {
			gap = fmt.Sprintf("%.4f", s.BestGap)
		}
		fmt.Fprintf(tw, "%s\t%s\t%.4f\t%.4f\t%.4f\t%.4f\t%s\t%s\t\n",
			s.Solver, ok, s.MeanCost, s.StdDevCost, s.BestCost, s.WorstCost, gap, round(s.MeanRuntime))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	for _, s := range rep.Summaries {
		if !s.NoSolution {
			fmt.Fprintf(w, "best %s: %s\n", s.Solver, strings.Join(s.BestPath, " -> "))
		}
	}

	return nil
}

// RenderPath prints res link by link as found in g, followed by its totals.
func RenderPath(w io.Writer, g *core.Graph, res solver.Result) error {
	fmt.Fprintf(w, "%s (seed %d): cost %.4f, %d hops, %s\n",
		res.Solver, res.Seed, res.Cost, res.Metrics.Hops, round(res.Elapsed))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tFROM\tTO\tDELAY\tRELIABILITY\tRESOURCE\tBANDWIDTH\t")
	for i := 1; i < len(res.Path); i++ {
		from, to := res.Path[i-1], res.Path[i]
		e, err := g.Edge(from, to)
		if err != nil {
			return fmt.Errorf("report: hop %d: %w", i, err)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%g\t%g\t%g\t%s\t\n",
			i, from, to, e.Delay, e.Reliability, e.Resource, bandwidth(e.Bandwidth))
	}
	m := res.Metrics
	fmt.Fprintf(tw, "\t\ttotal\t%g\t%.6f\t%g\t%s\t\n", m.TotalDelay, m.Reliability, m.ResourceUsage, bandwidth(m.Bottleneck))

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return nil
}

func bandwidth(b float64) string {
	if b == 0 {
		return "-"
	}

	return fmt.Sprintf("%g", b)
}

func round(d time.Duration) time.Duration { return d.Round(time.Microsecond) }
