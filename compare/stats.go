package compare

import (
	"sort"
	"strings"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/qosroute/solver"
)

// summarize aggregates the records of one solver. ref may be nil.
func summarize(name string, records []RunRecord, ref *Reference) Summary {
	s := Summary{Solver: name, Runs: len(records)}

	var (
		costs    []float64
		runtimes []float64
		all      []float64
		best     solver.Result
		paths    = make(map[string]bool)
	)
	for _, rec := range records {
		all = append(all, float64(rec.Elapsed))
		if !rec.OK() {
			s.Failures++
			if s.Reasons == nil {
				s.Reasons = make(map[string]int)
			}
			s.Reasons[rec.Reason]++
			continue
		}
		s.Successes++
		costs = append(costs, rec.Result.Cost)
		runtimes = append(runtimes, float64(rec.Elapsed))
		paths[strings.Join(rec.Result.Path, "\x00")] = true
		if solver.BetterResult(rec.Result, best) {
			best = rec.Result
		}
	}
	if s.Runs > 0 {
		s.SuccessRate = float64(s.Successes) / float64(s.Runs)
	}
	if len(costs) == 0 {
		s.NoSolution = true
		if len(all) > 0 {
			s.MeanRuntime = time.Duration(stat.Mean(all, nil))
		}
		return s
	}

	s.MeanCost = stat.Mean(costs, nil)
	if len(costs) > 1 {
		s.StdDevCost = stat.StdDev(costs, nil)
	}
	s.BestCost = floats.Min(costs)
	s.WorstCost = floats.Max(costs)
	sorted := append([]float64(nil), costs...)
	sort.Float64s(sorted)
	s.MedianCost = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.MeanRuntime = time.Duration(stat.Mean(runtimes, nil))
	s.BestPath = best.Path
	s.BestSeed = best.Seed
	s.BestMetrics = best.Metrics
	s.DistinctPaths = len(paths)

	if ref != nil && ref.Found {
		s.HasGap = true
		s.BestGap = s.BestCost - ref.Cost
		s.MeanGap = s.MeanCost - ref.Cost
		if ref.Cost > 0 {
			s.RelativeGap = s.MeanGap / ref.Cost
		}
	}

	return s
}
