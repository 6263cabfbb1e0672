package compare

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/qosroute/solver"
)

func ok(run int, cost float64, path ...string) RunRecord {
	return RunRecord{
		Solver:  "x",
		Run:     run,
		Seed:    int64(run + 100),
		Status:  StatusSuccess,
		Result:  solver.Result{Solver: "x", Run: run, Seed: int64(run + 100), Path: path, Cost: cost},
		Elapsed: time.Duration(run+1) * time.Millisecond,
	}
}

func TestSummarize_Statistics(t *testing.T) {
	records := []RunRecord{
		ok(0, 3, "s", "a", "t"),
		ok(1, 1, "s", "b", "t"),
		ok(2, 5, "s", "a", "c", "t"),
		ok(3, 2, "s", "b", "t"),
		ok(4, 4, "s", "a", "t"),
	}
	s := summarize("x", records, &Reference{Found: true, Cost: 0.5})

	assert.Equal(t, 5, s.Successes)
	assert.Zero(t, s.Failures)
	assert.Equal(t, 1.0, s.SuccessRate)
	assert.InDelta(t, 3, s.MeanCost, 1e-12)
	assert.InDelta(t, math.Sqrt(2.5), s.StdDevCost, 1e-12)
	assert.InDelta(t, 3, s.MedianCost, 1e-12)
	assert.Equal(t, 1.0, s.BestCost)
	assert.Equal(t, 5.0, s.WorstCost)
	assert.Equal(t, []string{"s", "b", "t"}, s.BestPath)
	assert.Equal(t, int64(101), s.BestSeed)
	assert.Equal(t, 3, s.DistinctPaths)
	assert.Equal(t, 3*time.Millisecond, s.MeanRuntime)

	assert.True(t, s.HasGap)
	assert.InDelta(t, 0.5, s.BestGap, 1e-12)
	assert.InDelta(t, 2.5, s.MeanGap, 1e-12)
	assert.InDelta(t, 5, s.RelativeGap, 1e-12)
}

func TestSummarize_FailuresExcluded(t *testing.T) {
	records := []RunRecord{
		ok(0, 2, "s", "t"),
		failed(RunRecord{Solver: "x", Run: 1, Elapsed: time.Second}, solver.ErrNoPathFound),
		failed(RunRecord{Solver: "x", Run: 2}, ErrRunPanic),
	}
	s := summarize("x", records, nil)

	assert.Equal(t, 1, s.Successes)
	assert.Equal(t, 2, s.Failures)
	assert.Equal(t, map[string]int{ReasonNoPath: 1, ReasonPanic: 1}, s.Reasons)
	assert.Equal(t, 2.0, s.MeanCost)
	assert.Zero(t, s.StdDevCost, "single success has no spread")
	assert.Equal(t, time.Millisecond, s.MeanRuntime, "runtime of successes only")
	assert.False(t, s.HasGap)
}

func TestSummarize_NoSolution(t *testing.T) {
	records := []RunRecord{
		failed(RunRecord{Solver: "x", Run: 0, Elapsed: 2 * time.Millisecond}, solver.ErrNoPathFound),
		failed(RunRecord{Solver: "x", Run: 1, Elapsed: 4 * time.Millisecond}, solver.ErrNoPathFound),
	}
	s := summarize("x", records, &Reference{Found: true, Cost: 1})

	assert.True(t, s.NoSolution)
	assert.Zero(t, s.SuccessRate)
	assert.Nil(t, s.BestPath)
	assert.False(t, s.HasGap)
	assert.Equal(t, 3*time.Millisecond, s.MeanRuntime)
}

func TestReason(t *testing.T) {
	assert.Equal(t, "", Reason(nil))
	assert.Equal(t, ReasonNoPath, Reason(solver.ErrNoPathFound))
	assert.Equal(t, ReasonTimeout, Reason(ErrRunTimeout))
	assert.Equal(t, ReasonError, Reason(assert.AnError))
}
