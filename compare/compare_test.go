package compare_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qosroute/aco"
	"github.com/katalvlaran/qosroute/annealing"
	"github.com/katalvlaran/qosroute/compare"
	"github.com/katalvlaran/qosroute/core"
	"github.com/katalvlaran/qosroute/genetic"
	"github.com/katalvlaran/qosroute/internal/fixture"
	"github.com/katalvlaran/qosroute/internal/solvertest"
	"github.com/katalvlaran/qosroute/qlearning"
	"github.com/katalvlaran/qosroute/solver"
)

// stub is a Solver driven by a function.
type stub struct {
	name  string
	calls atomic.Int32
	fn    func(ctx context.Context, p solver.Problem, seed int64) (solver.Result, error)
}

func (s *stub) Name() string { return s.name }

func (s *stub) Solve(ctx context.Context, p solver.Problem, seed int64) (solver.Result, error) {
	s.calls.Add(1)
	return s.fn(ctx, p, seed)
}

func failing(name string) *stub {
	return &stub{name: name, fn: func(context.Context, solver.Problem, int64) (solver.Result, error) {
		return solver.Result{}, solver.ErrNoPathFound
	}}
}

func heuristics() []solver.Solver {
	return []solver.Solver{aco.New(), genetic.New(), qlearning.New(), annealing.New()}
}

func TestCompare_FourSolversOnDiamond(t *testing.T) {
	rep, err := compare.Compare(context.Background(), solvertest.DiamondProblem(), heuristics(),
		compare.WithRuns(5), compare.WithWorkers(3), compare.WithReference(true))
	require.NoError(t, err)

	assert.NotEmpty(t, rep.ID)
	assert.Len(t, rep.Records, 20)
	require.NotNil(t, rep.Reference)
	assert.True(t, rep.Reference.Found)
	assert.InDelta(t, fixture.DiamondLowerCost, rep.Reference.Cost, 1e-9)

	names := []string{"aco", "ga", "qlearning", "sa"}
	require.Len(t, rep.Summaries, 4)
	for i, s := range rep.Summaries {
		assert.Equal(t, names[i], s.Solver)
		assert.Equal(t, 5, s.Successes, s.Solver)
		assert.Equal(t, []string{"0", "2", "3"}, s.BestPath, s.Solver)
		assert.InDelta(t, 0, s.BestGap, 1e-9, s.Solver)
		assert.InDelta(t, fixture.DiamondLowerCost, s.MeanCost, 1e-9, s.Solver)
	}
}

func TestCompare_SeedsPerRunIndex(t *testing.T) {
	var seen [2][]int64
	mk := func(name string) *stub {
		return &stub{name: name, fn: func(_ context.Context, p solver.Problem, seed int64) (solver.Result, error) {
			return solver.Result{Path: []string{p.Source, p.Destination}, Seed: seed}, nil
		}}
	}
	rep, err := compare.Compare(context.Background(), solvertest.DiamondProblem(),
		[]solver.Solver{mk("a"), mk("b")}, compare.WithRuns(6), compare.WithBaseSeed(7))
	require.NoError(t, err)

	for k, name := range []string{"a", "b"} {
		for _, rec := range rep.RecordsOf(name) {
			seen[k] = append(seen[k], rec.Seed)
		}
	}
	assert.Equal(t, seen[0], seen[1], "same seed for the same run index")
	distinct := map[int64]bool{}
	for r, s := range seen[0] {
		assert.Equal(t, solver.DeriveSeed(7, uint64(r)), s)
		distinct[s] = true
	}
	assert.Len(t, distinct, 6, "runs use different seeds")
}

func TestCompare_SpreadAcrossSeeds(t *testing.T) {
	// one annealing step from a random route: the route is the seed's draw
	weak := annealing.New(annealing.WithStart(annealing.RandomStart), annealing.WithIterations(1))
	rep, err := compare.Compare(context.Background(), solvertest.LadderProblem(), []solver.Solver{weak},
		compare.WithRuns(10))
	require.NoError(t, err)
	s, ok := rep.Summary("sa")
	require.True(t, ok)
	assert.Equal(t, 10, s.Successes)
	assert.Greater(t, s.DistinctPaths, 1)
	assert.Greater(t, s.StdDevCost, 0.0)
}

func TestCompare_SurvivesFailingSolver(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	bad := failing("broken")

	rep, err := compare.Compare(context.Background(), solvertest.DiamondProblem(),
		[]solver.Solver{bad, annealing.New()}, compare.WithLogger(logger))
	require.NoError(t, err)
	assert.EqualValues(t, 5, bad.calls.Load())

	s, _ := rep.Summary("broken")
	assert.True(t, s.NoSolution)
	assert.Equal(t, map[string]int{compare.ReasonNoPath: 5}, s.Reasons)
	for _, rec := range rep.RecordsOf("broken") {
		assert.ErrorIs(t, rec.Err(), solver.ErrNoPathFound)
	}

	good, _ := rep.Summary("sa")
	assert.Equal(t, 5, good.Successes)

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Message == "no solution found" && e.Data["solver"] == "broken" {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestCompare_HopLimitBelowShortestRoute(t *testing.T) {
	// every diamond route has two links
	short := aco.New(aco.WithMaxHops(1))
	rep, err := compare.Compare(context.Background(), solvertest.DiamondProblem(),
		[]solver.Solver{short, annealing.New()}, compare.WithReference(true))
	require.NoError(t, err)

	failed, ok := rep.Summary("aco")
	require.True(t, ok)
	assert.True(t, failed.NoSolution)
	assert.Zero(t, failed.Successes)
	assert.Equal(t, map[string]int{compare.ReasonNoPath: 5}, failed.Reasons)

	good, ok := rep.Summary("sa")
	require.True(t, ok)
	assert.False(t, good.NoSolution)
	assert.Equal(t, 5, good.Successes)
	assert.Equal(t, []string{"0", "2", "3"}, good.BestPath)
	assert.InDelta(t, fixture.DiamondLowerCost, good.MeanCost, 1e-9)
	assert.InDelta(t, fixture.DiamondLowerCost, good.MedianCost, 1e-9)
	assert.InDelta(t, 0, good.StdDevCost, 1e-9)
	assert.InDelta(t, 0, good.BestGap, 1e-9)
}

func TestCompare_PanicAndTimeout(t *testing.T) {
	panicky := &stub{name: "panicky", fn: func(context.Context, solver.Problem, int64) (solver.Result, error) {
		panic("boom")
	}}
	slow := &stub{name: "slow", fn: func(ctx context.Context, _ solver.Problem, _ int64) (solver.Result, error) {
		<-ctx.Done()
		return solver.Result{}, ctx.Err()
	}}

	rep, err := compare.Compare(context.Background(), solvertest.DiamondProblem(),
		[]solver.Solver{panicky, slow}, compare.WithRunTimeout(20*time.Millisecond))
	require.NoError(t, err)

	for _, rec := range rep.RecordsOf("panicky") {
		assert.Equal(t, compare.StatusFail, rec.Status)
		assert.Equal(t, compare.ReasonPanic, rec.Reason)
		assert.ErrorIs(t, rec.Err(), compare.ErrRunPanic)
	}
	for _, rec := range rep.RecordsOf("slow") {
		assert.Equal(t, compare.ReasonTimeout, rec.Reason)
		assert.ErrorIs(t, rec.Err(), compare.ErrRunTimeout)
		assert.ErrorIs(t, rec.Err(), context.DeadlineExceeded)
	}
}

func TestCompare_ValidatesBeforeRunning(t *testing.T) {
	counted := failing("counted")
	solvers := []solver.Solver{counted}
	ctx := context.Background()

	_, err := compare.Compare(ctx, solvertest.DiamondProblem(), solvers, compare.WithRuns(4))
	assert.ErrorIs(t, err, compare.ErrTooFewRuns)

	p := solvertest.DiamondProblem()
	p.Destination = "nowhere"
	_, err = compare.Compare(ctx, p, solvers)
	assert.ErrorIs(t, err, core.ErrInvalidGraph)

	p = solvertest.DiamondProblem()
	p.Destination = p.Source
	_, err = compare.Compare(ctx, p, solvers)
	assert.ErrorIs(t, err, solver.ErrSameEndpoints)

	_, err = compare.Compare(ctx, solvertest.DiamondProblem(), nil)
	assert.ErrorIs(t, err, compare.ErrNoSolvers)

	_, err = compare.Compare(ctx, solvertest.DiamondProblem(), []solver.Solver{counted, failing("counted")})
	assert.ErrorIs(t, err, compare.ErrDuplicateSolver)

	assert.Zero(t, counted.calls.Load(), "no run may start")
}

func TestCompare_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := compare.Compare(ctx, solvertest.DiamondProblem(), heuristics())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompare_HostInfoAndUnreachableReference(t *testing.T) {
	p := solvertest.DiamondProblem()
	p.Source, p.Destination = "3", "0"
	rep, err := compare.Compare(context.Background(), p, []solver.Solver{annealing.New()},
		compare.WithReference(true), compare.WithHostInfo(true), compare.WithScenario("reverse"))
	require.NoError(t, err)
	assert.Equal(t, "reverse", rep.Scenario)
	require.NotNil(t, rep.Host)
	require.NotNil(t, rep.Reference)
	assert.False(t, rep.Reference.Found)

	s, _ := rep.Summary("sa")
	assert.True(t, s.NoSolution)
	assert.False(t, s.HasGap)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { compare.WithWorkers(0) })
	assert.Panics(t, func() { compare.WithRunTimeout(-time.Second) })
	assert.Panics(t, func() { compare.WithLogger(nil) })
}
