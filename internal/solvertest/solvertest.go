// Package solvertest checks the behaviour every solver.Solver must share.
package solvertest

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/qosroute/builder"
	"github.com/katalvlaran/qosroute/core"
	"github.com/katalvlaran/qosroute/dfs"
	"github.com/katalvlaran/qosroute/internal/fixture"
	"github.com/katalvlaran/qosroute/qos"
	"github.com/katalvlaran/qosroute/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory builds the solver under test with the given hop limit (0 = none).
type Factory func(maxHops int) solver.Solver

// Option adjusts the shared checks to a solver family.
type Option func(*suite)

type suite struct {
	mayDeadEnd bool
}

// GreedyMayDeadEnd marks solvers that read their final route greedily off a
// learned table. That read can stop at a dead end although a route exists,
// so the checks on feasible instances demand a route from at least one of
// several seeds instead of from every seed.
func GreedyMayDeadEnd() Option {
	return func(s *suite) { s.mayDeadEnd = true }
}

// Run executes the shared contract checks.
func Run(t *testing.T, newSolver Factory, opts ...Option) {
	t.Helper()
	var cfg suite
	for _, opt := range opts {
		opt(&cfg)
	}
	t.Run("Diamond", func(t *testing.T) { diamond(t, newSolver) })
	t.Run("SinglePath", func(t *testing.T) { singlePath(t, newSolver) })
	t.Run("HopLimitBoundary", func(t *testing.T) { hopLimit(t, newSolver) })
	t.Run("Unreachable", func(t *testing.T) { unreachable(t, newSolver) })
	t.Run("ConstructionErrors", func(t *testing.T) { construction(t, newSolver) })
	t.Run("SameSeedSameRoute", func(t *testing.T) { determinism(t, newSolver) })
	t.Run("Canceled", func(t *testing.T) { canceled(t, newSolver) })
	t.Run("ValidRoutesOnLadder", func(t *testing.T) { ladder(t, newSolver) })
	t.Run("NeverBelowExhaustiveOptimum", func(t *testing.T) { exhaustive(t, newSolver, cfg) })
	t.Run("HopLimitOnLadder", func(t *testing.T) { ladderHops(t, newSolver, cfg) })
}

// Exhaustive returns the optimum of p among routes of at most maxHops links
// (0 = no limit) by enumerating every simple route, ranked like
// solver.BetterResult. ok is false when no route exists.
func Exhaustive(t *testing.T, p solver.Problem, maxHops int) (best solver.Result, ok bool) {
	t.Helper()
	depth := -1
	if maxHops > 0 {
		depth = maxHops
	}
	_, err := dfs.SimplePaths(p.Graph, p.Source, p.Destination, func(path []string) error {
		cost, err := qos.Cost(p.Graph, path, p.Weights)
		if err != nil {
			return err
		}
		cand := solver.Result{Path: append([]string(nil), path...), Cost: cost}
		if !ok || solver.BetterResult(cand, best) {
			best, ok = cand, true
		}
		return nil
	}, dfs.WithMaxDepth(depth), dfs.WithDemand(p.Demand))
	require.NoError(t, err)

	return best, ok
}

// RandomProblem is a connected random network of n nodes with a demand that
// rules out part of the links.
func RandomProblem(t *testing.T, n int, seed int64) solver.Problem {
	t.Helper()
	g, err := builder.Connected(n, 0.35, 20, nil, builder.WithSeed(seed))
	require.NoError(t, err)

	return solver.Problem{
		Graph:       g,
		Source:      "0",
		Destination: strconv.Itoa(n - 1),
		Weights:     qos.DefaultWeights(),
		Demand:      300,
	}
}

// DiamondProblem is the canonical four-node instance.
func DiamondProblem() solver.Problem {
	return solver.Problem{Graph: fixture.Diamond(), Source: "0", Destination: "3", Weights: fixture.DiamondWeights}
}

// LadderProblem is an instance with many simple routes.
func LadderProblem() solver.Problem {
	return solver.Problem{Graph: fixture.Ladder(8), Source: "a0", Destination: "b7", Weights: qos.DefaultWeights()}
}

func diamond(t *testing.T, newSolver Factory) {
	s := newSolver(0)
	for seed := int64(1); seed <= 5; seed++ {
		res, err := s.Solve(context.Background(), DiamondProblem(), seed)
		require.NoError(t, err)
		assert.Equal(t, []string{"0", "2", "3"}, res.Path, "seed %d", seed)
		assert.InDelta(t, fixture.DiamondLowerCost, res.Cost, 1e-9)
		assert.Equal(t, s.Name(), res.Solver)
		assert.Equal(t, seed, res.Seed)
	}
}

func singlePath(t *testing.T, newSolver Factory) {
	p := solver.Problem{Graph: fixture.Chain(6), Source: "0", Destination: "5", Weights: qos.DefaultWeights()}
	res, err := newSolver(0).Solve(context.Background(), p, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5"}, res.Path)

	want, err := qos.Cost(p.Graph, res.Path, p.Weights)
	require.NoError(t, err)
	assert.InDelta(t, want, res.Cost, 1e-12)

	// dead-end spurs hang off every vertex of the only route
	comb := solver.Problem{Graph: fixture.Comb(10), Source: "c0", Destination: "c9", Weights: qos.DefaultWeights()}
	res, err = newSolver(0).Solve(context.Background(), comb, 3)
	require.NoError(t, err)
	assert.Equal(t, fixture.CombRoute(10), res.Path)
}

func hopLimit(t *testing.T, newSolver Factory) {
	p := solver.Problem{Graph: fixture.Chain(6), Source: "0", Destination: "5", Weights: qos.DefaultWeights()}

	res, err := newSolver(5).Solve(context.Background(), p, 11)
	require.NoError(t, err, "limit equal to route length")
	assert.Len(t, res.Path, 6)

	_, err = newSolver(4).Solve(context.Background(), p, 11)
	assert.ErrorIs(t, err, solver.ErrNoPathFound, "limit one below route length")
}

func unreachable(t *testing.T, newSolver Factory) {
	p := DiamondProblem()
	p.Source, p.Destination = "3", "0"
	_, err := newSolver(0).Solve(context.Background(), p, 1)
	assert.ErrorIs(t, err, solver.ErrNoPathFound)

	g := fixture.Diamond()
	require.NoError(t, g.AddVertex("island"))
	p = DiamondProblem()
	p.Graph, p.Destination = g, "island"
	_, err = newSolver(0).Solve(context.Background(), p, 1)
	assert.ErrorIs(t, err, solver.ErrNoPathFound)
}

func construction(t *testing.T, newSolver Factory) {
	s := newSolver(0)
	p := DiamondProblem()
	p.Weights = qos.Weights{}
	_, err := s.Solve(context.Background(), p, 1)
	assert.ErrorIs(t, err, qos.ErrInvalidWeights)

	p = DiamondProblem()
	p.Source = "missing"
	_, err = s.Solve(context.Background(), p, 1)
	assert.ErrorIs(t, err, core.ErrInvalidGraph)

	p = DiamondProblem()
	p.Destination = p.Source
	_, err = s.Solve(context.Background(), p, 1)
	assert.ErrorIs(t, err, solver.ErrSameEndpoints)
}

func determinism(t *testing.T, newSolver Factory) {
	s := newSolver(0)
	a, err := s.Solve(context.Background(), LadderProblem(), 99)
	require.NoError(t, err)
	b, err := s.Solve(context.Background(), LadderProblem(), 99)
	require.NoError(t, err)
	assert.Equal(t, a.Path, b.Path)
	assert.Equal(t, a.Cost, b.Cost)
}

func canceled(t *testing.T, newSolver Factory) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newSolver(0).Solve(ctx, LadderProblem(), 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func ladder(t *testing.T, newSolver Factory) {
	s := newSolver(0)
	p := LadderProblem()
	for seed := int64(1); seed <= 8; seed++ {
		res, err := s.Solve(context.Background(), p, seed)
		require.NoError(t, err)
		require.NoError(t, qos.ValidateSimplePath(p.Graph, res.Path, p.Source, p.Destination), strings.Join(res.Path, "-"))
		want, err := qos.Cost(p.Graph, res.Path, p.Weights)
		require.NoError(t, err)
		assert.InDelta(t, want, res.Cost, 1e-9)
	}
}

func exhaustive(t *testing.T, newSolver Factory, cfg suite) {
	s := newSolver(0)
	var feasible, found int
	for seed := int64(1); seed <= 4; seed++ {
		p := RandomProblem(t, 9, seed)
		opt, ok := Exhaustive(t, p, 0)
		res, err := s.Solve(context.Background(), p, seed)
		if !ok {
			assert.ErrorIs(t, err, solver.ErrNoPathFound, "seed %d", seed)
			continue
		}
		feasible++
		if cfg.mayDeadEnd && errors.Is(err, solver.ErrNoPathFound) {
			continue
		}
		require.NoError(t, err, "seed %d: a route exists", seed)
		found++
		assert.GreaterOrEqual(t, res.Cost, opt.Cost-1e-9, "seed %d", seed)
		for i := 1; i < len(res.Path); i++ {
			e, err := p.Graph.Edge(res.Path[i-1], res.Path[i])
			require.NoError(t, err)
			assert.True(t, e.Admits(p.Demand), "link %s-%s below demand", e.From, e.To)
		}
	}
	if feasible > 0 {
		assert.Positive(t, found, "no route on any of %d feasible instances", feasible)
	}
}

func ladderHops(t *testing.T, newSolver Factory, cfg suite) {
	p := LadderProblem()
	_, ok := Exhaustive(t, p, 7)
	require.False(t, ok, "a0 to b7 needs 8 links")
	opt, ok := Exhaustive(t, p, 9)
	require.True(t, ok)

	var found int
	for seed := int64(1); seed <= 6; seed++ {
		res, err := newSolver(9).Solve(context.Background(), p, seed)
		if cfg.mayDeadEnd && errors.Is(err, solver.ErrNoPathFound) {
			continue
		}
		require.NoError(t, err, "seed %d: a route within 9 links exists", seed)
		found++
		assert.LessOrEqual(t, len(res.Path)-1, 9)
		assert.GreaterOrEqual(t, res.Cost, opt.Cost-1e-9)
	}
	assert.Positive(t, found)

	_, err := newSolver(7).Solve(context.Background(), p, 5)
	assert.ErrorIs(t, err, solver.ErrNoPathFound)
}
