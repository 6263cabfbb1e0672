// Package dijkstra_test contains unit tests for the exact QoS router.
package dijkstra_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/qosroute/core"
	"github.com/katalvlaran/qosroute/dijkstra"
	"github.com/katalvlaran/qosroute/internal/fixture"
	"github.com/katalvlaran/qosroute/internal/solvertest"
	"github.com/katalvlaran/qosroute/qos"
	"github.com/katalvlaran/qosroute/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(fixture.Diamond())
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(fixture.Diamond(), dijkstra.Source("0"), dijkstra.WithWeights(qos.Weights{}))
	assert.ErrorIs(t, err, qos.ErrInvalidWeights)

	_, _, err = dijkstra.Dijkstra(fixture.Diamond(), dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1)(&dijkstra.Options{}) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{}) })
	assert.Panics(t, func() { dijkstra.WithDemand(-5)(&dijkstra.Options{}) })
}

// ------------------------------------------------------------------------
// 2. Correctness
// ------------------------------------------------------------------------

func TestShortestPath_Diamond(t *testing.T) {
	path, cost, err := dijkstra.ShortestPath(fixture.Diamond(), "0", "3", dijkstra.WithWeights(fixture.DiamondWeights))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "2", "3"}, path)
	assert.InDelta(t, fixture.DiamondLowerCost, cost, 1e-9)
}

func TestShortestPath_TrapVsDelay(t *testing.T) {
	g := fixture.Trap()

	path, _, err := dijkstra.ShortestPath(g, "s", "t", dijkstra.WithWeights(qos.Weights{Delay: 1}))
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "a", "t"}, path, "delay only")

	path, cost, err := dijkstra.ShortestPath(g, "s", "t", dijkstra.WithWeights(fixture.TrapWeights))
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "b", "t"}, path)
	assert.InDelta(t, fixture.TrapSafeCost, cost, 1e-9)
}

func TestShortestPath_Unreachable(t *testing.T) {
	_, _, err := dijkstra.ShortestPath(fixture.Diamond(), "3", "0")
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)

	_, _, err = dijkstra.ShortestPath(fixture.Diamond(), "0", "Z")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_DemandAndCaps(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []string{"s", "m", "t"} {
		require.NoError(t, g.AddVertex(v))
	}
	_, err := g.AddEdge("s", "t", core.Attributes{Delay: 1, Reliability: 1, Bandwidth: 10})
	require.NoError(t, err)
	_, err = g.AddEdge("s", "m", core.Attributes{Delay: 5, Reliability: 1})
	require.NoError(t, err)
	_, err = g.AddEdge("m", "t", core.Attributes{Delay: 5, Reliability: 1})
	require.NoError(t, err)
	w := dijkstra.WithWeights(qos.Weights{Delay: 1})

	path, cost, err := dijkstra.ShortestPath(g, "s", "t", w, dijkstra.WithDemand(50))
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "m", "t"}, path)
	assert.InDelta(t, 10.0, cost, 1e-12)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("s"), w, dijkstra.WithMaxDistance(4))
	require.NoError(t, err)
	assert.Nil(t, prev)
	assert.InDelta(t, 1.0, dist["t"], 1e-12)
	assert.True(t, math.IsInf(dist["m"], 1))

	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("s"), w, dijkstra.WithInfEdgeThreshold(2))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, dist["t"], 1e-12)
	assert.True(t, math.IsInf(dist["m"], 1))
}

// ------------------------------------------------------------------------
// 3. Solver adapter
// ------------------------------------------------------------------------

func TestSolver(t *testing.T) {
	s := dijkstra.New()
	assert.Equal(t, "dijkstra", s.Name())

	p := solver.Problem{Graph: fixture.Diamond(), Source: "0", Destination: "3", Weights: fixture.DiamondWeights}
	res, err := s.Solve(context.Background(), p, 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "2", "3"}, res.Path)
	assert.InDelta(t, fixture.DiamondLowerCost, res.Cost, 1e-9)

	p.Source, p.Destination = "3", "0"
	_, err = s.Solve(context.Background(), p, 7)
	assert.ErrorIs(t, err, solver.ErrNoPathFound)

	p.Destination = "3"
	_, err = s.Solve(context.Background(), p, 7)
	assert.ErrorIs(t, err, solver.ErrSameEndpoints)
}

func TestSolver_MatchesExhaustiveOptimum(t *testing.T) {
	s := dijkstra.New()
	for seed := int64(1); seed <= 10; seed++ {
		p := solvertest.RandomProblem(t, 10, seed)
		opt, ok := solvertest.Exhaustive(t, p, 0)
		res, err := s.Solve(context.Background(), p, seed)
		if !ok {
			assert.ErrorIs(t, err, solver.ErrNoPathFound, "seed %d", seed)
			continue
		}
		require.NoError(t, err, "seed %d", seed)
		assert.InDelta(t, opt.Cost, res.Cost, 1e-9, "seed %d", seed)
	}
}
