package qos_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qosroute/core"
	"github.com/katalvlaran/qosroute/internal/fixture"
	"github.com/katalvlaran/qosroute/qos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestCost_Diamond(t *testing.T) {
	g := fixture.Diamond()

	upper, err := qos.Cost(g, []string{"0", "1", "3"}, fixture.DiamondWeights)
	require.NoError(t, err)
	assert.InDelta(t, fixture.DiamondUpperCost, upper, eps)

	lower, err := qos.Cost(g, []string{"0", "2", "3"}, fixture.DiamondWeights)
	require.NoError(t, err)
	assert.InDelta(t, fixture.DiamondLowerCost, lower, eps)
	assert.Less(t, lower, upper)
}

func TestCost_DeterministicAndNonNegative(t *testing.T) {
	g := fixture.Ladder(6)
	path := []string{"a0", "a1", "b1", "b2", "b3"}
	w := qos.DefaultWeights()

	first, err := qos.Cost(g, path, w)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := qos.Cost(g, path, w)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.GreaterOrEqual(t, first, 0.0)

	zero, err := qos.Cost(g, []string{"a0"}, w)
	require.NoError(t, err)
	assert.Zero(t, zero)
}

func TestCost_ScalingPreservesRanking(t *testing.T) {
	g := fixture.Diamond()
	upper := []string{"0", "1", "3"}
	lower := []string{"0", "2", "3"}

	for _, k := range []float64{0.001, 0.5, 3, 1000} {
		w := fixture.DiamondWeights.Scale(k)
		cu, err := qos.Cost(g, upper, w)
		require.NoError(t, err)
		cl, err := qos.Cost(g, lower, w)
		require.NoError(t, err)

		assert.InDelta(t, k*fixture.DiamondUpperCost, cu, 1e-9*k*10)
		assert.InDelta(t, k*fixture.DiamondLowerCost, cl, 1e-9*k*10)
		assert.Less(t, cl, cu, "k=%v", k)
	}
}

func TestCost_SumOfEdgeCosts(t *testing.T) {
	g := fixture.Trap()
	w := fixture.TrapWeights
	path := []string{"s", "b", "t"}

	var sum float64
	for i := 1; i < len(path); i++ {
		e, err := g.Edge(path[i-1], path[i])
		require.NoError(t, err)
		sum += qos.EdgeCost(e.Attributes, w)
	}
	c, err := qos.Cost(g, path, w)
	require.NoError(t, err)
	assert.InDelta(t, sum, c, eps)
	assert.InDelta(t, fixture.TrapSafeCost, c, eps)
}

func TestCost_InvalidPath(t *testing.T) {
	g := fixture.Diamond()
	w := fixture.DiamondWeights

	_, err := qos.Cost(g, nil, w)
	assert.ErrorIs(t, err, qos.ErrInvalidPath)

	_, err = qos.Cost(g, []string{"0", "3"}, w)
	assert.ErrorIs(t, err, qos.ErrInvalidPath, "0→3 is not a link")

	_, err = qos.Cost(g, []string{"3", "1"}, w)
	assert.ErrorIs(t, err, qos.ErrInvalidPath, "directed links are one-way")

	_, err = qos.Cost(g, []string{"9"}, w)
	assert.ErrorIs(t, err, qos.ErrInvalidPath)

	_, err = qos.Cost(nil, []string{"0"}, w)
	assert.ErrorIs(t, err, qos.ErrInvalidPath)
}

func TestWeights_Validate(t *testing.T) {
	assert.NoError(t, qos.DefaultWeights().Validate())
	assert.NoError(t, qos.Weights{Resource: 1}.Validate())

	for _, w := range []qos.Weights{
		{},
		{Delay: -1, Reliability: 2},
		{Delay: math.NaN(), Reliability: 1},
		{Delay: math.Inf(1)},
	} {
		assert.ErrorIs(t, w.Validate(), qos.ErrInvalidWeights, "%+v", w)
	}

	_, err := qos.Cost(fixture.Diamond(), []string{"0", "1"}, qos.Weights{})
	assert.ErrorIs(t, err, qos.ErrInvalidWeights)
}

func TestWeights_Normalized(t *testing.T) {
	n, err := qos.Weights{Delay: 2, Reliability: 1, Resource: 1}.Normalized()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, n.Delay, eps)
	assert.InDelta(t, 1.0, n.Delay+n.Reliability+n.Resource, eps)

	_, err = qos.Weights{}.Normalized()
	assert.ErrorIs(t, err, qos.ErrInvalidWeights)
}

func TestEvaluate_Breakdown(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []string{"x", "y", "z"} {
		require.NoError(t, g.AddVertex(v))
	}
	_, err := g.AddEdge("x", "y", core.Attributes{Delay: 3, Reliability: 0.9, Resource: 2, Bandwidth: 400})
	require.NoError(t, err)
	_, err = g.AddEdge("y", "z", core.Attributes{Delay: 5, Reliability: 0.8, Resource: 1, Bandwidth: 150})
	require.NoError(t, err)

	m, err := qos.Evaluate(g, []string{"x", "y", "z"}, qos.Weights{Delay: 1, Reliability: 1, Resource: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Hops)
	assert.InDelta(t, 8.0, m.TotalDelay, eps)
	assert.InDelta(t, 0.72, m.Reliability, eps)
	assert.InDelta(t, -math.Log(0.72), m.ReliabilityCost, eps)
	assert.InDelta(t, 3.0, m.ResourceUsage, eps)
	assert.InDelta(t, 150.0, m.Bottleneck, eps)
	assert.InDelta(t, 8+3-math.Log(0.72), m.Cost, 1e-9)
}

func TestValidateSimplePath(t *testing.T) {
	g := fixture.Ladder(3)
	assert.NoError(t, qos.ValidateSimplePath(g, []string{"a0", "b0", "b1"}, "a0", "b1"))
	assert.ErrorIs(t, qos.ValidateSimplePath(g, []string{"a0", "b0", "a0", "a1"}, "a0", "a1"), qos.ErrInvalidPath)
	assert.ErrorIs(t, qos.ValidateSimplePath(g, []string{"a0", "b2"}, "a0", "b2"), qos.ErrInvalidPath)
	assert.ErrorIs(t, qos.ValidateSimplePath(g, []string{"a0", "a1"}, "a0", "b1"), qos.ErrInvalidPath)
	assert.ErrorIs(t, qos.ValidateSimplePath(g, nil, "a0", "b1"), qos.ErrInvalidPath)
}
