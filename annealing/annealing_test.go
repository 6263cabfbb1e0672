package annealing_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/qosroute/annealing"
	"github.com/katalvlaran/qosroute/internal/fixture"
	"github.com/katalvlaran/qosroute/internal/solvertest"
	"github.com/katalvlaran/qosroute/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolverContract(t *testing.T) {
	solvertest.Run(t, func(maxHops int) solver.Solver {
		return annealing.New(annealing.WithMaxHops(maxHops))
	})
}

func TestSolverContract_RandomStart(t *testing.T) {
	solvertest.Run(t, func(maxHops int) solver.Solver {
		return annealing.New(annealing.WithMaxHops(maxHops), annealing.WithStart(annealing.RandomStart))
	})
}

func TestDefaults(t *testing.T) {
	o := annealing.New().Options()
	assert.Equal(t, 5.0, o.InitialTemperature)
	assert.Equal(t, 0.995, o.Cooling)
	assert.Equal(t, 1e-6, o.MinTemperature)
	assert.Equal(t, 5000, o.Iterations)
	assert.Equal(t, annealing.MinDelayStart, o.Start)
	assert.Equal(t, "sa", annealing.New().Name())
}

func TestOptions_Panic(t *testing.T) {
	for name, opt := range map[string]annealing.Option{
		"t0":         annealing.WithTemperature(0, 0),
		"floor":      annealing.WithTemperature(1, 1),
		"cooling":    annealing.WithCooling(1),
		"iterations": annealing.WithIterations(0),
		"start":      annealing.WithStart(annealing.Start(7)),
		"hops":       annealing.WithMaxHops(-3),
	} {
		assert.Panics(t, func() { annealing.New(opt) }, name)
	}
}

func TestParseStart(t *testing.T) {
	s, err := annealing.ParseStart("random")
	require.NoError(t, err)
	assert.Equal(t, annealing.RandomStart, s)
	assert.Equal(t, "random", s.String())

	s, err = annealing.ParseStart("")
	require.NoError(t, err)
	assert.Equal(t, annealing.MinDelayStart, s)

	_, err = annealing.ParseStart("greedy")
	assert.ErrorIs(t, err, annealing.ErrInvalidOption)
}

func TestTrap_LeavesMinDelayRoute(t *testing.T) {
	// the minimum-delay start s-a-t is the expensive route under these weights
	p := solver.Problem{Graph: fixture.Trap(), Source: "s", Destination: "t", Weights: fixture.TrapWeights}
	res, err := annealing.New().Solve(context.Background(), p, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "b", "t"}, res.Path)
	assert.InDelta(t, fixture.TrapSafeCost, res.Cost, 1e-9)
}

func TestTemperatureFloor_StopsEarly(t *testing.T) {
	// 5·0.995^k drops below 1e-6 after about 3080 proposals
	res, err := annealing.New().Solve(context.Background(), solvertest.DiamondProblem(), 1)
	require.NoError(t, err)
	assert.Less(t, res.Iterations, annealing.DefaultIterations)
	assert.Greater(t, res.Iterations, 3000)
}
