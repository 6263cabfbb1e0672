package qlearning_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/qosroute/internal/fixture"
	"github.com/katalvlaran/qosroute/internal/solvertest"
	"github.com/katalvlaran/qosroute/qlearning"
	"github.com/katalvlaran/qosroute/qos"
	"github.com/katalvlaran/qosroute/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolverContract(t *testing.T) {
	solvertest.Run(t, func(maxHops int) solver.Solver {
		return qlearning.New(qlearning.WithMaxHops(maxHops))
	}, solvertest.GreedyMayDeadEnd())
}

func TestDefaults(t *testing.T) {
	o := qlearning.New().Options()
	assert.Equal(t, 500, o.Episodes)
	assert.Equal(t, 0.1, o.LearningRate)
	assert.Equal(t, 0.9, o.Discount)
	assert.Equal(t, 1.0, o.Epsilon)
	assert.Equal(t, 0.01, o.EpsilonMin)
	assert.Equal(t, 0.995, o.EpsilonDecay)
	assert.Equal(t, "qlearning", qlearning.New().Name())
}

func TestOptions_Panic(t *testing.T) {
	for name, opt := range map[string]qlearning.Option{
		"episodes":    qlearning.WithEpisodes(0),
		"alpha zero":  qlearning.WithLearningRate(0),
		"alpha above": qlearning.WithLearningRate(1.2),
		"gamma":       qlearning.WithDiscount(-0.1),
		"eps start":   qlearning.WithExploration(1.5, 0.1, 0.9),
		"eps floor":   qlearning.WithExploration(0.5, 0.6, 0.9),
		"eps decay":   qlearning.WithExploration(1, 0.1, 0),
		"penalties":   qlearning.WithPenalties(-1, 0),
		"hops":        qlearning.WithMaxHops(-1),
	} {
		assert.Panics(t, func() { qlearning.New(opt) }, name)
	}
}

func TestTrap_FindsReliableRoute(t *testing.T) {
	p := solver.Problem{Graph: fixture.Trap(), Source: "s", Destination: "t", Weights: fixture.TrapWeights}
	res, err := qlearning.New().Solve(context.Background(), p, 6)
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "b", "t"}, res.Path)
	assert.InDelta(t, fixture.TrapSafeCost, res.Cost, 1e-9)
	assert.Equal(t, 500, res.Iterations)
}

func TestGreedyOnly_StillLearnsDiamond(t *testing.T) {
	// with ε = 0 every episode is greedy; optimistic zero initialization
	// still makes the untried link look best until it has been tried
	s := qlearning.New(qlearning.WithExploration(0, 0, 1), qlearning.WithEpisodes(300))
	res, err := s.Solve(context.Background(), solvertest.DiamondProblem(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "2", "3"}, res.Path)
}

func TestUndirectedChain_NeverReturnsLoops(t *testing.T) {
	g := fixture.Ladder(2)
	p := solver.Problem{Graph: g, Source: "a0", Destination: "b1", Weights: qos.DefaultWeights()}
	res, err := qlearning.New(qlearning.WithEpisodes(50)).Solve(context.Background(), p, 2)
	require.NoError(t, err)
	require.NoError(t, qos.ValidateSimplePath(g, res.Path, "a0", "b1"))
}
