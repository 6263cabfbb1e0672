package solver_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/qosroute/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fmtPath(p []string) string { return strings.Join(p, "-") }

func timeZero() time.Time { return time.Now() }

func TestNewRand_ZeroSeedPolicy(t *testing.T) {
	assert.Equal(t, solver.NewRand(0).Int63(), solver.NewRand(1).Int63())
	assert.Equal(t, solver.NewRand(42).Int63(), solver.NewRand(42).Int63())
}

func TestDeriveSeed(t *testing.T) {
	seen := map[int64]struct{}{}
	for r := uint64(0); r < 100; r++ {
		s := solver.DeriveSeed(42, r)
		assert.Equal(t, s, solver.DeriveSeed(42, r))
		seen[s] = struct{}{}
	}
	assert.Len(t, seen, 100)
	assert.NotEqual(t, solver.DeriveSeed(1, 0), solver.DeriveSeed(2, 0))
}

func TestRoulette(t *testing.T) {
	rng := solver.NewRand(3)
	assert.Equal(t, -1, solver.Roulette(rng, nil))

	counts := make([]int, 3)
	for i := 0; i < 3000; i++ {
		counts[solver.Roulette(rng, []float64{0, 1, 3})]++
	}
	assert.Zero(t, counts[0])
	assert.Greater(t, counts[2], counts[1])

	for i := 0; i < 20; i++ {
		k := solver.Roulette(rng, []float64{0, 0})
		assert.Contains(t, []int{0, 1}, k)
	}
}

type namedSolver string

func (n namedSolver) Name() string { return string(n) }
func (n namedSolver) Solve(context.Context, solver.Problem, int64) (solver.Result, error) {
	return solver.Result{}, solver.ErrNoPathFound
}

func TestRegistry(t *testing.T) {
	r, err := solver.NewRegistry(namedSolver("sa"), namedSolver("aco"))
	require.NoError(t, err)
	assert.Equal(t, []string{"aco", "sa"}, r.List())

	assert.Error(t, r.Register(namedSolver("aco")))
	_, err = r.Get("ga")
	assert.Error(t, err)

	sel, err := r.Select("sa")
	require.NoError(t, err)
	require.Len(t, sel, 1)
	assert.Equal(t, "sa", sel[0].Name())

	all, err := r.Select()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = solver.NewRegistry(namedSolver("x"), namedSolver("x"))
	assert.Error(t, err)
}
