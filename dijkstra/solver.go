package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/qosroute/solver"
)

// Name is the registry name of the exact reference solver.
const Name = "dijkstra"

// Solver adapts ShortestPath to solver.Solver. It is deterministic: the
// seed is recorded but unused.
type Solver struct{}

// New returns the reference solver.
func New() *Solver { return &Solver{} }

// Name implements solver.Solver.
func (*Solver) Name() string { return Name }

// Solve implements solver.Solver.
func (*Solver) Solve(ctx context.Context, p solver.Problem, seed int64) (solver.Result, error) {
	started := time.Now()
	net, err := solver.Compile(p)
	if err != nil {
		return solver.Result{}, err
	}
	if err = ctx.Err(); err != nil {
		return solver.Result{}, solver.Canceled(Name, 0, err)
	}

	ids, _, err := ShortestPath(net.Graph(), p.Source, p.Destination, WithWeights(p.Weights))
	if errors.Is(err, ErrUnreachable) {
		return solver.Result{}, fmt.Errorf("%s: %w: %w", Name, solver.ErrNoPathFound, err)
	}
	if err != nil {
		return solver.Result{}, fmt.Errorf("%s: %w", Name, err)
	}

	path := make([]int, len(ids))
	for i, id := range ids {
		path[i], _ = net.Index(id)
	}

	return net.Finish(Name, seed, path, started, 1)
}
