package solver

import (
	"fmt"
	"time"

	"github.com/katalvlaran/qosroute/qos"
)

// Finish turns the best index route of a run into a Result.
//
// The route is re-checked as a simple source→destination route and scored
// by qos.Evaluate, so Result.Cost never depends on a solver's internal
// bookkeeping. An empty route yields ErrNoPathFound.
func (n *Network) Finish(name string, seed int64, best []int, started time.Time, iterations int) (Result, error) {
	if len(best) == 0 {
		return Result{}, fmt.Errorf("%s: %w", name, ErrNoPathFound)
	}
	p := n.problem
	path := n.IDs(best)
	if err := qos.ValidateSimplePath(n.graph, path, p.Source, p.Destination); err != nil {
		return Result{}, fmt.Errorf("%s: %w", name, err)
	}
	m, err := qos.Evaluate(n.graph, path, p.Weights)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", name, err)
	}

	return Result{
		Solver:     name,
		Seed:       seed,
		Path:       path,
		Cost:       m.Cost,
		Metrics:    m,
		Iterations: iterations,
		Elapsed:    time.Since(started),
	}, nil
}

// Canceled wraps a context error with the solver name and progress.
func Canceled(name string, iteration int, err error) error {
	return fmt.Errorf("%s: stopped at iteration %d: %w", name, iteration, err)
}
