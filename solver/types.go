// Package solver defines the contract shared by every routing heuristic
// and the read-only compiled network they search.
package solver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/qosroute/core"
	"github.com/katalvlaran/qosroute/qos"
)

// Sentinel errors for solver execution.
var (
	// ErrNoPathFound indicates the search finished without producing any
	// valid source→destination route.
	ErrNoPathFound = errors.New("solver: no path found")

	// ErrSameEndpoints indicates source == destination.
	ErrSameEndpoints = errors.New("solver: source equals destination")

	// ErrNilGraph indicates a Problem without a graph.
	ErrNilGraph = errors.New("solver: graph is nil")

	// ErrInvalidDemand indicates a negative or non-finite bandwidth demand.
	ErrInvalidDemand = errors.New("solver: invalid bandwidth demand")
)

// Problem is one routing query. It is shared read-only by all runs.
type Problem struct {
	// Graph is the network; never mutated by solvers.
	Graph *core.Graph

	// Source and Destination are vertex IDs.
	Source      string
	Destination string

	// Weights are the cost preferences.
	Weights qos.Weights

	// Demand is the required bandwidth; links below it are unusable.
	// Zero disables the constraint.
	Demand float64
}

// Validate checks the problem before any run starts.
//
// Errors wrap core.ErrInvalidGraph (nil graph, missing endpoints),
// ErrSameEndpoints, qos.ErrInvalidWeights, or ErrInvalidDemand.
func (p Problem) Validate() error {
	if p.Graph == nil {
		return fmt.Errorf("%w: %w", core.ErrInvalidGraph, ErrNilGraph)
	}
	if !p.Graph.HasVertex(p.Source) {
		return fmt.Errorf("%w: source %q: %w", core.ErrInvalidGraph, p.Source, core.ErrVertexNotFound)
	}
	if !p.Graph.HasVertex(p.Destination) {
		return fmt.Errorf("%w: destination %q: %w", core.ErrInvalidGraph, p.Destination, core.ErrVertexNotFound)
	}
	if p.Source == p.Destination {
		return fmt.Errorf("%w: %q", ErrSameEndpoints, p.Source)
	}
	if err := p.Weights.Validate(); err != nil {
		return err
	}
	if math.IsNaN(p.Demand) || math.IsInf(p.Demand, 0) || p.Demand < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDemand, p.Demand)
	}

	return nil
}

// Result is the outcome of one successful run.
type Result struct {
	// Solver is the Name() of the producing solver.
	Solver string `json:"solver"`

	// Run is the run index assigned by the caller (harness), 0-based.
	Run int `json:"run"`

	// Seed is the seed the run was started with.
	Seed int64 `json:"seed"`

	// Path is the simple route, Source first, Destination last.
	Path []string `json:"path"`

	// Cost equals qos.Cost(Graph, Path, Weights).
	Cost float64 `json:"cost"`

	// Metrics is the per-criterion breakdown of Path.
	Metrics qos.Metrics `json:"metrics"`

	// Iterations is the number of iterations/generations/episodes executed.
	Iterations int `json:"iterations"`

	// Elapsed is the wall-clock duration of Solve.
	Elapsed time.Duration `json:"elapsed"`
}

// Solver is the capability every routing heuristic provides.
//
// Implementations must:
//   - treat Problem as read-only and keep all search state private to one call;
//   - draw all randomness from a generator seeded with seed;
//   - return ErrNoPathFound (wrapped) when no valid route was produced;
//   - return ctx.Err() (wrapped) when the context ends mid-search.
//
// A Solver value is safe for concurrent Solve calls.
type Solver interface {
	Name() string
	Solve(ctx context.Context, p Problem, seed int64) (Result, error)
}
