package qos

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qosroute/core"
)

// EdgeCost returns the weighted contribution of one link:
//
//	w.Delay·delay + w.Reliability·(−ln r) + w.Resource·resource
//
// Links stored in a core.Graph always have r ∈ (0,1], so the result is finite
// and non-negative for valid weights.
func EdgeCost(a core.Attributes, w Weights) float64 {
	return w.Delay*a.Delay + w.Reliability*(-math.Log(a.Reliability)) + w.Resource*a.Resource
}

// Cost returns the composite QoS cost of path in g under w.
//
// Contract:
//   - path has at least one vertex; a single-vertex path costs 0.
//   - every consecutive pair is a traversable link of g.
//   - the result equals Σ EdgeCost over the path's links.
//
// Errors: ErrInvalidPath, ErrInvalidWeights.
// Complexity: O(len(path)).
func Cost(g *core.Graph, path []string, w Weights) (float64, error) {
	m, err := Evaluate(g, path, w)
	if err != nil {
		return 0, err
	}

	return m.Cost, nil
}

// Evaluate walks path once and returns its full Metrics.
//
// Steps:
//  1. Validate weights, graph and path length.
//  2. For each hop, resolve the link and reject r ≤ 0.
//  3. Accumulate sums, product and bottleneck; Cost is accumulated from
//     EdgeCost so it matches what solvers score.
func Evaluate(g *core.Graph, path []string, w Weights) (Metrics, error) {
	if err := w.Validate(); err != nil {
		return Metrics{}, err
	}
	if g == nil {
		return Metrics{}, fmt.Errorf("%w: nil graph", ErrInvalidPath)
	}
	if len(path) == 0 {
		return Metrics{}, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if len(path) == 1 && !g.HasVertex(path[0]) {
		return Metrics{}, fmt.Errorf("%w: unknown vertex %q", ErrInvalidPath, path[0])
	}

	m := Metrics{Reliability: 1}
	var (
		i   int
		e   *core.Edge
		err error
	)
	for i = 1; i < len(path); i++ {
		if e, err = g.Edge(path[i-1], path[i]); err != nil {
			return Metrics{}, fmt.Errorf("%w: hop %d: %w", ErrInvalidPath, i, err)
		}
		if !(e.Reliability > 0) {
			return Metrics{}, fmt.Errorf("%w: hop %d: reliability=%v", ErrInvalidPath, i, e.Reliability)
		}
		m.TotalDelay += e.Delay
		m.ReliabilityCost += -math.Log(e.Reliability)
		m.Reliability *= e.Reliability
		m.ResourceUsage += e.Resource
		if e.Bandwidth > 0 && (m.Bottleneck == 0 || e.Bandwidth < m.Bottleneck) {
			m.Bottleneck = e.Bandwidth
		}
		m.Cost += EdgeCost(e.Attributes, w)
		m.Hops++
	}

	return m, nil
}

// ValidateSimplePath checks that path is a usable route from src to dst:
// correct endpoints, every hop a link of g, no vertex repeated.
func ValidateSimplePath(g *core.Graph, path []string, src, dst string) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if path[0] != src || path[len(path)-1] != dst {
		return fmt.Errorf("%w: endpoints %s…%s, want %s…%s", ErrInvalidPath, path[0], path[len(path)-1], src, dst)
	}
	seen := make(map[string]struct{}, len(path))
	for i, v := range path {
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: vertex %s repeated at position %d", ErrInvalidPath, v, i)
		}
		seen[v] = struct{}{}
		if i > 0 && !g.HasEdge(path[i-1], v) {
			return fmt.Errorf("%w: hop %d: no link %s→%s", ErrInvalidPath, i, path[i-1], v)
		}
	}

	return nil
}
