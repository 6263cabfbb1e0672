// File: dfs.go
// Role: Depth-first enumeration of simple paths.
// Determinism:
//   - core.Graph.Neighbors is sorted by neighbor ID, so paths are reported
//     in lexicographic order of their vertex sequences.
// Concurrency:
//   - Read-only on the graph; one walker per call.

package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qosroute/core"
)

// pathWalker encapsulates state during enumeration.
type pathWalker struct {
	graph *core.Graph
	to    string
	opts  Options
	visit Visit
	path  []string
	on    map[string]bool
	stats Stats
}

// SimplePaths calls visit for every simple path from → to, in lexicographic
// order of the vertex sequences. from == to yields the single path [from].
//
// Errors:
//   - ErrGraphNil: if g is nil.
//   - ErrVertexNotFound: if from or to is missing.
//   - ctx.Err(): if the context ends mid-walk.
//   - any error returned by visit, except ErrStop.
//
// Complexity: O(P·V) for P reported paths; exponential on dense graphs, so
// bound it with WithMaxDepth on anything but small inputs.
func SimplePaths(g *core.Graph, from, to string, visit Visit, opts ...Option) (Stats, error) {
	// 1. Validate input
	if g == nil {
		return Stats{}, ErrGraphNil
	}
	if !g.HasVertex(from) {
		return Stats{}, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if !g.HasVertex(to) {
		return Stats{}, fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}

	// 2. Apply options
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	w := &pathWalker{
		graph: g,
		to:    to,
		opts:  o,
		visit: visit,
		path:  make([]string, 0, g.VertexCount()),
		on:    make(map[string]bool, g.VertexCount()),
	}

	// 3. Walk; ErrStop is a normal ending
	err := w.extend(from)
	w.stats.SkippedEdges = w.opts.SkippedEdges
	if errors.Is(err, ErrStop) {
		err = nil
	}

	return w.stats, err
}

// extend pushes id, reports the path if it reached the target, otherwise
// recurses into every admissible neighbor not already on the path.
func (w *pathWalker) extend(id string) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.path = append(w.path, id)
	w.on[id] = true
	w.stats.Expanded++
	defer func() {
		w.path = w.path[:len(w.path)-1]
		delete(w.on, id)
	}()

	// 2. Target reached: simple paths end here
	if id == w.to {
		w.stats.Paths++
		return w.visit(w.path)
	}

	// 3. Depth limit
	if w.opts.MaxDepth >= 0 && len(w.path)-1 >= w.opts.MaxDepth {
		return nil
	}

	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
	}
	var e *core.Edge
	for _, e = range nbs {
		next := e.Other(id)
		if w.on[next] {
			continue
		}
		if w.opts.FilterEdge != nil && !w.opts.FilterEdge(e) {
			w.opts.SkippedEdges++
			continue
		}
		if err = w.extend(next); err != nil {
			return err
		}
	}

	return nil
}
