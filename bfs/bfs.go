package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/qosroute/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from startID.
// Link attributes are ignored; every link counts as one hop.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound,
// ErrNeighbors, context errors, or a wrapped OnVisit error.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// HopDistances returns the hop distance from every vertex that can reach
// target to target. Vertices that cannot reach it are absent.
func HopDistances(g *core.Graph, target string) (map[string]int, error) {
	res, err := BFS(g, target, WithReverse())
	if err != nil {
		return nil, err
	}

	return res.Depth, nil
}

// Reachable reports whether dst can be reached from src.
func Reachable(g *core.Graph, src, dst string) (bool, error) {
	res, err := BFS(g, src)
	if err != nil {
		return false, err
	}
	_, ok := res.Depth[dst]

	return ok, nil
}

// Connected reports whether every vertex is reachable from the first one
// (weak connectivity for undirected graphs, out-reachability for directed).
// An empty graph is connected.
func Connected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	vs := g.Vertices()
	if len(vs) == 0 {
		return true, nil
	}
	res, err := BFS(g, vs[0])
	if err != nil {
		return false, err
	}

	return len(res.Depth) == len(vs), nil
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	var (
		item queueItem
		err  error
	)
	for len(w.queue) > 0 {
		if err = w.ctx.Err(); err != nil {
			return err
		}
		item = w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err = w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err = w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors expands item in sorted neighbor order, applying the
// filter and the depth limit.
func (w *walker) enqueueNeighbors(item queueItem) error {
	var (
		neighbors []string
		err       error
	)
	if w.opts.Reverse {
		neighbors, err = w.graph.InNeighborIDs(item.id)
	} else {
		neighbors, err = w.graph.NeighborIDs(item.id)
	}
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrNeighbors, item.id, err)
	}

	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	var nbr string
	for _, nbr = range neighbors {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if _, seen := w.res.Depth[nbr]; !seen {
			w.enqueue(nbr, next, item.id)
		}
	}

	return nil
}
