package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/qosroute/core"
	"github.com/katalvlaran/qosroute/qos"
)

// Dijkstra computes minimum QoS costs from Options.Source to every vertex of g.
//
// Returns:
//
//   - dist: vertex ID → minimum cost (+Inf if unreachable).
//   - prev: predecessor map if ReturnPath (nil otherwise); prev[v] == "" for
//     the source and unreachable vertices.
//
// Validation order:
//  1. Source non-empty (ErrEmptySource).
//  2. g non-nil (ErrNilGraph).
//  3. Weights valid (qos.ErrInvalidWeights).
//  4. Source present (ErrVertexNotFound).
//
// Ties between equal-cost labels are broken by vertex ID, so the returned
// predecessor tree is deterministic.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if err := cfg.Weights.Validate(); err != nil {
		return nil, nil, err
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	// 2) Prepare state
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	r.init(vertices)

	// 3) Main loop
	if err := r.process(); err != nil {
		return nil, nil, err
	}
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the exact minimum-cost route src → dst and its cost.
func ShortestPath(g *core.Graph, src, dst string, opts ...Option) ([]string, float64, error) {
	if g != nil && !g.HasVertex(dst) {
		return nil, 0, fmt.Errorf("%w: %q", ErrVertexNotFound, dst)
	}
	opts = append(opts, Source(src), WithReturnPath())
	dist, prev, err := Dijkstra(g, opts...)
	if err != nil {
		return nil, 0, err
	}
	if math.IsInf(dist[dst], 1) {
		return nil, 0, fmt.Errorf("%w: %s→%s", ErrUnreachable, src, dst)
	}

	path := []string{dst}
	for cur := dst; cur != src; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[dst], nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// init sets dist=+Inf everywhere, dist[source]=0 and seeds the heap.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process extracts the closest unsettled vertex until the heap empties or
// the closest label exceeds MaxDistance.
func (r *runner) process() error {
	var item *nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax improves labels of u's neighbors through u.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	var (
		e       *core.Edge
		v       string
		w       float64
		newDist float64
	)
	for _, e = range neighbors {
		if !e.Admits(r.options.Demand) {
			continue
		}
		v = e.Other(u)
		w = qos.EdgeCost(e.Attributes, r.options.Weights)
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		newDist = r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its tentative cost from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
