// File: network.go
// Role: Read-only compiled form of a Problem that solvers search.
// Determinism:
//   - Vertex indices follow core.Vertices() order (sorted IDs), arcs follow
//     sorted neighbor order, so identical problems compile identically.
// Concurrency:
//   - Immutable after Compile; safe to share between goroutines.

package solver

import (
	"fmt"

	"github.com/katalvlaran/qosroute/bfs"
	"github.com/katalvlaran/qosroute/core"
	"github.com/katalvlaran/qosroute/qos"
)

// Arc is one usable link leaving a vertex, with its precomputed EdgeCost.
type Arc struct {
	To   int
	Cost float64
}

// ArcKey identifies a directed arc by vertex indices. Solvers key their
// sparse state (pheromone, Q-values) by it.
type ArcKey struct {
	From, To int
}

// Network is a Problem compiled to dense indices.
//
// Links that cannot carry Problem.Demand are absent. Arc costs are
// qos.EdgeCost under Problem.Weights, so Σ arc costs of a route equals
// qos.Cost of that route.
type Network struct {
	problem Problem
	graph   *core.Graph // demand view of problem.Graph

	ids   []string
	index map[string]int
	arcs  [][]Arc
	cost  []map[int]float64
	hops  []int // hop distance to destination, -1 if unreachable

	src, dst int
}

// Compile validates p and builds its Network.
//
// Steps:
//  1. p.Validate().
//  2. Apply the bandwidth demand filter (core.DemandView).
//  3. Index vertices, precompute arc costs.
//  4. Reverse BFS from the destination for hop distances.
//
// Complexity: O(V + E log d).
func Compile(p Problem) (*Network, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	view := core.DemandView(p.Graph, p.Demand)

	ids := view.Vertices()
	n := &Network{
		problem: p,
		graph:   view,
		ids:     ids,
		index:   make(map[string]int, len(ids)),
		arcs:    make([][]Arc, len(ids)),
		cost:    make([]map[int]float64, len(ids)),
		hops:    make([]int, len(ids)),
	}
	var (
		i   int
		id  string
		nbs []*core.Edge
		e   *core.Edge
		err error
	)
	for i, id = range ids {
		n.index[id] = i
	}
	for i, id = range ids {
		if nbs, err = view.Neighbors(id); err != nil {
			return nil, fmt.Errorf("solver: compile %q: %w", id, err)
		}
		n.arcs[i] = make([]Arc, 0, len(nbs))
		n.cost[i] = make(map[int]float64, len(nbs))
		for _, e = range nbs {
			to := n.index[e.Other(id)]
			c := qos.EdgeCost(e.Attributes, p.Weights)
			n.arcs[i] = append(n.arcs[i], Arc{To: to, Cost: c})
			n.cost[i][to] = c
		}
	}

	dist, err := bfs.HopDistances(view, p.Destination)
	if err != nil {
		return nil, fmt.Errorf("solver: hop distances: %w", err)
	}
	for i, id = range ids {
		if d, ok := dist[id]; ok {
			n.hops[i] = d
		} else {
			n.hops[i] = -1
		}
	}
	n.src = n.index[p.Source]
	n.dst = n.index[p.Destination]

	return n, nil
}

// Problem returns the problem the network was compiled from.
func (n *Network) Problem() Problem { return n.problem }

// Graph returns the demand-filtered graph.
func (n *Network) Graph() *core.Graph { return n.graph }

// Len returns the number of vertices.
func (n *Network) Len() int { return len(n.ids) }

// Source returns the source index.
func (n *Network) Source() int { return n.src }

// Destination returns the destination index.
func (n *Network) Destination() int { return n.dst }

// ID returns the vertex ID of index i.
func (n *Network) ID(i int) string { return n.ids[i] }

// Index returns the index of vertex id.
func (n *Network) Index(id string) (int, bool) {
	i, ok := n.index[id]
	return i, ok
}

// Arcs returns the arcs leaving u. The slice must not be modified.
func (n *Network) Arcs(u int) []Arc { return n.arcs[u] }

// ArcCost returns the cost of u→v and whether that arc exists.
func (n *Network) ArcCost(u, v int) (float64, bool) {
	c, ok := n.cost[u][v]
	return c, ok
}

// HopsToDestination returns the minimum number of links from u to the
// destination, or -1 when the destination is unreachable from u.
func (n *Network) HopsToDestination(u int) int { return n.hops[u] }

// HopLimit resolves a configured hop limit: values ≤ 0 or above |V|-1 mean
// |V|-1, the longest possible simple route.
func (n *Network) HopLimit(maxHops int) int {
	if limit := len(n.ids) - 1; maxHops <= 0 || maxHops > limit {
		return limit
	}

	return maxHops
}

// Feasible reports whether some route can exist within maxHops links.
func (n *Network) Feasible(maxHops int) bool {
	h := n.hops[n.src]
	return h >= 0 && h <= maxHops
}

// PathCost sums arc costs along path; ok is false if a hop is not an arc.
func (n *Network) PathCost(path []int) (float64, bool) {
	var total float64
	for i := 1; i < len(path); i++ {
		c, ok := n.cost[path[i-1]][path[i]]
		if !ok {
			return 0, false
		}
		total += c
	}

	return total, true
}

// Valid reports whether path is a simple source→destination route of at
// most maxHops links.
func (n *Network) Valid(path []int, maxHops int) bool {
	if len(path) < 2 || len(path)-1 > maxHops {
		return false
	}
	if path[0] != n.src || path[len(path)-1] != n.dst {
		return false
	}
	seen := make([]bool, len(n.ids))
	for i, v := range path {
		if seen[v] {
			return false
		}
		seen[v] = true
		if i > 0 {
			if _, ok := n.cost[path[i-1]][v]; !ok {
				return false
			}
		}
	}

	return true
}

// IDs maps an index path to vertex IDs.
func (n *Network) IDs(path []int) []string {
	out := make([]string, len(path))
	for i, v := range path {
		out[i] = n.ids[v]
	}

	return out
}
