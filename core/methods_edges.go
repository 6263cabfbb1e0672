// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edge/GetEdge/Edges/EdgeCount,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock (after a muVert read lock).
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge inserts the link from→to with the given attributes and returns its ID.
//
// Steps:
//  1. Validate IDs, reject self-loops, validate attributes.
//  2. Under muVert read lock, require both endpoints to exist.
//  3. Under muEdgeAdj write lock, look for an existing link on the pair:
//     identical attributes ⇒ return its ID; different ⇒ ErrConflictingEdge.
//  4. Generate eid atomically, store the Edge and link both indexes
//     (mirrored when the graph is undirected).
//
// Every failure wraps ErrInvalidGraph together with the specific sentinel.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, a Attributes) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", fmt.Errorf("%w: %w", ErrInvalidGraph, ErrEmptyVertexID)
	}
	if from == to {
		return "", fmt.Errorf("%w: %w: %s", ErrInvalidGraph, ErrLoopNotAllowed, from)
	}
	if err := a.Validate(); err != nil {
		return "", fmt.Errorf("edge %s→%s: %w", from, to, err)
	}

	// 2) Endpoints must already be registered
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[from]; !ok {
		return "", fmt.Errorf("%w: %w: edge %s→%s: %s", ErrInvalidGraph, ErrVertexNotFound, from, to, from)
	}
	if _, ok := g.vertices[to]; !ok {
		return "", fmt.Errorf("%w: %w: edge %s→%s: %s", ErrInvalidGraph, ErrVertexNotFound, from, to, to)
	}

	// 3) Duplicate handling under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if eid, ok := g.adjacency[from][to]; ok {
		if g.edges[eid].Attributes == a {
			return eid, nil
		}

		return "", fmt.Errorf("%w: %w: %s→%s", ErrInvalidGraph, ErrConflictingEdge, from, to)
	}

	// 4) Store and link
	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Attributes: a, Directed: g.directed}
	g.adjacency[from][to] = eid
	g.incoming[to][from] = eid
	if !g.directed {
		g.adjacency[to][from] = eid
		g.incoming[from][to] = eid
	}

	return eid, nil
}

// HasEdge reports whether the link from→to is traversable.
// Undirected links are mirrored, so HasEdge works both ways for them.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Edge returns the link traversed when moving from→to, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only; for undirected links its
// From/To may be the reverse of the requested pair.
func (g *Graph) Edge(from, to string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacency[from][to]
	if !ok {
		return nil, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}

	return g.edges[eid], nil
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by Edge.ID (numeric suffix order).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out
}

// EdgeCount returns the number of links (a mirrored undirected link counts once).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID produces "e<N>" using an atomic counter.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeIDLess orders "e2" before "e10".
func edgeIDLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}
