// File: methods_clone.go
// Role: Cloning and filtered views.
// Determinism:
//   - Clone/Filter preserve edge IDs and carry nextEdgeID, so later AddEdge
//     calls on the copy continue the same textual sequence.
// Concurrency:
//   - Read locks on the source; the result is a fresh graph instance.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(WithDirected(g.directed))
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	var id string
	for id = range g.vertices {
		clone.vertices[id] = &Vertex{ID: id}
		clone.adjacency[id] = make(map[string]string)
		clone.incoming[id] = make(map[string]string)
	}

	return clone
}

// Clone returns a deep copy of the Graph.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return g.Filter(nil)
}

// Filter returns a copy of g that keeps every vertex but only the edges for
// which keep returns true. A nil keep copies all edges. g is not mutated.
//
// Complexity: O(V + E).
func (g *Graph) Filter(keep func(*Edge) bool) *Graph {
	out := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var (
		eid   string
		e, ne *Edge
	)
	for eid, e = range g.edges {
		if keep != nil && !keep(e) {
			continue
		}
		ne = &Edge{ID: eid, From: e.From, To: e.To, Attributes: e.Attributes, Directed: e.Directed}
		out.edges[eid] = ne
		out.adjacency[e.From][e.To] = eid
		out.incoming[e.To][e.From] = eid
		if !e.Directed {
			out.adjacency[e.To][e.From] = eid
			out.incoming[e.From][e.To] = eid
		}
	}

	return out
}

// DemandView returns a copy of g without the links that cannot carry demand
// units of bandwidth. Links with Bandwidth == 0 are unconstrained and kept.
// A non-positive demand returns g itself.
func DemandView(g *Graph, demand float64) *Graph {
	if demand <= 0 {
		return g
	}

	return g.Filter(func(e *Edge) bool { return e.Admits(demand) })
}
