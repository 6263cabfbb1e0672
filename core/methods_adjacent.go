// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, InNeighborIDs).
// Determinism:
//   - Neighbors() sorts by neighbor ID asc.
//   - NeighborIDs()/InNeighborIDs() return IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.

package core

import "sort"

// Neighbors returns the links leaving id, ordered by the neighbor they reach.
//
// Directed graphs yield outgoing links only; undirected graphs yield every
// incident link once.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	ids, err := g.NeighborIDs(id)
	if err != nil {
		return nil, err
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(ids))
	var nb string
	for _, nb = range ids {
		if eid, ok := g.adjacency[id][nb]; ok {
			out = append(out, g.edges[eid])
		}
	}

	return out, nil
}

// NeighborIDs returns the IDs reachable from id over one link, sorted.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	return g.sortedBucket(id, false)
}

// InNeighborIDs returns the IDs that reach id over one link, sorted.
// For undirected graphs it equals NeighborIDs.
func (g *Graph) InNeighborIDs(id string) ([]string, error) {
	return g.sortedBucket(id, true)
}

// sortedBucket snapshots adjacency[id] (or incoming[id]) as a sorted slice.
func (g *Graph) sortedBucket(id string, reverse bool) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	bucket := g.adjacency[id]
	if reverse {
		bucket = g.incoming[id]
	}
	out := make([]string, 0, len(bucket))
	var nb string
	for nb = range bucket {
		out = append(out, nb)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of links leaving id.
func (g *Graph) Degree(id string) (int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id]), nil
}
