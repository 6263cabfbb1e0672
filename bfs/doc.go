// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links, and visit order.
//
// Routing code uses it for two things:
//
//   - HopDistances(g, dst): a reverse search from the destination giving,
//     for every vertex, the minimum number of links still needed to reach
//     dst. Solvers use it to prune partial routes that can no longer arrive
//     within their hop budget.
//   - Connected / Reachable: topology sanity checks for generated networks
//     and for experiment setup.
//
// Determinism
//
//	core.NeighborIDs returns sorted IDs and BFS enqueues in that order, so the
//	visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log d)  (neighbor snapshots are sorted)
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx):       cancellation.
//   - WithMaxDepth(d):        stop exploring beyond depth d (>0).
//   - WithReverse():          walk incoming links.
//   - WithFilterNeighbor(fn): skip links for which fn(curr, nbr) == false.
//   - WithOnVisit(fn):        hook during visit; returning an error aborts.
//
// Errors
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors.
//   - Wrapped OnVisit errors and context errors.
package bfs
