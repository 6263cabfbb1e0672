// Package core provides the thread-safe network model used by every QoS
// routing component: vertices, attributed links, and the Graph that holds them.
//
// A Graph G = (V,E) stores each link once in an edge catalog and indexes it
// through nested maps:
//
//	adjacency[from][to] = edgeID   (outgoing)
//	incoming[to][from]  = edgeID   (reverse index, used by backward searches)
//
// Undirected links are mirrored in both indexes, so HasEdge(a,b) and
// HasEdge(b,a) agree. Self-loops and parallel links are not representable:
// a path-cost model has no use for either.
//
// Link attributes:
//
//	Delay       ≥ 0           additive latency contribution
//	Reliability ∈ (0, 1]      success probability; contributes −ln(r)
//	Resource    ≥ 0           additive resource usage
//	Bandwidth   ≥ 0           available capacity; 0 means unconstrained
//
// Attributes are validated on insertion (ErrInvalidGraph) and never change
// afterwards: the Graph exposes no attribute mutators and callers must treat
// returned *Edge values as read-only. Re-adding a link with identical
// attributes is idempotent; re-adding it with different attributes fails with
// ErrConflictingEdge.
//
// Core methods:
//
//	NewGraph(opts ...GraphOption) *Graph              // O(1)
//	AddVertex(id string) error                        // O(1), idempotent
//	AddEdge(from, to string, a Attributes) (string, error)
//	HasVertex / HasEdge / Edge / GetEdge              // O(1)
//	Vertices() []string                               // sorted
//	Edges() []*Edge                                   // sorted by ID
//	Neighbors / NeighborIDs / InNeighborIDs           // sorted
//	Clone() / Filter(keep) / DemandView(bw)           // O(V+E)
//	FromLists(nodes, edges, opts...) (*Graph, error)  // strict builder
//
// Determinism: every enumeration is sorted, edge IDs are monotonic ("e1",
// "e2", …), so two graphs built by the same call sequence are identical.
//
// Concurrency: muVert guards the vertex catalog, muEdgeAdj guards the edge
// catalog and both indexes. Lock order is always muVert → muEdgeAdj.
package core
