// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building, querying, and cloning
// QoS networks.
//
// Errors:
//
//	ErrInvalidGraph      - umbrella for every structural violation below.
//	ErrEmptyVertexID     - vertex ID is the empty string.
//	ErrVertexNotFound    - requested vertex does not exist.
//	ErrEdgeNotFound      - requested edge does not exist.
//	ErrLoopNotAllowed    - self-loop requested.
//	ErrBadAttribute      - link attribute outside its domain.
//	ErrConflictingEdge   - same endpoints re-added with different attributes.
package core

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidGraph is wrapped by every construction error that leaves the
	// network model unusable (dangling endpoints, bad attributes, conflicts).
	ErrInvalidGraph = errors.New("core: invalid graph")

	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadAttribute indicates a link attribute outside its domain.
	ErrBadAttribute = errors.New("core: bad link attribute")

	// ErrConflictingEdge indicates a duplicate link with different attributes.
	ErrConflictingEdge = errors.New("core: conflicting duplicate edge")
)

// Vertex represents a node in the network.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string
}

// Attributes are the QoS properties of one link.
type Attributes struct {
	// Delay is the additive latency of the link (≥ 0).
	Delay float64

	// Reliability is the probability the link delivers (0 < r ≤ 1).
	Reliability float64

	// Resource is the additive resource usage of the link (≥ 0).
	Resource float64

	// Bandwidth is the available capacity (≥ 0). Zero means unconstrained.
	Bandwidth float64
}

// Validate reports whether every attribute lies in its domain.
// The returned error wraps both ErrInvalidGraph and ErrBadAttribute.
func (a Attributes) Validate() error {
	switch {
	case !finite(a.Delay) || a.Delay < 0:
		return fmt.Errorf("%w: %w: delay=%v", ErrInvalidGraph, ErrBadAttribute, a.Delay)
	case !finite(a.Reliability) || a.Reliability <= 0 || a.Reliability > 1:
		return fmt.Errorf("%w: %w: reliability=%v", ErrInvalidGraph, ErrBadAttribute, a.Reliability)
	case !finite(a.Resource) || a.Resource < 0:
		return fmt.Errorf("%w: %w: resource=%v", ErrInvalidGraph, ErrBadAttribute, a.Resource)
	case !finite(a.Bandwidth) || a.Bandwidth < 0:
		return fmt.Errorf("%w: %w: bandwidth=%v", ErrInvalidGraph, ErrBadAttribute, a.Bandwidth)
	}

	return nil
}

// Admits reports whether the link can carry a flow that needs demand units of
// bandwidth. Unconstrained links (Bandwidth == 0) admit every demand.
func (a Attributes) Admits(demand float64) bool {
	return demand <= 0 || a.Bandwidth == 0 || a.Bandwidth >= demand
}

// Edge represents a link between two vertices.
//
// Each Edge has a unique ID, endpoints From→To, its QoS Attributes and a
// Directed flag copied from the owning Graph at insertion time.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	Attributes

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool
}

// Other returns the endpoint opposite to id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the in-memory network model.
//
// muVert protects vertices; muEdgeAdj protects edges, adjacency and incoming.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges, adjacency, incoming

	directed bool

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	adjacency map[string]map[string]string // from → to → edge ID
	incoming  map[string]map[string]string // to → from → edge ID
}

// NewGraph creates an empty Graph. By default the Graph is undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
		incoming:  make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
