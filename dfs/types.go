// Package dfs defines types and options for depth-first enumeration of
// simple paths, including cancellation, depth limiting and link filtering.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/qosroute/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to SimplePaths.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVertexNotFound indicates that an endpoint does not exist in the graph.
	ErrVertexNotFound = errors.New("dfs: vertex not found")

	// ErrStop may be returned by a Visit to end the enumeration early.
	// SimplePaths then returns nil.
	ErrStop = errors.New("dfs: stop")
)

// Visit receives each simple path found. The slice is reused between calls;
// copy it to keep it. A non-nil error other than ErrStop aborts SimplePaths
// with that error.
type Visit func(path []string) error

// Option configures optional behavior of SimplePaths.
type Option func(*Options)

// Options holds configurable parameters for path enumeration.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if non-negative, limits paths to that many links.
	// Default is -1 (no limit).
	MaxDepth int

	// FilterEdge, if non-nil, is called for each link before it is followed.
	// Return false to skip it.
	FilterEdge func(e *core.Edge) bool

	// SkippedEdges counts links rejected by FilterEdge.
	SkippedEdges int
}

// DefaultOptions returns Options with a background context, no depth limit
// and no filter.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context checked before every expansion.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits paths to limit links; a negative limit removes it.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterEdge installs fn as the link filter.
func WithFilterEdge(fn func(e *core.Edge) bool) Option {
	return func(o *Options) {
		o.FilterEdge = fn
	}
}

// WithDemand keeps only links that can carry demand units of bandwidth.
func WithDemand(demand float64) Option {
	return WithFilterEdge(func(e *core.Edge) bool { return e.Admits(demand) })
}

// Stats summarizes one enumeration.
type Stats struct {
	// Paths is the number of paths passed to Visit.
	Paths int

	// Expanded is the number of vertices pushed onto the path.
	Expanded int

	// SkippedEdges mirrors Options.SkippedEdges.
	SkippedEdges int
}
