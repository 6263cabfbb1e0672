// Package dijkstra defines core types and configuration options
// for exact minimum-cost routing under the composite QoS cost.
//
// Every link contributes qos.EdgeCost(e, w) ≥ 0 and path costs are additive,
// so label-setting search is exact for this cost model.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	– Space: O(V + E) (lazy decrease-key heap)
//
// Options:
//
//	– Source:           ID of the starting vertex.
//	– Weights:          cost preferences (default qos.DefaultWeights()).
//	– Demand:           required bandwidth; links that cannot carry it are skipped.
//	– ReturnPath:       if true, return the predecessor map.
//	– MaxDistance:      cap on explored cost.
//	– InfEdgeThreshold: links with cost ≥ threshold are impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrUnreachable     if ShortestPath finds no route.
//	– qos.ErrInvalidWeights for bad weights.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/qosroute/qos"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrUnreachable indicates the destination cannot be reached.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrBadDemand indicates a negative bandwidth demand.
	ErrBadDemand = errors.New("dijkstra: Demand must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source           string      // The ID of the source vertex
	Weights          qos.Weights // Cost preferences
	Demand           float64     // Required bandwidth (0 = none)
	ReturnPath       bool        // Whether to return the predecessor map
	MaxDistance      float64     // Maximum cost to explore
	InfEdgeThreshold float64     // Cost at or above which links are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithWeights sets the cost preferences. Validity is checked by Dijkstra.
func WithWeights(w qos.Weights) Option {
	return func(o *Options) {
		o.Weights = w
	}
}

// WithDemand skips links whose bandwidth cannot carry demand.
// Negative values panic.
func WithDemand(demand float64) Option {
	return func(o *Options) {
		if demand < 0 || math.IsNaN(demand) {
			panic(ErrBadDemand.Error())
		}
		o.Demand = demand
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum cost threshold.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats links whose cost is ≥ threshold as walls.
// Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options for the given source:
// default weights, no demand, no predecessor map, no caps.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		Weights:          qos.DefaultWeights(),
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
