// SPDX-License-Identifier: MIT
// Package: qosroute/builder
//
// api.go - public entry points for the builder package.
//
// Contract:
//   - BuildGraph(gopts, bopts, cons...) creates g, resolves cfg, runs cons in order.
//   - Connected(...) resamples RandomSparse until the result is connected.
//   - Determinism: same inputs, options, seed and constructor order give
//     identical graphs, attributes included.
//   - Constructors return sentinel errors; only option constructors panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qosroute/bfs"
	"github.com/katalvlaran/qosroute/core"
)

const methodConnected = "Connected"

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// The first constructor error is returned wrapped as "BuildGraph: %w".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Connected samples RandomSparse(n, p) graphs until one is connected (every
// vertex reachable from the first, see bfs.Connected) and returns it.
//
// All attempts draw from the same configured RNG stream, so the accepted
// graph is a pure function of the seed. After attempts failures the result
// is ErrConstructFailed.
//
// Complexity: O(attempts · (n² + E)).
func Connected(n int, p float64, attempts int, gopts []core.GraphOption, bopts ...BuilderOption) (*core.Graph, error) {
	if attempts < 1 {
		return nil, fmt.Errorf("%s: attempts=%d: %w", methodConnected, attempts, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(bopts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodConnected, ErrNeedRandSource)
	}

	sample := RandomSparse(n, p)
	var (
		g   *core.Graph
		ok  bool
		err error
	)
	for a := 0; a < attempts; a++ {
		g = core.NewGraph(gopts...)
		if err = sample(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodConnected, err)
		}
		if ok, err = bfs.Connected(g); err != nil {
			return nil, fmt.Errorf("%s: %w", methodConnected, err)
		}
		if ok {
			return g, nil
		}
	}

	return nil, fmt.Errorf("%s: n=%d p=%g: no connected sample in %d attempts: %w",
		methodConnected, n, p, attempts, ErrConstructFailed)
}
