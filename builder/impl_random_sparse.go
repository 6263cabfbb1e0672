// SPDX-License-Identifier: MIT
// Package: qosroute/builder
//
// impl_random_sparse.go - RandomSparse(n, p), the Erdős–Rényi G(n,p) model.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for p ∈ {0,1}.
//   - Undirected: every unordered pair {i,j}, i<j, is a link with probability p.
//   - Directed: every ordered pair (i,j), i≠j, independently.
//   - Each accepted pair draws its attributes from cfg.attrFn right after
//     its Bernoulli trial.
//
// Determinism: vertex order i asc; trial order i asc then j asc.
// Complexity: O(n²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qosroute/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor sampling G(n, p) with generated link
// attributes.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addVertices(g, n, cfg.idFn, methodRandomSparse)
		if err != nil {
			return err
		}

		var (
			i, j     int
			directed = g.Directed()
			rng      = cfg.rng
		)
		for i = 0; i < n; i++ {
			j = i + 1
			if directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j {
					continue
				}
				if rng.Float64() >= p {
					continue
				}
				if err = addLink(g, ids[i], ids[j], cfg.attrFn(rng), methodRandomSparse); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// addVertices inserts idFn(0..n-1) and returns the IDs.
func addVertices(g *core.Graph, n int, idFn IDFn, method string) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addLink inserts u-v with attributes a.
func addLink(g *core.Graph, u, v string, a core.Attributes, method string) error {
	if _, err := g.AddEdge(u, v, a); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w: %w", method, u, v, ErrConstructFailed, err)
	}

	return nil
}
