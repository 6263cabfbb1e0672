// SPDX-License-Identifier: MIT
// Package: qosroute/builder
//
// impl_complete.go - Complete(n), the complete graph K_n.
//
// Each unordered pair {i,j}, i<j, is emitted once in lexicographic order;
// directed graphs also get j→i with its own attributes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qosroute/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n (n ≥ 1).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, n, cfg.idFn, methodComplete)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addLink(g, ids[i], ids[j], cfg.attrFn(cfg.rng), methodComplete); err != nil {
					return err
				}
				if g.Directed() {
					if err = addLink(g, ids[j], ids[i], cfg.attrFn(cfg.rng), methodComplete); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
