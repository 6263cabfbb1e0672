// SPDX-License-Identifier: MIT
// Package: qosroute/builder
//
// impl_path.go - Path(n): links (i-1)→i for i=1..n-1, IDs via cfg.idFn.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qosroute/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n (n ≥ 2).
// Attributes are drawn per link in emission order.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, n, cfg.idFn, methodPath)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addLink(g, ids[i-1], ids[i], cfg.attrFn(cfg.rng), methodPath); err != nil {
				return err
			}
		}

		return nil
	}
}
