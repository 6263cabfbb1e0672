// SPDX-License-Identifier: MIT
// Package: qosroute/builder
//
// impl_grid.go - Grid(rows, cols), a 4-neighbourhood mesh.
//
// Vertex IDs use the fixed scheme "r,c" (row-major), not cfg.idFn. For each
// cell the right link is emitted before the bottom one; directed graphs also
// get the reverse arc with the same attributes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qosroute/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the vertex ID Grid uses for cell (r, c).
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid returns a Constructor that builds a rows×cols mesh.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(GridID(r, c)); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, GridID(r, c), err)
				}
			}
		}

		link := func(u, v string) error {
			a := cfg.attrFn(cfg.rng)
			if err := addLink(g, u, v, a, methodGrid); err != nil {
				return err
			}
			if g.Directed() {
				return addLink(g, v, u, a, methodGrid)
			}

			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := link(u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
