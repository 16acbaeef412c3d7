// SPDX-License-Identifier: MIT
// Package: fgraph/builder
//
// impl_grid.go - Grid(rows, cols) with 4-neighborhood.
//
// Contract:
//   - rows >= 1, cols >= 1.
//   - Values are "r,c" in row-major order; cfg.idFn is not consulted.
//   - For each cell, the right neighbor is linked first, then the one below.
//
// Complexity: O(R*C) nodes + O(2*R*C) edges.

package builder

import "github.com/katalvlaran/fgraph/core"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that appends an R x C lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], _ builderConfig) (*core.Graph[string], error) {
		if rows < minGridDim {
			return nil, tooFew(methodGrid, "rows", rows, minGridDim)
		}
		if cols < minGridDim {
			return nil, tooFew(methodGrid, "cols", cols, minGridDim)
		}
		values := make([]string, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				values = append(values, gridValue(r, c))
			}
		}
		b := appendBlock(g, values)

		at := func(r, c int) int { return r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := b.connect(methodGrid, at(r, c), at(r, c+1)); err != nil {
						return nil, err
					}
				}
				if r+1 < rows {
					if err := b.connect(methodGrid, at(r, c), at(r+1, c)); err != nil {
						return nil, err
					}
				}
			}
		}

		return b.g, nil
	}
}
