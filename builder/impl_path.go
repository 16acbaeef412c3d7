// SPDX-License-Identifier: MIT
// Package: fgraph/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   - Path: n >= 2; edges (i-1) -> i for i=1..n-1.
//   - Cycle: n >= 3; edges i -> (i+1)%n for i=0..n-1.
//   - Values via cfg.idFn in ascending local index.
//
// Complexity: O(n) nodes + O(n) edges, each step copying the snapshot.

package builder

import "github.com/katalvlaran/fgraph/core"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that appends a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) (*core.Graph[string], error) {
		if n < minPathNodes {
			return nil, tooFew(methodPath, "n", n, minPathNodes)
		}
		values, err := makeValues(methodPath, n, cfg.idFn)
		if err != nil {
			return nil, err
		}
		b := appendBlock(g, values)
		for i := 1; i < n; i++ {
			if err := b.connect(methodPath, i-1, i); err != nil {
				return nil, err
			}
		}

		return b.g, nil
	}
}

// Cycle returns a Constructor that appends a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) (*core.Graph[string], error) {
		if n < minCycleNodes {
			return nil, tooFew(methodCycle, "n", n, minCycleNodes)
		}
		values, err := makeValues(methodCycle, n, cfg.idFn)
		if err != nil {
			return nil, err
		}
		b := appendBlock(g, values)
		for i := 0; i < n; i++ {
			if err := b.connect(methodCycle, i, (i+1)%n); err != nil {
				return nil, err
			}
		}

		return b.g, nil
	}
}
