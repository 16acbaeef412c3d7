// SPDX-License-Identifier: MIT
// Package: fgraph/builder
//
// impl_star.go - Star(n) and Wheel(n).
//
// Contract:
//   - The hub holds CenterValue and sits at local index 0.
//   - Star: n >= 2; leaves idFn(0..n-2) at local 1..n-1, spokes hub -> leaf.
//   - Wheel: n >= 4; rim is a cycle over the n-1 leaves, then the spokes.

package builder

import "github.com/katalvlaran/fgraph/core"

// CenterValue is the value of the hub node of Star and Wheel.
const CenterValue = "Center"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor that appends a star with one hub and n-1 leaves.
// Complexity: O(n) nodes + O(n-1) edges.
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) (*core.Graph[string], error) {
		if n < minStarNodes {
			return nil, tooFew(methodStar, "n", n, minStarNodes)
		}
		leaves, err := makeValues(methodStar, n-1, cfg.idFn)
		if err != nil {
			return nil, err
		}
		b := appendBlock(g, append([]string{CenterValue}, leaves...))
		for i := 1; i < n; i++ {
			if err := b.connect(methodStar, 0, i); err != nil {
				return nil, err
			}
		}

		return b.g, nil
	}
}

// Wheel returns a Constructor that appends W_n: a cycle of n-1 rim nodes plus a hub.
// Complexity: O(n) nodes + O(2n-2) edges.
func Wheel(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) (*core.Graph[string], error) {
		if n < minWheelNodes {
			return nil, tooFew(methodWheel, "n", n, minWheelNodes)
		}
		leaves, err := makeValues(methodWheel, n-1, cfg.idFn)
		if err != nil {
			return nil, err
		}
		b := appendBlock(g, append([]string{CenterValue}, leaves...))
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err := b.connect(methodWheel, 1+i, 1+(i+1)%rim); err != nil {
				return nil, err
			}
		}
		for i := 1; i < n; i++ {
			if err := b.connect(methodWheel, 0, i); err != nil {
				return nil, err
			}
		}

		return b.g, nil
	}
}
