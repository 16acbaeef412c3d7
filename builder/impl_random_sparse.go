// SPDX-License-Identifier: MIT
// Package: fgraph/builder
//
// impl_random_sparse.go - RandomSparse(n, p), an Erdős–Rényi-like sampler.
//
// Contract:
//   - n >= 1, 0 <= p <= 1; cfg.rng required when 0 < p < 1.
//   - Undirected: unordered pairs {i<j}. Directed: ordered pairs (i != j).
//   - Pairs are tried in ascending (i, j); one rng draw per pair.
//   - Deterministic for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fgraph/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples each candidate edge
// independently with probability p.
// Complexity: O(n^2) pair trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) (*core.Graph[string], error) {
		if n < minRandomSparseVertices {
			return nil, tooFew(methodRandomSparse, "n", n, minRandomSparseVertices)
		}
		if p < probMin || p > probMax {
			return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		values, err := makeValues(methodRandomSparse, n, cfg.idFn)
		if err != nil {
			return nil, err
		}
		b := appendBlock(g, values)
		keep := func() bool {
			if cfg.rng == nil {
				return p == probMax
			}
			return cfg.rng.Float64() < p
		}
		directed := g.Directed()
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				if err := b.connect(methodRandomSparse, i, j); err != nil {
					return nil, err
				}
			}
		}

		return b.g, nil
	}
}
