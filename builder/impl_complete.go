// SPDX-License-Identifier: MIT
// Package: fgraph/builder
//
// impl_complete.go - Complete(n) and CompleteBipartite(n1, n2).
//
// On directed graphs every pair is linked in both directions.

package builder

import "github.com/katalvlaran/fgraph/core"

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	minCompleteNodes        = 1
	minPartition            = 1
)

// Complete returns a Constructor that appends the complete graph K_n.
// Pairs are emitted as (i, j) with i < j in lexicographic order.
// Complexity: O(n) nodes + O(n^2) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) (*core.Graph[string], error) {
		if n < minCompleteNodes {
			return nil, tooFew(methodComplete, "n", n, minCompleteNodes)
		}
		values, err := makeValues(methodComplete, n, cfg.idFn)
		if err != nil {
			return nil, err
		}
		b := appendBlock(g, values)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := b.connectBoth(methodComplete, i, j); err != nil {
					return nil, err
				}
			}
		}

		return b.g, nil
	}
}

// CompleteBipartite returns a Constructor that appends K_{n1,n2}. Left values
// are leftPrefix+"0".., right values rightPrefix+"0"..; every left node is
// linked to every right node (and back, on directed graphs).
// Complexity: O(n1+n2) nodes + O(n1*n2) edges.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) (*core.Graph[string], error) {
		if n1 < minPartition {
			return nil, tooFew(methodCompleteBipartite, "n1", n1, minPartition)
		}
		if n2 < minPartition {
			return nil, tooFew(methodCompleteBipartite, "n2", n2, minPartition)
		}
		left, err := makeValues(methodCompleteBipartite, n1, SymbolNumberIDFn(cfg.leftPrefix))
		if err != nil {
			return nil, err
		}
		right, err := makeValues(methodCompleteBipartite, n2, SymbolNumberIDFn(cfg.rightPrefix))
		if err != nil {
			return nil, err
		}
		b := appendBlock(g, append(left, right...))
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := b.connectBoth(methodCompleteBipartite, i, n1+j); err != nil {
					return nil, err
				}
			}
		}

		return b.g, nil
	}
}
