// SPDX-License-Identifier: MIT
// Package: fgraph/builder
//
// api.go - public entry point of the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, folds cons in order.
//   - Every constructor appends its own block of nodes after the ones already present,
//     so composing constructors yields a disjoint union.
//   - Determinism: same inputs/options/seed and constructor order => identical graphs.
//   - Never panics at runtime; option constructors panic on meaningless input.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fgraph/core"
)

// Constructor derives a new snapshot from g using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters before touching g and return sentinel errors.
//   - Append nodes starting at g.NodeCount() and only connect nodes they appended.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph[string], cfg builderConfig) (*core.Graph[string], error)

// BuildGraph creates an empty graph with options gopts, resolves the builder
// configuration from bopts and folds all constructors over it in order.
// The first constructor error is wrapped with "BuildGraph: %w" and returned;
// earlier snapshots are simply dropped.
//
// Complexity: O(len(bopts)) for options plus the sum of constructor costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g := core.New[string](gopts...)
	cfg := newBuilderConfig(bopts...)

	var err error
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if g, err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
