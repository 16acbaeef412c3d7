// SPDX-License-Identifier: MIT
// Package: fgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w, prefixed by the constructor name.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not complete, either because
// it was nil or because a core operation rejected one of its steps.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrValueRange indicates an index outside the domain of a value scheme,
// e.g. a 27th node under SymbolIDFn.
var ErrValueRange = errors.New("builder: index outside value scheme")

// ErrUnknownScheme indicates a scheme name LookupScheme does not know.
var ErrUnknownScheme = errors.New("builder: unknown value scheme")
