// Package builder assembles deterministic graph fixtures over core.Graph[string].
//
// A Constructor is a pure step from one snapshot to the next: it appends a
// block of nodes after those already present and links only the nodes it
// appended. BuildGraph folds constructors in order, so
//
//	BuildGraph(nil, nil, Path(3), Cycle(4))
//
// yields a 7-node graph whose identities 0..2 form a path and 3..6 a cycle.
//
// Topologies:
//
//   - Path(n), Cycle(n)
//   - Star(n), Wheel(n) with a hub valued CenterValue
//   - Complete(n), CompleteBipartite(n1, n2)
//   - Grid(rows, cols) valued "r,c"
//   - RandomSparse(n, p), reproducible with WithSeed
//
// Node values come from an IDFn (WithIDScheme): DefaultIDFn, SymbolIDFn,
// ExcelColumnIDFn, AlphanumericIDFn, HexIDFn or SymbolNumberIDFn(prefix).
// LookupScheme resolves the registered ones by name. A scheme reports indices
// outside its domain (SymbolIDFn stops at "Z") with ErrValueRange, and the
// constructor fails with ErrConstructFailed before appending anything.
// Values need not be unique across blocks; core keeps duplicates apart by
// identity.
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed, ErrValueRange, ErrUnknownScheme)
// wrapped with the constructor name.
// Option constructors panic on nil arguments.
package builder
