// Package manifest reads and writes graph manifests: small YAML, JSON or TOML
// documents listing node values and edges between their positions.
//
//	directed: false
//	nodes: [Foo, Bar, Baz]
//	edges:
//	  - {from: 0, to: 2}
//
// Positions in edges are the identities the nodes receive when the manifest is
// built, so a manifest round-trips a graph exactly (creation stamps aside).
// Values need not be unique; Resolve picks the lowest identity holding a value.
package manifest
