// Package cli implements the fgraph command-line interface.
//
// Every command reads a graph manifest (YAML, JSON or TOML, chosen by file
// extension) and prints to the command's output stream:
//   - describe: dump nodes and edges
//   - bfs, dfs: flatten the graph from --source, optionally stopping at --query
//   - remove: drop a node and print the renumbered graph
//   - dot: emit Graphviz DOT, or SVG with --svg
//   - gen: write a generated topology as a manifest
//
// Nodes are named on the command line by value; when several nodes share a
// value the lowest identity is used.
//
// # Logging
//
// Diagnostics go to stderr through a zap logger carried on the command context.
// --verbose (-v) lowers the level from info to debug, which also surfaces the
// graph's own debug records.
package cli
