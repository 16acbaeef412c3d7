package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/fgraph/core"
	"github.com/katalvlaran/fgraph/manifest"
)

// loadGraph reads the manifest at path and builds it with the command's logger attached.
func loadGraph(cmd *cobra.Command, path string) (*core.Graph[string], error) {
	log := logger(cmd)

	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	g, err := m.Build(core.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("manifest loaded",
		zap.String("path", path), zap.Int("nodes", g.NodeCount()), zap.Int("edges", g.EdgeCount()),
		zap.Bool("directed", g.Directed()))

	return g, nil
}

// resolveFlag looks up the node holding value; flag names the option for error messages.
func resolveFlag(g *core.Graph[string], flag, value string) (core.Node[string], error) {
	n, err := manifest.Resolve(g, value)
	if err != nil {
		return n, fmt.Errorf("--%s: %w", flag, err)
	}
	return n, nil
}
