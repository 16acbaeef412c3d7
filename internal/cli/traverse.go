package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/fgraph/bfs"
	"github.com/katalvlaran/fgraph/core"
	"github.com/katalvlaran/fgraph/dfs"
)

// traverseOpts holds the flags shared by bfs and dfs.
type traverseOpts struct {
	source string // value of the start node
	query  string // value of the node to stop at; empty walks the whole component
	legacy bool   // bfs only: identity-ordered chain
}

func (o *traverseOpts) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.source, "source", "s", "", "value of the start node (required)")
	cmd.Flags().StringVarP(&o.query, "query", "q", "", "stop after the node with this value")
	_ = cmd.MarkFlagRequired("source")
}

// endpoints resolves the source node and, when set, the query node.
func (o *traverseOpts) endpoints(g *core.Graph[string]) (src, query core.Node[string], hasQuery bool, err error) {
	if src, err = resolveFlag(g, "source", o.source); err != nil {
		return src, query, false, err
	}
	if o.query == "" {
		return src, query, false, nil
	}
	query, err = resolveFlag(g, "query", o.query)
	return src, query, err == nil, err
}

// visitLogger logs each visited node at debug level.
func visitLogger(log *zap.Logger, algo string) func(core.Node[string], int) error {
	return func(n core.Node[string], depth int) error {
		log.Debug(algo+": visit", zap.Int("id", n.ID), zap.String("value", n.Value), zap.Int("depth", depth))
		return nil
	}
}

func newBFSCmd() *cobra.Command {
	var opts traverseOpts

	cmd := &cobra.Command{
		Use:   "bfs [file]",
		Short: "Flatten a graph breadth-first into a chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			src, query, hasQuery, err := opts.endpoints(g)
			if err != nil {
				return err
			}

			var res *core.Graph[string]
			if opts.legacy {
				if hasQuery {
					logger(cmd).Warn("--query is ignored with --legacy")
				}
				res, err = bfs.BFS(g, src)
			} else {
				bopts := []bfs.Option[string]{bfs.WithOnVisit(visitLogger(logger(cmd), "bfs"))}
				if hasQuery {
					bopts = append(bopts, bfs.WithQuery(query))
				}
				res, err = bfs.FlatMap(g, src, bopts...)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), res.Describe())
			return err
		},
	}
	opts.bind(cmd)
	cmd.Flags().BoolVar(&opts.legacy, "legacy", false, "chain reachable nodes by identity instead of discovery order (deprecated)")

	return cmd
}

func newDFSCmd() *cobra.Command {
	var opts traverseOpts

	cmd := &cobra.Command{
		Use:   "dfs [file]",
		Short: "Flatten a graph depth-first into a chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			src, query, hasQuery, err := opts.endpoints(g)
			if err != nil {
				return err
			}

			dopts := []dfs.Option[string]{dfs.WithOnVisit(visitLogger(logger(cmd), "dfs"))}
			if hasQuery {
				dopts = append(dopts, dfs.WithQuery(query))
			}
			res, err := dfs.FlatMap(g, src, dopts...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), res.Describe())
			return err
		},
	}
	opts.bind(cmd)

	return cmd
}
