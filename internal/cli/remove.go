package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/fgraph/manifest"
)

func newRemoveCmd() *cobra.Command {
	var node, out string

	cmd := &cobra.Command{
		Use:   "remove [file]",
		Short: "Remove a node and print the renumbered graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			n, err := resolveFlag(g, "node", node)
			if err != nil {
				return err
			}
			res, err := g.Remove(n)
			if err != nil {
				return err
			}

			if out != "" {
				if err := writeManifest(out, manifest.FromGraph(res)); err != nil {
					return err
				}
				logger(cmd).Info("manifest written", zap.String("path", out))
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), res.Describe())
			return err
		},
	}
	cmd.Flags().StringVarP(&node, "node", "n", "", "value of the node to remove (required)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "also write the result as a manifest to this path")
	_ = cmd.MarkFlagRequired("node")

	return cmd
}

// writeManifest encodes m in the format implied by path and writes it.
func writeManifest(path string, m *manifest.Manifest) error {
	format, err := manifest.FormatOf(path)
	if err != nil {
		return err
	}
	data, err := m.Encode(format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
