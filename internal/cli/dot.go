package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/fgraph/render"
)

func newDotCmd() *cobra.Command {
	var (
		svgPath string
		opts    render.Options
	)

	cmd := &cobra.Command{
		Use:   "dot [file]",
		Short: "Print a graph as Graphviz DOT or render it to SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			dot := render.ToDOT(g, opts)
			if svgPath == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), dot)
				return err
			}

			svg, err := render.RenderSVG(cmd.Context(), dot)
			if err != nil {
				return err
			}
			if err := os.WriteFile(svgPath, svg, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", svgPath, err)
			}
			logger(cmd).Info("svg written", zap.String("path", svgPath), zap.Int("bytes", len(svg)))
			return nil
		},
	}
	cmd.Flags().StringVar(&svgPath, "svg", "", "render to this SVG file instead of printing DOT")
	cmd.Flags().StringVar(&opts.Name, "name", "", "graph name in the DOT header")
	cmd.Flags().StringVar(&opts.RankDir, "rankdir", "", "layout direction (TB, LR, BT, RL)")

	return cmd
}
