package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fgraph/builder"
	"github.com/katalvlaran/fgraph/core"
	"github.com/katalvlaran/fgraph/manifest"
)

// genOpts holds the flags shared by every gen subcommand.
type genOpts struct {
	directed bool
	ids      string
	seed     int64
	format   string
	output   string
}

func newGenCmd() *cobra.Command {
	opts := genOpts{ids: builder.SchemeDecimal, seed: 1, format: string(manifest.FormatYAML)}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a topology and write it as a manifest",
	}
	cmd.PersistentFlags().BoolVar(&opts.directed, "directed", false, "generate a directed graph")
	cmd.PersistentFlags().StringVar(&opts.ids, "ids", opts.ids, "node value scheme: "+strings.Join(builder.SchemeNames(), ", "))
	cmd.PersistentFlags().Int64Var(&opts.seed, "seed", opts.seed, "seed for random topologies")
	cmd.PersistentFlags().StringVarP(&opts.format, "format", "f", opts.format, "manifest format: yaml, json, toml")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "write to this path (format from extension) instead of stdout")

	sized := func(use, short string, ctor func(int) builder.Constructor) *cobra.Command {
		return &cobra.Command{
			Use:   use + " N",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := atoi("N", args[0])
				if err != nil {
					return err
				}
				return opts.run(cmd, ctor(n))
			},
		}
	}
	cmd.AddCommand(
		sized("path", "Path P_N", builder.Path),
		sized("cycle", "Cycle C_N", builder.Cycle),
		sized("star", "Star with N-1 leaves", builder.Star),
		sized("wheel", "Wheel W_N", builder.Wheel),
		sized("complete", "Complete graph K_N", builder.Complete),
		&cobra.Command{
			Use:   "grid ROWS COLS",
			Short: "ROWS x COLS lattice",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := atoi("ROWS", args[0])
				if err != nil {
					return err
				}
				c, err := atoi("COLS", args[1])
				if err != nil {
					return err
				}
				return opts.run(cmd, builder.Grid(r, c))
			},
		},
		&cobra.Command{
			Use:   "random N P",
			Short: "Random graph with edge probability P",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := atoi("N", args[0])
				if err != nil {
					return err
				}
				p, err := strconv.ParseFloat(args[1], 64)
				if err != nil {
					return fmt.Errorf("P: %w", err)
				}
				return opts.run(cmd, builder.RandomSparse(n, p))
			},
		},
	)

	return cmd
}

// run builds the topology and writes it out.
func (o *genOpts) run(cmd *cobra.Command, ctor builder.Constructor) error {
	idFn, err := builder.LookupScheme(o.ids)
	if err != nil {
		return fmt.Errorf("--ids: %w", err)
	}
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(o.directed), core.WithLogger(logger(cmd))},
		[]builder.BuilderOption{builder.WithIDScheme(idFn), builder.WithSeed(o.seed)},
		ctor,
	)
	if err != nil {
		return err
	}

	m := manifest.FromGraph(g)
	if o.output != "" {
		return writeManifest(o.output, m)
	}
	data, err := m.Encode(manifest.Format(o.format))
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func atoi(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}
