package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
// main calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// Execute runs the fgraph CLI on os.Args with the standard streams.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Command output goes to out and
// logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "fgraph",
		Short:         "fgraph inspects and traverses persistent graphs",
		Long:          `fgraph loads graph manifests, prints them, flattens them breadth- or depth-first, removes nodes and renders them with Graphviz.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := zapcore.InfoLevel
			if verbose {
				level = zapcore.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(errOut, level)))
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			_ = loggerFromContext(cmd.Context()).Sync()
		},
	}

	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate(fmt.Sprintf("fgraph %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newDescribeCmd())
	root.AddCommand(newBFSCmd())
	root.AddCommand(newDFSCmd())
	root.AddCommand(newRemoveCmd())
	root.AddCommand(newDotCmd())
	root.AddCommand(newGenCmd())

	return root
}

// logger returns the command's logger.
func logger(cmd *cobra.Command) *zap.Logger {
	return loggerFromContext(cmd.Context())
}
