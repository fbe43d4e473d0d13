package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion records the build metadata shown by --version; main
// injects the values via ldflags.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// Execute builds the command tree and runs it. The --verbose flag
// selects the log level; the configured logger rides the command
// context into every subcommand.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "dastra",
		Short:        "dastra demonstrates classic data structures and algorithms",
		Long: `dastra exercises the dastra library on concrete input: sorting
algorithm comparisons, KMP pattern matching, Huffman coding, graph
analysis, hash table probing, infix evaluation and the Josephus ring.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("dastra %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSortCmd())
	root.AddCommand(newMatchCmd())
	root.AddCommand(newHuffmanCmd())
	root.AddCommand(newGraphCmd())
	root.AddCommand(newHashCmd())
	root.AddCommand(newEvalCmd())
	root.AddCommand(newJosephusCmd())

	return root.ExecuteContext(ctx)
}
