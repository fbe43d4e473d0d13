package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dastralib/dastra/list"
)

func newJosephusCmd() *cobra.Command {
	var m int

	cmd := &cobra.Command{
		Use:   "josephus <n>",
		Short: "Solve the Josephus ring for n people counting to m",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var n int
			if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}
			order := list.Josephus(n, m)
			if order == nil {
				return fmt.Errorf("josephus needs n > 0 and m > 0, got n=%d m=%d", n, m)
			}

			parts := make([]string, len(order))
			for i, p := range order {
				parts[i] = fmt.Sprint(p)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, header("Josephus ring"))
			fmt.Fprintf(out, "elimination order: %s\n", strings.Join(parts, ", "))
			fmt.Fprintf(out, "survivor: %s\n",
				accentStyle.Render(parts[len(parts)-1]))

			return nil
		},
	}

	cmd.Flags().IntVarP(&m, "count", "m", 3, "counting interval")

	return cmd
}
