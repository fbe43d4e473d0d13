package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/dastralib/dastra/strmatch"
)

func newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <text> <pattern>",
		Short: "Find every occurrence of a pattern with KMP",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, pattern := args[0], args[1]
			logger := loggerFromContext(cmd.Context())

			next := strmatch.NextTable(pattern)
			logger.Debug("failure table built", "pattern", pattern, "next", next)

			positions := strmatch.FindAll(text, pattern)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, header("Pattern matches"))
			if len(positions) == 0 {
				fmt.Fprintln(out, faintStyle.Render("no occurrences"))

				return nil
			}

			tbl := newTable()
			tbl.AppendHeader(table.Row{"position", "window"})
			for _, pos := range positions {
				end := pos + len(pattern)
				tbl.AppendRow(table.Row{pos, text[pos:end]})
			}
			tbl.AppendFooter(table.Row{"total", len(positions)})
			fmt.Fprintln(out, tbl.Render())

			return nil
		},
	}
}
