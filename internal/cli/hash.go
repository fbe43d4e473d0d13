package cli

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/dastralib/dastra/hashtable"
)

func newHashCmd() *cobra.Command {
	var capacity int
	var quadratic bool

	cmd := &cobra.Command{
		Use:   "hash <key...>",
		Short: "Insert keys into an open-addressing table and show the probes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			probing := hashtable.Linear
			if quadratic {
				probing = hashtable.Quadratic
			}
			ht, err := hashtable.NewOpen[string](capacity, probing)
			if err != nil {
				return err
			}

			tbl := newTable()
			tbl.AppendHeader(table.Row{"key", "home slot", "load factor"})
			for _, a := range args {
				key, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("parse %q: %w", a, err)
				}
				if err := ht.Set(key, a); err != nil {
					return err
				}
				tbl.AppendRow(table.Row{
					key,
					hashtable.ModPrime(key, ht.Cap()),
					fmt.Sprintf("%.2f", ht.LoadFactor()),
				})
			}
			logger.Debug("table filled", "len", ht.Len(), "cap", ht.Cap())

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, header("Open addressing"))
			fmt.Fprintln(out, tbl.Render())
			fmt.Fprintf(out, "%d keys in %d slots, load factor %.2f\n",
				ht.Len(), ht.Cap(), ht.LoadFactor())

			return nil
		},
	}

	cmd.Flags().IntVarP(&capacity, "capacity", "c", 13, "initial slot count (prefer a prime)")
	cmd.Flags().BoolVarP(&quadratic, "quadratic", "q", false, "use quadratic instead of linear probing")

	return cmd
}
