package cli

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/dastralib/dastra/sorting"
)

// sortAlgos maps each display name to its implementation, in run
// order.
var sortAlgos = []struct {
	name string
	fn   func([]int)
}{
	{"insertion", sorting.Insertion[int]},
	{"shell", sorting.Shell[int]},
	{"bubble", sorting.Bubble[int]},
	{"quick", sorting.Quick[int]},
	{"selection", sorting.Selection[int]},
	{"heap", sorting.Heap[int]},
	{"merge", sorting.Merge[int]},
}

func newSortCmd() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "sort [value...]",
		Short: "Run every sorting algorithm over the same input",
		Long: `Runs each sorting algorithm over the same input and prints a
comparison table. Values may be given as arguments; without any, -n
random values are generated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			var elems []int
			if len(args) > 0 {
				for _, a := range args {
					v, err := strconv.Atoi(a)
					if err != nil {
						return fmt.Errorf("parse %q: %w", a, err)
					}
					elems = append(elems, v)
				}
			} else {
				rng := rand.New(rand.NewSource(time.Now().UnixNano()))
				elems = make([]int, n)
				for i := range elems {
					elems[i] = rng.Intn(10 * n)
				}
			}
			logger.Debug("input ready", "len", len(elems))

			want := append([]int(nil), elems...)
			sort.Ints(want)

			tbl := newTable()
			tbl.AppendHeader(table.Row{"algorithm", "elements", "elapsed", "sorted"})
			for _, algo := range sortAlgos {
				work := append([]int(nil), elems...)
				start := time.Now()
				algo.fn(work)
				elapsed := time.Since(start)

				ok := equalInts(work, want)
				if !ok {
					logger.Error("algorithm produced a wrong order", "algorithm", algo.name)
				}
				tbl.AppendRow(table.Row{
					algo.name,
					humanize.Comma(int64(len(work))),
					elapsed.Round(time.Microsecond).String(),
					ok,
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), header("Sorting comparison"))
			fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())

			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "count", "n", 1000, "random input size when no values are given")

	return cmd
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
