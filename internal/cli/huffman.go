package cli

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/dastralib/dastra/huffman"
)

func newHuffmanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "huffman <text>",
		Short: "Build a Huffman code for a text and show the savings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := args[0]
			logger := loggerFromContext(cmd.Context())

			freq := make(map[rune]int)
			for _, r := range text {
				freq[r]++
			}
			tree, err := huffman.Build(freq)
			if err != nil {
				return err
			}
			bits, err := tree.Encode(text)
			if err != nil {
				return err
			}
			logger.Debug("tree built", "symbols", len(freq), "wpl", tree.WPL())

			codes := tree.Codes()
			symbols := make([]rune, 0, len(codes))
			for r := range codes {
				symbols = append(symbols, r)
			}
			sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

			tbl := newTable()
			tbl.AppendHeader(table.Row{"symbol", "weight", "code"})
			for _, r := range symbols {
				tbl.AppendRow(table.Row{fmt.Sprintf("%q", r), freq[r], codes[r]})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, header("Huffman code"))
			fmt.Fprintln(out, tbl.Render())

			rawBits := 8 * len(text)
			fmt.Fprintf(out, "weighted path length: %s\n",
				accentStyle.Render(fmt.Sprint(tree.WPL())))
			fmt.Fprintf(out, "encoded: %d bits (raw %s, coded %s, %.1f%% saved)\n",
				len(bits),
				humanize.Bytes(uint64(len(text))),
				humanize.Bytes(uint64((len(bits)+7)/8)),
				100*(1-float64(len(bits))/float64(rawBits)))

			return nil
		},
	}
}
