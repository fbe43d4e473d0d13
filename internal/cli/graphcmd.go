package cli

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/dastralib/dastra/graph"
	"github.com/dastralib/dastra/graph/dag"
	"github.com/dastralib/dastra/graph/mst"
	"github.com/dastralib/dastra/graph/shortestpath"
)

// sampleNetwork is the undirected demo network: six sites with
// redundant links of varying cost.
func sampleNetwork() (*graph.Graph, error) {
	g := graph.New(graph.WithWeighted())
	edges := []struct {
		from, to string
		w        int64
	}{
		{"A", "B", 6}, {"A", "C", 1}, {"A", "D", 5},
		{"B", "C", 5}, {"B", "E", 3},
		{"C", "D", 5}, {"C", "E", 6}, {"C", "F", 4},
		{"D", "F", 2}, {"E", "F", 6},
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e.from, e.to, e.w); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// sampleProject is the directed demo schedule analyzed for its
// critical path.
func sampleProject() (*graph.Graph, error) {
	g := graph.New(graph.WithDirected(true), graph.WithWeighted())
	acts := []struct {
		from, to string
		w        int64
	}{
		{"start", "dig", 6}, {"start", "order", 4},
		{"dig", "pour", 1}, {"order", "pour", 1},
		{"pour", "frame", 9}, {"pour", "wire", 7},
		{"frame", "finish", 2}, {"wire", "finish", 4},
	}
	for _, a := range acts {
		if _, err := g.AddEdge(a.from, a.to, a.w); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func newGraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Analyze the demo graphs: MST, shortest paths, critical path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()

			network, err := sampleNetwork()
			if err != nil {
				return err
			}
			logger.Debug("network built",
				"vertices", network.VertexCount(), "edges", network.EdgeCount())

			tree, total, err := mst.Kruskal(network)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, header("Minimum spanning tree (Kruskal)"))
			tbl := newTable()
			tbl.AppendHeader(table.Row{"edge", "weight"})
			for _, e := range tree {
				tbl.AppendRow(table.Row{e.From + " - " + e.To, e.Weight})
			}
			tbl.AppendFooter(table.Row{"total", total})
			fmt.Fprintln(out, tbl.Render())

			dist, prev, err := shortestpath.Dijkstra(network, "A",
				shortestpath.WithReturnPath())
			if err != nil {
				return err
			}
			fmt.Fprintln(out, header("Shortest paths from A (Dijkstra)"))
			tbl = newTable()
			tbl.AppendHeader(table.Row{"vertex", "distance", "path"})
			for _, v := range network.Vertices() {
				path, err := shortestpath.PathTo(dist, prev, v)
				if err != nil {
					return err
				}
				tbl.AppendRow(table.Row{v, dist[v], strings.Join(path, " > ")})
			}
			fmt.Fprintln(out, tbl.Render())

			project, err := sampleProject()
			if err != nil {
				return err
			}
			sched, err := dag.CriticalPath(project)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, header("Project schedule (critical path)"))
			fmt.Fprintf(out, "topological order: %s\n", strings.Join(sched.Order, ", "))
			fmt.Fprintf(out, "project duration: %s\n",
				accentStyle.Render(fmt.Sprint(sched.Duration)))
			tbl = newTable()
			tbl.AppendHeader(table.Row{"activity", "earliest", "latest", "critical"})
			for _, a := range sched.Activities {
				tbl.AppendRow(table.Row{
					a.Edge.From + " > " + a.Edge.To,
					a.EarliestStart, a.LatestStart, a.Critical,
				})
			}
			fmt.Fprintln(out, tbl.Render())

			return nil
		},
	}
}
