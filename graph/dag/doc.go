// Package dag provides algorithms on directed acyclic graphs:
// topological ordering and AOE-network critical-path analysis.
//
//   - TopoSort runs Kahn's algorithm, repeatedly removing a vertex of
//     in-degree zero. Among the ready vertices the smallest ID goes
//     first, so the order is deterministic. A remaining cycle surfaces
//     ErrCycle. Time O(V log V + E).
//   - CriticalPath treats the graph as an activity-on-edge network:
//     vertices are events, weighted edges are activities. It computes
//     each event's earliest and latest occurrence time, each
//     activity's slack, and the project duration. Activities with zero
//     slack are critical; delaying any of them delays the whole
//     project. Time O(V log V + E).
//
// # Quick start
//
//	order, err := dag.TopoSort(g)
//	sched, err := dag.CriticalPath(g)
//	for _, a := range sched.Activities {
//		if a.Critical {
//			fmt.Println(a.Edge.From, "->", a.Edge.To)
//		}
//	}
package dag
