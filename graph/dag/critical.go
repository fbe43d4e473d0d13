package dag

import (
	"github.com/dastralib/dastra/graph"
)

// Activity is one edge of an AOE network with its schedule: the
// earliest time it can start, the latest it may start without
// stretching the project, and whether the two coincide.
type Activity struct {
	Edge          graph.Edge
	EarliestStart int64
	LatestStart   int64
	Critical      bool
}

// Schedule is the outcome of CriticalPath.
type Schedule struct {
	// Order is the topological order the events were processed in.
	Order []string

	// EventEarliest and EventLatest give each event's earliest and
	// latest occurrence time.
	EventEarliest map[string]int64
	EventLatest   map[string]int64

	// Activities lists every edge with its slack, in edge-ID order.
	Activities []Activity

	// Duration is the length of the longest path, the minimum time
	// the whole project needs.
	Duration int64
}

// CriticalActivities returns the activities with zero slack.
func (s *Schedule) CriticalActivities() []Activity {
	var out []Activity
	for _, a := range s.Activities {
		if a.Critical {
			out = append(out, a)
		}
	}

	return out
}

// CriticalPath analyzes g as an activity-on-edge network. Event v's
// earliest time ve(v) is the longest path from any source to v; its
// latest time vl(v) is the project duration minus the longest path
// from v to any sink. An activity on edge u→v starts earliest at
// ve(u) and latest at vl(v) minus its duration; zero slack makes it
// critical.
//
// Complexity: Time O(V log V + E), Space O(V + E).
func CriticalPath(g *graph.Graph) (*Schedule, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	if !g.Weighted() {
		return nil, ErrUnweighted
	}
	order, err := TopoSort(g)
	if err != nil {
		return nil, err
	}

	s := &Schedule{
		Order:         order,
		EventEarliest: make(map[string]int64, len(order)),
		EventLatest:   make(map[string]int64, len(order)),
	}

	// Forward pass: ve(v) = max over in-edges u→v of ve(u)+w.
	for _, v := range order {
		s.EventEarliest[v] = 0
	}
	for _, u := range order {
		edges, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			if t := s.EventEarliest[u] + e.Weight; t > s.EventEarliest[e.To] {
				s.EventEarliest[e.To] = t
			}
		}
	}
	for _, v := range order {
		if s.EventEarliest[v] > s.Duration {
			s.Duration = s.EventEarliest[v]
		}
	}

	// Backward pass: vl(v) = min over out-edges v→w of vl(w)-weight,
	// seeded with the project duration.
	for _, v := range order {
		s.EventLatest[v] = s.Duration
	}
	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		edges, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			if t := s.EventLatest[e.To] - e.Weight; t < s.EventLatest[u] {
				s.EventLatest[u] = t
			}
		}
	}

	for _, e := range g.Edges() {
		a := Activity{
			Edge:          e,
			EarliestStart: s.EventEarliest[e.From],
			LatestStart:   s.EventLatest[e.To] - e.Weight,
		}
		a.Critical = a.EarliestStart == a.LatestStart
		s.Activities = append(s.Activities, a)
	}

	return s, nil
}
