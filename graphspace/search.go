package graphspace

import (
	"fmt"

	"github.com/katalvlaran/bestfirst/astar"
)

// Expand lists the transitions out of vertex id. Each transition's action is
// the edge ID and its cost the edge cost. Unknown vertices have none.
//
// Expand is an astar.ExpandFunc and takes the read lock, so concurrent
// searches over one Graph are safe while it is not being mutated.
func (g *Graph) Expand(id string) []astar.Transition[string, string] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	edges := g.out[id]
	out := make([]astar.Transition[string, string], 0, len(edges))
	for _, e := range edges {
		out = append(out, astar.Transition[string, string]{
			Action: e.ID,
			To:     other(e, id),
			Cost:   e.Cost,
		})
	}

	return out
}

// ShortestPath searches from vertex from to the nearest of goals.
//
// h may be nil (uniform-cost search) and must be consistent otherwise.
// Returns ErrEmptyVertexID or ErrVertexNotFound for unknown endpoints,
// ErrNoGoals for an empty goal list, or any error from astar.Search.
// An unreachable goal is reported as a Result with an empty Plan.
func (g *Graph) ShortestPath(
	from string,
	goals []string,
	h astar.HeuristicFunc[string],
	opts ...astar.Option,
) (astar.Result[string, string], error) {
	if from == "" {
		return astar.Result[string, string]{}, ErrEmptyVertexID
	}
	if !g.HasVertex(from) {
		return astar.Result[string, string]{}, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if len(goals) == 0 {
		return astar.Result[string, string]{}, ErrNoGoals
	}

	set := make(map[string]struct{}, len(goals))
	for _, id := range goals {
		if !g.HasVertex(id) {
			return astar.Result[string, string]{}, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
		set[id] = struct{}{}
	}
	isGoal := func(id string) bool {
		_, ok := set[id]
		return ok
	}

	return astar.Search(from, isGoal, h, g.Expand, opts...)
}

// TableHeuristic returns a heuristic backed by a lookup table; vertices
// missing from the table estimate 0. The table is not copied.
func TableHeuristic(estimates map[string]float64) astar.HeuristicFunc[string] {
	return func(id string) float64 { return estimates[id] }
}

// CheckHeuristic verifies h with astar.CheckConsistency over every vertex.
func (g *Graph) CheckHeuristic(h astar.HeuristicFunc[string]) error {
	return astar.CheckConsistency(g.Vertices(), h, g.Expand)
}
