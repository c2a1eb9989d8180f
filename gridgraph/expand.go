package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/bestfirst/astar"
)

// virtualSource is the synthetic state joined to every cell of the source
// component by a free transition.
const virtualSource = -1

// ExpandIsland finds a minimum‐conversion path of “water” cells
// (CellValues < LandThreshold) connecting any cell in component srcComp to any
// cell in component dstComp, as identified by ConnectedComponents().
// Each water‐cell conversion costs 1; stepping onto land is free.
// Returns the sequence of cell‐indices (row‐major) representing the path
// (including the start and end land cells) and the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Uniform-cost search from a virtual source with free edges to every
//     srcComp cell, so all of them start at cost 0.
//  3. Stop once a dstComp cell is settled.
//  4. Drop the virtual source from the plan.
//
// Complexity: O(W·H·d·log(W·H)).
// Memory:     O(W·H) for costs and predecessors.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int, opts ...astar.Option) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, fmt.Errorf("%w: src=%d dst=%d with %d components", ErrComponentIndex, srcComp, dstComp, len(comps))
	}
	src := comps[srcComp]
	dstSet := make(map[int]struct{}, len(comps[dstComp]))
	for _, i := range comps[dstComp] {
		dstSet[i] = struct{}{}
	}

	expand := func(u int) []astar.Transition[int, struct{}] {
		if u == virtualSource {
			out := make([]astar.Transition[int, struct{}], len(src))
			for k, i := range src {
				out[k] = astar.Transition[int, struct{}]{To: i}
			}
			return out
		}
		ux, uy := gg.Coordinate(u)
		out := make([]astar.Transition[int, struct{}], 0, len(gg.moves))
		for _, m := range gg.moves {
			dx, dy := m.Offset()
			vx, vy := ux+dx, uy+dy
			if !gg.InBounds(vx, vy) {
				continue
			}
			step := 0.0
			if !gg.Passable(vx, vy) {
				step = 1
			}
			out = append(out, astar.Transition[int, struct{}]{To: gg.Index(vx, vy), Cost: step})
		}
		return out
	}
	isGoal := func(u int) bool {
		_, ok := dstSet[u]
		return ok
	}

	res, err := astar.UniformCost(virtualSource, isGoal, expand, opts...)
	if err != nil {
		return nil, 0, err
	}
	if !res.Found() {
		return nil, 0, ErrNoPath
	}

	return res.Plan[1:], int(res.Cost), nil
}
