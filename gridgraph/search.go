package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bestfirst/astar"
)

// Expand lists the moves out of c onto passable cells, in the fixed
// order of Moves(). Entering cell (x,y) costs CellValues[y][x] times the
// step length (1 for orthogonal moves, √2 for diagonal ones).
// An out-of-bounds or impassable c yields no transitions.
// Complexity: O(d) where d is 4 or 8.
func (gg *GridGraph) Expand(c Cell) []astar.Transition[Cell, Move] {
	if !gg.Passable(c.X, c.Y) {
		return nil
	}
	out := make([]astar.Transition[Cell, Move], 0, len(gg.moves))
	for _, m := range gg.moves {
		dx, dy := m.Offset()
		nx, ny := c.X+dx, c.Y+dy
		if !gg.Passable(nx, ny) {
			continue
		}
		out = append(out, astar.Transition[Cell, Move]{
			Action: m,
			To:     Cell{nx, ny},
			Cost:   float64(gg.CellValues[ny][nx]) * m.length(),
		})
	}

	return out
}

// Heuristic returns a consistent estimate of the cost from any cell to goal.
// Conn4 uses the Manhattan distance, Conn8 the octile distance; both are
// scaled by the cheapest passable cell value so no step is overestimated.
func (gg *GridGraph) Heuristic(goal Cell) astar.HeuristicFunc[Cell] {
	scale := gg.minCost
	if gg.Conn == Conn8 {
		return func(c Cell) float64 {
			dx, dy := absInt(c.X-goal.X), absInt(c.Y-goal.Y)
			lo, hi := min(dx, dy), max(dx, dy)

			return scale * (float64(hi) + (math.Sqrt2-1)*float64(lo))
		}
	}

	return func(c Cell) float64 {
		return scale * float64(absInt(c.X-goal.X)+absInt(c.Y-goal.Y))
	}
}

// ShortestPath runs A* from one passable cell to another using Heuristic(to).
// The start cell's own value is not charged.
//
// Returns ErrOutOfBounds or ErrBlockedCell for an invalid endpoint, any error
// of astar.Search, or a Result with an empty Plan when to is unreachable.
func (gg *GridGraph) ShortestPath(from, to Cell, opts ...astar.Option) (astar.Result[Cell, Move], error) {
	for _, c := range [...]Cell{from, to} {
		if !gg.InBounds(c.X, c.Y) {
			return astar.Result[Cell, Move]{}, fmt.Errorf("%w: (%s) in %dx%d grid", ErrOutOfBounds, c, gg.Width, gg.Height)
		}
		if !gg.Passable(c.X, c.Y) {
			return astar.Result[Cell, Move]{}, fmt.Errorf("%w: (%s) has value %d", ErrBlockedCell, c, gg.CellValues[c.Y][c.X])
		}
	}

	return astar.Search(from, func(c Cell) bool { return c == to }, gg.Heuristic(to), gg.Expand, opts...)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
