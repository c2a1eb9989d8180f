package gridgraph

import (
	"github.com/katalvlaran/bestfirst/graphspace"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs and ErrBadThreshold if
// opts.LandThreshold < 1.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.LandThreshold < 1 {
		return nil, ErrBadThreshold
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation; track the cheapest land cell.
	cells := make([][]int, h)
	minCost := 0
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		for _, v := range values[y] {
			if v >= opts.LandThreshold && (minCost == 0 || v < minCost) {
				minCost = v
			}
		}
	}

	moves := []Move{North, East, South, West}
	if opts.Conn == Conn8 {
		moves = []Move{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
	}

	return &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		moves:         moves,
		minCost:       float64(minCost),
	}, nil
}

// From2D builds a GridGraph with the default LandThreshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether (x,y) is in bounds and land.
func (gg *GridGraph) Passable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// Moves returns the moves allowed by the grid's connectivity.
func (gg *GridGraph) Moves() []Move {
	return gg.moves
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// ToGraph converts the passable cells into a directed *graphspace.Graph.
// Each land cell (x,y) becomes a vertex "x,y"; every allowed move between
// land cells becomes an edge whose cost is that of the move in Expand.
// Complexity: O(W×H×d) time and memory.
func (gg *GridGraph) ToGraph() *graphspace.Graph {
	g := graphspace.NewGraph(graphspace.WithDirected(true))
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			from := Cell{x, y}
			_ = g.AddVertex(from.String())
			for _, t := range gg.Expand(from) {
				_, _ = g.AddEdge(from.String(), t.To.String(), t.Cost)
			}
		}
	}

	return g
}
