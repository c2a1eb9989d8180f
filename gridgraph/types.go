package gridgraph

import (
	"fmt"
	"math"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell is a grid coordinate and the search state of a grid path.
type Cell struct {
	X, Y int
}

// String formats the cell as "x,y".
func (c Cell) String() string { return fmt.Sprintf("%d,%d", c.X, c.Y) }

// Move is the action label of a grid transition.
type Move int

const (
	North Move = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var moveNames = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// moveOffsets[m] is the (dx, dy) of move m; y grows downwards.
var moveOffsets = [...][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// String returns the compass abbreviation of the move.
func (m Move) String() string {
	if m < North || m > NorthWest {
		return fmt.Sprintf("Move(%d)", int(m))
	}
	return moveNames[m]
}

// Offset returns the coordinate delta of the move.
func (m Move) Offset() (dx, dy int) {
	return moveOffsets[m][0], moveOffsets[m][1]
}

// Diagonal reports whether the move changes both coordinates.
func (m Move) Diagonal() bool { return m%2 == 1 }

// length is the geometric step length of the move.
func (m Move) length() float64 {
	if m.Diagonal() {
		return math.Sqrt2
	}
	return 1
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	// Land cells are passable; entering one costs its value.
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are land), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the input value.
// moves is precomputed from Conn; minCost is the cheapest land value, used to
// scale heuristics.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	Conn          Connectivity
	LandThreshold int

	moves   []Move
	minCost float64
}
