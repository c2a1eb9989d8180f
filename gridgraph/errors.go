package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadThreshold indicates a LandThreshold below 1, which would make
	// zero or negative cell values passable.
	ErrBadThreshold = errors.New("gridgraph: LandThreshold must be at least 1")
	// ErrComponentIndex indicates a requested component index is invalid.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between the given components")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrBlockedCell indicates a search endpoint on an impassable cell.
	ErrBlockedCell = errors.New("gridgraph: cell is not passable")
	// ErrParse indicates malformed grid text.
	ErrParse = errors.New("gridgraph: cannot parse grid")
)
