// Package gridgraph adapts a rectangular grid of integer cell values to the
// astar search engine.
//
// A cell whose value is at least LandThreshold is land and passable; every
// other cell is water. Moving onto a land cell costs its value, multiplied by
// √2 for diagonal moves under Conn8, so weighted terrain is expressed directly
// in the grid:
//
//	1 1 1 1
//	1 9 9 1
//	1 1 0 1
//
// Search operations:
//
//   - ShortestPath: A* between two land cells with the Heuristic of the goal.
//   - Expand / Heuristic: the raw state space, for callers that drive
//     astar.Search themselves (multiple goals, custom options).
//   - ConnectedComponents: islands of land cells.
//   - ExpandIsland: fewest water cells to convert so two islands touch.
//   - ToGraph: the same space as a *graphspace.Graph.
//
// All methods are read-only; a GridGraph may be shared between goroutines.
package gridgraph
