// Package graphspace turns an explicit weighted graph into a state space for
// the astar search engine.
//
// What:
//
//   - Graph stores string-identified vertices and weighted edges, either
//     directed or undirected, with optional self-loops and parallel edges.
//   - Graph.Expand is an astar.ExpandFunc: every edge traversable from a
//     vertex becomes a transition whose action label is the edge ID.
//   - Graph.ShortestPath runs astar.Search towards a set of goal vertices.
//
// Why:
//
//   - Road and network routing over small-to-medium explicit graphs.
//   - Property tests of the search engine against known optimal costs.
//
// Guarantees:
//
//   - Negative or NaN edge costs are rejected by AddEdge, so a Graph always
//     satisfies the engine's non-negative-cost precondition.
//   - Edge IDs are sequential ("e1", "e2", ...) and Expand, Neighbors and
//     Edges report edges in insertion order, so search results are
//     deterministic.
//   - All methods are safe for concurrent use.
//
// Heuristics:
//
//	TableHeuristic wraps precomputed estimates; CheckHeuristic verifies one
//	against every edge of the graph before it is trusted.
//
// Example:
//
//	g := graphspace.NewGraph(graphspace.WithDirected(true))
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "D", 1)
//	res, err := g.ShortestPath("A", []string{"D"}, nil)
package graphspace
