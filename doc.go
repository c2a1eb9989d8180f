// Package bestfirst is a small toolkit for best-first state-space search:
// a generic A* engine and the state spaces it is usually pointed at.
//
// 🚀 What is in the box?
//
//	astar/           generic A* / uniform-cost search over any comparable state,
//	                 with plan verification and a heuristic consistency check
//	graphspace/      thread-safe weighted graph exposed as an astar state space
//	gridgraph/       weighted 2D grids: shortest paths, islands, bridging
//	gametree/        minimax and alpha-beta over two-player game trees
//	searchmetrics/   Prometheus collectors fed by the astar observer hook
//	cmd/gridpath/    command-line front end for grid files
//
// Quick ASCII example (gridgraph, 0 = water, 9 = steep):
//
//	S 1 1 1
//	1 9 9 1
//	1 1 0 G
//
//	the cheapest Conn4 route goes along the top row and down, cost 5.
//
// Install:
//
//	go get github.com/katalvlaran/bestfirst
package bestfirst
