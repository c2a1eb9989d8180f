// Package gametree searches two-player, zero-sum, alternating game trees.
//
// Minimax backs up the exact min-max value to a depth limit; AlphaBeta
// returns the same value with cut-offs; BestAction applies alpha-beta at the
// root to choose a move. Every Outcome carries the number of recursive calls
// made, which is the usual measure for comparing the two.
//
// Player Min (0) minimizes State.Value and Player Max (1) maximizes it; turns
// alternate, so the child of a Min node is a Max node.
package gametree
