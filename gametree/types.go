package gametree

import "errors"

var (
	// ErrNoActions indicates BestAction was asked to move from a leaf.
	ErrNoActions = errors.New("gametree: state has no applicable actions")
	// ErrNegativeDepth indicates a depth limit below zero.
	ErrNegativeDepth = errors.New("gametree: depth must be non-negative")
	// ErrNilState indicates a nil root state.
	ErrNilState = errors.New("gametree: state is nil")
)

// Player identifies the side to move. Min minimizes Value, Max maximizes it.
type Player int

const (
	Min Player = 0
	Max Player = 1
)

// Other returns the opponent.
func (p Player) Other() Player { return 1 - p }

// String returns "min" or "max".
func (p Player) String() string {
	if p == Max {
		return "max"
	}
	return "min"
}

// State is a position of a two-player, zero-sum, alternating game.
// Value scores the position for Max; it is read only at leaves.
type State[A any] interface {
	ApplicableActions(p Player) []A
	Successor(p Player, action A) State[A]
	Value() float64
}

// Outcome is the backed-up value of a search and the number of recursive
// calls it made, the root included.
type Outcome struct {
	Value float64
	Calls int
}
