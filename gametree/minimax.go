package gametree

import "math"

// Minimax returns the full min-max value of state with player to move,
// searching at most depth plies. A state is a leaf when depth reaches 0 or
// it has no applicable actions; leaves score Value().
// Complexity: O(b^depth) calls for branching factor b.
func Minimax[A any](player Player, state State[A], depth int) Outcome {
	var calls int
	v := minimax(player, state, depth, &calls)

	return Outcome{Value: v, Calls: calls}
}

func minimax[A any](player Player, state State[A], depth int, calls *int) float64 {
	*calls++
	actions := state.ApplicableActions(player)
	if depth <= 0 || len(actions) == 0 {
		return state.Value()
	}

	best := initial(player)
	for _, a := range actions {
		v := minimax(player.Other(), state.Successor(player, a), depth-1, calls)
		best = pick(player, best, v)
	}

	return best
}

// AlphaBeta returns the same value as Minimax while skipping subtrees that
// cannot change it. The window starts at (-Inf, +Inf); a node stops
// enumerating its actions once alpha >= beta.
// Complexity: O(b^depth) calls worst case, O(b^(depth/2)) with ideal ordering.
func AlphaBeta[A any](player Player, state State[A], depth int) Outcome {
	var calls int
	v := alphaBeta(player, state, depth, math.Inf(-1), math.Inf(1), &calls)

	return Outcome{Value: v, Calls: calls}
}

func alphaBeta[A any](player Player, state State[A], depth int, alpha, beta float64, calls *int) float64 {
	*calls++
	actions := state.ApplicableActions(player)
	if depth <= 0 || len(actions) == 0 {
		return state.Value()
	}

	best := initial(player)
	for _, a := range actions {
		v := alphaBeta(player.Other(), state.Successor(player, a), depth-1, alpha, beta, calls)
		best = pick(player, best, v)
		if player == Min {
			beta = math.Min(beta, v)
		} else {
			alpha = math.Max(alpha, v)
		}
		if alpha >= beta {
			break
		}
	}

	return best
}

// BestAction runs alpha-beta from state and returns the first action that
// attains the backed-up value, with the same Outcome AlphaBeta reports.
// Depth 0 ranks the actions by the Value of their successors.
//
// Returns ErrNilState, ErrNegativeDepth, or ErrNoActions for a leaf.
// ErrNilState covers only an untyped nil; a nil pointer wrapped in State is
// passed through and fails inside its own methods.
func BestAction[A any](player Player, state State[A], depth int) (A, Outcome, error) {
	var zero A
	if state == nil {
		return zero, Outcome{}, ErrNilState
	}
	if depth < 0 {
		return zero, Outcome{}, ErrNegativeDepth
	}
	actions := state.ApplicableActions(player)
	if len(actions) == 0 {
		return zero, Outcome{}, ErrNoActions
	}

	calls := 1
	alpha, beta := math.Inf(-1), math.Inf(1)
	best, chosen := initial(player), actions[0]
	for _, a := range actions {
		v := alphaBeta(player.Other(), state.Successor(player, a), depth-1, alpha, beta, &calls)
		if better(player, v, best) {
			best, chosen = v, a
		}
		if player == Min {
			beta = math.Min(beta, v)
		} else {
			alpha = math.Max(alpha, v)
		}
		if alpha >= beta {
			break
		}
	}

	return chosen, Outcome{Value: best, Calls: calls}, nil
}

// initial is the identity of the player's fold: +Inf for Min, -Inf for Max.
func initial(p Player) float64 {
	if p == Min {
		return math.Inf(1)
	}
	return math.Inf(-1)
}

func pick(p Player, best, v float64) float64 {
	if better(p, v, best) {
		return v
	}
	return best
}

// better reports whether v strictly improves on best for p.
func better(p Player, v, best float64) bool {
	if p == Min {
		return v < best
	}
	return v > best
}
