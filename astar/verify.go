package astar

import (
	"fmt"
	"math"
)

// costTolerance is the relative slack allowed when comparing summed costs.
const costTolerance = 1e-9

// VerifyPlan checks that res describes a valid path: it starts at start,
// ends in a goal state, every step Plan[i] -> Plan[i+1] is a transition
// returned by expand(Plan[i]) with action Actions[i], and the step costs
// add up to res.Cost.
//
// An empty plan is valid only as the failure signal (Cost == 0, no actions).
// VerifyPlan is not used by Search; it is a checking layer for callers and tests.
func VerifyPlan[S comparable, A comparable](
	res Result[S, A],
	start S,
	isGoal GoalFunc[S],
	expand ExpandFunc[S, A],
) error {
	if isGoal == nil {
		return ErrNilGoal
	}
	if expand == nil {
		return ErrNilExpand
	}

	if len(res.Plan) == 0 {
		if res.Cost != 0 || len(res.Actions) != 0 {
			return fmt.Errorf("%w: empty plan with cost %v and %d actions", ErrInvalidPlan, res.Cost, len(res.Actions))
		}
		return nil
	}
	if len(res.Actions) != len(res.Plan)-1 {
		return fmt.Errorf("%w: %d states but %d actions", ErrInvalidPlan, len(res.Plan), len(res.Actions))
	}
	if res.Plan[0] != start {
		return fmt.Errorf("%w: plan starts at %v, want %v", ErrInvalidPlan, res.Plan[0], start)
	}
	last := res.Plan[len(res.Plan)-1]
	if !isGoal(last) {
		return fmt.Errorf("%w: final state %v is not a goal", ErrInvalidPlan, last)
	}

	var total float64
	for i := 0; i+1 < len(res.Plan); i++ {
		from, to, action := res.Plan[i], res.Plan[i+1], res.Actions[i]
		cost, ok := stepCost(expand(from), to, action)
		if !ok {
			return fmt.Errorf("%w: no transition %v -[%v]-> %v", ErrInvalidPlan, from, action, to)
		}
		total += cost
	}

	if !sameCost(total, res.Cost) {
		return fmt.Errorf("%w: step costs sum to %v, plan reports %v", ErrInvalidPlan, total, res.Cost)
	}

	return nil
}

// stepCost returns the cheapest transition matching (to, action).
func stepCost[S comparable, A comparable](ts []Transition[S, A], to S, action A) (float64, bool) {
	best, found := math.Inf(1), false
	for _, t := range ts {
		if t.To == to && t.Action == action && t.Cost < best {
			best, found = t.Cost, true
		}
	}

	return best, found
}

// CheckConsistency verifies the heuristic preconditions on the given states:
// h(s) is finite and non-negative and h(s) <= cost + h(s') for every
// transition s -> s' returned by expand(s). Transition costs must be
// non-negative.
//
// Returns the first violation found, wrapped in ErrInconsistentHeuristic or
// ErrNegativeCost. Search never calls it; run it in tests or as an external
// guard when the heuristic is not trusted.
func CheckConsistency[S comparable, A any](
	states []S,
	h HeuristicFunc[S],
	expand ExpandFunc[S, A],
) error {
	if expand == nil {
		return ErrNilExpand
	}
	if h == nil {
		h = ZeroHeuristic[S]()
	}

	for _, s := range states {
		hs := h(s)
		if math.IsNaN(hs) || math.IsInf(hs, 0) || hs < 0 {
			return fmt.Errorf("%w: h(%v) = %v", ErrInconsistentHeuristic, s, hs)
		}
		for _, t := range expand(s) {
			if t.Cost < 0 {
				return fmt.Errorf("%w: %v -> %v costs %v", ErrNegativeCost, s, t.To, t.Cost)
			}
			bound := t.Cost + h(t.To)
			if hs > bound && !sameCost(hs, bound) {
				return fmt.Errorf("%w: h(%v) = %v > %v + h(%v) = %v",
					ErrInconsistentHeuristic, s, hs, t.Cost, t.To, bound)
			}
		}
	}

	return nil
}

// sameCost compares two costs with a relative tolerance.
func sameCost(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return math.Abs(a-b) <= costTolerance*scale
}
