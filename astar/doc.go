// Package astar provides a generic best-first (A*) search engine over an
// abstract state space supplied by the caller.
//
// Overview:
//
//   - The caller provides a start state, a goal predicate, a heuristic
//     estimate of the remaining cost and an expansion function producing the
//     outgoing transitions (action label, next state, non-negative cost).
//   - Search returns a minimum-cost plan from the start state to any state
//     satisfying the goal predicate, together with its total cost.
//   - States are any comparable Go value; equality and hashing come from the
//     language, so a state must be usable as a map key.
//
// Algorithm:
//
//  1. If the start state is a goal, return the single-state plan with cost 0.
//  2. Otherwise keep a g-cost map, a predecessor map, a frontier (open) and a
//     visited (closed) set. Repeatedly take the frontier member with the lowest
//     f = g + h, move it to closed and relax its transitions.
//  3. A strictly cheaper path to a state rewrites its g-cost and predecessor
//     and puts it back on the frontier, even if it was already expanded.
//  4. Once a goal has been reached, the search stops as soon as the cheapest
//     frontier member has f >= g(goal).
//  5. The plan is rebuilt by walking predecessors from the goal back to start.
//
// The frontier is a binary heap keyed by (f, g) using lazy decrease-key:
// superseded heap entries stay in the heap and are skipped when popped.
//
// Preconditions (not checked at run time):
//
//   - The heuristic is non-negative, admissible and consistent:
//     h(s) <= cost(s, s') + h(s') for every transition s -> s'.
//     Optimality and the early-termination rule rely on it.
//   - Transition costs are non-negative.
//   - The state type's equality is a valid map-key equality.
//
// CheckConsistency and VerifyPlan are provided as an external layer for
// callers and tests that want these properties verified.
//
// Failure:
//
//	When no goal is reachable, Search returns a Result with an empty Plan
//	and Cost 0 and a nil error. Use Result.Found (not Cost == 0) to tell
//	"no path" from a free path.
//
// Complexity:
//
//   - Time:  O(E log E) heap work for E relaxations that improve a g-cost,
//     plus one expand call per expansion (states may be re-expanded when a
//     cheaper path is found later).
//   - Space: O(V + E) for the maps and the heap.
//
// Example:
//
//	res, err := astar.Search(start, isGoal, h, expand)
//	if err != nil {
//	    return err
//	}
//	if !res.Found() {
//	    fmt.Println("unreachable")
//	}
//	fmt.Println(res.Plan, res.Cost)
package astar
