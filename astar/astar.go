// Package astar implements best-first search with a consistent heuristic.
//
// Notes on implementation choices:
//
//   - The frontier is a lazy binary heap: a cheaper path to a state pushes a
//     new entry and the old one is skipped when popped (its g no longer
//     matches the g-cost map).
//   - A cheaper path to an already expanded state reopens it.
//   - The recorded goal is the goal state with the lowest g-cost seen so
//     far; the loop stops once the cheapest frontier entry has f >= g(goal).
package astar

import (
	"container/heap"
	"fmt"
	"slices"
	"time"
)

// Search finds a minimum-cost plan from start to any state satisfying isGoal.
//
// h estimates the remaining cost and must be consistent for the result to be
// optimal; a nil h is treated as ZeroHeuristic. expand enumerates outgoing
// transitions and may return an empty slice for terminal states.
//
// Returns:
//
//   - A Result whose Plan runs from start to the goal (inclusive) with the
//     matching Actions and total Cost.
//   - A Result with an empty Plan and Cost 0 and a nil error when no goal is
//     reachable.
//   - ErrNilGoal, ErrNilExpand or ErrOptionViolation for invalid input.
//   - ErrCanceled (wrapping the context error) or ErrExpansionLimit when an
//     option stopped the search early; Stats is still populated.
//
// Complexity:
//
//   - Time:  O(E log E) over the E improving relaxations.
//   - Space: O(V + E).
func Search[S comparable, A any](
	start S,
	isGoal GoalFunc[S],
	h HeuristicFunc[S],
	expand ExpandFunc[S, A],
	opts ...Option,
) (Result[S, A], error) {
	if isGoal == nil {
		return Result[S, A]{}, ErrNilGoal
	}
	if expand == nil {
		return Result[S, A]{}, ErrNilExpand
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result[S, A]{}, cfg.err
	}
	if h == nil {
		h = ZeroHeuristic[S]()
	}

	r := &runner[S, A]{
		isGoal: isGoal,
		h:      h,
		expand: expand,
		opts:   cfg,
		g:      make(map[S]float64),
		pred:   make(map[S]link[S, A]),
		closed: make(map[S]struct{}),
	}

	var began time.Time
	if cfg.Observer != nil {
		began = time.Now()
	}
	res, outcome, err := r.run(start)
	if cfg.Observer != nil {
		cfg.Observer.Finished(res.Stats, time.Since(began), outcome)
	}

	return res, err
}

// UniformCost runs Search with h ≡ 0 (Dijkstra-like uniform-cost search).
func UniformCost[S comparable, A any](
	start S,
	isGoal GoalFunc[S],
	expand ExpandFunc[S, A],
	opts ...Option,
) (Result[S, A], error) {
	return Search(start, isGoal, ZeroHeuristic[S](), expand, opts...)
}

// link is the predecessor entry of a state: the state it was reached from and
// the action taken. root marks the start state.
type link[S comparable, A any] struct {
	prev   S
	action A
	root   bool
}

// runner holds the mutable state of a single Search call.
type runner[S comparable, A any] struct {
	isGoal GoalFunc[S]
	h      HeuristicFunc[S]
	expand ExpandFunc[S, A]
	opts   Options

	g      map[S]float64    // best known cost from start
	pred   map[S]link[S, A] // written together with g
	closed map[S]struct{}   // expanded at least once
	pq     frontierPQ[S]
	seq    uint64

	goal      S
	goalFound bool

	stats Stats
}

// run executes the main loop and classifies how it ended.
func (r *runner[S, A]) run(start S) (Result[S, A], Outcome, error) {
	if r.isGoal(start) {
		return Result[S, A]{Plan: []S{start}, Actions: []A{}, Cost: 0}, OutcomeFound, nil
	}

	r.g[start] = 0
	r.pred[start] = link[S, A]{root: true}
	heap.Init(&r.pq)
	r.push(start, 0, false)

	ctx := r.opts.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return Result[S, A]{Stats: r.stats}, OutcomeCanceled, fmt.Errorf("%w: %w", ErrCanceled, ctx.Err())
		default:
		}

		item := heap.Pop(&r.pq).(frontierItem[S])
		if item.g != r.g[item.state] {
			r.stats.StaleSkipped++
			continue
		}

		// Nothing left on the frontier can beat the goal already reached.
		if r.goalFound && item.f >= r.g[r.goal] {
			break
		}

		if r.opts.MaxExpansions > 0 && r.stats.Expanded >= r.opts.MaxExpansions {
			return Result[S, A]{Stats: r.stats}, OutcomeLimit,
				fmt.Errorf("%w: %d expansions", ErrExpansionLimit, r.stats.Expanded)
		}

		r.closed[item.state] = struct{}{}
		r.stats.Expanded++
		if r.opts.Observer != nil {
			r.opts.Observer.Expanded(item.g, item.f)
		}
		r.relax(item.state, item.g)
	}

	if !r.goalFound {
		return Result[S, A]{Stats: r.stats}, OutcomeExhausted, nil
	}

	return r.plan(), OutcomeFound, nil
}

// relax applies every transition out of u, whose g-cost is gu.
// A strictly cheaper path rewrites g and pred and (re)inserts the state into
// the frontier, closed or not.
func (r *runner[S, A]) relax(u S, gu float64) {
	for _, t := range r.expand(u) {
		r.stats.Generated++
		cand := gu + t.Cost
		if old, seen := r.g[t.To]; seen && cand >= old {
			continue
		}

		r.g[t.To] = cand
		r.pred[t.To] = link[S, A]{prev: u, action: t.Action}

		if r.isGoal(t.To) && (!r.goalFound || cand < r.g[r.goal]) {
			r.goal = t.To
			r.goalFound = true
		}

		_, reopened := r.closed[t.To]
		if reopened {
			r.stats.Reopened++
		}
		r.push(t.To, cand, reopened)
	}
}

// push inserts s with cost g into the frontier.
func (r *runner[S, A]) push(s S, g float64, reopened bool) {
	f := g + r.h(s)
	r.seq++
	heap.Push(&r.pq, frontierItem[S]{state: s, g: g, f: f, seq: r.seq})
	r.stats.Pushed++
	if r.opts.Observer != nil {
		r.opts.Observer.Pushed(g, f, reopened)
	}
}

// plan walks predecessor links from the recorded goal back to start.
func (r *runner[S, A]) plan() Result[S, A] {
	states := []S{r.goal}
	actions := make([]A, 0)
	for s := r.goal; ; {
		l := r.pred[s]
		if l.root {
			break
		}
		states = append(states, l.prev)
		actions = append(actions, l.action)
		s = l.prev
	}
	slices.Reverse(states)
	slices.Reverse(actions)

	return Result[S, A]{
		Plan:    states,
		Actions: actions,
		Cost:    r.g[r.goal],
		Stats:   r.stats,
	}
}
