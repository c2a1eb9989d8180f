// Package astar defines the state-space contract, result types, options and
// sentinel errors of the best-first search engine.
package astar

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors returned by the search engine and its verification helpers.
var (
	// ErrNilGoal indicates that a nil goal predicate was supplied.
	ErrNilGoal = errors.New("astar: goal predicate is nil")

	// ErrNilExpand indicates that a nil expansion function was supplied.
	ErrNilExpand = errors.New("astar: expand function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrCanceled wraps the context error when the search context is done.
	ErrCanceled = errors.New("astar: search canceled")

	// ErrExpansionLimit indicates that MaxExpansions was reached before the
	// search could finish.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrInvalidPlan is returned by VerifyPlan when a plan is not a valid
	// path through the state space.
	ErrInvalidPlan = errors.New("astar: invalid plan")

	// ErrNegativeCost is returned by CheckConsistency when a transition has
	// a negative cost.
	ErrNegativeCost = errors.New("astar: negative transition cost")

	// ErrInconsistentHeuristic is returned by CheckConsistency when the
	// heuristic violates non-negativity or monotonicity on some transition.
	ErrInconsistentHeuristic = errors.New("astar: heuristic is not consistent")
)

// Transition is one outgoing edge of a state: taking Action leads to To at
// the given non-negative Cost.
type Transition[S comparable, A any] struct {
	Action A
	To     S
	Cost   float64
}

// GoalFunc reports whether a state satisfies the goal. It must be free of
// side effects.
type GoalFunc[S comparable] func(state S) bool

// HeuristicFunc estimates the remaining cost from state to the nearest goal.
// It must be non-negative and consistent for Search to return optimal plans.
type HeuristicFunc[S comparable] func(state S) float64

// ExpandFunc enumerates every outgoing transition of state. An empty result
// marks a terminal state.
type ExpandFunc[S comparable, A any] func(state S) []Transition[S, A]

// ZeroHeuristic returns the heuristic h ≡ 0, which turns Search into
// uniform-cost search.
func ZeroHeuristic[S comparable]() HeuristicFunc[S] {
	return func(S) float64 { return 0 }
}

// Stats counts the work performed by a single Search call.
type Stats struct {
	// Expanded is the number of states removed from the frontier and expanded.
	Expanded int

	// Generated is the number of transitions returned by expand.
	Generated int

	// Pushed is the number of frontier insertions, including the start state.
	Pushed int

	// Reopened counts insertions of states that were already closed.
	Reopened int

	// StaleSkipped counts heap entries discarded because a cheaper g-cost
	// had been recorded for their state after they were pushed.
	StaleSkipped int
}

// Result is the outcome of a Search call.
//
// Plan holds the states from start to goal, both inclusive, and Actions[i]
// labels the transition Plan[i] -> Plan[i+1]. When no goal is reachable Plan
// and Actions are nil and Cost is 0.
type Result[S comparable, A any] struct {
	Plan    []S
	Actions []A
	Cost    float64
	Stats   Stats
}

// Found reports whether the search reached a goal.
// A zero Cost alone does not mean failure: a start state that is already a
// goal yields a found plan of cost 0.
func (r Result[S, A]) Found() bool { return len(r.Plan) > 0 }

// Goal returns the last state of the plan and false when nothing was found.
func (r Result[S, A]) Goal() (S, bool) {
	if len(r.Plan) == 0 {
		var zero S
		return zero, false
	}

	return r.Plan[len(r.Plan)-1], true
}

// Outcome classifies how a search terminated. It is reported to observers.
type Outcome int

const (
	// OutcomeFound means a goal was reached and a plan was returned.
	OutcomeFound Outcome = iota
	// OutcomeExhausted means the frontier emptied without reaching a goal.
	OutcomeExhausted
	// OutcomeCanceled means the context was done before the search finished.
	OutcomeCanceled
	// OutcomeLimit means MaxExpansions stopped the search.
	OutcomeLimit
)

// String returns the lower-case name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeCanceled:
		return "canceled"
	case OutcomeLimit:
		return "limit"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Observer receives instrumentation events from a running search.
// Implementations must be cheap; they are called on the search's hot path.
type Observer interface {
	// Expanded is called when a state is taken from the frontier for expansion.
	Expanded(g, f float64)

	// Pushed is called for each frontier insertion. reopened is true when the
	// state had already been expanded before.
	Pushed(g, f float64, reopened bool)

	// Finished is called once when Search returns.
	Finished(stats Stats, elapsed time.Duration, outcome Outcome)
}

// Option configures Search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the tunable parameters of a Search call.
type Options struct {
	// Ctx is checked once per loop iteration, before a frontier member is
	// selected.
	Ctx context.Context

	// MaxExpansions, if > 0, stops the search after this many expansions.
	// 0 disables the limit.
	MaxExpansions int

	// Observer, if non-nil, receives instrumentation events.
	Observer Observer

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no expansion
// limit and no observer.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		Observer:      nil,
	}
}

// WithContext sets the context used for cancellation and deadlines.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the number of expansions.
//
//	n > 0:  stop with ErrExpansionLimit after n expansions
//	n == 0: no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithObserver installs an instrumentation hook.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}
