// Package graphspace defines the Graph, Edge and option types and the
// sentinel errors used when a weighted graph serves as a search state space.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrNegativeCost        - edge cost is negative or NaN.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrNoGoals             - ShortestPath called without goal vertices.
package graphspace

import (
	"errors"
	"sync"
)

// Sentinel errors for graph construction and search.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("graphspace: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graphspace: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graphspace: edge not found")

	// ErrNegativeCost indicates an edge cost below zero (or NaN), which the
	// search engine does not support.
	ErrNegativeCost = errors.New("graphspace: edge cost must be non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("graphspace: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when
	// multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("graphspace: multi-edges not allowed")

	// ErrNoGoals indicates that ShortestPath was given no goal vertices.
	ErrNoGoals = errors.New("graphspace: at least one goal vertex is required")
)

// Edge is a weighted connection between two vertices.
//
// Undirected edges are traversable both ways at the same cost.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Cost is the non-negative price of traversing the edge.
	Cost float64

	// Directed marks a one-way edge.
	Directed bool
}

// GraphOption configures a Graph at creation.
type GraphOption func(g *Graph)

// WithDirected sets whether new edges are one-way (true) or two-way (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a thread-safe weighted graph whose vertices are search states and
// whose edges are transitions. The zero value is not usable; call NewGraph.
type Graph struct {
	mu sync.RWMutex // guards everything below

	directed   bool
	allowMulti bool
	allowLoops bool

	nextEdgeID uint64
	vertices   map[string]struct{}
	edges      map[string]*Edge

	// out[v] lists the edges traversable from v in insertion order.
	// Undirected edges appear under both endpoints.
	out map[string][]*Edge
}

// NewGraph creates an empty Graph. By default edges are undirected, and
// loops and multi-edges are rejected.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		edges:    make(map[string]*Edge),
		out:      make(map[string][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
