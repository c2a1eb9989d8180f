package graphspace

import (
	"math"
	"sort"
	"strconv"
)

// Directed reports whether new edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// AddVertex inserts a vertex; adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID for an empty id.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// AddEdge connects from and to at the given cost, creating missing endpoints.
//
// Steps:
//  1. Validate IDs, cost and the loop constraint.
//  2. Ensure both vertices exist.
//  3. Under the write lock, check the multi-edge constraint.
//  4. Allocate the next "e<N>" ID, store the edge and link adjacency
//     (both endpoints for undirected edges).
//
// Returns the new edge ID or ErrEmptyVertexID, ErrNegativeCost,
// ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized, O(deg(from)) for the multi-edge check.
func (g *Graph) AddEdge(from, to string, cost float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if cost < 0 || math.IsNaN(cost) {
		return "", ErrNegativeCost
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti && g.connectedLocked(from, to) {
		return "", ErrMultiEdgeNotAllowed
	}
	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}

	g.nextEdgeID++
	e := &Edge{
		ID:       "e" + strconv.FormatUint(g.nextEdgeID, 10),
		From:     from,
		To:       to,
		Cost:     cost,
		Directed: g.directed,
	}
	g.edges[e.ID] = e
	g.out[from] = append(g.out[from], e)
	if !e.Directed && from != to {
		g.out[to] = append(g.out[to], e)
	}

	return e.ID, nil
}

// connectedLocked reports whether an edge already leads from -> to.
// Caller must hold g.mu.
func (g *Graph) connectedLocked(from, to string) bool {
	for _, e := range g.out[from] {
		if other(e, from) == to {
			return true
		}
	}

	return false
}

// other returns the endpoint reached when traversing e away from v.
func other(e *Edge, v string) string {
	if !e.Directed && e.To == v {
		return e.From
	}

	return e.To
}

// Edge returns a copy of the edge with the given ID.
func (g *Graph) Edge(id string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *e, nil
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// edgeSeq extracts the numeric part of an "e<N>" edge ID.
func edgeSeq(id string) uint64 {
	n, _ := strconv.ParseUint(id[1:], 10, 64)
	return n
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Neighbors returns copies of the edges traversable from id, in insertion
// order. Incoming directed edges are not included.
// Returns ErrVertexNotFound for an unknown id.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge, 0, len(g.out[id]))
	for _, e := range g.out[id] {
		out = append(out, *e)
	}

	return out, nil
}
