// Package core: Graph, Edge, and construction options.
//
// This file declares the Edge value type, the Graph container, GraphOption,
// and the NewGraph constructor. Method implementations live in graph.go.
package core

// Edge is a directed, weighted connection between two vertices.
//
// From and To are vertex labels; Weight is a non-negative cost. Edge is a
// plain value: copying it never aliases graph internals.
type Edge struct {
	// From is the source vertex label.
	From string

	// To is the destination vertex label.
	To string

	// Weight is the cost of traversing the edge.
	Weight int64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithVertexHint pre-sizes internal storage for roughly n vertices.
// The hint is a capacity hint only, never a cap: the graph grows freely
// past it. Non-positive hints are ignored.
func WithVertexHint(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.hint = n
		}
	}
}

// Graph is the core in-memory graph data structure.
//
// vertices is the membership set. adjacency maps a source vertex to its
// outgoing edge list in insertion order, duplicates included. inbound is a
// reverse index (destination → set of sources) maintained so RemoveVertex
// touches only lists that actually reference the removed vertex, instead
// of scanning every outgoing list.
type Graph struct {
	hint int // vertex-count hint from construction

	vertices  map[string]struct{}            // vertex label → membership
	adjacency map[string][]Edge              // source → outgoing edges, insertion order
	inbound   map[string]map[string]struct{} // destination → sources with ≥1 edge to it

	edgeCount int // total stored edges, duplicates included
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.vertices = make(map[string]struct{}, g.hint)
	g.adjacency = make(map[string][]Edge, g.hint)
	g.inbound = make(map[string]map[string]struct{}, g.hint)

	return g
}
