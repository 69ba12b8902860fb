// Package core: Graph method implementations.
//
// Mutations (AddVertex, AddEdge, RemoveVertex) are total and never return
// errors. Reads hand out copies or freshly built slices so callers cannot
// mutate graph internals through a query result.
package core

import "sort"

// AddVertex inserts the vertex with the given label if absent.
// If the vertex already exists, this is a no-op (idempotent).
// Does not touch edges.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = struct{}{}
}

// HasVertex reports whether a vertex with the given label exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, exists := g.vertices[id]

	return exists
}

// AddEdge appends a directed edge from → to with the given weight to the
// source's outgoing list. Both endpoints are inserted into the vertex set
// if absent. Parallel edges between the same ordered pair are all retained
// in insertion order; no validation is performed on the weight.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) {
	// Ensure both endpoints are members.
	g.AddVertex(from)
	g.AddVertex(to)

	// Append to the insertion-ordered outgoing list.
	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight})
	g.edgeCount++

	// Maintain the reverse index for RemoveVertex.
	set, ok := g.inbound[to]
	if !ok {
		set = make(map[string]struct{})
		g.inbound[to] = set
	}
	set[from] = struct{}{}
}

// RemoveVertex deletes the vertex and every edge incident to it, in either
// direction. The vertex's own outgoing list is dropped wholesale; lists of
// other vertices are filtered via the inbound index, so only sources that
// actually reference id are rewritten. If the vertex is absent, this is a
// silent no-op.
// Complexity: O(deg(id)) incident edges plus the lengths of the rewritten lists.
func (g *Graph) RemoveVertex(id string) {
	if _, exists := g.vertices[id]; !exists {
		return
	}

	// Drop the outgoing list wholesale, unregistering id as a source of
	// each former target.
	for _, e := range g.adjacency[id] {
		g.edgeCount--
		if set, ok := g.inbound[e.To]; ok {
			delete(set, id)
			if len(set) == 0 {
				delete(g.inbound, e.To)
			}
		}
	}
	delete(g.adjacency, id)

	// Filter id out of every outgoing list that references it.
	for src := range g.inbound[id] {
		if src == id {
			continue // own list already dropped
		}
		out := g.adjacency[src]
		kept := out[:0]
		for _, e := range out {
			if e.To == id {
				g.edgeCount--
				continue
			}
			kept = append(kept, e)
		}
		if len(kept) == 0 {
			delete(g.adjacency, src)
		} else {
			g.adjacency[src] = kept
		}
	}
	delete(g.inbound, id)

	delete(g.vertices, id)
}

// OutEdges returns a copy of the outgoing edge list of id in insertion
// order. Absent vertices and vertices without edges both yield an empty
// slice, never nil-vs-present distinctions the caller must branch on.
// Complexity: O(deg(id)).
func (g *Graph) OutEdges(id string) []Edge {
	out := g.adjacency[id]
	cp := make([]Edge, len(out))
	copy(cp, out)

	return cp
}

// Vertices returns all vertex labels sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns a deterministic flat snapshot of every stored edge:
// sources in sorted order, each outgoing list in insertion order.
// Parallel edges appear as many times as they were added.
// Complexity: O(V log V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for _, src := range g.Vertices() {
		out = append(out, g.adjacency[src]...)
	}

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int {
	return len(g.vertices)
}

// EdgeCount returns the number of stored edges, duplicates included.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Clone returns a deep copy of the Graph. The clone shares no storage with
// the original; mutating one never affects the other.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := NewGraph(WithVertexHint(len(g.vertices)))
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
	}
	for src, out := range g.adjacency {
		cp := make([]Edge, len(out))
		copy(cp, out)
		clone.adjacency[src] = cp
	}
	for dst, set := range g.inbound {
		cpSet := make(map[string]struct{}, len(set))
		for src := range set {
			cpSet[src] = struct{}{}
		}
		clone.inbound[dst] = cpSet
	}
	clone.edgeCount = g.edgeCount

	return clone
}
