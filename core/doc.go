// Package core provides the fundamental in-memory route graph.
//
// The Graph is a directed, weighted multigraph keyed by string vertex
// labels. Outgoing edges are kept in insertion order and parallel edges
// between the same ordered pair are all retained; consumers that need a
// single weight per pair (the matrix snapshot) decide their own policy.
//
// Mutations are total functions: AddVertex, AddEdge and RemoveVertex never
// fail, silently tolerating absent or already-present vertices. Query
// packages (matrix, dijkstra) surface their own sentinel errors when a
// referenced vertex is missing.
//
// The Graph is exclusively owned by a single driving goroutine; it carries
// no locks and must not be shared across goroutines.
//
// Determinism contract: Vertices returns labels sorted ascending, and
// Edges flattens adjacency in (sorted source, insertion order) sequence,
// so every consumer observes the same order on every call.
package core
