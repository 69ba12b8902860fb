// Package matrix: dense adjacency snapshot builder and lookups.
package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/routeview/core"
)

// Inf is the sentinel weight meaning "no connection". It is larger than
// any sum of real weights the engine can produce, so it never collides
// with a legitimate cell value.
const Inf int64 = math.MaxInt64

// AdjacencyMatrix is a square snapshot of pairwise edge weights.
//
// Order holds the vertex labels sorted ascending; Index is the reverse
// mapping label → row/column. Dist[i][j] is the weight of the last edge
// observed between Order[i] and Order[j] in either direction, or Inf when
// no edge connects the pair. The snapshot carries no reference back to the
// graph it was built from.
type AdjacencyMatrix struct {
	// Dist is the row-major weight table.
	Dist [][]int64

	// Index maps a vertex label to its row/column position.
	Index map[string]int

	// Order lists vertex labels sorted ascending; Index[Order[i]] == i.
	Order []string
}

// Build constructs a fresh AdjacencyMatrix from the current state of g.
//
// Vertices are ordered lexicographically. Every cell starts at Inf, the
// diagonal included; iterating core.Edges() in its deterministic order,
// each edge u→v writes its weight into both (u,v) and (v,u), so the last
// edge processed for an unordered pair wins. Self-loops write their
// diagonal cell once.
//
// Returns ErrNilGraph when g is nil. Never mutates g.
// Complexity: O(V² + E) time, O(V²) space.
func Build(g *core.Graph) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	order := g.Vertices()
	n := len(order)

	index := make(map[string]int, n)
	for i, id := range order {
		index[id] = i
	}

	// Allocate the square table, all cells at the sentinel.
	dist := make([][]int64, n)
	for i := range dist {
		row := make([]int64, n)
		for j := range row {
			row[j] = Inf
		}
		dist[i] = row
	}

	// Mirror every directed edge into both triangle positions.
	var ui, vi int
	for _, e := range g.Edges() {
		ui = index[e.From]
		vi = index[e.To]
		dist[ui][vi] = e.Weight
		dist[vi][ui] = e.Weight
	}

	return &AdjacencyMatrix{Dist: dist, Index: index, Order: order}, nil
}

// Dimension returns the matrix dimension (the vertex count at build time).
// Complexity: O(1).
func (m *AdjacencyMatrix) Dimension() int {
	return len(m.Order)
}

// At returns the cell at row i, column j.
// Returns ErrOutOfRange when either index falls outside [0, Dimension).
// Complexity: O(1).
func (m *AdjacencyMatrix) At(i, j int) (int64, error) {
	n := len(m.Order)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("At(%d,%d) with dimension %d: %w", i, j, n, ErrOutOfRange)
	}

	return m.Dist[i][j], nil
}

// Weight returns the snapshot weight between the vertices labeled u and v,
// Inf when no edge connects them.
// Returns ErrUnknownVertex when either label is absent from the snapshot.
// Complexity: O(1).
func (m *AdjacencyMatrix) Weight(u, v string) (int64, error) {
	ui, ok := m.Index[u]
	if !ok {
		return 0, fmt.Errorf("Weight(%q,%q): %w", u, v, ErrUnknownVertex)
	}
	vi, ok := m.Index[v]
	if !ok {
		return 0, fmt.Errorf("Weight(%q,%q): %w", u, v, ErrUnknownVertex)
	}

	return m.Dist[ui][vi], nil
}

// IndexOf returns the row/column position of the vertex labeled u.
// Returns ErrUnknownVertex when the label is absent.
// Complexity: O(1).
func (m *AdjacencyMatrix) IndexOf(u string) (int, error) {
	i, ok := m.Index[u]
	if !ok {
		return 0, fmt.Errorf("IndexOf(%q): %w", u, ErrUnknownVertex)
	}

	return i, nil
}

// VertexAt returns the vertex label at row/column position i.
// Returns ErrOutOfRange when i falls outside [0, Dimension).
// Complexity: O(1).
func (m *AdjacencyMatrix) VertexAt(i int) (string, error) {
	if i < 0 || i >= len(m.Order) {
		return "", fmt.Errorf("VertexAt(%d) with dimension %d: %w", i, len(m.Order), ErrOutOfRange)
	}

	return m.Order[i], nil
}
