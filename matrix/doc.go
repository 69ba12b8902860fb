// Package matrix materializes a core.Graph into a dense, vertex-indexed
// distance matrix for display and inspection.
//
// Build snapshots the graph fresh on every call: vertices are ordered
// lexicographically, the matrix is square with dimension equal to the
// vertex count, and cells without a connecting edge hold the Inf sentinel
// (math.MaxInt64), including the diagonal unless a self-loop was added.
//
// Two compatibility quirks are preserved on purpose and confined here:
//
//   - Every directed edge is mirrored into both triangle positions, so the
//     snapshot is symmetric even though the underlying graph is directed.
//   - When several edges connect the same unordered pair, the last edge in
//     the deterministic core.Edges() order wins the cell.
//
// Neither quirk leaks into the dijkstra package, which traverses directed
// adjacency directly.
//
// Errors (sentinel, matched via errors.Is):
//
//	ErrNilGraph      - nil *core.Graph passed to Build.
//	ErrUnknownVertex - label-based lookup on an absent vertex.
//	ErrOutOfRange    - positional lookup outside the matrix bounds.
package matrix
