// Package dijkstra implements a label-setting shortest-path search between
// two vertices of a core.Graph.
//
// ShortestPath runs classic Dijkstra restricted to non-negative weights:
// vertices are finalized in increasing distance order off a min-heap,
// outgoing directed edges are relaxed, and the search stops early the
// iteration the target is dequeued. Predecessor links are walked backward
// to reconstruct the route.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — lazy decrease-key: stale heap entries are
//     pushed on improvement and skipped on pop.
//   - Space: O(V + E) for the distance/predecessor maps and the heap.
//
// Determinism: distance ties are broken by lexicographic vertex label, so
// identical graphs always visit in the same order.
//
// Tracing is decoupled from the algorithm: attach an Observer through
// WithObserver to receive step events (vertex finalized, tentative
// distance improved). NewTraceObserver adapts any io.Writer into the
// console trace the interactive driver prints.
//
// Unreachable targets are not an error: the Result carries an empty path
// and the Inf sentinel cost so callers can branch without unwrapping.
// Absent start or end vertices are an error (ErrUnknownVertex).
package dijkstra
