// Package routeview is an in-memory playground for building a weighted
// route graph interactively and asking it for shortest paths.
//
// 🚀 What is routeview?
//
//	A small, deterministic library that brings together:
//		• Core primitives: insert vertices & directed weighted edges, remove them freely
//		• Matrix views: a dense adjacency snapshot with a sentinel ∞ for "no connection"
//		• Shortest paths: Dijkstra with early exit, path reconstruction and step hooks
//		• Visual export: a vis.js network page built from read-only graph queries
//
// ✨ Why choose routeview?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – sorted vertex order, stable tie-breaking, reproducible runs
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – attach an Observer (OnVisit, OnImprove) to watch the search
//
// Under the hood, everything is organized under four subpackages:
//
//	core/     — fundamental Graph and Edge types, mutation & read primitives
//	matrix/   — dense adjacency matrix snapshot + vertex index
//	dijkstra/ — label-setting shortest-path engine with observer hooks
//	viz/      — vis.js network export consuming core's read surface
//
// Quick ASCII example:
//
//	    A──4──B
//	     \    │
//	     10   3
//	       \  │
//	        ──C
//
//	shortest A→C is A→B→C with total cost 7, not the direct edge of 10.
//
// The cmd/routeview binary wires the pieces into the interactive prompt
// loop: enter vertices and edges, inspect the matrix, query routes, mutate,
// repeat.
//
//	go get github.com/katalvlaran/routeview
package routeview
