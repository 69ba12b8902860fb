// Package dijkstra: the label-setting search itself.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/routeview/core"
)

// ShortestPath computes the cheapest route from start to end over the
// directed edges of g.
//
// Returns:
//
//   - Result.Path: vertices from start to end inclusive; nil when end is
//     unreachable. start == end yields [start] without traversal.
//   - Result.Cost: summed weight along Path; 0 for start == end; Inf when
//     unreachable.
//   - err: ErrNilGraph, ErrUnknownVertex (start or end absent), or
//     ErrNegativeWeight from the upfront edge scan.
//
// The search finalizes one vertex per iteration in increasing distance
// order, breaking distance ties by lexicographic label, and stops the
// iteration end is dequeued. Parallel edges are all relaxed; the cheapest
// naturally wins. g is never mutated.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath(g *core.Graph, start, end string, opts ...Option) (Result, error) {
	// 1) Resolve options.
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs in a fixed order: graph, then membership.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return Result{}, fmt.Errorf("start %q: %w", start, ErrUnknownVertex)
	}
	if !g.HasVertex(end) {
		return Result{}, fmt.Errorf("end %q: %w", end, ErrUnknownVertex)
	}

	// 3) Fail fast on negative weights before touching any state.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return Result{}, fmt.Errorf("edge %s→%s weight=%d: %w", e.From, e.To, e.Weight, ErrNegativeWeight)
		}
	}

	// 4) Trivial query: no traversal needed when start is the target.
	if start == end {
		return Result{Path: []string{start}, Cost: 0}, nil
	}

	// 5) Run the label-setting loop.
	r := newRunner(g, start, end, cfg.Observer)
	r.run()

	// 6) Reconstruct the route from predecessor links.
	return r.result(), nil
}

// runner holds the mutable state of a single search.
type runner struct {
	g   *core.Graph
	end string
	obs Observer

	dist    map[string]int64  // vertex → best-known distance from start
	prev    map[string]string // vertex → predecessor on the best path
	visited map[string]bool   // vertex → distance finalized
	pq      nodePQ            // lazy decrease-key min-heap
}

func newRunner(g *core.Graph, start, end string, obs Observer) *runner {
	v := g.VertexCount()
	r := &runner{
		g:       g,
		end:     end,
		obs:     obs,
		dist:    make(map[string]int64, v),
		prev:    make(map[string]string, v),
		visited: make(map[string]bool, v),
		pq:      make(nodePQ, 0, v),
	}

	// Every vertex starts at the sentinel; only start is at zero.
	for _, id := range g.Vertices() {
		r.dist[id] = Inf
	}
	r.dist[start] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: start, dist: 0})

	return r
}

// run pops the closest unfinalized vertex, relaxes its outgoing edges, and
// stops once the target is finalized or the frontier empties.
func (r *runner) run() {
	var item *nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)

		// Skip stale entries left behind by lazy decrease-key.
		if r.visited[item.id] {
			continue
		}
		r.visited[item.id] = true
		r.obs.OnVisit(item.id, item.dist)

		// Early exit: the target's distance is final the moment it is
		// dequeued; nothing cheaper can still be on the heap.
		if item.id == r.end {
			return
		}

		r.relax(item.id)
	}
}

// relax attempts to improve every neighbor reachable over an outgoing edge
// of u. Finalized neighbors are skipped; parallel edges each get a chance.
func (r *runner) relax(u string) {
	var candidate int64
	for _, e := range r.g.OutEdges(u) {
		if r.visited[e.To] {
			continue
		}
		candidate = r.dist[u] + e.Weight
		if candidate >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = candidate
		r.prev[e.To] = u
		r.obs.OnImprove(u, e.To, candidate)
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: candidate})
	}
}

// result walks predecessor links backward from end. A target without a
// predecessor was never reached: empty path, sentinel cost.
func (r *runner) result() Result {
	if _, ok := r.prev[r.end]; !ok {
		return Result{Path: nil, Cost: Inf}
	}

	// Collect end→start, then reverse in place.
	path := []string{r.end}
	for cur := r.prev[r.end]; ; cur = r.prev[cur] {
		path = append(path, cur)
		if _, ok := r.prev[cur]; !ok {
			break // reached start: the only labeled vertex without a predecessor
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result{Path: path, Cost: r.dist[r.end]}
}

// nodeItem is a (vertex, distance) pair on the frontier heap.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by distance, then by label so
// ties resolve identically on every run.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
