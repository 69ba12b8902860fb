// Package dijkstra_test contains unit tests for the shortest-path engine:
// input validation, path correctness on directed graphs, unreachable
// targets, tie-breaking determinism, and observer event ordering.
package dijkstra_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/routeview/core"
	"github.com/katalvlaran/routeview/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestShortestPath_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestPath(nil, "A", "B")
	if err != dijkstra.ErrNilGraph {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
}

func TestShortestPath_UnknownStart(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("B")
	_, err := dijkstra.ShortestPath(g, "X", "B")
	if !errorsIs(err, dijkstra.ErrUnknownVertex) {
		t.Fatalf("Expected ErrUnknownVertex for absent start, got %v", err)
	}
}

func TestShortestPath_UnknownEnd(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("A")
	_, err := dijkstra.ShortestPath(g, "A", "X")
	if !errorsIs(err, dijkstra.ErrUnknownVertex) {
		t.Fatalf("Expected ErrUnknownVertex for absent end, got %v", err)
	}
}

func TestShortestPath_NegativeWeightDetectedEarly(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", -5)
	_, err := dijkstra.ShortestPath(g, "A", "B")
	if !errorsIs(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("Expected ErrNegativeWeight, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: Small directed graphs, path correctness.
// ------------------------------------------------------------------------

func TestShortestPath_TriangleTakesDetour(t *testing.T) {
	// A→B(4), B→C(3), A→C(10): best route to C is the detour, cost 7.
	g := core.NewGraph()
	g.AddEdge("A", "B", 4)
	g.AddEdge("B", "C", 3)
	g.AddEdge("A", "C", 10)

	res, err := dijkstra.ShortestPath(g, "A", "C")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
	if res.Cost != 7 {
		t.Errorf("Cost = %d; want %d", res.Cost, 7)
	}
	if !res.Reachable() {
		t.Error("Reachable() = false; want true")
	}
}

func TestShortestPath_StartEqualsEnd(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("A")
	g.AddEdge("A", "B", 1)

	res, err := dijkstra.ShortestPath(g, "A", "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
	if res.Cost != 0 {
		t.Errorf("Cost = %d; want %d", res.Cost, 0)
	}
}

func TestShortestPath_DirectedEdgesOnly(t *testing.T) {
	// Only A→B exists; the reverse query must report unreachable even
	// though the matrix snapshot would show a symmetric cell.
	g := core.NewGraph()
	g.AddEdge("A", "B", 4)

	res, err := dijkstra.ShortestPath(g, "B", "A")
	if err != nil {
		t.Fatal(err)
	}
	if res.Path != nil {
		t.Errorf("Path = %v; want nil", res.Path)
	}
	if res.Cost != dijkstra.Inf {
		t.Errorf("Cost = %d; want Inf sentinel", res.Cost)
	}
	if res.Reachable() {
		t.Error("Reachable() = true; want false")
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddVertex("Z")

	res, err := dijkstra.ShortestPath(g, "A", "Z")
	if err != nil {
		t.Fatal(err)
	}
	if res.Path != nil || res.Cost != dijkstra.Inf {
		t.Errorf("Expected empty path with Inf cost, got (%v, %d)", res.Path, res.Cost)
	}
}

func TestShortestPath_ParallelEdgesCheapestWins(t *testing.T) {
	// Duplicate A→B edges: relaxation considers both, the cheaper wins.
	g := core.NewGraph()
	g.AddEdge("A", "B", 9)
	g.AddEdge("A", "B", 2)

	res, err := dijkstra.ShortestPath(g, "A", "B")
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 2 {
		t.Errorf("Cost = %d; want %d", res.Cost, 2)
	}
}

func TestShortestPath_MediumDirectedGraph(t *testing.T) {
	// A→B(2), A→C(1), C→B(1), B→D(3), C→D(5): best A→D is A→C→B→D = 5.
	g := core.NewGraph()
	g.AddEdge("A", "B", 2)
	g.AddEdge("A", "C", 1)
	g.AddEdge("C", "B", 1)
	g.AddEdge("B", "D", 3)
	g.AddEdge("C", "D", 5)

	res, err := dijkstra.ShortestPath(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "C", "B", "D"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
	if res.Cost != 5 {
		t.Errorf("Cost = %d; want %d", res.Cost, 5)
	}
}

func TestShortestPath_ZeroWeightEdges(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)

	res, err := dijkstra.ShortestPath(g, "A", "C")
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 0 {
		t.Errorf("Cost = %d; want %d", res.Cost, 0)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
}

// ------------------------------------------------------------------------
// 3. Determinism: Equal-distance frontiers must resolve identically.
// ------------------------------------------------------------------------

func TestShortestPath_DeterministicTieBreak(t *testing.T) {
	// Two cost-2 routes to D: via B and via C. Lexicographic tie-breaking
	// finalizes B before C, so B must be the recorded predecessor.
	build := func() *core.Graph {
		g := core.NewGraph()
		g.AddEdge("A", "C", 1)
		g.AddEdge("A", "B", 1)
		g.AddEdge("B", "D", 1)
		g.AddEdge("C", "D", 1)

		return g
	}

	first, err := dijkstra.ShortestPath(build(), "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D"}; !reflect.DeepEqual(first.Path, want) {
		t.Errorf("Path = %v; want %v", first.Path, want)
	}

	// Same graph, same query, many runs: identical output every time.
	for i := 0; i < 20; i++ {
		res, err := dijkstra.ShortestPath(build(), "A", "D")
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(res, first) {
			t.Fatalf("run %d diverged: %+v vs %+v", i, res, first)
		}
	}
}

// ------------------------------------------------------------------------
// 4. Observer: Step events fire in visit order and never mutate results.
// ------------------------------------------------------------------------

// recordingObserver appends a compact line per event.
type recordingObserver struct {
	events []string
}

func (r *recordingObserver) OnVisit(id string, dist int64) {
	r.events = append(r.events, "visit "+id)
}

func (r *recordingObserver) OnImprove(from, to string, dist int64) {
	r.events = append(r.events, "improve "+from+"->"+to)
}

func TestShortestPath_ObserverEventOrder(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 4)
	g.AddEdge("B", "C", 3)
	g.AddEdge("A", "C", 10)

	rec := &recordingObserver{}
	res, err := dijkstra.ShortestPath(g, "A", "C", dijkstra.WithObserver(rec))
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 7 {
		t.Errorf("Cost = %d; want %d", res.Cost, 7)
	}

	want := []string{
		"visit A",
		"improve A->B",
		"improve A->C",
		"visit B",
		"improve B->C",
		"visit C",
	}
	if !reflect.DeepEqual(rec.events, want) {
		t.Errorf("events = %v; want %v", rec.events, want)
	}
}

func TestShortestPath_EarlyExitSkipsBeyondTarget(t *testing.T) {
	// D sits beyond C; once C is finalized the search must stop, so D is
	// never visited.
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("C", "D", 1)

	rec := &recordingObserver{}
	if _, err := dijkstra.ShortestPath(g, "A", "C", dijkstra.WithObserver(rec)); err != nil {
		t.Fatal(err)
	}
	for _, ev := range rec.events {
		if ev == "visit D" || strings.Contains(ev, "->D") {
			t.Fatalf("search explored past the target: %v", rec.events)
		}
	}
}

func TestNewTraceObserver_Format(t *testing.T) {
	var sb strings.Builder
	obs := dijkstra.NewTraceObserver(&sb)
	obs.OnVisit("A", 0)
	obs.OnImprove("A", "B", 4)

	want := "visiting A (distance 0)\nupdated B via A (distance 4)\n"
	if sb.String() != want {
		t.Errorf("trace = %q; want %q", sb.String(), want)
	}
}

// ------------------------------------------------------------------------
// 5. Purity: The query must not mutate the graph.
// ------------------------------------------------------------------------

func TestShortestPath_DoesNotMutateGraph(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 4)
	g.AddEdge("B", "C", 3)

	beforeVerts := g.Vertices()
	beforeEdges := g.Edges()

	if _, err := dijkstra.ShortestPath(g, "A", "C"); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(g.Vertices(), beforeVerts) {
		t.Error("vertex set changed during query")
	}
	if !reflect.DeepEqual(g.Edges(), beforeEdges) {
		t.Error("edge set changed during query")
	}
}

// ------------------------------------------------------------------------
// 6. Test Helper.
// ------------------------------------------------------------------------

// errorsIs is a tiny local stand-in for errors.Is to keep imports minimal.
func errorsIs(err, target error) bool {
	for err != nil {
		if err == target {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}

	return false
}
