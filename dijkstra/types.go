// Package dijkstra: result type, sentinel errors, options and observer.
package dijkstra

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// Inf is the sentinel cost meaning "unreachable". It matches matrix.Inf so
// both query surfaces speak the same "no connection" value.
const Inf int64 = math.MaxInt64

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownVertex indicates that the start or end vertex is not a
	// member of the graph's vertex set.
	ErrUnknownVertex = errors.New("dijkstra: unknown vertex")

	// ErrNegativeWeight indicates that a negative edge weight was found
	// during the upfront scan; Dijkstra requires non-negative weights.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Result is the outcome of a single shortest-path query.
//
// Path lists the vertices from start to end inclusive; it is nil when end
// is unreachable. Cost is the summed weight along Path, 0 when start equals
// end, and Inf when unreachable.
type Result struct {
	Path []string
	Cost int64
}

// Reachable reports whether the query found a route to the target.
func (r Result) Reachable() bool {
	return r.Cost != Inf
}

// Observer receives step events while the search runs. Implementations
// must be cheap; they execute inline on the algorithm's hot path.
type Observer interface {
	// OnVisit fires when a vertex is dequeued and its distance finalized.
	OnVisit(id string, dist int64)

	// OnImprove fires when relaxing from → to lowers to's tentative
	// distance to dist.
	OnImprove(from, to string, dist int64)
}

// nopObserver is the default Observer; it discards every event.
type nopObserver struct{}

func (nopObserver) OnVisit(string, int64)           {}
func (nopObserver) OnImprove(string, string, int64) {}

// traceObserver renders step events as console-style trace lines.
type traceObserver struct {
	w io.Writer
}

// NewTraceObserver returns an Observer that writes one line per step event
// to w, in the format the interactive driver shows:
//
//	visiting A (distance 0)
//	updated B via A (distance 4)
func NewTraceObserver(w io.Writer) Observer {
	return &traceObserver{w: w}
}

func (t *traceObserver) OnVisit(id string, dist int64) {
	fmt.Fprintf(t.w, "visiting %s (distance %d)\n", id, dist)
}

func (t *traceObserver) OnImprove(from, to string, dist int64) {
	fmt.Fprintf(t.w, "updated %s via %s (distance %d)\n", to, from, dist)
}

// Options configures a single ShortestPath run.
type Options struct {
	// Observer receives step events; defaults to a no-op.
	Observer Observer
}

// Option is a functional option for ShortestPath.
type Option func(*Options)

// WithObserver attaches obs to the run. A nil obs is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// defaultOptions returns the baseline configuration: silent run.
func defaultOptions() Options {
	return Options{Observer: nopObserver{}}
}
