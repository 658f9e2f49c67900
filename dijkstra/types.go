// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on core.Graph.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/spgraph/core"
)

// Sentinel errors returned by the Dijkstra implementation.
// An out-of-range source vertex is reported with core.ErrOutOfRange.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrOptionViolation indicates that an invalid Option was supplied
	// (negative MaxDistance, non-positive InfEdgeThreshold, NaN values).
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrNoPath indicates that PathTo was asked for a vertex the source cannot reach.
	ErrNoPath = errors.New("dijkstra: no path to vertex")

	// ErrNoPredecessors indicates that PathTo was called on a Result computed
	// without WithReturnPath.
	ErrNoPredecessors = errors.New("dijkstra: predecessors were not recorded")
)

// NoPredecessor marks the source vertex and unreachable vertices in Result.Prev.
const NoPredecessor = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath       – if true, Result.Prev is filled; otherwise it is nil.
// MaxDistance      – vertices farther than this are left at +Inf. Must be ≥ 0.
// InfEdgeThreshold – edges with weight ≥ this are impassable. Must be > 0.
// OnVisit          – called once for every settled vertex, in settle order.
// OnRelax          – called for every relaxation that lowered a distance.
type Options struct {
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
	OnVisit          func(v int, dist float64)
	OnRelax          func(from, to int, dist float64)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
// Invalid values are recorded and surfaced as ErrOptionViolation when
// Dijkstra runs.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with the defaults:
//   - ReturnPath:       false (Result.Prev is nil).
//   - MaxDistance:      +Inf (explore everything reachable).
//   - InfEdgeThreshold: +Inf (no edge is impassable).
//   - OnVisit, OnRelax: no-op.
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		OnVisit:          func(int, float64) {},
		OnRelax:          func(int, int, float64) {},
	}
}

// WithReturnPath enables recording of predecessors so paths can be rebuilt
// with Result.PathTo.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed max keep +Inf.
//
//	max ≥ 0:        limit exploration
//	max < 0 or NaN: ErrOptionViolation
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%g)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges
// are considered non-traversable.
//
//	threshold > 0:         edges with weight ≥ threshold are skipped
//	threshold ≤ 0 or NaN:  ErrOptionViolation
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive (%g)", ErrOptionViolation, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithOnVisit registers a callback run when a vertex's distance becomes final.
func WithOnVisit(fn func(v int, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnRelax registers a callback run whenever an edge from→to lowers the
// tentative distance of to.
func WithOnRelax(fn func(from, to int, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// DistanceTable maps each vertex (the index) to its shortest distance from
// the source. Unreachable vertices hold +Inf.
type DistanceTable []float64

// Get returns the distance to v, or core.ErrOutOfRange for an invalid vertex.
func (t DistanceTable) Get(v int) (float64, error) {
	if v < 0 || v >= len(t) {
		return 0, fmt.Errorf("dijkstra: distance of %d: %w", v, core.ErrOutOfRange)
	}

	return t[v], nil
}

// Reachable reports whether v is a valid vertex with a finite distance.
func (t DistanceTable) Reachable(v int) bool {
	return v >= 0 && v < len(t) && !math.IsInf(t[v], 1)
}

// Map returns the table as a vertex → distance map.
func (t DistanceTable) Map() map[int]float64 {
	m := make(map[int]float64, len(t))
	for v, d := range t {
		m[v] = d
	}

	return m
}

// Stats counts priority-queue work done by one run.
type Stats struct {
	Pushes      int // entries pushed, including the seeded source
	Pops        int // entries popped, stale or not
	StaleSkips  int // popped entries whose distance was already superseded
	Relaxations int // edge relaxations that lowered a distance
}

// Result holds the outcome of a Dijkstra run:
//   - Source: the start vertex.
//   - Dist:   shortest distance per vertex (+Inf when unreachable).
//   - Prev:   predecessor on one shortest path (NoPredecessor for the source
//     and for unreachable vertices); nil unless WithReturnPath was given.
//   - Stats:  priority-queue counters.
type Result struct {
	Source int
	Dist   DistanceTable
	Prev   []int
	Stats  Stats
}

// PathTo reconstructs the shortest path from the source to dest, both ends
// included. Requires WithReturnPath.
func (r *Result) PathTo(dest int) ([]int, error) {
	if r.Prev == nil {
		return nil, ErrNoPredecessors
	}
	if dest < 0 || dest >= len(r.Dist) {
		return nil, fmt.Errorf("dijkstra: path to %d: %w", dest, core.ErrOutOfRange)
	}
	if !r.Dist.Reachable(dest) {
		return nil, fmt.Errorf("%w: %d from %d", ErrNoPath, dest, r.Source)
	}

	// build reversed path
	path := []int{}
	for cur := dest; cur != NoPredecessor; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
