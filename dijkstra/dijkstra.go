// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices. It processes vertices in order of increasing
// distance using a min-heap priority queue, relaxing edges and updating
// distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Each heap operation (Push/Pop) costs O(log N), where N ≤ V + E. Simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for distance and predecessor tables.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - core.Graph rejects negative weights at AddEdge, so no pre-scan is needed here.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We never relax past MaxDistance, so vertices beyond it stay at +Inf.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and
//     discarding an entry on pop when its distance exceeds the recorded one.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/spgraph/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
// Each call returns a fresh Result; g is only read.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrOptionViolation).
//  3. source must lie in [0, V) (core.ErrOutOfRange).
//
// Options customization:
//
//   - WithReturnPath(): record predecessors for Result.PathTo.
//   - WithMaxDistance(x): vertices with distance > x are left at +Inf (x ≥ 0).
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are skipped (t > 0).
//   - WithOnVisit / WithOnRelax: observation hooks.
//
// The whole run executes under the graph's read lock (core.Graph.Read), so
// concurrent calls on one graph are safe and never observe a half-added edge.
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Validate source is a vertex
	if err := g.CheckVertex(source); err != nil {
		return nil, fmt.Errorf("dijkstra: source: %w", err)
	}

	var res *Result
	err := g.Read(func(adj core.Adjacency) error {
		r := newRunner(adj, source, cfg)
		r.process()
		res = r.result()

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	adj     core.Adjacency // read-only neighbor lists
	source  int
	options Options
	dist    []float64 // vertex → current best distance from source
	prev    []int     // vertex → predecessor; nil unless ReturnPath
	pq      nodePQ    // min-heap of entries, may hold stale ones
	stats   Stats
}

// newRunner sets up initial distances and pushes (0, source) into the heap.
func newRunner(adj core.Adjacency, source int, cfg Options) *runner {
	n := adj.Len()
	r := &runner{
		adj:     adj,
		source:  source,
		options: cfg,
		dist:    make([]float64, n),
		pq:      make(nodePQ, 0, n),
	}

	inf := math.Inf(1)
	for v := range r.dist {
		r.dist[v] = inf
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
		for v := range r.prev {
			r.prev[v] = NoPredecessor
		}
	}

	r.dist[source] = 0
	r.push(source, 0)

	return r
}

// process is the core loop: pop the closest entry, drop it if stale,
// otherwise settle the vertex and relax its edges. Ends when the heap is empty.
func (r *runner) process() {
	var item nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(nodeItem)
		r.stats.Pops++

		// A better distance was recorded after this entry was pushed.
		if item.dist > r.dist[item.id] {
			r.stats.StaleSkips++
			continue
		}

		r.options.OnVisit(item.id, item.dist)
		r.relax(item.id)
	}
}

// relax examines each edge of u and lowers neighbor distances where possible.
// Assumes r.dist[u] is final.
func (r *runner) relax(u int) {
	var (
		nb   core.Neighbor
		cand float64
	)
	for _, nb = range r.adj.Neighbors(u) {
		if nb.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		cand = r.dist[u] + nb.Weight
		if cand > r.options.MaxDistance {
			continue
		}
		// Strict comparison: equal distances never push duplicates.
		if cand >= r.dist[nb.To] {
			continue
		}

		r.dist[nb.To] = cand
		if r.prev != nil {
			r.prev[nb.To] = u
		}
		r.stats.Relaxations++
		r.options.OnRelax(u, nb.To, cand)

		r.push(nb.To, cand)
	}
}

func (r *runner) push(v int, d float64) {
	heap.Push(&r.pq, nodeItem{id: v, dist: d})
	r.stats.Pushes++
}

func (r *runner) result() *Result {
	return &Result{
		Source: r.source,
		Dist:   DistanceTable(r.dist),
		Prev:   r.prev,
		Stats:  r.stats,
	}
}

// nodeItem is a (vertex, tentative distance) heap entry.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending. Ties are left
// in whatever order container/heap produces; final distances do not depend on it.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
