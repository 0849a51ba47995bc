package pathfind

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/paulmach/orb/planar"

	"github.com/roverlab/topomap/graph"
)

// ToNearest computes the shortest path from node from to the closest node
// satisfying pred, over a snapshot of g.
//
// The returned path is inclusive: it begins with from and ends at the
// selected goal; a source that itself satisfies pred yields [from].
// An empty graph yields an empty path and nil error (there is nothing to
// search, which is not a failure). ErrSourceOutOfRange reports an invalid
// source on a non-empty graph; ErrNoQualifyingNode reports that no
// reachable node qualifies.
func ToNearest(g *graph.Graph, from int, pred Predicate, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if pred == nil {
		return nil, ErrNilPredicate
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil, nil
	}
	if from < 0 || from >= len(nodes) {
		return nil, fmt.Errorf("%w: %d", ErrSourceOutOfRange, from)
	}

	var dist []float64
	var prev []int
	if o.LegacyQueue {
		dist, prev = relaxFIFO(nodes, from)
	} else {
		dist, prev = relaxDijkstra(nodes, from)
	}

	goal, ok := selectGoal(nodes, dist, pred)
	if !ok {
		return nil, ErrNoQualifyingNode
	}

	return buildPath(prev, from, goal), nil
}

// ToNextUnknown computes the shortest path from node from to the nearest
// frontier node — one with at least one still-unexplored direction.
func ToNextUnknown(g *graph.Graph, from int, opts ...Option) ([]int, error) {
	return ToNearest(g, from, graph.Node.HasUnknown, opts...)
}

// ToNextObject computes the shortest path from node from to the nearest
// node hosting a detected object.
func ToNextObject(g *graph.Graph, from int, opts ...Option) ([]int, error) {
	return ToNearest(g, from, func(n graph.Node) bool { return n.HasObject }, opts...)
}

// weight is the cost of traversing the edge between two linked nodes:
// squared Euclidean distance between their positions.
func weight(a, b graph.Node) float64 {
	return planar.DistanceSquared(a.Pos, b.Pos)
}

// relaxDijkstra runs exact Dijkstra from source over the snapshot using a
// min-heap with lazy decrease-key: improvements push duplicate heap entries
// and stale ones are skipped on pop.
// Returns per-node distances (+Inf if unreachable) and predecessor ids
// (graph.NoNode if none).
func relaxDijkstra(nodes []graph.Node, source int) ([]float64, []int) {
	dist, prev := newRelaxState(len(nodes), source)
	visited := make([]bool, len(nodes))

	pq := make(nodePQ, 0, len(nodes))
	heap.Init(&pq)
	heap.Push(&pq, &pqItem{id: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*pqItem)
		u := item.id
		if visited[u] {
			continue // stale entry
		}
		visited[u] = true

		for d := graph.North; d <= graph.West; d++ {
			v, ok := nodes[u].Neighbors[d].Connected()
			if !ok {
				continue
			}
			if alt := dist[u] + weight(nodes[u], nodes[v]); alt < dist[v] {
				dist[v] = alt
				prev[v] = u
				heap.Push(&pq, &pqItem{id: v, dist: alt})
			}
		}
	}

	return dist, prev
}

// relaxFIFO is the legacy engine: relaxation driven by a FIFO queue instead
// of a priority queue. A neighbor is re-enqueued whenever its tentative
// distance improves, but a node is processed at most once — a later, shorter
// route into an already-visited node updates its recorded distance yet never
// propagates through it. Exact on uniform weights; an approximation
// otherwise.
func relaxFIFO(nodes []graph.Node, source int) ([]float64, []int) {
	dist, prev := newRelaxState(len(nodes), source)
	visited := make([]bool, len(nodes))

	queue := make([]int, 0, len(nodes))
	queue = append(queue, source)

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if visited[u] {
			continue
		}
		visited[u] = true

		for d := graph.North; d <= graph.West; d++ {
			v, ok := nodes[u].Neighbors[d].Connected()
			if !ok {
				continue
			}
			if alt := dist[u] + weight(nodes[u], nodes[v]); alt < dist[v] {
				dist[v] = alt
				prev[v] = u
				queue = append(queue, v)
			}
		}
	}

	return dist, prev
}

// newRelaxState allocates dist/prev arrays initialized to +Inf/NoNode,
// with dist[source] = 0.
func newRelaxState(n, source int) ([]float64, []int) {
	dist := make([]float64, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = graph.NoNode
	}
	dist[source] = 0

	return dist, prev
}

// selectGoal scans all nodes in id order and picks the qualifying node with
// the minimum finite distance. Strict less keeps the lowest id on ties.
// ok is false when no qualifying node was reached.
func selectGoal(nodes []graph.Node, dist []float64, pred Predicate) (int, bool) {
	goal := graph.NoNode
	best := math.Inf(1)
	for i := range nodes {
		if pred(nodes[i]) && dist[i] < best {
			best = dist[i]
			goal = i
		}
	}

	return goal, goal != graph.NoNode
}

// buildPath walks predecessor links from goal back to from and reverses the
// result into source→goal order.
func buildPath(prev []int, from, goal int) []int {
	path := []int{goal}
	for cur := goal; cur != from; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// pqItem pairs a node id with its tentative distance for heap ordering.
type pqItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *pqItem ordered by dist ascending, used with the
// lazy-decrease-key strategy: outdated entries stay in the heap and are
// skipped when popped.
type nodePQ []*pqItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
