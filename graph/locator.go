package graph

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Locator is the nearest-node backend behind the merge engine.
//
// The Graph drives it: Insert on every append, Move on every position
// smoothing step, Nearest on every placement. Implementations only answer
// "which known node is closest"; the merge-radius decision stays in the
// Graph. The built-in implementation is a linear scan; package spatial
// provides an R-tree for larger maps.
type Locator interface {
	// Insert registers node id at pos. Ids arrive densely, in order.
	Insert(id int, pos orb.Point)

	// Move re-registers node id after its position changed from from to to.
	Move(id int, from, to orb.Point)

	// Nearest returns the id of the node closest to pos and its squared
	// Euclidean distance. ok is false only when no node is registered.
	Nearest(pos orb.Point) (id int, sqDist float64, ok bool)
}

// linearLocator is the default Locator: a brute-force scan over all node
// positions. Exact, allocation-free, and ties always break to the lowest
// id (scan order). Fine for the tens-to-hundreds of nodes a single
// exploration session produces.
type linearLocator struct {
	pts []orb.Point
}

func newLinearLocator() *linearLocator { return &linearLocator{} }

// Insert records pos at index id, growing the slice as needed.
func (l *linearLocator) Insert(id int, pos orb.Point) {
	for len(l.pts) <= id {
		l.pts = append(l.pts, orb.Point{})
	}
	l.pts[id] = pos
}

// Move updates the stored position of id.
func (l *linearLocator) Move(id int, _, to orb.Point) {
	l.pts[id] = to
}

// Nearest scans all positions for the minimum squared distance to pos.
// Strict less keeps the first (lowest-id) node on ties.
// Complexity: O(n).
func (l *linearLocator) Nearest(pos orb.Point) (int, float64, bool) {
	if len(l.pts) == 0 {
		return NoNode, 0, false
	}

	best := NoNode
	bestSq := math.Inf(1)
	for i, p := range l.pts {
		if sq := planar.DistanceSquared(pos, p); sq < bestSq {
			bestSq = sq
			best = i
		}
	}

	return best, bestSq, true
}
