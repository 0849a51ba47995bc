package spatial

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// R-tree node fan-out. 2-D, standard min/max entries per internal node.
const (
	treeDim = 2
	treeMin = 25
	treeMax = 50
)

// pointTol is the half-side of the degenerate rectangle a node position is
// stored as; rtreego rectangles must have positive extent.
const pointTol = 1e-9

// entry wraps one node position for R-tree storage.
type entry struct {
	id   int
	pos  orb.Point
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect { return e.rect }

// Index is an R-tree over node positions implementing graph.Locator.
// It is not safe for concurrent use on its own; the owning Graph serializes
// access under its lock.
type Index struct {
	tree    *rtreego.Rtree
	entries map[int]*entry
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		tree:    rtreego.NewTree(treeDim, treeMin, treeMax),
		entries: make(map[int]*entry),
	}
}

// Len returns the number of indexed nodes.
func (x *Index) Len() int { return len(x.entries) }

// Insert registers node id at pos.
func (x *Index) Insert(id int, pos orb.Point) {
	e := &entry{id: id, pos: pos, rect: toRect(pos)}
	x.entries[id] = e
	x.tree.Insert(e)
}

// Move re-registers node id after a position-smoothing step. The R-tree has
// no update primitive, so the entry is deleted and re-inserted.
func (x *Index) Move(id int, _, to orb.Point) {
	e, ok := x.entries[id]
	if !ok {
		return
	}
	x.tree.Delete(e)
	e.pos = to
	e.rect = toRect(to)
	x.tree.Insert(e)
}

// Nearest returns the id of the node closest to pos and its squared
// Euclidean distance. ok is false only when the index is empty.
// Complexity: O(log n).
func (x *Index) Nearest(pos orb.Point) (int, float64, bool) {
	if len(x.entries) == 0 {
		return -1, 0, false
	}

	obj := x.tree.NearestNeighbor(rtreego.Point{pos[0], pos[1]})
	e := obj.(*entry)

	return e.id, planar.DistanceSquared(pos, e.pos), true
}

// toRect converts a planar point into the degenerate rectangle rtreego
// stores it as.
func toRect(p orb.Point) rtreego.Rect {
	return rtreego.Point{p[0], p[1]}.ToRect(pointTol)
}
