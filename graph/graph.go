package graph

import (
	"fmt"
	"sync"

	"github.com/paulmach/orb"
)

// Graph is the in-memory topological map: an append-only, densely indexed
// node store plus the placement and connectivity logic that grows it.
//
// A Graph lives for the whole exploration session; nodes are created once
// and never removed, so a returned id stays valid forever. mu guards the
// store: every mutation takes the write lock, every read the read lock, so
// a path query never observes a node appended but not yet linked.
type Graph struct {
	mu sync.RWMutex

	nodes []Node  // id == index, no gaps
	loc   Locator // nearest-node backend, kept in sync with nodes

	mergeThresh float64 // merge radius (not squared)
	smooth      bool    // exponential position blend on merge
}

// New creates an empty Graph with the given options.
// Returns ErrBadThreshold if an invalid merge threshold was supplied.
// Complexity: O(1)
func New(opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	loc := o.Locator
	if loc == nil {
		loc = newLinearLocator()
	}

	return &Graph{
		loc:         loc,
		mergeThresh: o.MergeThreshold,
		smooth:      o.SmoothPositions,
	}, nil
}

// NumNodes returns the current node count. Ids are exactly 0..NumNodes()-1.
func (g *Graph) NumNodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Node returns a value snapshot of the node with the given id.
// Returns ErrNodeOutOfRange for ids outside [0, NumNodes()).
func (g *Graph) Node(id int) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.nodes) {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeOutOfRange, id)
	}

	return g.nodes[id], nil
}

// Nodes returns an atomic snapshot of the whole store, indexed by id.
// The copy is detached: later mutations of the Graph are not reflected.
// Complexity: O(n).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snap := make([]Node, len(g.nodes))
	copy(snap, g.nodes)

	return snap
}

// MergeThreshold returns the configured merge radius.
func (g *Graph) MergeThreshold() float64 { return g.mergeThresh }

// SmoothingEnabled reports whether merged positions are blended toward new
// observations.
func (g *Graph) SmoothingEnabled() bool { return g.smooth }

// HasUnknownDirections reports whether the node still has at least one
// unexplored direction, i.e. whether it is a frontier node.
// Returns ErrNodeOutOfRange for invalid ids.
func (g *Graph) HasUnknownDirections(id int) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.nodes) {
		return false, fmt.Errorf("%w: %d", ErrNodeOutOfRange, id)
	}

	return g.nodes[id].HasUnknown(), nil
}

// Frontiers returns the ids of all frontier nodes, ascending.
// Complexity: O(n).
func (g *Graph) Frontiers() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var ids []int
	for i := range g.nodes {
		if g.nodes[i].HasUnknown() {
			ids = append(ids, i)
		}
	}

	return ids
}

// Nearest returns a snapshot of the node within the merge radius of pos,
// if any. It answers "is the robot standing on a known node?" without
// mutating the map.
func (g *Graph) Nearest(pos orb.Point) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.findNearby(pos)
	if !ok {
		return Node{}, false
	}

	return g.nodes[id], true
}

// findNearby resolves pos to an existing node within the merge radius.
// Callers must hold mu (read or write).
func (g *Graph) findNearby(pos orb.Point) (int, bool) {
	id, sq, ok := g.loc.Nearest(pos)
	if !ok {
		return NoNode, false
	}
	if sq < g.mergeThresh*g.mergeThresh {
		return id, true
	}

	return NoNode, false
}
