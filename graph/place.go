// Placement & merge engine and connectivity manager: the only code that
// mutates the node store.
package graph

import (
	"fmt"

	"github.com/paulmach/orb"
)

// PlaceNode reports that the robot occupies pos and resolves it to a node id.
//
// If an existing node lies within the merge radius of pos, the observation
// merges into it: the node's position is blended toward pos when smoothing
// is enabled, nothing else changes, and no new link is made. Otherwise a
// fresh node is appended with every direction Unknown except those flagged
// blocked, and — unless it is the very first node of the map — linked back
// to prev via dir, establishing both halves of the edge.
//
// prev is ignored while the graph is empty (pass NoNode on the first call).
// On a non-empty graph a creation requires a valid prev and dir; otherwise
// ErrNodeOutOfRange or ErrInvalidDirection is returned and the map is left
// untouched.
// Complexity: O(n) with the default locator, O(log n) with an R-tree.
func (g *Graph) PlaceNode(pos orb.Point, blocked Blocked, prev int, dir Direction) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id, ok := g.findNearby(pos); ok {
		g.updatePosition(id, pos)
		return id, nil
	}

	link := len(g.nodes) > 0
	if link {
		if prev < 0 || prev >= len(g.nodes) {
			return NoNode, fmt.Errorf("%w: previous node %d", ErrNodeOutOfRange, prev)
		}
		if !dir.Valid() {
			return NoNode, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
		}
	}

	id := g.append(pos, blocked, false)
	if link {
		g.link(prev, dir, id)
	}

	return id, nil
}

// PlaceObject reports an object detected from origin, dir away, at pos, and
// resolves it to an object node id.
//
// The merge policy deliberately differs from PlaceNode: the detection merges
// only if the nearest in-radius node is itself an object node. A plain
// traversal node nearby never absorbs it — a fresh object node is created
// instead, with all four directions pre-blocked. Whether merged or created,
// the origin→object link is (re)established via dir, so an object node ends
// up with exactly one traversable neighbor.
//
// Returns ErrNodeOutOfRange for an invalid origin, ErrInvalidDirection for
// an invalid dir; neither mutates the map.
func (g *Graph) PlaceObject(origin int, pos orb.Point, dir Direction) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if origin < 0 || origin >= len(g.nodes) {
		return NoNode, fmt.Errorf("%w: origin node %d", ErrNodeOutOfRange, origin)
	}
	if !dir.Valid() {
		return NoNode, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}

	id, ok := g.findNearby(pos)
	if ok && g.nodes[id].HasObject {
		g.updatePosition(id, pos)
	} else {
		id = g.append(pos, Blocked{true, true, true, true}, true)
	}

	g.link(origin, dir, id)

	return id, nil
}

// Connect establishes the edge nodes[id] --dir--> nodes[other] together with
// its reciprocal half, preserving link symmetry. It is the sole writer of
// neighbor slots; placement routes through it too.
//
// Returns ErrInvalidDirection or ErrNodeOutOfRange without mutation.
func (g *Graph) Connect(id int, dir Direction, other int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !dir.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
	if id < 0 || id >= len(g.nodes) {
		return fmt.Errorf("%w: %d", ErrNodeOutOfRange, id)
	}
	if other < 0 || other >= len(g.nodes) {
		return fmt.Errorf("%w: %d", ErrNodeOutOfRange, other)
	}

	g.link(id, dir, other)

	return nil
}

// link writes both halves of an edge. Callers must hold the write lock and
// have validated dir and both ids.
func (g *Graph) link(id int, dir Direction, other int) {
	g.nodes[id].Neighbors[dir] = Neighbor{State: LinkConnected, ID: other}
	g.nodes[other].Neighbors[dir.Opposite()] = Neighbor{State: LinkConnected, ID: id}
}

// append materializes a node at pos with the given blocked flags and object
// flag, registers it with the locator, and returns its id.
// Callers must hold the write lock.
func (g *Graph) append(pos orb.Point, blocked Blocked, object bool) int {
	n := Node{
		ID:        len(g.nodes),
		Pos:       pos,
		HasObject: object,
	}
	for d := North; d <= West; d++ {
		if blocked[d] {
			n.Neighbors[d].State = LinkBlocked
		}
	}

	g.nodes = append(g.nodes, n)
	g.loc.Insert(n.ID, pos)

	return n.ID
}

// updatePosition blends the node's position toward a fresh observation of
// the same physical location, when smoothing is enabled.
// Callers must hold the write lock.
func (g *Graph) updatePosition(id int, pos orb.Point) {
	if !g.smooth {
		return
	}

	old := g.nodes[id].Pos
	blended := orb.Point{
		smoothKeep*old[0] + smoothBlend*pos[0],
		smoothKeep*old[1] + smoothBlend*pos[1],
	}
	g.nodes[id].Pos = blended
	g.loc.Move(id, old, blended)
}
