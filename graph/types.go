// This file declares Direction, LinkState, Neighbor, Node,
// sentinel errors, and the placement input types.
package graph

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
)

// Sentinel errors for graph operations.
var (
	// ErrNodeOutOfRange indicates an operation referenced a node id outside [0, NumNodes()).
	ErrNodeOutOfRange = errors.New("graph: node id out of range")

	// ErrInvalidDirection indicates a direction outside the four cardinal values.
	ErrInvalidDirection = errors.New("graph: invalid direction")

	// ErrBadThreshold indicates a non-positive merge threshold was configured.
	ErrBadThreshold = errors.New("graph: merge threshold must be positive")
)

// NoNode marks the absence of a node id, e.g. the previous-node argument of
// the very first placement or an unset predecessor.
const NoNode = -1

// Direction enumerates the four cardinal travel directions.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// numDirections is the size of a Node's neighbor array.
const numDirections = 4

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool { return d >= North && d <= West }

// Opposite returns the reverse travel direction:
// North↔South, East↔West. Invalid directions map to themselves.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	}

	return d
}

// String implements fmt.Stringer for log- and test-friendly output.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}

	return fmt.Sprintf("Direction(%d)", int(d))
}

// LinkState tags the exploration state of one cardinal neighbor slot.
type LinkState int

const (
	// LinkUnknown means the direction has not been explored yet.
	LinkUnknown LinkState = iota

	// LinkBlocked means the direction was explored and confirmed impassable.
	LinkBlocked

	// LinkConnected means a traversable edge exists to Neighbor.ID.
	LinkConnected
)

// Neighbor is the tagged state of one cardinal slot of a Node.
// ID is meaningful only when State == LinkConnected.
type Neighbor struct {
	State LinkState
	ID    int
}

// Connected returns the linked node id and true when the slot holds an edge.
func (n Neighbor) Connected() (int, bool) { return n.ID, n.State == LinkConnected }

// Blocked holds the per-direction impassability flags reported with a
// placement, indexed by Direction.
type Blocked [numDirections]bool

// Node is a discrete, physically anchored location in the explored map.
//
// Node is a value snapshot: accessors hand out copies, never references into
// the Graph's internal store, so holding a Node across later mutations is
// always safe (and never observes them).
type Node struct {
	// ID is the dense index of this node in its Graph, stable for life.
	ID int

	// Pos is the node's position in the shared planar frame. It may drift
	// toward later observations of the same location when position
	// smoothing is enabled.
	Pos orb.Point

	// Neighbors holds the four cardinal slots, indexed by Direction.
	Neighbors [numDirections]Neighbor

	// HasObject is true when this node hosts a detected object.
	HasObject bool
}

// HasUnknown reports whether any direction of n is still unexplored,
// i.e. whether n is a frontier node.
func (n Node) HasUnknown() bool {
	for d := North; d <= West; d++ {
		if n.Neighbors[d].State == LinkUnknown {
			return true
		}
	}

	return false
}
