// Package pathfind_test validates the frontier/object search: input
// validation, goal selection, path reconstruction, and the documented
// divergence between the exact and legacy relaxation engines.
package pathfind_test

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"

	"github.com/roverlab/topomap/graph"
	"github.com/roverlab/topomap/pathfind"
)

// place is a test helper for placements that are expected to succeed.
func place(t *testing.T, g *graph.Graph, x, y float64, blocked graph.Blocked, prev int, dir graph.Direction) int {
	t.Helper()
	id, err := g.PlaceNode(orb.Point{x, y}, blocked, prev, dir)
	if err != nil {
		t.Fatalf("PlaceNode(%v,%v) failed: %v", x, y, err)
	}

	return id
}

// buildLine returns the three-node west→east corridor 0–1–2 with every
// perpendicular direction left unknown.
func buildLine(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	place(t, g, 0, 0, graph.Blocked{}, graph.NoNode, graph.North)
	place(t, g, 1, 0, graph.Blocked{}, 0, graph.East)
	place(t, g, 2, 0, graph.Blocked{}, 1, graph.East)

	return g
}

func equalPath(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// ------------------------------------------------------------------------
// Validation
// ------------------------------------------------------------------------

func TestToNearest_NilGraph(t *testing.T) {
	_, err := pathfind.ToNearest(nil, 0, func(graph.Node) bool { return true })
	if !errors.Is(err, pathfind.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestToNearest_NilPredicate(t *testing.T) {
	g := buildLine(t)
	_, err := pathfind.ToNearest(g, 0, nil)
	if !errors.Is(err, pathfind.ErrNilPredicate) {
		t.Fatalf("expected ErrNilPredicate, got %v", err)
	}
}

func TestToNearest_EmptyGraph(t *testing.T) {
	// Searching an empty map is not an error; there is just nothing to find.
	g, err := graph.New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	path, err := pathfind.ToNextUnknown(g, 0)
	if err != nil {
		t.Fatalf("expected nil error on empty graph, got %v", err)
	}
	if len(path) != 0 {
		t.Fatalf("expected empty path, got %v", path)
	}
}

func TestToNearest_SourceOutOfRange(t *testing.T) {
	g := buildLine(t)
	for _, from := range []int{-1, 3, 42} {
		if _, err := pathfind.ToNextUnknown(g, from); !errors.Is(err, pathfind.ErrSourceOutOfRange) {
			t.Errorf("from=%d: expected ErrSourceOutOfRange, got %v", from, err)
		}
	}
}

// ------------------------------------------------------------------------
// Goal selection & path shape
// ------------------------------------------------------------------------

func TestToNextUnknown_SingleNode(t *testing.T) {
	// A lone node with four unknown directions is its own nearest frontier.
	g, err := graph.New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	place(t, g, 0, 0, graph.Blocked{}, graph.NoNode, graph.North)

	path, err := pathfind.ToNextUnknown(g, 0)
	if err != nil {
		t.Fatalf("ToNextUnknown failed: %v", err)
	}
	if !equalPath(path, []int{0}) {
		t.Fatalf("expected [0], got %v", path)
	}
}

func TestToNextUnknown_SourceQualifies(t *testing.T) {
	// On the corridor, node 0 still has three unexplored directions, so the
	// search never needs to leave the source.
	g := buildLine(t)
	path, err := pathfind.ToNextUnknown(g, 0)
	if err != nil {
		t.Fatalf("ToNextUnknown failed: %v", err)
	}
	if !equalPath(path, []int{0}) {
		t.Fatalf("expected [0], got %v", path)
	}
}

func TestToNextObject_None(t *testing.T) {
	g := buildLine(t)
	_, err := pathfind.ToNextObject(g, 0)
	if !errors.Is(err, pathfind.ErrNoQualifyingNode) {
		t.Fatalf("expected ErrNoQualifyingNode, got %v", err)
	}
}

func TestToNextObject_Corridor(t *testing.T) {
	// Object detected north of the corridor's middle node: the path from
	// node 0 runs along the corridor and turns into the object node.
	g := buildLine(t)
	obj, err := g.PlaceObject(1, orb.Point{1, 1}, graph.North)
	if err != nil {
		t.Fatalf("PlaceObject failed: %v", err)
	}

	for _, opts := range [][]pathfind.Option{nil, {pathfind.WithLegacyQueue()}} {
		path, perr := pathfind.ToNextObject(g, 0, opts...)
		if perr != nil {
			t.Fatalf("ToNextObject failed: %v", perr)
		}
		if !equalPath(path, []int{0, 1, obj}) {
			t.Fatalf("expected [0 1 %d], got %v", obj, path)
		}
	}
}

func TestToNextObject_UnreachableObject(t *testing.T) {
	// The object hangs off node 0's north slot until a later loop-closure
	// Connect re-homes that slot; afterwards no outgoing slot reaches the
	// object anymore. The search must say so instead of inventing a goal.
	g, err := graph.New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	place(t, g, 0, 0, graph.Blocked{}, graph.NoNode, graph.North)
	if _, err = g.PlaceObject(0, orb.Point{0, 1}, graph.North); err != nil {
		t.Fatalf("PlaceObject failed: %v", err)
	}
	place(t, g, 1, 0, graph.Blocked{}, 0, graph.East)
	if err = g.Connect(0, graph.North, 2); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	if _, err = pathfind.ToNextObject(g, 0); !errors.Is(err, pathfind.ErrNoQualifyingNode) {
		t.Fatalf("expected ErrNoQualifyingNode for unreachable object, got %v", err)
	}
}

// TestToNextUnknown_UniformSquare: on a uniform 2×2 block with exactly one
// frontier slot left, both engines return a true minimum-hop path.
func TestToNextUnknown_UniformSquare(t *testing.T) {
	g, err := graph.New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	// Perimeter blocked except node 3's east slot, interior fully linked:
	//
	//	2───3 ·
	//	│   │
	//	0───1
	place(t, g, 0, 0, graph.Blocked{false, false, true, true}, graph.NoNode, graph.North)
	place(t, g, 1, 0, graph.Blocked{false, true, true, false}, 0, graph.East)
	place(t, g, 0, 1, graph.Blocked{true, false, false, true}, 0, graph.North)
	place(t, g, 1, 1, graph.Blocked{true, false, false, false}, 1, graph.North)
	if err = g.Connect(2, graph.East, 3); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	if got := g.Frontiers(); len(got) != 1 || got[0] != 3 {
		t.Fatalf("expected node 3 as the only frontier, got %v", got)
	}

	for _, opts := range [][]pathfind.Option{nil, {pathfind.WithLegacyQueue()}} {
		path, perr := pathfind.ToNextUnknown(g, 0, opts...)
		if perr != nil {
			t.Fatalf("ToNextUnknown failed: %v", perr)
		}
		if len(path) != 3 || path[0] != 0 || path[2] != 3 {
			t.Fatalf("expected a 2-hop path 0→…→3, got %v", path)
		}
		// The middle hop must be an actual neighbor of both endpoints.
		if path[1] != 1 && path[1] != 2 {
			t.Fatalf("expected the path to pass through node 1 or 2, got %v", path)
		}
	}
}

// ------------------------------------------------------------------------
// Exact vs legacy engine divergence
// ------------------------------------------------------------------------

// TestEngineDivergence builds a map with a shortcut edge whose squared-
// distance weight makes the direct route more expensive than the detour.
// The legacy FIFO engine finalizes the shortcut node before the cheaper
// detour reaches it and therefore picks the wrong of two objects; exact
// Dijkstra picks the right one.
func TestEngineDivergence(t *testing.T) {
	g, err := graph.New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	// Corridor 0–1–2 east-bound plus a loop-closure link 0→2 (weight 4,
	// squared distance over two cells). Object A north of 2, object B two
	// cells south of 0 (weight 4).
	place(t, g, 0, 0, graph.Blocked{}, graph.NoNode, graph.North)
	place(t, g, 1, 0, graph.Blocked{}, 0, graph.East)
	place(t, g, 2, 0, graph.Blocked{}, 1, graph.East)
	if err = g.Connect(0, graph.North, 2); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	objA, err := g.PlaceObject(2, orb.Point{2, 1}, graph.North)
	if err != nil {
		t.Fatalf("PlaceObject A failed: %v", err)
	}
	objB, err := g.PlaceObject(0, orb.Point{0, -2}, graph.South)
	if err != nil {
		t.Fatalf("PlaceObject B failed: %v", err)
	}

	// Exact: A costs 1+1+1 = 3 along the corridor, B costs 4.
	exact, err := pathfind.ToNextObject(g, 0)
	if err != nil {
		t.Fatalf("exact ToNextObject failed: %v", err)
	}
	if !equalPath(exact, []int{0, 1, 2, objA}) {
		t.Fatalf("exact: expected [0 1 2 %d], got %v", objA, exact)
	}

	// Legacy: node 2 is finalized through the weight-4 shortcut before the
	// corridor relaxation improves it, so A appears to cost 5 and B wins.
	legacy, err := pathfind.ToNextObject(g, 0, pathfind.WithLegacyQueue())
	if err != nil {
		t.Fatalf("legacy ToNextObject failed: %v", err)
	}
	if !equalPath(legacy, []int{0, objB}) {
		t.Fatalf("legacy: expected [0 %d], got %v", objB, legacy)
	}
}
