package pathfind_test

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/roverlab/topomap/graph"
	"github.com/roverlab/topomap/pathfind"
)

// buildCorridor lays out n nodes in a straight east-bound line with all
// perpendicular slots blocked except the last node's, leaving exactly one
// frontier at the far end.
func buildCorridor(b *testing.B, n int) *graph.Graph {
	b.Helper()
	g, err := graph.New()
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	walls := graph.Blocked{true, false, true, false} // north and south shut
	if _, err = g.PlaceNode(orb.Point{0, 0}, graph.Blocked{true, false, true, true}, graph.NoNode, graph.North); err != nil {
		b.Fatalf("seed placement failed: %v", err)
	}
	for i := 1; i < n-1; i++ {
		if _, err = g.PlaceNode(orb.Point{float64(i), 0}, walls, i-1, graph.East); err != nil {
			b.Fatalf("placement %d failed: %v", i, err)
		}
	}
	// Last node keeps its east slot unknown.
	if _, err = g.PlaceNode(orb.Point{float64(n - 1), 0}, graph.Blocked{true, false, true, false}, n-2, graph.East); err != nil {
		b.Fatalf("final placement failed: %v", err)
	}

	return g
}

// BenchmarkToNextUnknown_Exact measures the heap engine across a 1000-node
// corridor, searching from the far end to the single frontier.
func BenchmarkToNextUnknown_Exact(b *testing.B) {
	g := buildCorridor(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pathfind.ToNextUnknown(g, 0); err != nil {
			b.Fatalf("ToNextUnknown failed: %v", err)
		}
	}
}

// BenchmarkToNextUnknown_Legacy measures the FIFO engine on the same map.
func BenchmarkToNextUnknown_Legacy(b *testing.B) {
	g := buildCorridor(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pathfind.ToNextUnknown(g, 0, pathfind.WithLegacyQueue()); err != nil {
			b.Fatalf("ToNextUnknown failed: %v", err)
		}
	}
}
