package astar_test

import (
	"testing"

	"github.com/katalvlaran/lvlpath/astar"
)

// The heuristics trade per-expansion cost against trace length; these
// benchmarks compare them on one mid-sized random graph.

func benchmarkSearch(b *testing.B, h astar.Heuristic) {
	g := buildRandomConnected(b, 60, 120, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, h, "V0", "V59")
	}
}

func BenchmarkSearch_Zero(b *testing.B) {
	benchmarkSearch(b, astar.Zero{})
}

func BenchmarkSearch_MST(b *testing.B) {
	benchmarkSearch(b, astar.MST{})
}

func BenchmarkSearch_ReducedDijkstra(b *testing.B) {
	benchmarkSearch(b, astar.ReducedDijkstra{})
}
