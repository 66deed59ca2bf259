package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/lvlpath/builder"
	"github.com/katalvlaran/lvlpath/dijkstra"
)

// BenchmarkDijkstra_Cycle measures single-source distances on a sparse ring.
func BenchmarkDijkstra_Cycle(b *testing.B) {
	g, err := builder.Cycle(2000, 1)
	if err != nil {
		b.Fatal(err)
	}
	v := g.View(nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstra.Dijkstra(v, dijkstra.Source(0))
	}
}

// BenchmarkDijkstra_Complete measures the dense worst case.
func BenchmarkDijkstra_Complete(b *testing.B) {
	g, err := builder.Complete(200, 1)
	if err != nil {
		b.Fatal(err)
	}
	v := g.View(nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstra.Dijkstra(v, dijkstra.Source(0))
	}
}

// BenchmarkDijkstra_TargetEarlyExit measures the single-pair cut-off against
// the full run on the same ring.
func BenchmarkDijkstra_TargetEarlyExit(b *testing.B) {
	g, err := builder.Cycle(2000, 1)
	if err != nil {
		b.Fatal(err)
	}
	v := g.View(nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstra.Dijkstra(v, dijkstra.Source(0), dijkstra.Target(10))
	}
}
