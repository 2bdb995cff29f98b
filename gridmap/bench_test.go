package gridmap_test

import (
	"testing"

	"github.com/katalvlaran/gridroute/gridmap"
)

// BenchmarkReset measures clearing the search context of a 256×256 grid.
func BenchmarkReset(b *testing.B) {
	g, _ := gridmap.New(256, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Reset()
	}
}

// BenchmarkAppendNeighbors measures 8-neighbour enumeration with a reused buffer.
func BenchmarkAppendNeighbors(b *testing.B) {
	g, _ := gridmap.New(64, 64)
	buf := make([]gridmap.Point, 0, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = g.AppendNeighbors(buf[:0], 32, 32, true)
	}
}

// BenchmarkRegions measures component labelling on a striped 128×128 grid.
func BenchmarkRegions(b *testing.B) {
	g, _ := gridmap.New(128, 128)
	for x := 0; x < 128; x += 4 {
		for y := 0; y < 120; y++ {
			g.SetWalkable(x, y, false)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Regions(true)
	}
}
