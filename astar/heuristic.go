package astar

import (
	"math"

	"github.com/katalvlaran/gridroute/gridmap"
)

// Manhattan is |dx| + |dy|, exact on an open grid with orthogonal moves only.
func Manhattan(a, b gridmap.Point) float64 {
	return float64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

// Euclidean is the straight-line distance sqrt(dx² + dy²).
func Euclidean(a, b gridmap.Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// Octile is √2·min(|dx|,|dy|) + (max − min), exact on an open grid with
// 8-neighbour moves. It is tighter than Euclidean and still admissible there.
func Octile(a, b gridmap.Point) float64 {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	lo, hi := dx, dy
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Sqrt2*float64(lo) + float64(hi-lo)
}

// StepCost is the cost of moving between two adjacent cells: √2 when both
// coordinates change, 1 otherwise.
func StepCost(a, b gridmap.Point) float64 {
	if a.X != b.X && a.Y != b.Y {
		return math.Sqrt2
	}
	return 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
