package astar_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/gridmap"
)

// toGonum mirrors the walkable topology of g as a weighted undirected gonum
// graph whose node IDs are row-major indices.
func toGonum(g *gridmap.GridMap, diagonal bool) *simple.WeightedUndirectedGraph {
	wg := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := 0; i < g.Len(); i++ {
		if g.WalkableAt(i) {
			wg.AddNode(simple.Node(i))
		}
	}
	for i := 0; i < g.Len(); i++ {
		if !g.WalkableAt(i) {
			continue
		}
		x, y := g.Coordinate(i)
		from := gridmap.Point{X: x, Y: y}
		for _, nb := range g.Neighbors(x, y, diagonal) {
			j := g.Index(nb.X, nb.Y)
			if j <= i || !g.WalkableAt(j) {
				continue
			}
			wg.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(i),
				T: simple.Node(j),
				W: astar.StepCost(from, nb),
			})
		}
	}
	return wg
}

// TestAgreesWithDijkstraOracle compares A* costs against gonum's Dijkstra on
// random obstacle layouts, in both movement models. Besides optimality this
// covers admissibility: no returned cost exceeds the true shortest distance.
func TestAgreesWithDijkstraOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(20261019))
	const w, h = 16, 12

	for round := 0; round < 40; round++ {
		g, err := gridmap.New(w, h)
		require.NoError(t, err)
		for i := 0; i < g.Len(); i++ {
			if rng.Float64() < 0.3 {
				x, y := g.Coordinate(i)
				g.SetWalkable(x, y, false)
			}
		}
		start := gridmap.Point{X: rng.Intn(w), Y: rng.Intn(h)}
		goal := gridmap.Point{X: rng.Intn(w), Y: rng.Intn(h)}
		g.SetWalkable(start.X, start.Y, true)
		g.SetWalkable(goal.X, goal.Y, true)

		for _, diagonal := range []bool{true, false} {
			pf, err := astar.New(g, astar.WithDiagonal(diagonal))
			require.NoError(t, err)
			res := pf.FindPath(start.X, start.Y, goal.X, goal.Y)

			shortest := path.DijkstraFrom(simple.Node(g.Index(start.X, start.Y)), toGonum(g, diagonal))
			want := shortest.WeightTo(int64(g.Index(goal.X, goal.Y)))

			if math.IsInf(want, 1) {
				require.False(t, res.Success, "round %d diag=%v: oracle says unreachable", round, diagonal)
				require.Equal(t, astar.MsgNoPath, res.Message)
				require.Positive(t, res.NodesExplored)
				continue
			}
			requireValidPath(t, g, res, start, goal, diagonal)
			require.InDelta(t, want, res.TotalCost, 1e-9, "round %d diag=%v %s->%s", round, diagonal, start, goal)
		}
	}
}
