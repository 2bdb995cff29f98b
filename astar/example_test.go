package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/gridmap"
)

// ExamplePathFinder_FindPath routes around a short wall with orthogonal moves only.
//
//	S . # . G
//	. . # . .
//	. . . . .
func ExamplePathFinder_FindPath() {
	g, _ := gridmap.New(5, 3)
	g.SetWalkable(2, 0, false)
	g.SetWalkable(2, 1, false)

	pf, _ := astar.New(g, astar.WithDiagonal(false))
	res := pf.FindPath(0, 0, 4, 0)

	fmt.Println(res.Success, res.Message)
	fmt.Printf("cost=%.0f steps=%d\n", res.TotalCost, len(res.Path)-1)

	// Output:
	// true path found
	// cost=8 steps=8
}

// ExamplePathFinder_FindPath_blocked shows the early exit for a blocked goal.
func ExamplePathFinder_FindPath_blocked() {
	g, _ := gridmap.New(3, 3)
	g.SetWalkable(2, 2, false)

	pf, _ := astar.New(g)
	res := pf.FindPath(0, 0, 2, 2)

	fmt.Println(res.Success, res.Message, res.NodesExplored)

	// Output:
	// false goal position is not walkable 0
}
