// Package gridroute finds shortest routes on 2D occupancy grids.
//
// A grid is a rectangle of cells, each walkable or blocked. Routes move one
// cell at a time in the four cardinal directions, plus the four diagonals when
// diagonal movement is enabled; an orthogonal step costs 1 and a diagonal one √2.
//
// The module is organized in three packages, each usable on its own:
//
//	gridmap/      GridMap, Node and SearchState: walkability, bounds, neighbour
//	              enumeration, connected regions, breach analysis, snapshots
//	astar/        PathFinder: A* over a GridMap with Euclidean or Manhattan
//	              heuristic, Result records, panic-safe search
//	pathfinding/  Service: obstacle management, multi-waypoint routing,
//	              YAML config, JSON requests, logs, metrics and traces
//
// Quick example:
//
//	S . # . .
//	. . # . .
//	. . . . G
//
//	svc, _ := pathfinding.NewService(5, 3, true)
//	svc.SetObstacles([]pathfinding.Point{{X: 2, Y: 0}, {X: 2, Y: 1}})
//	res := svc.FindPathWithWaypoints([]pathfinding.Point{{X: 0, Y: 0}, {X: 4, Y: 2}}, nil)
//	// res.Success == true, res.TotalCost ≈ 2 + 2√2
//
// See each package's doc.go for complexity, options and error contracts.
package gridroute
