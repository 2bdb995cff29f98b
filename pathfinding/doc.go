// Package pathfinding is the service layer over gridmap and astar: it owns one
// grid and one A* path finder, exposes obstacle management at coordinate level
// and stitches pairwise searches into a single route through ordered waypoints.
//
// What:
//
//   - Service: NewService(width, height, allowDiagonal), obstacle edits, routing.
//   - FindPathWithWaypoints: one A* search per consecutive waypoint pair, concatenated
//     without duplicating the junction cells, with summed cost and exploration.
//   - Config: YAML service configuration (grid size, movement model, obstacles, log level).
//   - RouteRequest: JSON route requests validated against an embedded JSON schema.
//   - SaveObstacles / LoadObstacles: compressed obstacle layout snapshots.
//   - Reachable / BreachCost: topology diagnostics for failed routes.
//
// Result shape:
//
//	{"success":true,"path":[{"x":0,"y":0},...],"totalCost":12.73,
//	 "nodesExplored":10,"message":"path found through 2 waypoints","executionTimeMs":0}
//
// Failure semantics:
//
//   - Fewer than two waypoints: failed Result, no search runs.
//   - A failing segment stops the route; the message names the segment endpoints and embeds
//     the segment's own message. Cost of earlier segments and the exploration count so far are
//     kept for diagnostics; Path is nil.
//   - Nothing in routing returns an error or panics for domain conditions.
//
// Observability:
//
//   - Structured logs via log/slog with a per-route route_id.
//   - Prometheus counters and histograms under the gridroute_ prefix.
//   - OpenTelemetry spans "pathfinding.Route" and "pathfinding.Segment"; no-op unless the
//     caller installs a tracer provider.
//
// Concurrency:
//
//   - A Service is not safe for concurrent use. Every route resets and reuses the grid's search
//     state, so concurrent routes or obstacle edits during a route must be serialized by the
//     caller, for example with one Service per concurrent request or an external mutex.
//   - There is no cancellation: the context passed to FindPathWithWaypointsContext only carries
//     tracing information.
package pathfinding
