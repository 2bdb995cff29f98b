package pathfinding

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// FindPathWithWaypoints routes through waypoints in order. When obstacles is
// non-nil the grid is cleared and re-populated with exactly that set first; a
// nil slice keeps the current layout and an empty one clears it.
//
// The returned path joins every segment without repeating junction cells;
// TotalCost and NodesExplored are summed over segments and ExecutionTimeMs is
// the wall clock of the whole call.
func (s *Service) FindPathWithWaypoints(waypoints, obstacles []Point) Result {
	return s.FindPathWithWaypointsContext(context.Background(), waypoints, obstacles)
}

// FindPathWithWaypointsContext is FindPathWithWaypoints with ctx as the parent
// of the emitted trace spans. ctx is not used for cancellation.
func (s *Service) FindPathWithWaypointsContext(ctx context.Context, waypoints, obstacles []Point) Result {
	began := time.Now()
	routeID := uuid.NewString()

	ctx, span := s.tracer.Start(ctx, "pathfinding.Route", trace.WithAttributes(
		attribute.String("route.id", routeID),
		attribute.Int("route.waypoints", len(waypoints)),
	))
	defer span.End()

	res := s.route(ctx, waypoints, obstacles)
	res.Elapsed = time.Since(began)
	res.ExecutionTimeMs = res.Elapsed.Milliseconds()

	span.SetAttributes(
		attribute.Bool("route.success", res.Success),
		attribute.Float64("route.cost", res.TotalCost),
		attribute.Int("route.nodes_explored", res.NodesExplored),
	)
	attrs := []any{
		slog.String("route_id", routeID),
		slog.Int("waypoints", len(waypoints)),
		slog.Float64("cost", res.TotalCost),
		slog.Int("nodes_explored", res.NodesExplored),
		slog.Duration("duration", res.Elapsed),
	}
	switch {
	case res.Success:
		routesTotal.WithLabelValues(resultSuccess).Inc()
		s.logger.DebugContext(ctx, "route found", attrs...)
	case len(waypoints) < 2:
		routesTotal.WithLabelValues(resultInvalid).Inc()
		span.SetStatus(codes.Error, res.Message)
		s.logger.WarnContext(ctx, "route rejected", append(attrs, slog.String("reason", res.Message))...)
	default:
		routesTotal.WithLabelValues(resultFailure).Inc()
		span.SetStatus(codes.Error, res.Message)
		s.logger.WarnContext(ctx, "route failed", append(attrs, slog.String("reason", res.Message))...)
	}
	nodesExplored.Observe(float64(res.NodesExplored))
	routeDuration.Observe(res.Elapsed.Seconds())

	return res
}

// route validates, applies the obstacle overwrite and stitches segments.
func (s *Service) route(ctx context.Context, waypoints, obstacles []Point) Result {
	if len(waypoints) < 2 {
		return Result{Message: MsgTooFewWaypoints}
	}
	if obstacles != nil {
		s.ClearObstacles()
		s.SetObstacles(obstacles)
	}

	var out Result
	path := make([]Point, 0, len(waypoints))
	for i := 0; i+1 < len(waypoints); i++ {
		from, to := waypoints[i], waypoints[i+1]
		seg := s.segment(ctx, i+1, from, to)
		out.NodesExplored += seg.NodesExplored
		if !seg.Success {
			out.Message = fmt.Sprintf(msgSegmentFailed, i+1, from, to, seg.Message)
			return out
		}
		out.TotalCost += seg.TotalCost
		if i == 0 {
			path = append(path, seg.Path...)
		} else {
			// The first cell repeats the previous segment's last one.
			path = append(path, seg.Path[1:]...)
		}
	}

	out.Success = true
	out.Path = path
	out.Message = fmt.Sprintf(msgRouteFound, len(waypoints))

	return out
}

// segment runs one pairwise search inside its own span.
func (s *Service) segment(ctx context.Context, n int, from, to Point) Result {
	_, span := s.tracer.Start(ctx, "pathfinding.Segment", trace.WithAttributes(
		attribute.Int("segment.index", n),
		attribute.String("segment.from", from.String()),
		attribute.String("segment.to", to.String()),
	))
	defer span.End()

	res := s.finder.FindPath(from.X, from.Y, to.X, to.Y)
	segmentsTotal.WithLabelValues(resultLabel(res.Success)).Inc()
	span.SetAttributes(
		attribute.Int("segment.nodes_explored", res.NodesExplored),
		attribute.Float64("segment.cost", res.TotalCost),
	)
	if !res.Success {
		span.SetStatus(codes.Error, res.Message)
	}

	return res
}
