package pathfinding

import (
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/gridmap"
)

// Point is a grid coordinate.
type Point = gridmap.Point

// Result is the route record returned by every routing call.
type Result = astar.Result

// Sentinel errors for pathfinding operations.
var (
	// ErrInvalidConfig indicates a configuration document that fails validation.
	ErrInvalidConfig = errors.New("pathfinding: invalid config")
	// ErrInvalidRequest indicates a route request that fails schema validation.
	ErrInvalidRequest = errors.New("pathfinding: invalid route request")
	// ErrSnapshotSize indicates an obstacle snapshot recorded for another grid size.
	ErrSnapshotSize = errors.New("pathfinding: snapshot grid size does not match service")
)

// Route messages.
const (
	MsgTooFewWaypoints = "at least 2 waypoints are required"
	msgRouteFound      = "path found through %d waypoints"
	msgSegmentFailed   = "segment %d %s -> %s failed: %s"
)

// Options configures a Service.
//
// Logger         – structured logger; defaults to slog.Default().
// TracerProvider – source of the route tracer; defaults to the global otel provider.
type Options struct {
	Logger         *slog.Logger
	TracerProvider trace.TracerProvider
}

// Option represents a functional option for configuring a Service.
type Option func(*Options)

// WithLogger sets the structured logger. Passing nil panics.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			panic("pathfinding: WithLogger requires a non-nil logger")
		}
		o.Logger = l
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider. Passing nil panics.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp == nil {
			panic("pathfinding: WithTracerProvider requires a non-nil provider")
		}
		o.TracerProvider = tp
	}
}

// DefaultOptions returns the process-wide logger and tracer provider.
func DefaultOptions() Options {
	return Options{
		Logger:         slog.Default(),
		TracerProvider: otel.GetTracerProvider(),
	}
}
