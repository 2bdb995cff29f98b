package pathfinding

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels.
const (
	resultSuccess = "success"
	resultFailure = "failure"
	resultInvalid = "invalid"
)

var (
	// routesTotal counts routing calls by outcome.
	routesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridroute_routes_total",
		Help: "Total multi-waypoint routes by result",
	}, []string{"result"})

	// segmentsTotal counts pairwise searches by outcome.
	segmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridroute_segments_total",
		Help: "Total waypoint-to-waypoint searches by result",
	}, []string{"result"})

	// nodesExplored records cells removed from the frontier per route.
	nodesExplored = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridroute_nodes_explored",
		Help:    "Cells explored per route",
		Buckets: prometheus.ExponentialBuckets(8, 4, 10),
	})

	// routeDuration records wall-clock time per route.
	routeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridroute_route_duration_seconds",
		Help:    "Wall-clock time per multi-waypoint route",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	})
)

func resultLabel(ok bool) string {
	if ok {
		return resultSuccess
	}
	return resultFailure
}
