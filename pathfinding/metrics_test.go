package pathfinding

import (
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRouteMetrics(t *testing.T) {
	s, err := NewService(5, 5, true, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)

	ok := testutil.ToFloat64(routesTotal.WithLabelValues(resultSuccess))
	failed := testutil.ToFloat64(routesTotal.WithLabelValues(resultFailure))
	invalid := testutil.ToFloat64(routesTotal.WithLabelValues(resultInvalid))
	segOK := testutil.ToFloat64(segmentsTotal.WithLabelValues(resultSuccess))
	segFailed := testutil.ToFloat64(segmentsTotal.WithLabelValues(resultFailure))

	_ = s.FindPathWithWaypoints([]Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}}, nil)
	_ = s.FindPathWithWaypoints([]Point{{X: 0, Y: 0}}, nil)
	_ = s.FindPathWithWaypoints([]Point{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 4, Y: 4}}, []Point{{X: 4, Y: 4}})

	require.Equal(t, ok+1, testutil.ToFloat64(routesTotal.WithLabelValues(resultSuccess)))
	require.Equal(t, invalid+1, testutil.ToFloat64(routesTotal.WithLabelValues(resultInvalid)))
	require.Equal(t, failed+1, testutil.ToFloat64(routesTotal.WithLabelValues(resultFailure)))
	require.Equal(t, segOK+3, testutil.ToFloat64(segmentsTotal.WithLabelValues(resultSuccess)))
	require.Equal(t, segFailed+1, testutil.ToFloat64(segmentsTotal.WithLabelValues(resultFailure)))
}

func TestResultLabel(t *testing.T) {
	require.Equal(t, resultSuccess, resultLabel(true))
	require.Equal(t, resultFailure, resultLabel(false))
}
