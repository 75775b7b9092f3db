package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/donaldgifford/carmatch/internal/config"
	"github.com/donaldgifford/carmatch/pkg/logger"
)

func TestSetup_Disabled(t *testing.T) {
	t.Parallel()

	shutdown, err := Setup(context.Background(), &config.TelemetryConfig{}, logger.Discard())
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	require.NoError(t, shutdown(context.Background()))

	assert.NotNil(t, Tracer())
}

func TestSearchRecorder_Record(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	rec, err := NewSearchRecorder(mp.Meter(InstrumentationName))
	require.NoError(t, err)

	ctx := context.Background()
	rec.Record(ctx, "ranked", []int{100, 70, 40})
	rec.Record(ctx, "all", nil)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	byName := map[string]metricdata.Metrics{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		byName[m.Name] = m
	}

	sum, ok := byName["carmatch.search.requests"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	assert.Equal(t, int64(2), total)

	hist, ok := byName["carmatch.search.match_percentage"].Data.(metricdata.Histogram[int64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(3), hist.DataPoints[0].Count)
	assert.Equal(t, int64(210), hist.DataPoints[0].Sum)
}

func TestSearchRecorder_NilIsNoop(t *testing.T) {
	t.Parallel()

	var rec *SearchRecorder
	assert.NotPanics(t, func() { rec.Record(context.Background(), "ranked", []int{50}) })
}
