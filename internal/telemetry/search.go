package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// SearchRecorder records search outcomes as OpenTelemetry instruments,
// alongside the Prometheus metrics served on /metrics.
type SearchRecorder struct {
	searches metric.Int64Counter
	matches  metric.Int64Histogram
}

// NewSearchRecorder creates the search instruments on m. A nil m uses the
// global meter provider.
func NewSearchRecorder(m metric.Meter) (*SearchRecorder, error) {
	if m == nil {
		m = otel.Meter(InstrumentationName)
	}

	searches, err := m.Int64Counter("carmatch.search.requests",
		metric.WithDescription("Number of searches served."),
	)
	if err != nil {
		return nil, fmt.Errorf("creating search counter: %w", err)
	}

	matches, err := m.Int64Histogram("carmatch.search.match_percentage",
		metric.WithDescription("Match percentage of returned cars."),
		metric.WithUnit("%"),
		metric.WithExplicitBucketBoundaries(0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("creating match histogram: %w", err)
	}

	return &SearchRecorder{searches: searches, matches: matches}, nil
}

// Record counts one search in the given mode and records each returned
// match percentage.
func (r *SearchRecorder) Record(ctx context.Context, mode string, percentages []int) {
	if r == nil {
		return
	}
	r.searches.Add(ctx, 1, metric.WithAttributes(attribute.String("mode", mode)))
	for _, p := range percentages {
		r.matches.Record(ctx, int64(p))
	}
}
