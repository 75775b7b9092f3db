// Package catalog keeps an in-memory snapshot of the car inventory, used as
// the search candidate set so that searches do not hit the database.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/carmatch/internal/metrics"
	"github.com/donaldgifford/carmatch/internal/store"
	"github.com/donaldgifford/carmatch/internal/telemetry"
	domain "github.com/donaldgifford/carmatch/pkg/types"
)

// Catalog is a store.CarLister serving a cached car list. The first call to
// ListAllCars loads the list; later calls return the snapshot until Refresh
// replaces it.
type Catalog struct {
	source store.CarLister
	log    *slog.Logger
	tracer trace.Tracer
	now    func() time.Time

	mu       sync.RWMutex
	cars     []domain.Car
	loadedAt time.Time
}

// Option configures the Catalog.
type Option func(*Catalog)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		c.log = l
	}
}

// WithTracer sets the tracer used for refresh spans.
func WithTracer(t trace.Tracer) Option {
	return func(c *Catalog) {
		c.tracer = t
	}
}

// New creates a Catalog reading from source.
func New(source store.CarLister, opts ...Option) *Catalog {
	c := &Catalog{
		source: source,
		log:    slog.Default(),
		tracer: telemetry.Tracer(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListAllCars returns the cached cars in id order. The returned slice is
// shared and must not be modified.
func (c *Catalog) ListAllCars(ctx context.Context) ([]domain.Car, error) {
	c.mu.RLock()
	cars, loaded := c.cars, !c.loadedAt.IsZero()
	c.mu.RUnlock()

	if loaded {
		return cars, nil
	}

	if err := c.Refresh(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cars, nil
}

// Refresh reloads the snapshot from the source. On failure the previous
// snapshot is kept.
func (c *Catalog) Refresh(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "catalog.Refresh")
	defer span.End()

	start := c.now()
	cars, err := c.source.ListAllCars(ctx)
	metrics.CatalogRefreshDuration.Observe(c.now().Sub(start).Seconds())
	metrics.CatalogRefreshTotal.Inc()

	if err != nil {
		metrics.CatalogRefreshErrorsTotal.Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "refresh failed")
		return fmt.Errorf("loading catalog: %w", err)
	}

	loadedAt := c.now()

	c.mu.Lock()
	c.cars = cars
	c.loadedAt = loadedAt
	c.mu.Unlock()

	metrics.CatalogCars.Set(float64(len(cars)))
	metrics.CatalogLastRefreshTimestamp.Set(float64(loadedAt.Unix()))
	span.SetAttributes(attribute.Int("catalog.cars", len(cars)))

	c.log.Debug("catalog refreshed", "cars", len(cars))
	return nil
}

// Size returns the number of cached cars and when they were loaded.
func (c *Catalog) Size() (int, time.Time) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cars), c.loadedAt
}

// Invalidate drops the snapshot so the next ListAllCars reloads it.
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	c.cars = nil
	c.loadedAt = time.Time{}
	c.mu.Unlock()
}

// InvalidateOn calls Invalidate for every value received on sig until ctx is
// done. serve feeds it SIGHUP so inventory written by `carmatch seed` is
// picked up without waiting for the next scheduled refresh.
func (c *Catalog) InvalidateOn(ctx context.Context, sig <-chan os.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case s := <-sig:
			c.Invalidate()
			c.log.Info("catalog invalidated", "signal", s.String())
		}
	}
}
