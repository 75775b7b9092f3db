package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CatalogSizer reports the in-memory catalog snapshot.
type CatalogSizer interface {
	Size() (int, time.Time)
}

// HealthHandler serves the liveness and readiness probes. These are plain
// echo routes so they stay out of the OpenAPI document.
type HealthHandler struct {
	db      Pinger
	catalog CatalogSizer
}

// HealthOption configures a HealthHandler.
type HealthOption func(*HealthHandler)

// WithCatalog adds the catalog snapshot to readiness responses.
func WithCatalog(c CatalogSizer) HealthOption {
	return func(h *HealthHandler) {
		h.catalog = c
	}
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{db: db}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ReadyResponse is the body of /readyz.
type ReadyResponse struct {
	Status  string         `json:"status"`
	Catalog *CatalogStatus `json:"catalog,omitempty"`
}

// CatalogStatus describes the cached candidate set. LoadedAt is nil until
// the first load.
type CatalogStatus struct {
	Cars     int        `json:"cars"`
	LoadedAt *time.Time `json:"loaded_at,omitempty"`
}

// Healthz returns 200 while the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz returns 200 when the database answers a ping and 503 otherwise.
// An empty or not yet loaded catalog does not make the service unready:
// the first search loads it.
func (h *HealthHandler) Readyz(c echo.Context) error {
	if err := h.db.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, ReadyResponse{Status: "unavailable"})
	}

	resp := ReadyResponse{Status: "ready"}
	if h.catalog != nil {
		n, loadedAt := h.catalog.Size()
		resp.Catalog = &CatalogStatus{Cars: n}
		if !loadedAt.IsZero() {
			t := loadedAt.UTC()
			resp.Catalog.LoadedAt = &t
		}
	}

	return c.JSON(http.StatusOK, resp)
}
