package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestTracing_RecordsServerSpan(t *testing.T) {
	t.Parallel()

	exp := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))

	e := echo.New()
	e.Use(Tracing(tp.Tracer("test")))

	var spanInHandler trace.SpanContext
	e.GET("/api/v1/cars/:id", func(c echo.Context) error {
		spanInHandler = trace.SpanContextFromContext(c.Request().Context())
		return c.NoContent(http.StatusInternalServerError)
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/cars/7", http.NoBody))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody))

	spans := exp.GetSpans()
	require.Len(t, spans, 1, "health endpoints are not traced")
	assert.Equal(t, "GET /api/v1/cars/:id", spans[0].Name)
	assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.True(t, spanInHandler.IsValid())
	assert.Equal(t, spans[0].SpanContext.TraceID(), spanInHandler.TraceID())
}
