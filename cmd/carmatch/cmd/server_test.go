package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/carmatch/internal/config"
	"github.com/donaldgifford/carmatch/internal/store"
	storeMocks "github.com/donaldgifford/carmatch/internal/store/mocks"
	"github.com/donaldgifford/carmatch/pkg/logger"
	domain "github.com/donaldgifford/carmatch/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func testConfig() *config.Config {
	return &config.Config{
		Search: config.SearchConfig{ResultLimit: 2, Workers: 1},
	}
}

func serve(t *testing.T, srv http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, http.NoBody)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestNewServer_Routes(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListAllCars(mock.Anything).Return([]domain.Car{
		{ID: 1, Brand: "Audi", Model: "A4", Year: ptr(2019)},
		{ID: 2, Brand: "BMW", Model: "320i", Year: ptr(2020)},
		{ID: 3, Brand: "BMW", Model: "530i", Year: ptr(2021)},
	}, nil).Once()
	ms.EXPECT().GetCar(mock.Anything, int64(9)).Return(nil, store.ErrNotFound).Once()
	ms.EXPECT().Ping(mock.Anything).Return(nil).Once()

	e, _, err := newServer(testConfig(), ms, ms, logger.Discard())
	require.NoError(t, err)

	rec := serve(t, e, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, e, http.MethodGet, "/readyz")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, e, http.MethodGet, "/api/v1/search?brand=bmw")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"matchPercentage":100`)
	assert.NotContains(t, rec.Body.String(), "Audi", "result limit from config applies")

	rec = serve(t, e, http.MethodGet, "/api/v1/cars/9")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, e, http.MethodGet, "/api/v1/favorites")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(t, e, http.MethodGet, "/swagger/swagger.json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"search-cars"`)
	assert.Contains(t, rec.Body.String(), `"bearer"`)

	rec = serve(t, e, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "carmatch_http_requests_total")
}

func TestNewServer_RateLimitsSearchOnly(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, PerSecond: 0.001, Burst: 1}

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListAllCars(mock.Anything).Return(nil, nil).Once()
	ms.EXPECT().GetCar(mock.Anything, int64(1)).Return(&domain.CarWithDetails{Car: domain.Car{ID: 1}}, nil).Times(2)

	e, _, err := newServer(cfg, ms, ms, logger.Discard())
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, serve(t, e, http.MethodGet, "/api/v1/search").Code)

	rec := serve(t, e, http.MethodGet, "/api/v1/search")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	for range 2 {
		assert.Equal(t, http.StatusOK, serve(t, e, http.MethodGet, "/api/v1/cars/1").Code)
	}
}

func TestOpenAPICommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := openapiCommand()
	c.SetOut(&out)
	c.SetArgs([]string{"--yaml"})

	require.NoError(t, c.Execute())
	assert.Contains(t, out.String(), "openapi: 3.1.0")
	assert.Contains(t, out.String(), "operationId: search-cars")
	assert.Contains(t, out.String(), "/api/v1/favorites/{carId}")
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := versionCommand()
	c.SetOut(&out)

	require.NoError(t, c.Execute())
	assert.Equal(t, "carmatch dev\n", out.String())
}
