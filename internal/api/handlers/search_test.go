package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/donaldgifford/carmatch/internal/api/handlers"
	storeMocks "github.com/donaldgifford/carmatch/internal/store/mocks"
	"github.com/donaldgifford/carmatch/internal/telemetry"
	"github.com/donaldgifford/carmatch/pkg/match"
	domain "github.com/donaldgifford/carmatch/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func inventory() []domain.Car {
	return []domain.Car{
		{ID: 1, Brand: "Toyota", Model: "Corolla", Year: ptr(2019), Horsepower: ptr(139), Price: ptr(13700.0), Seats: ptr(5), FuelType: "Petrol", EngineType: "1.8L I4"},
		{ID: 2, Brand: "BMW", Model: "3 Series", Year: ptr(2020), Horsepower: ptr(255), Price: ptr(18900.0), Seats: ptr(5), FuelType: "Petrol", EngineType: "2.0L Turbo I4"},
		{ID: 3, Brand: "Fiat", Model: "Panda", Year: ptr(2012), Horsepower: ptr(69), Price: ptr(5000.0), Seats: ptr(4), FuelType: "Petrol", EngineType: "1.2L I4"},
	}
}

func newSearchAPI(t *testing.T, ms *storeMocks.MockStore, opts ...handlers.SearchHandlerOption) humatest.TestAPI {
	t.Helper()
	h := handlers.NewSearchHandler(ms, nil, opts...)
	_, api := humatest.New(t)
	handlers.RegisterSearchRoutes(api, h)
	return api
}

func decodeScored(t *testing.T, body []byte) []domain.ScoredCar {
	t.Helper()
	var out []domain.ScoredCar
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestSearch_RanksByPrice(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListAllCars(mock.Anything).Return(inventory(), nil).Once()

	resp := newSearchAPI(t, ms).Get("/api/v1/search?minPrice=20000")
	require.Equal(t, http.StatusOK, resp.Code)

	got := decodeScored(t, resp.Body.Bytes())
	require.Len(t, got, 2, "zero matches are dropped")
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, 90, got[0].MatchPercentage)
	assert.Equal(t, int64(1), got[1].ID)
	assert.Equal(t, 40, got[1].MatchPercentage)
	assert.Contains(t, resp.Body.String(), `"matchPercentage":90`)
	assert.NotContains(t, resp.Body.String(), "match_breakdown")
}

func TestSearch_NoCriteriaReturnsEveryCarAtFullMatch(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListAllCars(mock.Anything).Return(inventory(), nil).Once()

	resp := newSearchAPI(t, ms).Get("/api/v1/search")
	require.Equal(t, http.StatusOK, resp.Code)

	got := decodeScored(t, resp.Body.Bytes())
	require.Len(t, got, 3)
	for i, sc := range got {
		assert.Equal(t, int64(i+1), sc.ID, "input order is kept")
		assert.Equal(t, 100, sc.MatchPercentage)
	}
}

func TestSearch_BrandCaseInsensitive(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListAllCars(mock.Anything).Return(inventory(), nil).Once()

	resp := newSearchAPI(t, ms).Get("/api/v1/search?brand=bmw&explain=true")
	require.Equal(t, http.StatusOK, resp.Code)

	got := decodeScored(t, resp.Body.Bytes())
	require.Len(t, got, 1)
	assert.Equal(t, "BMW", got[0].Brand)
	assert.Equal(t, domain.MatchBreakdown{match.CriterionBrand: {Weight: 15, Score: 15}}, got[0].Breakdown)
}

func TestSearch_TruncatesToLimit(t *testing.T) {
	t.Parallel()

	cars := make([]domain.Car, 30)
	for i := range cars {
		cars[i] = domain.Car{ID: int64(i + 1), Brand: "Kia"}
	}

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListAllCars(mock.Anything).Return(cars, nil).Once()

	resp := newSearchAPI(t, ms).Get("/api/v1/search?brand=Kia")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, decodeScored(t, resp.Body.Bytes()), match.DefaultLimit)
}

func TestSearch_GetAllCarsIgnoresCriteria(t *testing.T) {
	t.Parallel()

	cars := make([]domain.Car, 30)
	for i := range cars {
		cars[i] = domain.Car{ID: int64(i + 1), Brand: "Kia"}
	}

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListAllCars(mock.Anything).Return(cars, nil).Once()

	resp := newSearchAPI(t, ms).Get("/api/v1/search?getAllCars=true&brand=Volvo&year=bad")
	require.Equal(t, http.StatusOK, resp.Code)

	var got []domain.Car
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	require.Len(t, got, 30)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(30), got[29].ID)
	assert.NotContains(t, resp.Body.String(), "matchPercentage")
}

func TestSearch_NoMatchesReturnsEmptyArray(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListAllCars(mock.Anything).Return(inventory(), nil).Once()

	resp := newSearchAPI(t, ms).Get("/api/v1/search?brand=Volvo")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())
}

func TestSearch_InvalidParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		wantBody string
	}{
		{name: "malformed year", query: "?year=abc", wantBody: "invalid year"},
		{name: "negative seats", query: "?seats=-2", wantBody: "must not be negative"},
		{name: "malformed price", query: "?maxPrice=lots", wantBody: "invalid maxPrice"},
		{name: "inverted range", query: "?minPrice=500&maxPrice=100", wantBody: "exceeds maxPrice"},
		{name: "malformed getAllCars", query: "?getAllCars=yes", wantBody: "invalid getAllCars"},
		{name: "malformed explain", query: "?explain=please", wantBody: "invalid explain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			resp := newSearchAPI(t, ms).Get("/api/v1/search" + tt.query)
			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestSearch_StoreErrorReturns500(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListAllCars(mock.Anything).Return(nil, assert.AnError).Once()

	resp := newSearchAPI(t, ms).Get("/api/v1/search?brand=BMW")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "loading cars failed")
}

func TestSearch_RecordsTelemetry(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	recorder, err := telemetry.NewSearchRecorder(provider.Meter("test"))
	require.NoError(t, err)

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListAllCars(mock.Anything).Return(inventory(), nil).Once()

	resp := newSearchAPI(t, ms, handlers.WithSearchRecorder(recorder)).Get("/api/v1/search?fuelType=petrol")
	require.Equal(t, http.StatusOK, resp.Code)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(t.Context(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	var sawHistogram bool
	for _, m := range rm.ScopeMetrics[0].Metrics {
		if m.Name != "carmatch.search.match_percentage" {
			continue
		}
		hist, ok := m.Data.(metricdata.Histogram[int64])
		require.True(t, ok)
		require.Len(t, hist.DataPoints, 1)
		assert.Equal(t, uint64(3), hist.DataPoints[0].Count)
		sawHistogram = true
	}
	assert.True(t, sawHistogram)
}
