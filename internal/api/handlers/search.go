package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/carmatch/internal/metrics"
	"github.com/donaldgifford/carmatch/internal/store"
	"github.com/donaldgifford/carmatch/internal/telemetry"
	"github.com/donaldgifford/carmatch/pkg/match"
	domain "github.com/donaldgifford/carmatch/pkg/types"
)

// Search modes, used as metric labels.
const (
	searchModeRanked = "ranked"
	searchModeAll    = "all"
)

// SearchHandler serves the car search endpoint.
type SearchHandler struct {
	cars     store.CarLister
	ranker   *match.Ranker
	recorder *telemetry.SearchRecorder
	tracer   trace.Tracer
	log      *slog.Logger
}

// SearchHandlerOption configures the SearchHandler.
type SearchHandlerOption func(*SearchHandler)

// WithSearchRecorder records search outcomes as OpenTelemetry metrics.
func WithSearchRecorder(r *telemetry.SearchRecorder) SearchHandlerOption {
	return func(h *SearchHandler) {
		h.recorder = r
	}
}

// WithSearchTracer sets the tracer used for search spans.
func WithSearchTracer(t trace.Tracer) SearchHandlerOption {
	return func(h *SearchHandler) {
		h.tracer = t
	}
}

// WithSearchLogger sets the logger used for failed searches.
func WithSearchLogger(l *slog.Logger) SearchHandlerOption {
	return func(h *SearchHandler) {
		h.log = l
	}
}

// NewSearchHandler creates a new SearchHandler. A nil ranker uses the
// default weights, rules, and result limit.
func NewSearchHandler(cars store.CarLister, ranker *match.Ranker, opts ...SearchHandlerOption) *SearchHandler {
	if ranker == nil {
		ranker = match.NewRanker(nil)
	}
	h := &SearchHandler{
		cars:   cars,
		ranker: ranker,
		tracer: telemetry.Tracer(),
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SearchInput holds the search query parameters. Values are taken as
// strings so malformed input is reported as 400 by the handler.
type SearchInput struct {
	Brand      string `query:"brand"      doc:"Brand, exact case-insensitive match"           example:"BMW"`
	Model      string `query:"model"      doc:"Model, case-insensitive substring match"       example:"3 Series"`
	Year       string `query:"year"       doc:"Model year; neighbouring years get partial credit" example:"2020"`
	Horsepower string `query:"horsepower" doc:"Minimum desired horsepower"                    example:"250"`
	MinPrice   string `query:"minPrice"   doc:"Lower price bound"                             example:"15000"`
	MaxPrice   string `query:"maxPrice"   doc:"Upper price bound"                             example:"30000"`
	Seats      string `query:"seats"      doc:"Minimum number of seats"                       example:"5"`
	FuelType   string `query:"fuelType"   doc:"Fuel type, exact case-insensitive match"       example:"Petrol"`
	EngineType string `query:"engineType" doc:"Engine type, case-insensitive substring match" example:"V6"`
	GetAllCars string `query:"getAllCars" doc:"Return every car unscored, ignoring all criteria" example:"true"`
	Explain    string `query:"explain"    doc:"Attach the per-criterion score breakdown to each result" example:"true"`
}

// SearchOutput is the search response: an array of scored cars, or of
// plain cars when getAllCars is set.
type SearchOutput struct {
	Body any
}

// Search ranks the car inventory against the given criteria.
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	start := time.Now()
	defer func() {
		metrics.SearchDuration.Observe(time.Since(start).Seconds())
	}()

	getAll, err := ParseFlag("getAllCars", input.GetAllCars)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}
	explain, err := ParseFlag("explain", input.Explain)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	mode := searchModeRanked
	if getAll {
		mode = searchModeAll
	}

	ctx, span := h.tracer.Start(ctx, "search.cars", trace.WithAttributes(
		attribute.String("search.mode", mode),
	))
	defer span.End()

	var criteria match.Criteria
	if !getAll {
		criteria, err = ParseCriteria(CriteriaParams{
			Brand:      input.Brand,
			Model:      input.Model,
			Year:       input.Year,
			Horsepower: input.Horsepower,
			MinPrice:   input.MinPrice,
			MaxPrice:   input.MaxPrice,
			Seats:      input.Seats,
			FuelType:   input.FuelType,
			EngineType: input.EngineType,
		})
		if err != nil {
			span.SetStatus(codes.Error, "invalid criteria")
			return nil, huma.Error400BadRequest(err.Error())
		}
	}

	cars, err := h.cars.ListAllCars(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "loading cars")
		h.log.ErrorContext(ctx, "search failed", "error", err)
		return nil, huma.Error500InternalServerError("loading cars failed: " + err.Error())
	}

	metrics.SearchRequestsTotal.WithLabelValues(mode).Inc()
	metrics.SearchCandidates.Observe(float64(len(cars)))
	span.SetAttributes(attribute.Int("search.candidates", len(cars)))

	if getAll {
		all := h.ranker.All(cars)
		h.recorder.Record(ctx, mode, nil)
		return &SearchOutput{Body: all}, nil
	}

	active := criteria.Active()
	for _, name := range active {
		metrics.SearchCriteriaUsed.WithLabelValues(name).Inc()
	}

	var results []domain.ScoredCar
	if explain {
		results = h.ranker.RankExplained(cars, &criteria)
	} else {
		results = h.ranker.Rank(cars, &criteria)
	}
	if results == nil {
		results = []domain.ScoredCar{}
	}

	percentages := make([]int, len(results))
	for i := range results {
		percentages[i] = results[i].MatchPercentage
		metrics.MatchPercentageDistribution.Observe(float64(results[i].MatchPercentage))
	}
	metrics.SearchResults.Observe(float64(len(results)))
	h.recorder.Record(ctx, mode, percentages)

	span.SetAttributes(
		attribute.StringSlice("search.criteria", active),
		attribute.Int("search.results", len(results)),
	)

	return &SearchOutput{Body: results}, nil
}

// RegisterSearchRoutes registers the search endpoint with the Huma API.
func RegisterSearchRoutes(api huma.API, h *SearchHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-cars",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search cars",
		Description: "Scores every car against the optional criteria and returns the best matches, " +
			"highest match percentage first. With getAllCars the full inventory is returned unscored.",
		Tags:   []string{"search"},
		Errors: []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.Search)
}
