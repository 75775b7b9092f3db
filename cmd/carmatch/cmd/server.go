package cmd

import (
	"fmt"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donaldgifford/carmatch/api/openapi"
	"github.com/donaldgifford/carmatch/internal/api/handlers"
	"github.com/donaldgifford/carmatch/internal/api/middleware"
	"github.com/donaldgifford/carmatch/internal/config"
	"github.com/donaldgifford/carmatch/internal/store"
	"github.com/donaldgifford/carmatch/internal/telemetry"
	"github.com/donaldgifford/carmatch/pkg/logger"
	"github.com/donaldgifford/carmatch/pkg/match"
)

// searchPath is the echo route of the search operation.
const searchPath = "/api/v1/search"

// newServer builds the Echo instance with middleware, health probes,
// metrics, and every API operation. cars supplies search candidates and may
// be a catalog in front of st.
func newServer(cfg *config.Config, st store.Store, cars store.CarLister, log *slog.Logger) (*echo.Echo, huma.API, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.Recovery(log))
	e.Use(middleware.Tracing(telemetry.Tracer()))
	e.Use(middleware.RequestLog(logger.Component(log, "http")))
	e.Use(middleware.Metrics())
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewClientLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst)
		e.Use(onlyPaths(middleware.RateLimit(limiter), searchPath))
	}

	var healthOpts []handlers.HealthOption
	if sz, ok := cars.(handlers.CatalogSizer); ok {
		healthOpts = append(healthOpts, handlers.WithCatalog(sz))
	}
	health := handlers.NewHealthHandler(st, healthOpts...)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, apiConfig())

	recorder, err := telemetry.NewSearchRecorder(nil)
	if err != nil {
		return nil, nil, fmt.Errorf("creating search recorder: %w", err)
	}
	ranker := match.NewRanker(
		match.NewScorer(cfg.Search.MatchWeights(), cfg.Search.MatchRules()),
		match.WithLimit(cfg.Search.ResultLimit),
		match.WithWorkers(cfg.Search.Workers),
	)

	handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(cars, ranker,
		handlers.WithSearchRecorder(recorder),
		handlers.WithSearchLogger(logger.Component(log, "search")),
	))
	handlers.RegisterCarRoutes(api, handlers.NewCarsHandler(st))
	handlers.RegisterUserRoutes(api, handlers.NewUsersHandler(st))
	handlers.RegisterFavoriteRoutes(api, handlers.NewFavoritesHandler(st))
	handlers.RegisterReviewRoutes(api, handlers.NewReviewsHandler(st))

	openapi.RegisterRoutes(e, openapi.NewSpec(api))

	return e, api, nil
}

// apiConfig is the Huma configuration. The spec is served by the openapi
// package, so Huma's own spec and docs routes are turned off.
func apiConfig() huma.Config {
	c := huma.DefaultConfig("carmatch API", Version)
	c.Info.Description = "Ranks cars against buyer criteria. Accounts, favorites, and reviews " +
		"authenticate with `Authorization: Bearer <user id>`."
	c.OpenAPIPath = ""
	c.DocsPath = ""
	c.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {
			Type:        "http",
			Scheme:      "bearer",
			Description: "The user ID returned by register or login.",
		},
	}
	return c
}

// onlyPaths applies mw to requests whose matched route is one of paths.
func onlyPaths(mw echo.MiddlewareFunc, paths ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		wrapped := mw(next)
		return func(c echo.Context) error {
			for _, p := range paths {
				if c.Path() == p {
					return wrapped(c)
				}
			}
			return next(c)
		}
	}
}
