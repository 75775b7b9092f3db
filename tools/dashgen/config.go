package main

import "errors"

// KnownMetrics is the set of metric names exported by carmatch plus
// recording rule names referenced in dashboards and alerts. Histograms are
// listed by base name; the validator accepts their _bucket, _sum and _count
// series.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"carmatch_http_request_duration_seconds": true,
	"carmatch_http_requests_total":           true,
	"carmatch_http_rate_limited_total":       true,

	// Health metrics.
	"carmatch_healthz_up": true,
	"carmatch_readyz_up":  true,

	// Search metrics.
	"carmatch_search_requests_total":         true,
	"carmatch_search_duration_seconds":       true,
	"carmatch_search_candidates":             true,
	"carmatch_search_results":                true,
	"carmatch_match_percentage_distribution": true,
	"carmatch_search_criteria_used_total":    true,

	// Catalog cache metrics.
	"carmatch_catalog_refresh_total":            true,
	"carmatch_catalog_refresh_errors_total":     true,
	"carmatch_catalog_refresh_duration_seconds": true,
	"carmatch_catalog_cars":                     true,
	"carmatch_catalog_last_refresh_timestamp":   true,

	// Account metrics.
	"carmatch_user_registrations_total": true,
	"carmatch_login_attempts_total":     true,
	"carmatch_reviews_created_total":    true,

	// Recording rules.
	"carmatch:http_requests:rate5m":          true,
	"carmatch:http_errors:rate5m":            true,
	"carmatch:search_requests:rate5m":        true,
	"carmatch:catalog_refresh:rate5m":        true,
	"carmatch:catalog_refresh_errors:rate5m": true,
	"carmatch:login_attempts:rate5m":         true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
