// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/carmatch/pkg/match"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Search    SearchConfig    `yaml:"search"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// SearchConfig tunes the match engine. Zero weights and unset rules keep
// the built-in defaults.
type SearchConfig struct {
	ResultLimit int                `yaml:"result_limit"`
	Workers     int                `yaml:"workers"`
	Weights     SearchWeights      `yaml:"weights"`
	Rules       SearchRuleOverride `yaml:"rules"`
}

// SearchWeights overrides individual criterion weights.
type SearchWeights struct {
	Brand      int `yaml:"brand"`
	Model      int `yaml:"model"`
	Year       int `yaml:"year"`
	Horsepower int `yaml:"horsepower"`
	Price      int `yaml:"price"`
	Seats      int `yaml:"seats"`
	FuelType   int `yaml:"fuel_type"`
	EngineType int `yaml:"engine_type"`
}

// SearchRuleOverride overrides partial-credit constants. Pointers
// distinguish "unset" from an explicit zero.
type SearchRuleOverride struct {
	ModelPartialCredit     *float64 `yaml:"model_partial_credit"`
	YearOneOffCredit       *float64 `yaml:"year_one_off_credit"`
	YearNearCredit         *float64 `yaml:"year_near_credit"`
	YearMaxDistance        *int     `yaml:"year_max_distance"`
	HorsepowerMaxDeficit   *float64 `yaml:"horsepower_max_deficit"`
	HorsepowerExcessPct    *float64 `yaml:"horsepower_excess_pct"`
	HorsepowerExcessCredit *float64 `yaml:"horsepower_excess_credit"`
	PriceBelowMinFactor    *float64 `yaml:"price_below_min_factor"`
	PriceOverMaxFactor     *float64 `yaml:"price_over_max_factor"`
	EnginePartialCredit    *float64 `yaml:"engine_partial_credit"`
}

// MatchWeights merges the configured weights over match.DefaultWeights.
func (s *SearchConfig) MatchWeights() match.Weights {
	w := match.DefaultWeights()
	overrideInt(&w.Brand, s.Weights.Brand)
	overrideInt(&w.Model, s.Weights.Model)
	overrideInt(&w.Year, s.Weights.Year)
	overrideInt(&w.Horsepower, s.Weights.Horsepower)
	overrideInt(&w.Price, s.Weights.Price)
	overrideInt(&w.Seats, s.Weights.Seats)
	overrideInt(&w.FuelType, s.Weights.FuelType)
	overrideInt(&w.EngineType, s.Weights.EngineType)
	return w
}

// MatchRules merges the configured rule overrides over match.DefaultRules.
func (s *SearchConfig) MatchRules() match.Rules {
	r := match.DefaultRules()
	o := s.Rules
	overridePtr(&r.ModelPartialCredit, o.ModelPartialCredit)
	overridePtr(&r.YearOneOffCredit, o.YearOneOffCredit)
	overridePtr(&r.YearNearCredit, o.YearNearCredit)
	overridePtr(&r.YearMaxDistance, o.YearMaxDistance)
	overridePtr(&r.HorsepowerMaxDeficit, o.HorsepowerMaxDeficit)
	overridePtr(&r.HorsepowerExcessPct, o.HorsepowerExcessPct)
	overridePtr(&r.HorsepowerExcessCredit, o.HorsepowerExcessCredit)
	overridePtr(&r.PriceBelowMinFactor, o.PriceBelowMinFactor)
	overridePtr(&r.PriceOverMaxFactor, o.PriceOverMaxFactor)
	overridePtr(&r.EnginePartialCredit, o.EnginePartialCredit)
	return r
}

func overrideInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func overridePtr[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// CatalogConfig controls the in-memory car catalog used as the search
// candidate set.
type CatalogConfig struct {
	CacheEnabled    bool          `yaml:"cache_enabled"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// RateLimitConfig defines per-client request limits on the search endpoint.
type RateLimitConfig struct {
	Enabled   bool    `yaml:"enabled"`
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// TelemetryConfig defines OpenTelemetry export settings. Traces and,
// optionally, metrics are pushed to an OTLP gRPC collector.
type TelemetryConfig struct {
	Enabled        bool          `yaml:"enabled"`
	Endpoint       string        `yaml:"endpoint"` // host:port
	Insecure       bool          `yaml:"insecure"`
	ServiceName    string        `yaml:"service_name"`
	SampleRatio    float64       `yaml:"sample_ratio"`
	ExportMetrics  bool          `yaml:"export_metrics"`
	MetricInterval time.Duration `yaml:"metric_interval"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// LoadEnvFiles loads KEY=VALUE pairs from the given .env files into the
// process environment without overriding variables that are already set.
// Missing files are skipped.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading env file %s: %w", p, err)
		}
	}
	return nil
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applySearchDefaults(&cfg.Search)
	applyCatalogDefaults(&cfg.Catalog)
	applyRateLimitDefaults(&cfg.RateLimit)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
	if s.ShutdownTimeout == 0 {
		s.ShutdownTimeout = 10 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applySearchDefaults(s *SearchConfig) {
	if s.ResultLimit == 0 {
		s.ResultLimit = match.DefaultLimit
	}
	if s.Workers == 0 {
		s.Workers = 4
	}
}

func applyCatalogDefaults(c *CatalogConfig) {
	if c.RefreshInterval == 0 {
		c.RefreshInterval = 5 * time.Minute
	}
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 10.0
	}
	if r.Burst == 0 {
		r.Burst = 20
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "carmatch"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
	if t.MetricInterval == 0 {
		t.MetricInterval = time.Minute
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, errors.New("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, errors.New("database.user is required"))
	}

	if cfg.Search.ResultLimit < 0 {
		errs = append(errs, fmt.Errorf("search.result_limit must be positive (got %d)", cfg.Search.ResultLimit))
	}
	if cfg.Search.Workers < 0 {
		errs = append(errs, fmt.Errorf("search.workers must be positive (got %d)", cfg.Search.Workers))
	}
	if err := cfg.Search.MatchWeights().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("search.weights: %w", err))
	}
	if err := cfg.Search.MatchRules().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("search.rules: %w", err))
	}

	if cfg.Catalog.CacheEnabled && cfg.Catalog.RefreshInterval < time.Second {
		errs = append(errs, fmt.Errorf(
			"catalog.refresh_interval must be at least 1s (got %s)", cfg.Catalog.RefreshInterval,
		))
	}

	if cfg.RateLimit.PerSecond < 0 || cfg.RateLimit.Burst < 0 {
		errs = append(errs, errors.New("rate_limit.per_second and rate_limit.burst must be non-negative"))
	}

	if cfg.Telemetry.Enabled && cfg.Telemetry.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint is required when telemetry is enabled"))
	}
	if cfg.Telemetry.SampleRatio < 0 || cfg.Telemetry.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf(
			"telemetry.sample_ratio must be within [0,1] (got %v)", cfg.Telemetry.SampleRatio,
		))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
