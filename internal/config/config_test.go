package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/carmatch/pkg/match"
)

const minimalDB = `
database:
  host: localhost
  name: carmatch
  user: carmatch
`

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: minimalDB,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "carmatch", cfg.Database.Name)
				assert.Equal(t, "carmatch", cfg.Database.User)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: minimalDB,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, match.DefaultLimit, cfg.Search.ResultLimit)
				assert.Equal(t, 4, cfg.Search.Workers)
				assert.Equal(t, match.DefaultWeights(), cfg.Search.MatchWeights())
				assert.Equal(t, match.DefaultRules(), cfg.Search.MatchRules())
				assert.False(t, cfg.Catalog.CacheEnabled)
				assert.Equal(t, 5*time.Minute, cfg.Catalog.RefreshInterval)
				assert.InDelta(t, 10.0, cfg.RateLimit.PerSecond, 0.001)
				assert.Equal(t, 20, cfg.RateLimit.Burst)
				assert.Equal(t, "carmatch", cfg.Telemetry.ServiceName)
				assert.InDelta(t, 1.0, cfg.Telemetry.SampleRatio, 0.001)
				assert.False(t, cfg.Telemetry.ExportMetrics)
				assert.Equal(t, time.Minute, cfg.Telemetry.MetricInterval)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: minimalDB + `  password: "${TEST_CARMATCH_DB_PASSWORD}"
`,
			envVars: map[string]string{
				"TEST_CARMATCH_DB_PASSWORD": "secret123",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Database.Password)
			},
		},
		{
			name: "search overrides",
			yaml: minimalDB + `
search:
  result_limit: 25
  workers: 8
  weights:
    brand: 10
    price: 25
  rules:
    model_partial_credit: 0
    year_max_distance: 5
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, 25, cfg.Search.ResultLimit)
				assert.Equal(t, 8, cfg.Search.Workers)

				w := cfg.Search.MatchWeights()
				assert.Equal(t, 10, w.Brand)
				assert.Equal(t, 25, w.Price)
				assert.Equal(t, 15, w.Model)

				r := cfg.Search.MatchRules()
				assert.Zero(t, r.ModelPartialCredit)
				assert.Equal(t, 5, r.YearMaxDistance)
				assert.InDelta(t, 0.7, r.YearOneOffCredit, 0.0001)
			},
		},
		{
			name: "catalog and telemetry",
			yaml: minimalDB + `
catalog:
  cache_enabled: true
  refresh_interval: 30s
telemetry:
  enabled: true
  endpoint: otel-collector:4317
  insecure: true
  sample_ratio: 0.25
  export_metrics: true
  metric_interval: 15s
rate_limit:
  enabled: true
  per_second: 2.5
  burst: 5
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.True(t, cfg.Catalog.CacheEnabled)
				assert.Equal(t, 30*time.Second, cfg.Catalog.RefreshInterval)
				assert.True(t, cfg.Telemetry.Enabled)
				assert.Equal(t, "otel-collector:4317", cfg.Telemetry.Endpoint)
				assert.True(t, cfg.Telemetry.Insecure)
				assert.InDelta(t, 0.25, cfg.Telemetry.SampleRatio, 0.0001)
				assert.True(t, cfg.Telemetry.ExportMetrics)
				assert.Equal(t, 15*time.Second, cfg.Telemetry.MetricInterval)
				assert.True(t, cfg.RateLimit.Enabled)
				assert.InDelta(t, 2.5, cfg.RateLimit.PerSecond, 0.0001)
				assert.Equal(t, 5, cfg.RateLimit.Burst)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
		{
			name: "missing required database.host",
			yaml: `
database:
  name: carmatch
  user: carmatch
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing required database.user",
			yaml: `
database:
  host: localhost
  name: carmatch
`,
			wantErr: "database.user is required",
		},
		{
			name: "weights must sum to 100",
			yaml: minimalDB + `
search:
  weights:
    brand: 50
`,
			wantErr: "search.weights: weights sum to 135",
		},
		{
			name: "rule fraction out of range",
			yaml: minimalDB + `
search:
  rules:
    engine_partial_credit: 1.5
`,
			wantErr: "engine_partial_credit must be within [0,1]",
		},
		{
			name: "telemetry enabled without endpoint",
			yaml: minimalDB + `
telemetry:
  enabled: true
`,
			wantErr: "telemetry.endpoint is required",
		},
		{
			name: "catalog refresh too frequent",
			yaml: minimalDB + `
catalog:
  cache_enabled: true
  refresh_interval: 10ms
`,
			wantErr: "catalog.refresh_interval must be at least 1s",
		},
		{
			name: "invalid logging format",
			yaml: minimalDB + `
logging:
  format: xml
`,
			wantErr: "logging.format must be one of",
		},
		{
			name:    "invalid YAML",
			yaml:    "database: [unterminated",
			wantErr: "parsing config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoad_MultipleErrorsJoined(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  format: xml\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.host is required")
	assert.Contains(t, err.Error(), "database.name is required")
	assert.Contains(t, err.Error(), "logging.format must be one of")
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("TEST_CARMATCH_DOTENV=from-file\n"), 0o644))

	t.Setenv("TEST_CARMATCH_DOTENV", "")
	require.NoError(t, os.Unsetenv("TEST_CARMATCH_DOTENV"))

	require.NoError(t, LoadEnvFiles(filepath.Join(dir, "missing.env"), envPath))
	assert.Equal(t, "from-file", os.Getenv("TEST_CARMATCH_DOTENV"))
}

func TestLoadEnvFiles_DoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("TEST_CARMATCH_KEEP=from-file\n"), 0o644))

	t.Setenv("TEST_CARMATCH_KEEP", "from-env")

	require.NoError(t, LoadEnvFiles(envPath))
	assert.Equal(t, "from-env", os.Getenv("TEST_CARMATCH_KEEP"))
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	cfg := DatabaseConfig{
		Host:     "db.example.com",
		Port:     5433,
		Name:     "carmatch",
		User:     "admin",
		Password: "s3cret",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.example.com port=5433 dbname=carmatch user=admin password=s3cret sslmode=require",
		cfg.DSN(),
	)
}
