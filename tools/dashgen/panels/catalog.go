package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// LastRefresh returns a stat panel showing time since the last successful
// catalog refresh.
func LastRefresh() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Last Catalog Refresh").
		Description("Time since the catalog cache was last reloaded").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`time() - carmatch_catalog_last_refresh_timestamp{job="carmatch"}`,
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(900, 3600)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// RefreshRate returns a timeseries panel showing catalog refreshes and
// failed refreshes per hour.
func RefreshRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Refreshes / h").
		Description("Catalog refreshes and failures per hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(9).
		WithTarget(PromQuery(`carmatch:catalog_refresh:rate5m * 3600`, "refreshes", "A")).
		WithTarget(PromQuery(`carmatch:catalog_refresh_errors:rate5m * 3600`, "errors", "B")).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RefreshDuration returns a timeseries panel showing the p95 catalog
// refresh duration.
func RefreshDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Refresh Duration (p95)").
		Description("95th percentile catalog refresh duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(9).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(carmatch_catalog_refresh_duration_seconds_bucket{job="carmatch"}[5m])) by (le))`,
			"p95",
			"A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
