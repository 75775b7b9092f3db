package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SearchRate returns a timeseries panel showing searches per second by mode
// (ranked or all).
func SearchRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Searches / s").
		Description("Searches served per second, by mode").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`carmatch:search_requests:rate5m`, "{{mode}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SearchLatency returns a timeseries panel showing p50 and p95 search
// duration, including candidate loading.
func SearchLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Search Duration").
		Description("Search duration percentiles including candidate loading").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`histogram_quantile(0.50, sum(rate(carmatch_search_duration_seconds_bucket{job="carmatch"}[5m])) by (le))`,
			"p50",
			"A",
		)).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(carmatch_search_duration_seconds_bucket{job="carmatch"}[5m])) by (le))`,
			"p95",
			"B",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CandidatesAndResults returns a timeseries panel comparing the average
// number of cars scored with the average number returned per search.
func CandidatesAndResults() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Candidates vs Results").
		Description("Average cars scored and returned per search").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(rate(carmatch_search_candidates_sum{job="carmatch"}[5m])) / sum(rate(carmatch_search_candidates_count{job="carmatch"}[5m]))`,
			"candidates", "A",
		)).
		WithTarget(PromQuery(
			`sum(rate(carmatch_search_results_sum{job="carmatch"}[5m])) / sum(rate(carmatch_search_results_count{job="carmatch"}[5m]))`,
			"results", "B",
		)).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// MatchDistribution returns a bar gauge panel showing the distribution of
// returned match percentages across histogram buckets.
func MatchDistribution() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Match % Distribution").
		Description("Distribution of match percentages of returned cars (0-100)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(carmatch_match_percentage_distribution_bucket{job="carmatch"}[1h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// CriteriaUsage returns a bar gauge panel showing how often each criterion
// appears in searches.
func CriteriaUsage() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Criteria Usage").
		Description("Searches per criterion over the last hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(carmatch_search_criteria_used_total{job="carmatch"}[1h])) by (criterion)`,
			"{{criterion}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}
