package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// Signups returns a timeseries panel showing registrations and reviews
// written per hour.
func Signups() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Registrations & Reviews / h").
		Description("New accounts and reviews written per hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(carmatch_user_registrations_total{job="carmatch"}[1h]))`,
			"registrations", "A",
		)).
		WithTarget(PromQuery(
			`sum(increase(carmatch_reviews_created_total{job="carmatch"}[1h]))`,
			"reviews", "B",
		)).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// LoginResults returns a timeseries panel showing login attempts per
// second by result.
func LoginResults() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Logins / s").
		Description("Login attempts per second, by result").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`carmatch:login_attempts:rate5m`, "{{result}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
