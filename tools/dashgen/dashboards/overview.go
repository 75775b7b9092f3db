// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/carmatch/tools/dashgen/panels"
)

// BuildOverview constructs the carmatch Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("carmatch Overview").
		Uid("carmatch-overview").
		Tags([]string{"carmatch"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.CatalogSizeStat()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()).
		WithPanel(panels.RateLimited()))

	// Row 3: Search.
	b.WithRow(dashboard.NewRowBuilder("Search").
		WithPanel(panels.SearchRate()).
		WithPanel(panels.SearchLatency()).
		WithPanel(panels.CandidatesAndResults()).
		WithPanel(panels.MatchDistribution()).
		WithPanel(panels.CriteriaUsage()))

	// Row 4: Catalog.
	b.WithRow(dashboard.NewRowBuilder("Catalog").
		WithPanel(panels.LastRefresh()).
		WithPanel(panels.RefreshRate()).
		WithPanel(panels.RefreshDuration()))

	// Row 5: Accounts.
	b.WithRow(dashboard.NewRowBuilder("Accounts").
		WithPanel(panels.Signups()).
		WithPanel(panels.LoginResults()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
