// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/dealwise/car-price-advisor/tools/dashgen/panels"
)

// BuildOverview constructs the CPA Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("CPA Overview").
		Uid("cpa-overview").
		Tags([]string{"cpa", "car-price-advisor"}).
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
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: NHTSA API.
	b.WithRow(dashboard.NewRowBuilder("NHTSA API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.LimitHits()))

	// Row 4: Estimates.
	b.WithRow(dashboard.NewRowBuilder("Estimates").
		WithPanel(panels.EstimatesRate()).
		WithPanel(panels.ConfidenceDistribution()))

	// Row 5: Comparisons.
	b.WithRow(dashboard.NewRowBuilder("Comparisons").
		WithPanel(panels.AssessmentsRate()).
		WithPanel(panels.FairnessDistribution()))

	// Row 6: Recalls.
	b.WithRow(dashboard.NewRowBuilder("Recalls").
		WithPanel(panels.RefreshDuration()).
		WithPanel(panels.RefreshErrors()))

	// Row 7: Alerts.
	b.WithRow(dashboard.NewRowBuilder("Alerts").
		WithPanel(panels.AlertsRate()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
