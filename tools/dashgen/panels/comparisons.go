package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// AssessmentsRate returns a timeseries panel showing contract assessments
// per second, broken out by classification.
func AssessmentsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Assessments Rate").
		Description("Contract deviation assessments per second, by classification").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(cpa_assessments_total{job="car-price-advisor"}[5m])) by (assessment)`,
			"{{assessment}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// FairnessDistribution returns a bar gauge panel showing the distribution of
// computed fairness scores across histogram buckets.
func FairnessDistribution() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Fairness Score Distribution").
		Description("Distribution of contract fairness scores (0-100)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(cpa_fairness_score_distribution_bucket{job="car-price-advisor"}[1h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}
