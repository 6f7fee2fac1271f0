package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "cpa-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "cpa-recording",
					Rules: []Rule{
						{
							Record: "cpa:http_requests:rate5m",
							Expr:   `sum(rate(cpa_http_requests_total[5m]))`,
						},
						{
							Record: "cpa:http_errors:rate5m",
							Expr:   `sum(rate(cpa_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "cpa:estimates:rate5m",
							Expr:   `sum(rate(cpa_estimates_total[5m]))`,
						},
						{
							Record: "cpa:assessments:rate5m",
							Expr:   `sum(rate(cpa_assessments_total[5m]))`,
						},
						{
							Record: "cpa:nhtsa_api_calls:rate5m",
							Expr:   `rate(cpa_nhtsa_api_calls_total[5m])`,
						},
						{
							Record: "cpa:nhtsa_errors:rate5m",
							Expr:   `sum(rate(cpa_nhtsa_errors_total[5m]))`,
						},
					},
				},
			},
		},
	}
}
