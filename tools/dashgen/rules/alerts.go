package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// car-price-advisor operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "cpa-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "cpa-alerts",
					Rules: []Rule{
						{
							Alert: "CpaDown",
							Expr:  `absent(up{job="car-price-advisor"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Car Price Advisor is down",
								"description": "The car-price-advisor job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "CpaReadinessDown",
							Expr:  `cpa_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Car Price Advisor readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "CpaHighErrorRate",
							Expr:  `cpa:http_errors:rate5m / cpa:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on Car Price Advisor",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "CpaNHTSAErrors",
							Expr:  `cpa:nhtsa_errors:rate5m > 0.1`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "NHTSA API error rate is elevated",
								"description": "NHTSA API calls are failing at more than 0.1/s for the last 5 minutes.",
							},
						},
						{
							Alert: "CpaRecallRefreshErrors",
							Expr:  `increase(cpa_recall_refresh_errors_total[30m]) > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Recall refresh errors detected",
								"description": "The scheduled recall refresh has been producing per-vehicle errors in the last 30 minutes.",
							},
						},
						{
							Alert: "CpaNHTSAQuotaHigh",
							Expr:  `cpa_nhtsa_daily_usage > 1600`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "NHTSA API daily usage is above 80% of the budget",
								"description": "Daily NHTSA API usage has exceeded 1600 calls (budget is 2000).",
							},
						},
						{
							Alert: "CpaNHTSALimitReached",
							Expr:  `increase(cpa_nhtsa_daily_limit_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "NHTSA API daily budget has been reached",
								"description": "The NHTSA API daily call budget has been exhausted. VIN decoding and recall fetching are paused until reset.",
							},
						},
						{
							Alert: "CpaNotificationFailures",
							Expr:  `increase(cpa_notification_failures_total[15m]) > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Alert notification deliveries are failing",
								"description": "One or more assessment alert notifications failed to deliver in the last 15 minutes.",
							},
						},
					},
				},
			},
		},
	}
}
