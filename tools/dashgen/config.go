package main

import "errors"

// KnownMetrics is the set of metric names exported by car-price-advisor
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"cpa_http_request_duration_seconds": true,
	"cpa_http_requests_total":           true,

	// Health metrics.
	"cpa_healthz_up": true,
	"cpa_readyz_up":  true,

	// Estimation metrics.
	"cpa_estimates_total":     true,
	"cpa_estimate_confidence": true,

	// Contract assessment metrics.
	"cpa_assessments_total":           true,
	"cpa_fairness_score_distribution": true,

	// NHTSA API metrics.
	"cpa_nhtsa_request_duration_seconds": true,
	"cpa_nhtsa_errors_total":             true,
	"cpa_nhtsa_api_calls_total":          true,
	"cpa_nhtsa_daily_usage":              true,
	"cpa_nhtsa_daily_limit_hits_total":   true,

	// Recall refresh metrics.
	"cpa_recall_refresh_duration_seconds": true,
	"cpa_recall_refresh_errors_total":     true,

	// Alert metrics.
	"cpa_alerts_fired_total":          true,
	"cpa_notification_failures_total": true,

	// Recording rules.
	"cpa:http_requests:rate5m":   true,
	"cpa:http_errors:rate5m":     true,
	"cpa:estimates:rate5m":       true,
	"cpa:assessments:rate5m":     true,
	"cpa:nhtsa_api_calls:rate5m": true,
	"cpa:nhtsa_errors:rate5m":    true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
