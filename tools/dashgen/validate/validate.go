// Package validate checks generated dashboards and rules against the set of
// metrics the service actually exports, so a renamed metric fails the build
// instead of producing a silently empty panel.
package validate

import (
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	promparser "github.com/prometheus/prometheus/promql/parser"
)

// Result collects validation findings. Errors fail validation; warnings
// are informational.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation passed.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Dashboard validates every Prometheus query target in the dashboard:
// each expression must parse as PromQL and reference only known metrics.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result
	for _, p := range dash.Panels {
		if p.Panel != nil {
			validatePanel(p.Panel, known, &res)
		}
		if p.RowPanel != nil {
			for i := range p.RowPanel.Panels {
				validatePanel(&p.RowPanel.Panels[i], known, &res)
			}
		}
	}
	return res
}

// Exprs validates a set of named PromQL expressions, as used by recording
// and alert rules.
func Exprs(exprs map[string]string, known map[string]bool) Result {
	var res Result
	for name, expr := range exprs {
		checkExpr(name, expr, known, &res)
	}
	return res
}

func validatePanel(p *dashboard.Panel, known map[string]bool, res *Result) {
	title := "untitled"
	if p.Title != nil {
		title = *p.Title
	}

	if len(p.Targets) == 0 {
		res.warnf("panel %q has no query targets", title)
		return
	}

	for _, target := range p.Targets {
		expr := promExpr(target)
		if expr == "" {
			res.warnf("panel %q has a non-Prometheus query target", title)
			continue
		}
		checkExpr("panel "+title, expr, known, res)
	}
}

// promExpr extracts the PromQL expression from a dataquery variant.
func promExpr(target any) string {
	switch q := target.(type) {
	case prometheus.Dataquery:
		return q.Expr
	case *prometheus.Dataquery:
		return q.Expr
	default:
		return ""
	}
}

func checkExpr(context, expr string, known map[string]bool, res *Result) {
	parsed, err := promparser.ParseExpr(expr)
	if err != nil {
		res.errorf("%s: invalid PromQL %q: %v", context, expr, err)
		return
	}

	promparser.Inspect(parsed, func(node promparser.Node, _ []promparser.Node) error {
		vs, ok := node.(*promparser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !knownMetric(vs.Name, known) {
			res.errorf("%s: unknown metric %q", context, vs.Name)
		}
		return nil
	})
}

// knownMetric reports whether name is exported by the service. Histogram
// series suffixes map back to the base histogram name.
func knownMetric(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}
