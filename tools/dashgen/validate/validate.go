// Package validate checks generated dashboards and rule files: every PromQL
// expression must parse and reference only known metric names.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/carmatch/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings do not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(o Result) {
	r.Errors = append(r.Errors, o.Errors...)
	r.Warnings = append(r.Warnings, o.Warnings...)
}

// histogramSuffixes are the series a histogram exposes beyond its base name.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Expr parses a PromQL expression and checks each vector selector against
// known. The where string prefixes every finding.
func Expr(where, expr string, known map[string]bool) Result {
	var res Result

	if strings.TrimSpace(expr) == "" {
		res.Errors = append(res.Errors, where+": empty expression")
		return res
	}

	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%s: parse %q: %v", where, expr, err))
		return res
	}

	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok {
			return nil
		}
		if vs.Name == "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: selector without metric name in %q", where, expr))
			return nil
		}
		if !knownMetric(vs.Name, known) {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: unknown metric %q", where, vs.Name))
		}
		return nil
	})

	return res
}

func knownMetric(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

// Dashboard validates every Prometheus target of every panel, including
// panels nested in rows.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	for i, p := range dash.Panels {
		switch {
		case p.Panel != nil:
			res.merge(panel(fmt.Sprintf("panel %d", i), p.Panel, known))
		case p.RowPanel != nil:
			if len(p.RowPanel.Panels) == 0 {
				res.Warnings = append(res.Warnings, fmt.Sprintf("row %d: no panels", i))
			}
			for j := range p.RowPanel.Panels {
				res.merge(panel(fmt.Sprintf("row %d panel %d", i, j), &p.RowPanel.Panels[j], known))
			}
		}
	}

	return res
}

func panel(where string, p *dashboard.Panel, known map[string]bool) Result {
	var res Result

	if len(p.Targets) == 0 {
		res.Warnings = append(res.Warnings, where+": no targets")
		return res
	}

	for k, target := range p.Targets {
		expr, ok := promExpr(target)
		if !ok {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s target %d: not a prometheus query", where, k))
			continue
		}
		res.merge(Expr(fmt.Sprintf("%s target %d", where, k), expr, known))
	}

	return res
}

// promExpr extracts the PromQL expression from a panel target through its
// JSON form.
func promExpr(target any) (string, bool) {
	data, err := json.Marshal(target)
	if err != nil {
		return "", false
	}
	var q struct {
		Expr string `json:"expr"`
	}
	if err := json.Unmarshal(data, &q); err != nil || q.Expr == "" {
		return "", false
	}
	return q.Expr, true
}

// Rules validates every rule expression in a PrometheusRule. Names recorded
// by the rules themselves count as known for later expressions.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result

	names := make(map[string]bool, len(known))
	for k, v := range known {
		names[k] = v
	}
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			if r.Record != "" {
				names[r.Record] = true
			}
		}
	}

	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			if name == "" {
				res.Errors = append(res.Errors, fmt.Sprintf("group %s: rule without record or alert name", g.Name))
				continue
			}
			res.merge(Expr(fmt.Sprintf("%s/%s", g.Name, name), r.Expr, names))
		}
	}

	return res
}
