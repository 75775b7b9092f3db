package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "carmatch-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "carmatch-recording",
					Rules: []Rule{
						{
							Record: "carmatch:http_requests:rate5m",
							Expr:   `sum(rate(carmatch_http_requests_total[5m]))`,
						},
						{
							Record: "carmatch:http_errors:rate5m",
							Expr:   `sum(rate(carmatch_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "carmatch:search_requests:rate5m",
							Expr:   `sum(rate(carmatch_search_requests_total[5m])) by (mode)`,
						},
						{
							Record: "carmatch:catalog_refresh:rate5m",
							Expr:   `sum(rate(carmatch_catalog_refresh_total[5m]))`,
						},
						{
							Record: "carmatch:catalog_refresh_errors:rate5m",
							Expr:   `sum(rate(carmatch_catalog_refresh_errors_total[5m]))`,
						},
						{
							Record: "carmatch:login_attempts:rate5m",
							Expr:   `sum(rate(carmatch_login_attempts_total[5m])) by (result)`,
						},
					},
				},
			},
		},
	}
}
