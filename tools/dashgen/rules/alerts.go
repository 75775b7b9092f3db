package rules

// AlertRules returns a PrometheusRule CR containing alert rules for carmatch
// operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "carmatch-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "carmatch-alerts",
					Rules: []Rule{
						{
							Alert: "CarmatchDown",
							Expr:  `absent(up{job="carmatch"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "carmatch is down",
								"description": "The carmatch job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "CarmatchReadinessDown",
							Expr:  `carmatch_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "carmatch cannot reach its database",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "CarmatchHighErrorRate",
							Expr:  `carmatch:http_errors:rate5m / carmatch:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on carmatch",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "CarmatchSearchSlow",
							Expr:  `histogram_quantile(0.95, sum(rate(carmatch_search_duration_seconds_bucket[5m])) by (le)) > 1`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "carmatch searches are slow",
								"description": "The 95th percentile search duration has been above 1s for 10 minutes.",
							},
						},
						{
							Alert: "CarmatchCatalogRefreshFailing",
							Expr:  `carmatch:catalog_refresh_errors:rate5m > 0`,
							For:   "15m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "carmatch catalog refreshes are failing",
								"description": "Catalog refreshes have been failing for 15 minutes; searches are served from a stale snapshot.",
							},
						},
						{
							Alert: "CarmatchCatalogStale",
							Expr:  `time() - carmatch_catalog_last_refresh_timestamp > 3600`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "carmatch catalog is stale",
								"description": "The catalog cache has not been refreshed for more than an hour.",
							},
						},
						{
							Alert: "CarmatchCatalogEmpty",
							Expr:  `carmatch_catalog_cars == 0`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "carmatch catalog is empty",
								"description": "The catalog holds no cars, so every search returns an empty list. Check that the inventory was seeded.",
							},
						},
						{
							Alert: "CarmatchLoginFailures",
							Expr:  `sum(carmatch:login_attempts:rate5m{result="failure"}) > 1`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "info",
							},
							Annotations: map[string]string{
								"summary":     "Elevated failed logins on carmatch",
								"description": "More than one failed login per second over 10 minutes; possible credential guessing.",
							},
						},
					},
				},
			},
		},
	}
}
