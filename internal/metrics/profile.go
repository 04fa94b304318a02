// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package metrics exposes the Prometheus collectors of the profile tooling.
// Collectors live on a private registry so the textfile export carries only
// playprofile series.
package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registry = prometheus.NewRegistry()
	factory  = promauto.With(registry)

	profileBuildsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "playprofile",
		Name:      "profile_builds_total",
		Help:      "Total number of device profiles built, by canonical profile name",
	}, []string{"profile"})

	schemaValidationsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "playprofile",
		Name:      "schema_validations_total",
		Help:      "Total number of schema validations of built profiles, by result",
	}, []string{"result"})

	fixtureRunsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "playprofile",
		Name:      "fixture_runs_total",
		Help:      "Total number of fixture generator runs, by mode (write|check) and result",
	}, []string{"mode", "result"})

	fixtureLastRun = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: "playprofile",
		Name:      "fixture_last_run_timestamp_seconds",
		Help:      "Unix time of the last successful fixture run",
	})
)

// Gatherer returns the registry holding every playprofile collector.
func Gatherer() prometheus.Gatherer {
	return registry
}

// RecordProfileBuild counts one built profile.
func RecordProfileBuild(profile string) {
	profileBuildsTotal.WithLabelValues(normalizeProfileLabel(profile)).Inc()
}

// RecordSchemaValidation counts one validation outcome.
func RecordSchemaValidation(err error) {
	schemaValidationsTotal.WithLabelValues(resultLabel(err)).Inc()
}

// RecordFixtureRun counts one generator run. Only successful runs move the timestamp.
func RecordFixtureRun(mode string, err error, at time.Time) {
	fixtureRunsTotal.WithLabelValues(normalizeModeLabel(mode), resultLabel(err)).Inc()
	if err == nil {
		fixtureLastRun.Set(float64(at.Unix()))
	}
}

// WriteTextfile dumps the registry in text exposition format, for the
// node_exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, registry)
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func normalizeProfileLabel(profile string) string {
	p := strings.ToLower(strings.TrimSpace(profile))
	if p == "" {
		return "unknown"
	}
	return p
}

func normalizeModeLabel(mode string) string {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "write":
		return "write"
	case "check":
		return "check"
	default:
		return "other"
	}
}
