// File: metrics.go
// Title: Pattern Cache Metrics
// Description: Prometheus collectors for a pattern cache. Collectors are
//              created per cache and labelled with the cache name, so
//              several caches can share one registry.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package regexx

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/msto63/stringkit/pkg/core/version"
)

const (
	metricsNamespace = "stringkit"
	metricsSubsystem = "pattern_cache"
)

// metrics holds the collectors of one cache. A nil *metrics records nothing.
type metrics struct {
	hits             prometheus.Counter
	misses           prometheus.Counter
	compiles         prometheus.Counter
	compileErrors    prometheus.Counter
	evictions        prometheus.Counter
	uncachedCompiles prometheus.Counter
	entries          prometheus.GaugeFunc
}

func newMetrics(cacheName string, size func() int) *metrics {
	labels := prometheus.Labels{
		"cache":   cacheName,
		"version": version.Library,
	}

	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Subsystem:   metricsSubsystem,
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
	}

	return &metrics{
		hits:             counter("hits_total", "Lookups served from the cache"),
		misses:           counter("misses_total", "Lookups that required a compile"),
		compiles:         counter("compiles_total", "Successful compiles stored in the cache"),
		compileErrors:    counter("compile_errors_total", "Patterns rejected by the engine"),
		evictions:        counter("evictions_total", "Entries dropped for capacity or expiry"),
		uncachedCompiles: counter("uncached_compiles_total", "Compiles done by uncached matches"),
		entries: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Subsystem:   metricsSubsystem,
			Name:        "entries",
			Help:        "Compiled patterns currently held",
			ConstLabels: labels,
		}, func() float64 { return float64(size()) }),
	}
}

func (m *metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.hits,
		m.misses,
		m.compiles,
		m.compileErrors,
		m.evictions,
		m.uncachedCompiles,
		m.entries,
	}
}

// register registers every collector and rolls back on the first failure
func (m *metrics) register(reg prometheus.Registerer) error {
	var done []prometheus.Collector
	for _, c := range m.collectors() {
		if err := reg.Register(c); err != nil {
			for _, d := range done {
				reg.Unregister(d)
			}
			return err
		}
		done = append(done, c)
	}
	return nil
}

func (m *metrics) unregister(reg prometheus.Registerer) {
	for _, c := range m.collectors() {
		reg.Unregister(c)
	}
}

func (m *metrics) incHit() {
	if m != nil {
		m.hits.Inc()
	}
}

func (m *metrics) incMiss() {
	if m != nil {
		m.misses.Inc()
	}
}

func (m *metrics) incCompile() {
	if m != nil {
		m.compiles.Inc()
	}
}

func (m *metrics) incCompileError() {
	if m != nil {
		m.compileErrors.Inc()
	}
}

func (m *metrics) incEviction() {
	if m != nil {
		m.evictions.Inc()
	}
}

func (m *metrics) incUncached() {
	if m != nil {
		m.uncachedCompiles.Inc()
	}
}
