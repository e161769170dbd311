// File: options.go
// Title: Pattern Cache Options
// Description: Functional options for New and their derivation from the
//              [pattern_cache] configuration section.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package regexx

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	mdwlog "github.com/msto63/stringkit/foundation/core/log"
	"github.com/msto63/stringkit/pkg/core/config"
)

// DefaultCapacity is the number of patterns a cache holds unless
// WithCapacity says otherwise
const DefaultCapacity = 1000

// DefaultName labels caches built without WithName
const DefaultName = "default"

type options struct {
	capacity int
	ttl      time.Duration
	compiler Compiler
	logger   *mdwlog.Logger
	registry prometheus.Registerer
	name     string
}

func defaultOptions() options {
	return options{
		capacity: DefaultCapacity,
		compiler: StdlibCompiler{},
		name:     DefaultName,
	}
}

// Option configures a Cache
type Option func(*options)

// WithCapacity bounds the number of stored patterns. The least recently
// used pattern is evicted when the bound is reached. n must be positive.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// WithTTL expires patterns d after they were stored. Zero disables expiry.
func WithTTL(d time.Duration) Option {
	return func(o *options) { o.ttl = d }
}

// WithCompiler selects the regex engine
func WithCompiler(c Compiler) Option {
	return func(o *options) { o.compiler = c }
}

// WithLogger sets the logger. The default is the package default logger
// named "regexx".
func WithLogger(l *mdwlog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics registers the cache collectors with reg
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) { o.registry = reg }
}

// WithName labels the cache in logs and metrics
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// OptionsFromConfig translates a [pattern_cache] section. Metrics are
// registered with prometheus.DefaultRegisterer when enabled.
func OptionsFromConfig(cfg config.PatternCacheConfig) ([]Option, error) {
	compiler, err := CompilerFor(cfg.Engine)
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithCompiler(compiler),
		WithTTL(cfg.TTL.Duration),
	}
	if cfg.Capacity != 0 {
		opts = append(opts, WithCapacity(cfg.Capacity))
	}
	if cfg.Metrics {
		opts = append(opts, WithMetrics(prometheus.DefaultRegisterer))
	}

	return opts, nil
}
