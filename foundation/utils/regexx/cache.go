// File: cache.go
// Title: Compiled Pattern Cache
// Description: A bounded cache of compiled regular expressions keyed by
//              pattern text. Lookups compile on miss, concurrent misses for
//              the same pattern share one compile, and failed compiles are
//              never stored. Uncached matching compiles on every call and
//              leaves the cache untouched.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-14 v0.1.1: Close drops entries, ConfigureDefault

package regexx

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	mdwerror "github.com/msto63/stringkit/foundation/core/error"
	mdwerrors "github.com/msto63/stringkit/foundation/core/errors"
	mdwlog "github.com/msto63/stringkit/foundation/core/log"
	"github.com/msto63/stringkit/pkg/core/cache"
	"github.com/msto63/stringkit/pkg/core/config"
	"github.com/msto63/stringkit/pkg/core/logging"
)

// Cache maps pattern text to compiled matchers. It is safe for concurrent
// use. A matcher returned by the cache stays usable after its entry is
// evicted.
type Cache struct {
	id       string
	name     string
	compiler Compiler
	logger   *mdwlog.Logger
	entries  *cache.Cache[Matcher]
	metrics  *metrics
	registry prometheus.Registerer

	compiles         atomic.Int64
	compileErrors    atomic.Int64
	uncachedCompiles atomic.Int64
}

// Stats is a snapshot of cache counters
type Stats struct {
	Hits             int64
	Misses           int64
	Compiles         int64
	CompileErrors    int64
	Evictions        int64
	UncachedCompiles int64
	Size             int
	Capacity         int
}

// New builds an isolated cache
func New(opts ...Option) (*Cache, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.capacity <= 0 {
		return nil, mdwerrors.InvalidInput(mdwerrors.ModuleRegexx, "new", o.capacity, "positive capacity")
	}
	if o.ttl < 0 {
		return nil, mdwerrors.InvalidInput(mdwerrors.ModuleRegexx, "new", o.ttl.String(), "non-negative ttl")
	}
	if o.compiler == nil {
		return nil, mdwerrors.InvalidInput(mdwerrors.ModuleRegexx, "new", nil, "a compiler")
	}
	if o.name == "" {
		o.name = DefaultName
	}
	if o.logger == nil {
		o.logger = mdwlog.GetDefault().WithName("regexx")
	}

	c := &Cache{
		id:       uuid.NewString(),
		name:     o.name,
		compiler: o.compiler,
	}
	c.logger = o.logger.WithFields(mdwlog.Fields{
		"cache":    c.name,
		"cache_id": c.id,
	})
	c.entries = cache.NewWithEvict[Matcher](cache.Config{
		MaxItems: o.capacity,
		TTL:      o.ttl,
	}, c.evicted)

	if o.registry != nil {
		if err := c.registerMetrics(o.registry); err != nil {
			return nil, err
		}
	}

	c.logger.Debug("pattern cache created", mdwlog.Fields{
		"capacity": o.capacity,
		"ttl":      o.ttl.String(),
		"engine":   c.compiler.Name(),
	})

	return c, nil
}

// NewFromConfig builds a cache from the [pattern_cache] section, logging
// through a component logger derived from [general]
func NewFromConfig(cfg *config.Config, extra ...Option) (*Cache, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	opts, err := OptionsFromConfig(cfg.PatternCache)
	if err != nil {
		return nil, err
	}
	opts = append(opts, WithLogger(logging.FromConfig(cfg, "regexx")))
	opts = append(opts, extra...)

	return New(opts...)
}

// ConfigureDefault replaces the process-wide cache with one built from
// cfg. When metrics are enabled, the new cache takes over the collectors
// of the previous default; if that fails the previous default keeps
// reporting and stays in place. The replaced cache is closed.
func ConfigureDefault(cfg *config.Config) error {
	if cfg == nil {
		cfg = config.Default()
	}

	// Collectors are registered only after the previous default released
	// them
	next, err := NewFromConfig(cfg, WithMetrics(nil))
	if err != nil {
		return err
	}
	var reg prometheus.Registerer
	if cfg.PatternCache.Metrics {
		reg = prometheus.DefaultRegisterer
	}

	prev := Default()
	if reg != nil {
		prev.unregisterMetrics()
		if err := next.registerMetrics(reg); err != nil {
			prev.restoreMetrics()
			return err
		}
		// Unregistering matches collectors by descriptor, so closing prev
		// with its registry would remove the collectors next just added
		prev.registry = nil
	}

	SetDefault(next)
	prev.Close()
	return nil
}

func (c *Cache) registerMetrics(reg prometheus.Registerer) error {
	m := newMetrics(c.name, c.entries.Size)
	if err := m.register(reg); err != nil {
		return mdwerrors.NewErrorBuilder(mdwerrors.ModuleRegexx).
			Operation("new").
			Message("failed to register pattern cache metrics").
			Code(string(mdwerror.CodeConfigError)).
			Cause(err).
			Detail("cache", c.name).
			Build()
	}
	c.metrics = m
	c.registry = reg
	return nil
}

func (c *Cache) unregisterMetrics() {
	if c.metrics != nil && c.registry != nil {
		c.metrics.unregister(c.registry)
	}
}

// restoreMetrics registers the collectors again after unregisterMetrics
func (c *Cache) restoreMetrics() {
	if c.metrics != nil && c.registry != nil {
		if err := c.metrics.register(c.registry); err != nil {
			c.logger.WarnWithErr("failed to restore pattern cache metrics", err)
		}
	}
}

func (c *Cache) evicted(pattern string, _ Matcher) {
	c.metrics.incEviction()
	c.logger.Trace("pattern evicted", mdwlog.Field("pattern", pattern))
}

// GetOrCompile returns the matcher stored for pattern, compiling and
// storing it on a miss. An invalid pattern yields an error carrying
// CodeInvalidPattern; the failure is not stored, so the next call compiles
// again.
func (c *Cache) GetOrCompile(pattern string) (Matcher, error) {
	m, hit, err := c.entries.GetOrSet(pattern, func() (Matcher, error) {
		return c.compile("get_or_compile", pattern)
	})
	if hit {
		c.metrics.incHit()
	} else {
		c.metrics.incMiss()
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// MustGetOrCompile is like GetOrCompile but panics on an invalid pattern
func (c *Cache) MustGetOrCompile(pattern string) Matcher {
	m, err := c.GetOrCompile(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

// Match reports whether text contains a match of pattern, using the cached
// matcher. A nil text is matched as the empty string.
func (c *Cache) Match(text *string, pattern string) (bool, error) {
	return c.MatchString(normalize(text), pattern)
}

// MatchString is Match for text that is always present
func (c *Cache) MatchString(text, pattern string) (bool, error) {
	m, err := c.GetOrCompile(pattern)
	if err != nil {
		return false, err
	}
	return m.MatchString(text), nil
}

// MatchUncached compiles pattern with the cache's engine and matches text
// without reading or writing any entry. A nil text is matched as the empty
// string.
func (c *Cache) MatchUncached(text *string, pattern string) (bool, error) {
	m, err := c.compile("match_uncached", pattern)
	c.uncachedCompiles.Add(1)
	c.metrics.incUncached()
	if err != nil {
		return false, err
	}
	return m.MatchString(normalize(text)), nil
}

// Precompile stores every pattern and returns the errors of those that
// failed to compile
func (c *Cache) Precompile(patterns ...string) []error {
	timer := c.logger.StartTimer("precompile").WithField("patterns", len(patterns))

	var errs []error
	for _, pattern := range patterns {
		if _, err := c.GetOrCompile(pattern); err != nil {
			errs = append(errs, err)
		}
	}

	timer.WithField("failed", len(errs)).Stop()
	return errs
}

// Contains reports whether pattern is stored, without touching recency
func (c *Cache) Contains(pattern string) bool {
	return c.entries.Contains(pattern)
}

// Size returns the number of stored patterns
func (c *Cache) Size() int {
	return c.entries.Size()
}

// Clear drops every stored pattern. Counters are kept.
func (c *Cache) Clear() {
	c.entries.Clear()
	c.logger.Debug("pattern cache cleared")
}

// Stats returns a snapshot of the cache counters
func (c *Cache) Stats() Stats {
	es := c.entries.Stats()
	return Stats{
		Hits:             es.Hits,
		Misses:           es.Misses,
		Compiles:         c.compiles.Load(),
		CompileErrors:    c.compileErrors.Load(),
		Evictions:        es.Evictions,
		UncachedCompiles: c.uncachedCompiles.Load(),
		Size:             es.Size,
		Capacity:         es.Capacity,
	}
}

// ID returns the unique instance identifier used in log entries
func (c *Cache) ID() string {
	return c.id
}

// Name returns the cache label
func (c *Cache) Name() string {
	return c.name
}

// Compiler returns the engine used by the cache
func (c *Cache) Compiler() Compiler {
	return c.compiler
}

// TTL returns the entry lifetime, zero meaning no expiry
func (c *Cache) TTL() time.Duration {
	return c.entries.TTL()
}

// Close unregisters the cache metrics and drops every stored pattern.
// The cache stays usable and compiles again on the next lookup.
func (c *Cache) Close() {
	c.unregisterMetrics()
	c.entries.Close()
	c.logger.Debug("pattern cache closed")
}

func (c *Cache) compile(operation, pattern string) (Matcher, error) {
	timer := c.logger.StartTimer("compile").
		WithField("pattern", pattern).
		WithField("engine", c.compiler.Name())

	m, err := c.compiler.Compile(pattern)
	if err != nil {
		timer.Cancel()
		c.compileErrors.Add(1)
		c.metrics.incCompileError()

		patternErr := mdwerrors.InvalidPattern(mdwerrors.ModuleRegexx, operation, pattern, c.compiler.Name(), err)
		c.logger.LogError(patternErr)
		return nil, patternErr
	}

	if operation != "match_uncached" {
		c.compiles.Add(1)
		c.metrics.incCompile()
	}
	timer.Stop()
	return m, nil
}

func normalize(text *string) string {
	if text == nil {
		return ""
	}
	return *text
}

var (
	defaultMu    sync.RWMutex
	defaultCache *Cache
)

// Default returns the process-wide cache, creating it with default options
// on first use
func Default() *Cache {
	defaultMu.RLock()
	c := defaultCache
	defaultMu.RUnlock()
	if c != nil {
		return c
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultCache == nil {
		// Default options cannot fail validation
		defaultCache, _ = New()
	}
	return defaultCache
}

// SetDefault replaces the process-wide cache. A nil cache is ignored.
func SetDefault(c *Cache) {
	if c == nil {
		return
	}
	defaultMu.Lock()
	defaultCache = c
	defaultMu.Unlock()
}

// IsInvalidPattern reports whether err was caused by invalid pattern text
func IsInvalidPattern(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidPattern)
}

// MatchUncached compiles pattern with compiler and matches text without
// any cache. A nil compiler selects the standard library engine.
func MatchUncached(compiler Compiler, text *string, pattern string) (bool, error) {
	if compiler == nil {
		compiler = StdlibCompiler{}
	}

	m, err := compiler.Compile(pattern)
	if err != nil {
		return false, mdwerrors.InvalidPattern(mdwerrors.ModuleRegexx, "match_uncached", pattern, compiler.Name(), err)
	}
	return m.MatchString(normalize(text)), nil
}
