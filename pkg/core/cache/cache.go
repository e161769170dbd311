package cache

import (
	"sync"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Cache is a bounded, thread-safe, string-keyed LRU cache with optional TTL.
// Values handed out stay valid after their entry is evicted.
type Cache[V any] struct {
	lru      *lru.Cache[string, entry[V]]
	group    singleflight.Group
	mu       sync.Mutex
	maxItems int
	ttl      time.Duration
	onEvict  func(key string, value V)

	// explicit is set while Delete or Clear run so their removals are not
	// counted as evictions
	explicit atomic.Bool

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// entry pairs a value with its expiry. A zero expiresAt never expires.
type entry[V any] struct {
	value     V
	expiresAt time.Time
}

func (e entry[V]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Config holds cache configuration
type Config struct {
	// MaxItems bounds the number of entries. Values <= 0 select the default.
	MaxItems int

	// TTL expires entries after they were added. Zero disables expiry.
	TTL time.Duration
}

// Stats is a snapshot of cache counters
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
	HitRate   float64
}

// DefaultConfig returns default cache configuration
func DefaultConfig() Config {
	return Config{
		MaxItems: 1000,
	}
}

// New creates a new cache instance
func New[V any](cfg Config) *Cache[V] {
	return NewWithEvict[V](cfg, nil)
}

// NewWithEvict creates a cache that calls onEvict whenever an entry is
// dropped because of capacity or expiry. Explicit Delete, Clear and Close
// do not trigger it. Expired entries are dropped when they are next read,
// so the cache runs no background goroutine.
func NewWithEvict[V any](cfg Config, onEvict func(key string, value V)) *Cache[V] {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultConfig().MaxItems
	}
	if cfg.TTL < 0 {
		cfg.TTL = 0
	}

	c := &Cache[V]{
		maxItems: cfg.MaxItems,
		ttl:      cfg.TTL,
		onEvict:  onEvict,
	}
	// Size is positive, the only error NewWithEvict returns
	c.lru, _ = lru.NewWithEvict[string, entry[V]](cfg.MaxItems, c.evicted)

	return c
}

func (c *Cache[V]) evicted(key string, e entry[V]) {
	if c.explicit.Load() {
		return
	}
	c.evictions.Add(1)
	if c.onEvict != nil {
		c.onEvict(key, e.value)
	}
}

// lookup returns the live entry for key. An expired entry is removed and
// reported as missing.
func (c *Cache[V]) lookup(key string, touch bool) (V, bool) {
	var (
		e  entry[V]
		ok bool
	)
	if touch {
		e, ok = c.lru.Get(key)
	} else {
		e, ok = c.lru.Peek(key)
	}
	if !ok {
		var zero V
		return zero, false
	}
	if e.expired(time.Now()) {
		c.expire(key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// expire removes key if it is still expired. A concurrent Set may have
// replaced it with a fresh entry in the meantime.
func (c *Cache[V]) expire(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.lru.Peek(key); ok && e.expired(time.Now()) {
		c.lru.Remove(key)
	}
}

// Get retrieves a value from the cache and marks it recently used
func (c *Cache[V]) Get(key string) (V, bool) {
	val, ok := c.lookup(key, true)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return val, ok
}

// Peek retrieves a value without updating recency or counters
func (c *Cache[V]) Peek(key string) (V, bool) {
	return c.lookup(key, false)
}

// Contains reports whether an unexpired key is present without updating
// recency
func (c *Cache[V]) Contains(key string) bool {
	_, ok := c.lookup(key, false)
	return ok
}

// Set stores a value in the cache, evicting the least recently used entry
// when the cache is full
func (c *Cache[V]) Set(key string, value V) {
	e := entry[V]{value: value}
	if c.ttl > 0 {
		e.expiresAt = time.Now().Add(c.ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(key, e)
}

// Delete removes a value from the cache
func (c *Cache[V]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.explicit.Store(true)
	defer c.explicit.Store(false)
	return c.lru.Remove(key)
}

// Clear removes all items from the cache
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.explicit.Store(true)
	defer c.explicit.Store(false)
	c.lru.Purge()
}

// Close drops every entry so the stored values can be collected. The
// cache stays usable afterwards.
func (c *Cache[V]) Close() {
	c.Clear()
}

// Keys returns the unexpired keys from oldest to newest
func (c *Cache[V]) Keys() []string {
	now := time.Now()
	keys := c.lru.Keys()
	live := keys[:0]
	for _, k := range keys {
		if e, ok := c.lru.Peek(k); ok && !e.expired(now) {
			live = append(live, k)
		}
	}
	return live
}

// Size returns the number of items in the cache. Expired entries count
// until they are read or pushed out by newer ones.
func (c *Cache[V]) Size() int {
	return c.lru.Len()
}

// Capacity returns the maximum number of items
func (c *Cache[V]) Capacity() int {
	return c.maxItems
}

// TTL returns the configured entry lifetime, zero meaning no expiry
func (c *Cache[V]) TTL() time.Duration {
	return c.ttl
}

// Stats returns cache statistics
func (c *Cache[V]) Stats() Stats {
	s := Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Size:      c.Size(),
		Capacity:  c.maxItems,
	}
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total) * 100
	}
	return s
}

// GetOrSet returns the cached value for key or computes and stores it.
// hit reports whether the value was found without waiting on fn.
// Concurrent callers for the same missing key share one call to fn and
// receive the same value. Errors from fn are returned and nothing is stored.
func (c *Cache[V]) GetOrSet(key string, fn func() (V, error)) (val V, hit bool, err error) {
	if val, ok := c.Get(key); ok {
		return val, true, nil
	}

	res, err, _ := c.group.Do(key, func() (interface{}, error) {
		// Another flight may have stored the value between Get and Do
		if val, ok := c.Peek(key); ok {
			return val, nil
		}

		val, err := fn()
		if err != nil {
			return nil, err
		}
		c.Set(key, val)
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, false, err
	}

	val, _ = res.(V)
	return val, false, nil
}
