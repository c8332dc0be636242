// Package cache provides a bounded, thread-safe, in-process key/value
// cache with O(1) lookups and inserts, least-recently-used eviction by
// default, per-entry TTL with lazy expiry, and hit/miss metrics.
//
// Every structural operation runs under one exclusive lock per cache
// instance. A lookup promotes the entry it finds, so reads mutate order
// and are deliberately not distinguished from writes; there is no
// reader/writer split and no lock upgrade anywhere. Callers that need
// more read concurrency compose independent instances with Sharded
// instead of weakening the locking discipline.
//
// Package cache 提供有界、线程安全的进程内键值缓存，具有O(1)的查找和
// 插入、默认的LRU淘汰、条目级TTL惰性过期以及命中/未命中指标。
//
// 每个缓存实例的所有结构性操作都在唯一的互斥锁下进行。查找会提升命中
// 的条目，因此读操作同样修改顺序，不与写操作区分；任何地方都没有读写
// 锁拆分，也没有锁升级。需要更高读并发的调用方应使用Sharded组合多个
// 独立实例，而不是削弱加锁纪律。
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Golu-Guptha/thread-safe-LRU-cache/internal/metrics"
	"github.com/Golu-Guptha/thread-safe-LRU-cache/internal/storage"
	errs "github.com/Golu-Guptha/thread-safe-LRU-cache/pkg/errors"
)

// RemovalCause describes why an entry left the cache.
// RemovalCause 描述条目离开缓存的原因。
type RemovalCause int

const (
	// CauseEvicted marks a capacity eviction chosen by the strategy.
	// CauseEvicted 表示由策略选出的容量淘汰。
	CauseEvicted RemovalCause = iota

	// CauseExpired marks a removal after the entry was found expired,
	// either lazily by a lookup or by a purge sweep.
	// CauseExpired 表示条目被发现过期后的移除，无论是查找时惰性发现
	// 还是清扫时发现。
	CauseExpired

	// CauseDeleted marks a caller-requested removal via Delete or Clear.
	// CauseDeleted 表示通过Delete或Clear由调用方发起的移除。
	CauseDeleted
)

// String returns the cause name.
// String 返回原因名称。
func (c RemovalCause) String() string {
	switch c {
	case CauseEvicted:
		return "evicted"
	case CauseExpired:
		return "expired"
	case CauseDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// RemovalFunc is invoked for every entry that leaves the cache. It runs
// after the cache lock is released, so it may call back into the cache.
//
// RemovalFunc 在每个条目离开缓存时被调用。它在缓存锁释放之后运行，
// 因此可以再次调用缓存。
type RemovalFunc func(key string, value interface{}, cause RemovalCause)

// Stats is a point-in-time snapshot of cache state and counters.
// The snapshot is not atomic across fields; individual counters are
// read atomically and never torn.
//
// Stats 是缓存状态和计数器的即时快照。
// 快照在字段之间不保证原子性；单个计数器的读取是原子的，绝不撕裂。
type Stats struct {
	EntryCount  int64   `json:"entry_count"`  // Current number of entries / 当前条目数
	Capacity    int64   `json:"capacity"`     // Fixed maximum number of entries / 固定的最大条目数
	Hits        int64   `json:"hits"`         // Lookup hits / 查找命中次数
	Misses      int64   `json:"misses"`       // Lookup misses, including lazy expiries / 查找未命中次数，含惰性过期
	HitRatio    float64 `json:"hit_ratio"`    // Hits/(hits+misses), 0 when no lookups / 命中率，无查找时为0
	Sets        int64   `json:"sets"`         // New key insertions / 新键插入次数
	Updates     int64   `json:"updates"`      // Existing key overwrites / 已有键覆盖次数
	Evictions   int64   `json:"evictions"`    // Capacity evictions / 容量淘汰次数
	Expirations int64   `json:"expirations"`  // Expiry removals / 过期移除次数
	Deletes     int64   `json:"deletes"`      // Caller-requested removals / 调用方删除次数
}

// EntryView is one row of an ordered cache snapshot.
// EntryView 是缓存有序快照中的一行。
type EntryView struct {
	Key       string      `json:"key"`
	Value     interface{} `json:"value"`
	ExpiresAt time.Time   `json:"expires_at,omitempty"` // Zero when the entry never expires / 永不过期时为零值
}

// Cache is the engine: it owns the index, the access-order list, and the
// metric counters, and it is the only caller of the eviction strategy.
// All methods are safe for concurrent use.
//
// Cache 是缓存引擎：它拥有索引、访问顺序链表和指标计数器，并且是淘汰
// 策略的唯一调用方。所有方法都可以并发使用。
type Cache struct {
	name       string
	capacity   int
	defaultTTL time.Duration
	strategy   EvictionStrategy
	promote    bool // false when the strategy is insertion-ordered / 策略按插入顺序时为false
	onRemove   RemovalFunc
	metrics    *metrics.Metrics

	// timeNow is swapped by tests to drive expiry deterministically.
	// timeNow 由测试替换，以便确定性地驱动过期。
	timeNow func() time.Time

	mu     sync.Mutex
	store  *storage.Store
	closed bool

	group singleflight.Group
}

// cacheView adapts the engine's structures to the read-only CacheView.
// It is only handed to strategies while the engine holds its lock, so the
// unlocked reads below are safe.
//
// cacheView 将引擎的内部结构适配为只读的CacheView。
// 它只在引擎持有锁时交给策略，因此下面的无锁读取是安全的。
type cacheView struct {
	c *Cache
}

func (v cacheView) Len() int {
	return v.c.store.Len()
}

func (v cacheView) Capacity() int {
	return v.c.capacity
}

func (v cacheView) VictimCandidate() (string, bool) {
	e := v.c.store.Back()
	if e == nil {
		return "", false
	}
	return e.Key, true
}

func (v cacheView) Scan(fn func(key string, accessCount uint64) bool) {
	v.c.store.ForEachFromBack(func(e *storage.Entry) bool {
		return fn(e.Key, e.AccessCount)
	})
}

// Get retrieves a value from the cache.
// A miss is not an error: absent keys and lazily discovered expired keys
// both return (nil, false, nil), and the expired entry is removed on the
// spot and counted as an expiration plus a miss, never as an eviction.
// On a hit the entry is promoted to most recently used unless the
// configured strategy is insertion-ordered. Exactly one of the hit or
// miss counters is incremented per call.
//
// Get 从缓存中检索值。
// 未命中不是错误：键不存在与惰性发现过期都返回 (nil, false, nil)，
// 过期条目当场移除并计为一次过期加一次未命中，绝不计为淘汰。
// 命中时条目被提升为最近使用，除非配置的策略按插入顺序工作。
// 每次调用恰好递增命中或未命中计数中的一个。
//
// Parameters:
//   - ctx: Context for the operation
//   - key: The key to retrieve
//
// Returns:
//   - interface{}: The cached value if found
//   - bool: True if the key was found and not expired
//   - error: ErrClosed when the cache has been closed
func (c *Cache) Get(ctx context.Context, key string) (interface{}, bool, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, false, errs.ErrClosed
	}

	e, ok := c.store.Lookup(key)
	if !ok {
		c.mu.Unlock()
		c.metrics.RecordMiss()
		return nil, false, nil
	}

	if e.Expired(c.timeNow()) {
		c.store.Remove(e)
		value := e.Value
		c.mu.Unlock()
		c.metrics.RecordMiss()
		c.metrics.RecordExpiration()
		c.notify(key, value, CauseExpired)
		return nil, false, nil
	}

	e.AccessCount++
	if c.promote {
		c.store.MoveToFront(e)
	}
	value := e.Value
	c.mu.Unlock()
	c.metrics.RecordHit()
	return value, true, nil
}

// Set inserts or updates a value.
// An update overwrites the value, resets the expiry from ttl (or the
// default when ttl is 0), and re-fronts the entry; an overwrite counts as
// a fresh insertion for ordering purposes. An insert into a full cache
// first evicts the strategy's victim. Set never touches the hit or miss
// counters. A negative ttl is rejected, never clamped.
//
// Set 插入或更新一个值。
// 更新会覆盖值、按ttl（为0时按默认值）重置过期时刻并将条目移到队首；
// 就排序而言，覆盖等同于一次全新插入。向已满缓存插入会先淘汰策略选出
// 的牺牲条目。Set绝不改动命中或未命中计数。负的ttl会被拒绝而不是截断。
//
// Parameters:
//   - ctx: Context for the operation
//   - key: The key under which to store the value
//   - value: The value to store
//   - ttl: Time-to-live for this entry; 0 selects the default TTL
//
// Returns:
//   - error: ErrInvalidTTL for negative ttl, ErrClosed after Close
func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if ttl < 0 {
		return errs.NewKeyError(key, errs.ErrInvalidTTL)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return errs.ErrClosed
	}

	if e, ok := c.store.Lookup(key); ok {
		e.Value = value
		e.ExpiresAt = c.expiryFor(ttl)
		c.store.MoveToFront(e)
		c.mu.Unlock()
		c.metrics.RecordUpdate()
		return nil
	}

	var (
		evictedKey   string
		evictedValue interface{}
		evicted      bool
	)
	if c.store.Len() >= c.capacity {
		victimKey, ok := c.strategy.SelectVictim(cacheView{c})
		if !ok {
			c.mu.Unlock()
			panic(fmt.Errorf("%w: strategy returned no victim for a non-empty cache", errs.ErrInvariantViolation))
		}
		victim, found := c.store.Lookup(victimKey)
		if !found {
			c.mu.Unlock()
			panic(fmt.Errorf("%w: strategy chose absent key %q", errs.ErrInvariantViolation, victimKey))
		}
		c.store.Remove(victim)
		evictedKey, evictedValue, evicted = victim.Key, victim.Value, true
	}

	c.store.Add(key, value, c.expiryFor(ttl))
	c.mu.Unlock()

	c.metrics.RecordSet()
	if evicted {
		c.metrics.RecordEviction()
		c.notify(evictedKey, evictedValue, CauseEvicted)
	}
	return nil
}

// Delete removes a key if present and reports whether it was.
// The removal is counted as a delete, regardless of whether the entry
// had already expired without being noticed.
//
// Delete 删除存在的键并报告是否删除了。
// 该移除计为一次删除，即使条目其实已过期但尚未被发现。
//
// Parameters:
//   - ctx: Context for the operation
//   - key: The key to remove
//
// Returns:
//   - bool: True if the key was present and removed
//   - error: ErrClosed when the cache has been closed
func (c *Cache) Delete(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false, errs.ErrClosed
	}

	e, ok := c.store.Lookup(key)
	if !ok {
		c.mu.Unlock()
		return false, nil
	}
	c.store.Remove(e)
	value := e.Value
	c.mu.Unlock()

	c.metrics.RecordDelete()
	c.notify(key, value, CauseDeleted)
	return true, nil
}

// Clear removes every entry. Each removed entry counts as a delete and
// is reported to the removal callback with CauseDeleted. Lookup counters
// are cumulative and survive a Clear.
//
// Clear 移除所有条目。每个被移除的条目计为一次删除，并以CauseDeleted
// 报告给移除回调。查找计数是累计的，不随Clear清零。
//
// Parameters:
//   - ctx: Context for the operation
//
// Returns:
//   - error: ErrClosed when the cache has been closed
func (c *Cache) Clear(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return errs.ErrClosed
	}

	var removed []EntryView
	if c.onRemove != nil {
		removed = make([]EntryView, 0, c.store.Len())
		c.store.ForEach(func(e *storage.Entry) bool {
			removed = append(removed, EntryView{Key: e.Key, Value: e.Value})
			return true
		})
	}
	n := c.store.Len()
	c.store.Clear()
	c.mu.Unlock()

	c.metrics.RecordDeletes(uint64(n))
	for _, r := range removed {
		c.notify(r.Key, r.Value, CauseDeleted)
	}
	return nil
}

// PurgeExpired removes every entry that is expired at the time of the
// call and returns how many were removed. Each removal counts as an
// expiration; no miss is recorded because no lookup happened. The core
// never runs this on its own; pair the cache with a Janitor for periodic
// sweeps.
//
// PurgeExpired 移除调用时刻已过期的所有条目并返回移除数量。
// 每次移除计为一次过期；因为没有发生查找，所以不记录未命中。
// 核心引擎自身绝不主动执行清扫；如需周期清扫请搭配Janitor使用。
//
// Returns:
//   - int: The number of entries removed
func (c *Cache) PurgeExpired() int {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return 0
	}

	now := c.timeNow()
	var expired []*storage.Entry
	c.store.ForEachFromBack(func(e *storage.Entry) bool {
		if e.Expired(now) {
			expired = append(expired, e)
		}
		return true
	})
	removed := make([]EntryView, 0, len(expired))
	for _, e := range expired {
		c.store.Remove(e)
		removed = append(removed, EntryView{Key: e.Key, Value: e.Value})
	}
	c.mu.Unlock()

	for _, r := range removed {
		c.metrics.RecordExpiration()
		c.notify(r.Key, r.Value, CauseExpired)
	}
	return len(removed)
}

// Peek returns the value for key without promoting the entry, recording
// metrics, or removing it when expired. Expired entries report a miss.
//
// Peek 返回键对应的值，但不提升条目、不记录指标，过期时也不移除。
// 已过期的条目报告为未命中。
//
// Parameters:
//   - key: The key to inspect
//
// Returns:
//   - interface{}: The value if present and not expired
//   - bool: True if the key was present and not expired
func (c *Cache) Peek(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, false
	}
	e, ok := c.store.Lookup(key)
	if !ok || e.Expired(c.timeNow()) {
		return nil, false
	}
	return e.Value, true
}

// Len returns the number of entries currently indexed. It does not scan
// for entries whose expiry has passed but has not been discovered yet, so
// the count may include such entries. 0 <= Len() <= Capacity() always.
//
// Len 返回当前索引的条目数量。它不会扫描那些已过期但尚未被发现的条目，
// 因此计数可能包含这类条目。恒有 0 <= Len() <= Capacity()。
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0
	}
	return c.store.Len()
}

// Capacity returns the fixed maximum number of entries.
// Capacity 返回固定的最大条目数。
func (c *Cache) Capacity() int {
	return c.capacity
}

// Name returns the configured cache name.
// Name 返回配置的缓存名称。
func (c *Cache) Name() string {
	return c.name
}

// Keys returns the keys from most to least recently used.
//
// Keys 返回从最近使用到最久未使用排序的键。
//
// Returns:
//   - []string: The ordered keys; empty on a closed cache
func (c *Cache) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	keys := make([]string, 0, c.store.Len())
	c.store.ForEach(func(e *storage.Entry) bool {
		keys = append(keys, e.Key)
		return true
	})
	return keys
}

// Entries returns an ordered snapshot of the cache from most to least
// recently used, including each entry's expiry instant. It serves
// debugging and diagnostic dumps; values are not copied.
//
// Entries 返回从最近使用到最久未使用的缓存有序快照，包含每个条目的
// 过期时刻。用于调试与诊断输出；值本身不做拷贝。
//
// Returns:
//   - []EntryView: The ordered snapshot; empty on a closed cache
func (c *Cache) Entries() []EntryView {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	views := make([]EntryView, 0, c.store.Len())
	c.store.ForEach(func(e *storage.Entry) bool {
		views = append(views, EntryView{Key: e.Key, Value: e.Value, ExpiresAt: e.ExpiresAt})
		return true
	})
	return views
}

// Stats returns a snapshot of the counters plus the current entry count.
//
// Stats 返回计数器快照以及当前条目数。
//
// Parameters:
//   - ctx: Context for the operation
//
// Returns:
//   - *Stats: The snapshot
//   - error: ErrClosed when the cache has been closed
func (c *Cache) Stats(ctx context.Context) (*Stats, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, errs.ErrClosed
	}
	entryCount := c.store.Len()
	c.mu.Unlock()

	snap := c.metrics.GetSnapshot()
	return &Stats{
		EntryCount:  int64(entryCount),
		Capacity:    int64(c.capacity),
		Hits:        int64(snap.Hits),
		Misses:      int64(snap.Misses),
		HitRatio:    snap.HitRatio,
		Sets:        int64(snap.Sets),
		Updates:     int64(snap.Updates),
		Evictions:   int64(snap.Evictions),
		Expirations: int64(snap.Expirations),
		Deletes:     int64(snap.Deletes),
	}, nil
}

// Close marks the cache closed and drops its entries. Further operations
// fail with ErrClosed. Close is idempotent. Dropped entries are not
// reported to the removal callback; teardown is not a removal event.
//
// Close 将缓存标记为已关闭并丢弃其条目。之后的操作以ErrClosed失败。
// Close是幂等的。被丢弃的条目不报告给移除回调；销毁不属于移除事件。
//
// Returns:
//   - error: Always nil
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.store.Clear()
	return nil
}

// expiryFor computes the absolute expiry instant for a per-call ttl.
// A zero ttl falls back to the default; a zero result means no expiry.
// Must be called with the lock held so tests swapping timeNow observe a
// consistent clock.
//
// expiryFor 计算单次调用ttl对应的绝对过期时刻。
// ttl为0时回退到默认值；结果为零值表示不过期。必须在持锁状态下调用，
// 以便测试替换timeNow后观察到一致的时钟。
func (c *Cache) expiryFor(ttl time.Duration) time.Time {
	if ttl == 0 {
		ttl = c.defaultTTL
	}
	if ttl == 0 {
		return time.Time{}
	}
	return c.timeNow().Add(ttl)
}

// notify invokes the removal callback when one is configured.
// Callers must not hold the lock.
//
// notify 在配置了移除回调时调用它。调用方不得持有锁。
func (c *Cache) notify(key string, value interface{}, cause RemovalCause) {
	if c.onRemove != nil {
		c.onRemove(key, value, cause)
	}
}
