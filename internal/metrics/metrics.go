// Package metrics provides cache runtime metrics collection and snapshots.
// Package metrics 提供缓存运行时指标采集与快照功能。
//
// All counters are updated with atomic operations so they can be bumped
// outside the cache's structural lock without corrupting under concurrent
// load. A snapshot reads each counter atomically but is not atomic across
// fields; callers get a consistent-enough view for reporting, never a
// torn counter.
//
// 所有计数器都通过原子操作更新，因此可以在缓存结构锁之外递增，并发
// 负载下也不会损坏。快照对每个计数器的读取是原子的，但跨字段不保证
// 原子性；调用方得到的是足以用于上报的视图，而单个计数器绝不会撕裂。
package metrics

import "sync/atomic"

// Metrics is a cache metrics collector.
// It uses atomic operations to ensure thread safety in high-concurrency
// environments.
//
// Metrics 是缓存指标收集器。
// 使用原子操作确保高并发环境下的线程安全。
type Metrics struct {
	// Hit ratio related metrics
	// 缓存命中率相关指标
	hits   uint64 // Hit count / 命中次数
	misses uint64 // Miss count / 未命中次数

	// Write behavior metrics
	// 写入行为相关指标
	sets    uint64 // Insert operations count / 新增次数
	updates uint64 // Update operations count / 更新次数

	// Removal metrics. Capacity evictions, lazy expirations, and manual
	// deletions are counted separately and never folded into each other.
	// 移除相关指标。容量淘汰、惰性过期和手动删除分开计数，互不混淆。
	evictions   uint64 // Eviction count / 淘汰次数
	expirations uint64 // Expired items count / 过期次数
	deletes     uint64 // Manually deleted items count / 手动删除次数
}

// Snapshot is a point-in-time copy of the counters with the derived hit
// ratio. The ratio is hits/(hits+misses), and 0 when no lookups happened.
//
// Snapshot 是计数器的即时拷贝，并带有派生的命中率。
// 命中率为 hits/(hits+misses)，当尚无查找发生时为0。
type Snapshot struct {
	Hits        uint64  `json:"hits"`
	Misses      uint64  `json:"misses"`
	HitRatio    float64 `json:"hit_ratio"`
	Sets        uint64  `json:"sets"`
	Updates     uint64  `json:"updates"`
	Evictions   uint64  `json:"evictions"`
	Expirations uint64  `json:"expirations"`
	Deletes     uint64  `json:"deletes"`
}

// New creates a new metrics collector with all counters at zero.
//
// New 创建一个新的指标收集器，所有计数器从零开始。
//
// Returns:
//   - *Metrics: A new metrics collector instance
func New() *Metrics {
	return &Metrics{}
}

// RecordHit records a successful lookup.
// RecordHit 记录一次命中。
func (m *Metrics) RecordHit() {
	atomic.AddUint64(&m.hits, 1)
}

// RecordMiss records a failed lookup, whether the key was absent or was
// discovered expired.
// RecordMiss 记录一次未命中，无论键不存在还是被发现已过期。
func (m *Metrics) RecordMiss() {
	atomic.AddUint64(&m.misses, 1)
}

// RecordSet records the insertion of a new key.
// RecordSet 记录一次新键插入。
func (m *Metrics) RecordSet() {
	atomic.AddUint64(&m.sets, 1)
}

// RecordUpdate records the overwrite of an existing key.
// RecordUpdate 记录一次对已有键的覆盖。
func (m *Metrics) RecordUpdate() {
	atomic.AddUint64(&m.updates, 1)
}

// RecordEviction records a capacity eviction chosen by the strategy.
// RecordEviction 记录一次由策略选出的容量淘汰。
func (m *Metrics) RecordEviction() {
	atomic.AddUint64(&m.evictions, 1)
}

// RecordExpiration records the removal of an entry found expired.
// RecordExpiration 记录一次因过期而移除的条目。
func (m *Metrics) RecordExpiration() {
	atomic.AddUint64(&m.expirations, 1)
}

// RecordDelete records a caller-requested removal.
// RecordDelete 记录一次由调用方发起的删除。
func (m *Metrics) RecordDelete() {
	atomic.AddUint64(&m.deletes, 1)
}

// RecordDeletes records n caller-requested removals at once, as a Clear
// does.
// RecordDeletes 一次性记录n个由调用方发起的删除，例如Clear操作。
func (m *Metrics) RecordDeletes(n uint64) {
	atomic.AddUint64(&m.deletes, n)
}

// Hits returns the current hit count.
// Hits 返回当前命中次数。
func (m *Metrics) Hits() uint64 {
	return atomic.LoadUint64(&m.hits)
}

// Misses returns the current miss count.
// Misses 返回当前未命中次数。
func (m *Metrics) Misses() uint64 {
	return atomic.LoadUint64(&m.misses)
}

// HitRatio returns hits/(hits+misses), and 0 when no lookups happened.
//
// HitRatio 返回 hits/(hits+misses)，当尚无查找发生时返回0。
func (m *Metrics) HitRatio() float64 {
	hits := atomic.LoadUint64(&m.hits)
	misses := atomic.LoadUint64(&m.misses)
	total := hits + misses
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

// GetSnapshot returns a point-in-time copy of all counters.
//
// GetSnapshot 返回所有计数器的即时拷贝。
//
// Returns:
//   - Snapshot: The current metrics snapshot
func (m *Metrics) GetSnapshot() Snapshot {
	hits := atomic.LoadUint64(&m.hits)
	misses := atomic.LoadUint64(&m.misses)
	ratio := 0.0
	if total := hits + misses; total > 0 {
		ratio = float64(hits) / float64(total)
	}
	return Snapshot{
		Hits:        hits,
		Misses:      misses,
		HitRatio:    ratio,
		Sets:        atomic.LoadUint64(&m.sets),
		Updates:     atomic.LoadUint64(&m.updates),
		Evictions:   atomic.LoadUint64(&m.evictions),
		Expirations: atomic.LoadUint64(&m.expirations),
		Deletes:     atomic.LoadUint64(&m.deletes),
	}
}

// Reset sets every counter back to zero.
//
// Reset 将所有计数器归零。
func (m *Metrics) Reset() {
	atomic.StoreUint64(&m.hits, 0)
	atomic.StoreUint64(&m.misses, 0)
	atomic.StoreUint64(&m.sets, 0)
	atomic.StoreUint64(&m.updates, 0)
	atomic.StoreUint64(&m.evictions, 0)
	atomic.StoreUint64(&m.expirations, 0)
	atomic.StoreUint64(&m.deletes, 0)
}
