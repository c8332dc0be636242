// Package storage implements the storage core of the cache: a hash index
// paired with a doubly-linked access-order list. The two structures are
// mutated together so their sizes never diverge. Nothing in this package
// locks; the owning cache engine serializes all access with its single
// exclusive lock.
//
// Package storage 实现缓存的存储核心：哈希索引与按访问顺序排列的双向
// 链表。两个结构总是一起被修改，因此它们的大小永远不会不一致。本包内
// 不加锁，由持有缓存的引擎用其唯一的互斥锁串行化所有访问。
package storage

import "time"

// Entry is a single cached item threaded onto the access-order list.
// The prev/next links belong to List; the data fields belong to the cache
// engine and are only read or written while the engine's lock is held.
//
// Entry 是挂在访问顺序链表上的单个缓存条目。
// prev/next链接由List负责维护；数据字段由缓存引擎负责，只能在持有引擎
// 锁的情况下读写。
type Entry struct {
	Key         string      // 缓存键
	Value       interface{} // 缓存值
	ExpiresAt   time.Time   // Absolute expiry instant, zero means never expires / 绝对过期时刻，零值表示永不过期
	AccessCount uint64      // Hit count, consumed by frequency-based eviction / 命中次数，供基于频率的淘汰策略使用

	prev, next *Entry
}

// Expired reports whether the entry is expired at the given instant.
// An entry with a zero expiry instant never expires. The comparison is
// at-or-after: an entry whose expiry equals now is already expired.
//
// Expired 报告条目在给定时刻是否已过期。
// 过期时刻为零值的条目永不过期。比较采用"等于或晚于"语义：过期时刻
// 恰好等于now的条目视为已过期。
func (e *Entry) Expired(now time.Time) bool {
	if e.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(e.ExpiresAt)
}
