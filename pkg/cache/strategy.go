package cache

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	errs "github.com/Golu-Guptha/thread-safe-LRU-cache/pkg/errors"
)

// CacheView is the read-only view of cache state handed to an eviction
// strategy. Its methods are served directly from the structures guarded
// by the cache's lock, which is held for the whole strategy call, so a
// strategy sees a frozen cache. The view exposes no mutators: strategies
// decide, the engine removes.
//
// CacheView 是交给淘汰策略的缓存状态只读视图。
// 其方法直接读取由缓存锁保护的结构，而策略调用全程持有该锁，因此策略
// 看到的是冻结的缓存。视图不暴露任何修改方法：策略只做决定，移除由
// 引擎执行。
type CacheView interface {
	// Len returns the current number of entries.
	// Len 返回当前条目数量。
	Len() int

	// Capacity returns the fixed maximum number of entries.
	// Capacity 返回固定的最大条目数。
	Capacity() int

	// VictimCandidate returns the key of the least recently promoted
	// entry, the one adjacent to the tail sentinel. ok is false only when
	// the cache is empty.
	//
	// VictimCandidate 返回最久未被提升的条目的键，即紧邻尾哨兵的条目。
	// 仅当缓存为空时ok为false。
	VictimCandidate() (key string, ok bool)

	// Scan visits entries from least to most recently promoted, passing
	// each key and its accumulated access count. The walk stops early when
	// fn returns false.
	//
	// Scan 从最久未使用到最近使用依次访问条目，传入键及其累计访问次数。
	// fn返回false时遍历提前停止。
	Scan(fn func(key string, accessCount uint64) bool)
}

// EvictionStrategy selects the entry to remove when an insert finds the
// cache at capacity. Implementations read the view only and must return
// the key of a currently present entry; the engine verifies the choice
// against its index and treats a stale or absent key as an invariant
// violation.
//
// EvictionStrategy 在插入发现缓存已满时选择要移除的条目。
// 实现只读取视图，且必须返回当前存在条目的键；引擎会对照索引核实该
// 选择，过期或不存在的键被视为不变量被破坏。
type EvictionStrategy interface {
	// SelectVictim returns the key of the entry to evict. ok must be true
	// whenever the view is non-empty.
	//
	// SelectVictim 返回要淘汰条目的键。只要视图非空，ok就必须为true。
	//
	// Parameters:
	//   - view: The read-only cache view
	//
	// Returns:
	//   - string: The key chosen for eviction
	//   - bool: Whether a choice was made
	SelectVictim(view CacheView) (key string, ok bool)
}

// NonPromoting is an optional capability for strategies whose ordering
// must reflect insertion rather than access recency. When a configured
// strategy implements it and reports true, a cache hit does not re-front
// the entry, leaving the list in insertion order.
//
// NonPromoting 是可选能力接口，供依赖插入顺序而非访问顺序的策略实现。
// 当配置的策略实现该接口且返回true时，命中不会把条目移到队首，链表
// 保持插入顺序。
type NonPromoting interface {
	NonPromoting() bool
}

// LRUStrategy evicts the least recently used entry. This is the default:
// recency order is already maintained by every lookup and insert, so the
// victim is the tail candidate in O(1).
//
// LRUStrategy 淘汰最久未使用的条目。这是默认策略：
// 每次查找和插入都已维护好访问顺序，因此淘汰候选就是队尾条目，O(1)。
type LRUStrategy struct{}

// NewLRUStrategy creates the default least-recently-used strategy.
// NewLRUStrategy 创建默认的LRU淘汰策略。
func NewLRUStrategy() *LRUStrategy {
	return &LRUStrategy{}
}

// SelectVictim returns the tail candidate.
// SelectVictim 返回队尾候选条目。
func (*LRUStrategy) SelectVictim(view CacheView) (string, bool) {
	return view.VictimCandidate()
}

// FIFOStrategy evicts in insertion order. Structurally it picks the same
// tail candidate as LRU; the difference is the NonPromoting capability,
// which keeps hits from disturbing insertion order.
//
// FIFOStrategy 按插入顺序淘汰。结构上它与LRU一样选择队尾候选；
// 区别在于NonPromoting能力，使命中不扰动插入顺序。
type FIFOStrategy struct{}

// NewFIFOStrategy creates a first-in-first-out strategy.
// NewFIFOStrategy 创建先进先出淘汰策略。
func NewFIFOStrategy() *FIFOStrategy {
	return &FIFOStrategy{}
}

// SelectVictim returns the tail candidate, which under a non-promoting
// regime is the oldest inserted entry.
// SelectVictim 返回队尾候选，在不提升的前提下即最早插入的条目。
func (*FIFOStrategy) SelectVictim(view CacheView) (string, bool) {
	return view.VictimCandidate()
}

// NonPromoting reports that hits must not re-front entries.
// NonPromoting 表明命中不得将条目移到队首。
func (*FIFOStrategy) NonPromoting() bool {
	return true
}

// LFUStrategy evicts the entry with the fewest recorded accesses, breaking
// ties toward the least recently used. Selection walks the whole view, so
// it is O(n) per eviction; the engine maintains the per-entry access
// counts it reads.
//
// LFUStrategy 淘汰访问次数最少的条目，并在并列时偏向最久未使用者。
// 选择需要遍历整个视图，因此每次淘汰为O(n)；其读取的条目访问计数由
// 引擎维护。
type LFUStrategy struct{}

// NewLFUStrategy creates a least-frequently-used strategy.
// NewLFUStrategy 创建LFU淘汰策略。
func NewLFUStrategy() *LFUStrategy {
	return &LFUStrategy{}
}

// SelectVictim scans for the minimum access count. The scan runs from
// least to most recent, so keeping the first minimum breaks ties toward
// the least recently used entry.
//
// SelectVictim 扫描访问次数最少的条目。扫描从最久未使用到最近使用进行，
// 保留第一个最小值即可使并列偏向最久未使用的条目。
func (*LFUStrategy) SelectVictim(view CacheView) (string, bool) {
	var (
		victim string
		min    uint64
		found  bool
	)
	view.Scan(func(key string, accessCount uint64) bool {
		if !found || accessCount < min {
			victim = key
			min = accessCount
			found = true
		}
		return true
	})
	return victim, found
}

// RandomStrategy evicts a uniformly random entry using reservoir sampling
// over the view scan. The internal generator is guarded so one instance
// can serve the shards of a sharded cache.
//
// RandomStrategy 通过对视图扫描做蓄水池采样来淘汰一个均匀随机的条目。
// 内部随机数生成器有锁保护，因此单个实例可以服务分片缓存的各个分片。
type RandomStrategy struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomStrategy creates a random eviction strategy.
// NewRandomStrategy 创建随机淘汰策略。
func NewRandomStrategy() *RandomStrategy {
	return &RandomStrategy{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SelectVictim keeps each scanned key with probability 1/n, which yields
// a uniform choice without knowing the length up front.
//
// SelectVictim 以1/n的概率保留每个扫描到的键，无需预先知道长度即可
// 得到均匀选择。
func (r *RandomStrategy) SelectVictim(view CacheView) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var victim string
	n := 0
	view.Scan(func(key string, _ uint64) bool {
		n++
		if r.rng.Intn(n) == 0 {
			victim = key
		}
		return true
	})
	return victim, n > 0
}

// newStrategyForPolicy maps a configured policy name to its strategy.
// An empty name selects the LRU default.
//
// newStrategyForPolicy 将配置的策略名称映射到对应的策略实现。
// 空名称选择默认的LRU。
func newStrategyForPolicy(policy string) (EvictionStrategy, error) {
	switch policy {
	case "", "lru":
		return NewLRUStrategy(), nil
	case "fifo":
		return NewFIFOStrategy(), nil
	case "lfu":
		return NewLFUStrategy(), nil
	case "random":
		return NewRandomStrategy(), nil
	default:
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidPolicy, policy)
	}
}
