package cache

import (
	"context"
	"fmt"
	"time"

	errs "github.com/Golu-Guptha/thread-safe-LRU-cache/pkg/errors"
)

// defaultShardCount is used when NewSharded receives a non-positive
// shard count.
// defaultShardCount 在NewSharded收到非正分片数时使用。
const defaultShardCount = 16

// FNV-1a constants for shard selection.
// 用于分片选择的FNV-1a常量。
const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// Sharded spreads keys over independent Cache instances to cut lock
// contention. Each shard keeps its own exclusive lock, recency order,
// and counters; a key always maps to the same shard, so per-key
// semantics are identical to a single Cache. Ordering guarantees hold
// within a shard only.
//
// Sharded 将键分散到相互独立的Cache实例上以降低锁竞争。每个分片保有
// 自己的互斥锁、访问顺序和计数器；一个键始终映射到同一分片，因此按键
// 语义与单个Cache完全一致。顺序保证只在分片内部成立。
type Sharded struct {
	name   string
	shards []*Cache
	mask   uint64
}

// NewSharded creates a cache of shardCount independent shards from the
// given configuration. The shard count is rounded up to a power of two;
// a non-positive count selects the default. The configured capacity is
// split across shards, with the remainder going to the first shards, so
// the total capacity equals the configured one exactly.
//
// A custom strategy instance is shared by every shard and must therefore
// be safe for concurrent use; the built-in strategies are.
//
// NewSharded 根据给定配置创建由shardCount个独立分片组成的缓存。分片数
// 向上取整为2的幂；非正数选择默认值。配置的容量在各分片之间拆分，余数
// 分给前面的分片，因此总容量与配置值完全相等。
//
// 自定义策略实例会被所有分片共享，因此必须可并发使用；内置策略满足
// 这一点。
//
// Parameters:
//   - config: The configuration shared by all shards
//   - shardCount: The desired number of shards
//
// Returns:
//   - *Sharded: The created sharded cache
//   - error: An error if the configuration is invalid or the capacity is
//     smaller than the shard count
func NewSharded(config *Config, shardCount int) (*Sharded, error) {
	if config == nil {
		config = NewDefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cache configuration: %w", err)
	}

	count := normalizeShardCount(shardCount)
	if config.Capacity < count {
		return nil, fmt.Errorf("%w: capacity %d is below shard count %d",
			errs.ErrInvalidCapacity, config.Capacity, count)
	}

	name := config.Name
	if name == "" {
		name = "tslru"
	}

	base := config.Capacity / count
	remainder := config.Capacity % count

	shards := make([]*Cache, count)
	for i := range shards {
		shardConfig := *config
		shardConfig.Name = fmt.Sprintf("%s-%d", name, i)
		shardConfig.Capacity = base
		if i < remainder {
			shardConfig.Capacity++
		}

		shard, err := New(&shardConfig)
		if err != nil {
			return nil, err
		}
		shards[i] = shard
	}

	return &Sharded{
		name:   name,
		shards: shards,
		mask:   uint64(count - 1),
	}, nil
}

// normalizeShardCount rounds n up to a power of two, with a default for
// non-positive input.
//
// normalizeShardCount 将n向上取整为2的幂，非正输入使用默认值。
func normalizeShardCount(n int) int {
	if n <= 0 {
		n = defaultShardCount
	}
	count := 1
	for count < n {
		count <<= 1
	}
	return count
}

// shardFor maps a key to its shard.
// shardFor 将键映射到它的分片。
func (s *Sharded) shardFor(key string) *Cache {
	hash := uint64(fnvOffset64)
	for i := 0; i < len(key); i++ {
		hash ^= uint64(key[i])
		hash *= fnvPrime64
	}
	return s.shards[hash&s.mask]
}

// Get retrieves a value from the shard owning key.
// Semantics match Cache.Get.
//
// Get 从拥有该键的分片中检索值。语义与Cache.Get一致。
func (s *Sharded) Get(ctx context.Context, key string) (interface{}, bool, error) {
	return s.shardFor(key).Get(ctx, key)
}

// Set stores a value in the shard owning key.
// Semantics match Cache.Set; eviction, when needed, happens within that
// shard.
//
// Set 将值存入拥有该键的分片。语义与Cache.Set一致；需要淘汰时在该分片
// 内部发生。
func (s *Sharded) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return s.shardFor(key).Set(ctx, key, value, ttl)
}

// GetOrLoad retrieves or loads a value in the shard owning key.
// Semantics match Cache.GetOrLoad.
//
// GetOrLoad 在拥有该键的分片中检索或加载值。语义与Cache.GetOrLoad一致。
func (s *Sharded) GetOrLoad(ctx context.Context, key string, loader LoaderFunc) (interface{}, error) {
	return s.shardFor(key).GetOrLoad(ctx, key, loader)
}

// Peek inspects a value without promoting it.
// Semantics match Cache.Peek.
//
// Peek 查看值但不提升条目。语义与Cache.Peek一致。
func (s *Sharded) Peek(key string) (interface{}, bool) {
	return s.shardFor(key).Peek(key)
}

// Delete removes a key from the shard owning it.
// Semantics match Cache.Delete.
//
// Delete 从拥有该键的分片中删除它。语义与Cache.Delete一致。
func (s *Sharded) Delete(ctx context.Context, key string) (bool, error) {
	return s.shardFor(key).Delete(ctx, key)
}

// Clear removes every entry from every shard.
//
// Clear 移除所有分片中的所有条目。
func (s *Sharded) Clear(ctx context.Context) error {
	for _, shard := range s.shards {
		if err := shard.Clear(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the total number of entries across shards.
//
// Len 返回所有分片的条目总数。
func (s *Sharded) Len() int {
	total := 0
	for _, shard := range s.shards {
		total += shard.Len()
	}
	return total
}

// Capacity returns the total capacity across shards, which equals the
// configured capacity.
//
// Capacity 返回所有分片的容量总和，等于配置的容量。
func (s *Sharded) Capacity() int {
	total := 0
	for _, shard := range s.shards {
		total += shard.Capacity()
	}
	return total
}

// Name returns the configured cache name. Shards append their index to
// it.
//
// Name 返回配置的缓存名称。各分片在其后追加自己的序号。
func (s *Sharded) Name() string {
	return s.name
}

// ShardCount returns the number of shards.
// ShardCount 返回分片数量。
func (s *Sharded) ShardCount() int {
	return len(s.shards)
}

// Keys returns the keys of all shards. Within each shard the keys run
// from most to least recently used; there is no ordering across shards.
//
// Keys 返回所有分片的键。每个分片内部按从最近使用到最久未使用排列；
// 分片之间没有顺序关系。
func (s *Sharded) Keys() []string {
	keys := make([]string, 0, s.Len())
	for _, shard := range s.shards {
		keys = append(keys, shard.Keys()...)
	}
	return keys
}

// Stats aggregates the counters of every shard into one snapshot.
// The hit ratio is recomputed from the summed hits and misses.
//
// Stats 将所有分片的计数器聚合为一个快照。
// 命中率由汇总后的命中与未命中重新计算。
//
// Parameters:
//   - ctx: Context for the operation
//
// Returns:
//   - *Stats: The aggregated snapshot
//   - error: ErrClosed when a shard has been closed
func (s *Sharded) Stats(ctx context.Context) (*Stats, error) {
	total := &Stats{}
	for _, shard := range s.shards {
		stats, err := shard.Stats(ctx)
		if err != nil {
			return nil, err
		}
		total.EntryCount += stats.EntryCount
		total.Capacity += stats.Capacity
		total.Hits += stats.Hits
		total.Misses += stats.Misses
		total.Sets += stats.Sets
		total.Updates += stats.Updates
		total.Evictions += stats.Evictions
		total.Expirations += stats.Expirations
		total.Deletes += stats.Deletes
	}
	if lookups := total.Hits + total.Misses; lookups > 0 {
		total.HitRatio = float64(total.Hits) / float64(lookups)
	}
	return total, nil
}

// PurgeExpired sweeps every shard and returns the total number of
// entries removed.
//
// PurgeExpired 清扫所有分片并返回移除的条目总数。
func (s *Sharded) PurgeExpired() int {
	total := 0
	for _, shard := range s.shards {
		total += shard.PurgeExpired()
	}
	return total
}

// Close closes every shard. Close is idempotent.
//
// Close 关闭所有分片。Close是幂等的。
func (s *Sharded) Close() error {
	for _, shard := range s.shards {
		if err := shard.Close(); err != nil {
			return err
		}
	}
	return nil
}
