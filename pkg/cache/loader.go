package cache

import (
	"context"
	"time"

	errs "github.com/Golu-Guptha/thread-safe-LRU-cache/pkg/errors"
)

// LoaderFunc loads the value for a key that is absent from the cache.
// It returns the loaded value, a TTL for the new entry, and any error
// encountered. A zero TTL selects the cache's default TTL.
//
// LoaderFunc 为缓存中不存在的键加载值。
// 它返回加载的值、新条目的TTL以及遇到的任何错误。TTL为0时使用缓存的
// 默认TTL。
type LoaderFunc func(ctx context.Context, key string) (interface{}, time.Duration, error)

// GetOrLoad retrieves a value, loading and storing it on a miss.
// Concurrent callers that miss on the same key share a single loader
// invocation; the loader observes the first caller's context. Loader
// errors are returned to every waiting caller and nothing is cached for
// the key, so the next call loads again.
//
// The miss that triggers the load is counted like any other miss; the
// subsequent store is counted as a set.
//
// GetOrLoad 检索值，未命中时加载并写入。
// 对同一键并发未命中的调用方共享一次加载器调用；加载器观察到的是第一
// 个调用方的context。加载器错误会返回给每个等待的调用方，且不会为该键
// 缓存任何内容，下次调用会重新加载。
//
// 触发加载的那次未命中按普通未命中计数；随后的写入计为一次set。
//
// Parameters:
//   - ctx: Context for the operation
//   - key: The key to retrieve or load
//   - loader: The function that loads the value on a miss
//
// Returns:
//   - interface{}: The cached or freshly loaded value
//   - error: ErrNoLoader when loader is nil, ErrClosed after Close, or
//     the loader's own error
func (c *Cache) GetOrLoad(ctx context.Context, key string, loader LoaderFunc) (interface{}, error) {
	value, found, err := c.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if found {
		return value, nil
	}
	if loader == nil {
		return nil, errs.NewKeyError(key, errs.ErrNoLoader)
	}

	loaded, err, _ := c.group.Do(key, func() (interface{}, error) {
		value, ttl, err := loader(ctx, key)
		if err != nil {
			return nil, err
		}
		if err := c.Set(ctx, key, value, ttl); err != nil {
			return nil, err
		}
		return value, nil
	})
	if err != nil {
		return nil, err
	}
	return loaded, nil
}
