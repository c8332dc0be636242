package cache_test

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Golu-Guptha/thread-safe-LRU-cache/pkg/cache"
)

// Example demonstrates basic cache usage: store, retrieve, miss.
// Example 演示基本的缓存用法：存储、检索、未命中。
func Example() {
	c, _ := cache.NewWithOptions("sessions", cache.WithCapacity(100))
	defer c.Close()
	ctx := context.Background()

	c.Set(ctx, "user:42", "alice", 0)

	if value, found, _ := c.Get(ctx, "user:42"); found {
		fmt.Println("found:", value)
	}
	if _, found, _ := c.Get(ctx, "user:7"); !found {
		fmt.Println("user:7 not cached")
	}
	// Output:
	// found: alice
	// user:7 not cached
}

// ExampleCache_GetOrLoad shows how concurrent misses for the same key
// are collapsed into a single loader call.
// ExampleCache_GetOrLoad 展示同一键的并发未命中如何合并为单次加载调用。
func ExampleCache_GetOrLoad() {
	c, _ := cache.NewWithOptions("articles", cache.WithCapacity(100))
	defer c.Close()
	ctx := context.Background()

	calls := 0
	loader := func(ctx context.Context, key string) (interface{}, time.Duration, error) {
		calls++
		return "content of " + key, time.Minute, nil
	}

	first, _ := c.GetOrLoad(ctx, "article:1", loader)
	second, _ := c.GetOrLoad(ctx, "article:1", loader)

	fmt.Println(first)
	fmt.Println(second)
	fmt.Println("loader calls:", calls)
	// Output:
	// content of article:1
	// content of article:1
	// loader calls: 1
}

// ExampleCache_Set_eviction shows the least recently used entry being
// evicted when a full cache takes a new key.
// ExampleCache_Set_eviction 展示已满缓存接收新键时最久未使用条目被淘汰。
func ExampleCache_Set_eviction() {
	c, _ := cache.NewWithOptions("tiny",
		cache.WithCapacity(2),
		cache.WithRemovalListener(func(key string, value interface{}, cause cache.RemovalCause) {
			fmt.Printf("removed %s (%s)\n", key, cause)
		}),
	)
	defer c.Close()
	ctx := context.Background()

	c.Set(ctx, "a", 1, 0)
	c.Set(ctx, "b", 2, 0)
	c.Set(ctx, "c", 3, 0)

	fmt.Println("keys:", strings.Join(c.Keys(), " "))
	// Output:
	// removed a (evicted)
	// keys: c b
}

// ExampleCache_Stats shows hit ratio accounting.
// ExampleCache_Stats 展示命中率统计。
func ExampleCache_Stats() {
	c, _ := cache.NewWithOptions("ratio", cache.WithCapacity(10))
	defer c.Close()
	ctx := context.Background()

	c.Set(ctx, "x", 1, 0)
	c.Get(ctx, "x")
	c.Get(ctx, "x")
	c.Get(ctx, "missing")

	stats, _ := c.Stats(ctx)
	fmt.Printf("hits=%d misses=%d ratio=%.2f\n", stats.Hits, stats.Misses, stats.HitRatio)
	// Output:
	// hits=2 misses=1 ratio=0.67
}
