package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	errs "github.com/Golu-Guptha/thread-safe-LRU-cache/pkg/errors"
)

// countingLoader builds a loader that counts its invocations.
//
// countingLoader 构建一个统计自身调用次数的加载器。
func countingLoader(calls *int64, value interface{}, ttl time.Duration, err error) LoaderFunc {
	return func(ctx context.Context, key string) (interface{}, time.Duration, error) {
		atomic.AddInt64(calls, 1)
		return value, ttl, err
	}
}

// TestGetOrLoadHitSkipsLoader tests that a cached value is returned
// without consulting the loader.
//
// TestGetOrLoadHitSkipsLoader 测试已缓存的值直接返回而不咨询加载器。
func TestGetOrLoadHitSkipsLoader(t *testing.T) {
	cacheInstance, _ := newTestCache(t, 10)
	defer cacheInstance.Close()
	ctx := context.Background()

	if err := cacheInstance.Set(ctx, "a", "cached", 0); err != nil {
		t.Fatalf("Failed to set cache: %v", err)
	}

	var calls int64
	value, err := cacheInstance.GetOrLoad(ctx, "a", countingLoader(&calls, "loaded", 0, nil))
	if err != nil {
		t.Fatalf("Failed to get or load: %v", err)
	}
	if value != "cached" {
		t.Errorf("Expected cached value %q, got %v", "cached", value)
	}
	if got := atomic.LoadInt64(&calls); got != 0 {
		t.Errorf("Expected the loader to stay unused, got %d calls", got)
	}
}

// TestGetOrLoadMissLoadsAndStores tests that a miss invokes the loader
// once and stores the result for subsequent lookups.
//
// TestGetOrLoadMissLoadsAndStores 测试未命中会调用加载器一次并存储结果
// 供后续查找使用。
func TestGetOrLoadMissLoadsAndStores(t *testing.T) {
	cacheInstance, _ := newTestCache(t, 10)
	defer cacheInstance.Close()
	ctx := context.Background()

	var calls int64
	value, err := cacheInstance.GetOrLoad(ctx, "a", countingLoader(&calls, "loaded", 0, nil))
	if err != nil {
		t.Fatalf("Failed to get or load: %v", err)
	}
	if value != "loaded" {
		t.Errorf("Expected loaded value %q, got %v", "loaded", value)
	}
	if got := atomic.LoadInt64(&calls); got != 1 {
		t.Errorf("Expected 1 loader call, got %d", got)
	}

	// The loaded value is now served from the cache
	// 加载的值现在由缓存直接提供
	cached, found, err := cacheInstance.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Failed to get from cache: %v", err)
	}
	if !found || cached != "loaded" {
		t.Errorf("Expected loaded value to be cached, got %v (found=%v)", cached, found)
	}

	stats := mustStats(t, cacheInstance)
	if stats.Misses != 1 {
		t.Errorf("Expected 1 miss from the loading lookup, got %d", stats.Misses)
	}
	if stats.Sets != 1 {
		t.Errorf("Expected 1 set from the load, got %d", stats.Sets)
	}
}

// TestGetOrLoadNilLoader tests the error for a missing loader.
//
// TestGetOrLoadNilLoader 测试缺少加载器时的错误。
func TestGetOrLoadNilLoader(t *testing.T) {
	cacheInstance, _ := newTestCache(t, 10)
	defer cacheInstance.Close()
	ctx := context.Background()

	_, err := cacheInstance.GetOrLoad(ctx, "a", nil)
	if err == nil {
		t.Fatalf("Expected an error for a nil loader")
	}
	if !errs.IsNoLoader(err) {
		t.Errorf("Expected a no loader error, got %v", err)
	}

	var keyErr *errs.KeyError
	if !errors.As(err, &keyErr) || keyErr.Key != "a" {
		t.Errorf("Expected the error to carry key %q, got %v", "a", err)
	}
}

// TestGetOrLoadErrorNotCached tests that loader failures are returned to
// the caller and leave no entry behind, so the next call loads again.
//
// TestGetOrLoadErrorNotCached 测试加载器失败会返回给调用方且不留下任何
// 条目，下次调用会重新加载。
func TestGetOrLoadErrorNotCached(t *testing.T) {
	cacheInstance, _ := newTestCache(t, 10)
	defer cacheInstance.Close()
	ctx := context.Background()

	loadErr := errors.New("backend down")
	var failCalls int64
	_, err := cacheInstance.GetOrLoad(ctx, "a", countingLoader(&failCalls, nil, 0, loadErr))
	if !errors.Is(err, loadErr) {
		t.Fatalf("Expected the loader error, got %v", err)
	}
	if got := cacheInstance.Len(); got != 0 {
		t.Errorf("Expected no entry after a failed load, got %d", got)
	}

	// The failure was not remembered
	// 失败没有被记住
	var okCalls int64
	value, err := cacheInstance.GetOrLoad(ctx, "a", countingLoader(&okCalls, "recovered", 0, nil))
	if err != nil {
		t.Fatalf("Failed to get or load after a failure: %v", err)
	}
	if value != "recovered" {
		t.Errorf("Expected value %q, got %v", "recovered", value)
	}
	if got := atomic.LoadInt64(&okCalls); got != 1 {
		t.Errorf("Expected the loader to run again, got %d calls", got)
	}
}

// TestGetOrLoadDeduplicatesConcurrent tests that concurrent misses on
// one key share a single loader invocation.
//
// TestGetOrLoadDeduplicatesConcurrent 测试对同一键的并发未命中共享一次
// 加载器调用。
func TestGetOrLoadDeduplicatesConcurrent(t *testing.T) {
	cacheInstance, _ := newTestCache(t, 10)
	defer cacheInstance.Close()
	ctx := context.Background()

	const numCallers = 32

	var calls int64
	loader := func(ctx context.Context, key string) (interface{}, time.Duration, error) {
		atomic.AddInt64(&calls, 1)
		// Hold the flight open long enough for every caller to join it
		// 让本次加载停留足够久，使所有调用方都能加入
		time.Sleep(200 * time.Millisecond)
		return "shared", 0, nil
	}

	var ready, done sync.WaitGroup
	start := make(chan struct{})
	errCh := make(chan error, numCallers)

	for i := 0; i < numCallers; i++ {
		ready.Add(1)
		done.Add(1)
		go func() {
			defer done.Done()
			ready.Done()
			<-start

			value, err := cacheInstance.GetOrLoad(ctx, "a", loader)
			if err != nil {
				errCh <- err
				return
			}
			if value != "shared" {
				errCh <- fmt.Errorf("unexpected value %v", value)
			}
		}()
	}

	ready.Wait()
	close(start)
	done.Wait()
	close(errCh)

	for err := range errCh {
		t.Errorf("Caller failed: %v", err)
	}
	if got := atomic.LoadInt64(&calls); got != 1 {
		t.Errorf("Expected 1 loader call for %d concurrent callers, got %d", numCallers, got)
	}
}

// TestGetOrLoadRespectsLoaderTTL tests that the TTL returned by the
// loader bounds the lifetime of the stored value.
//
// TestGetOrLoadRespectsLoaderTTL 测试加载器返回的TTL限定存储值的生存
// 时间。
func TestGetOrLoadRespectsLoaderTTL(t *testing.T) {
	cacheInstance, clock := newTestCache(t, 10)
	defer cacheInstance.Close()
	ctx := context.Background()

	var calls int64
	loader := countingLoader(&calls, "fresh", time.Minute, nil)

	if _, err := cacheInstance.GetOrLoad(ctx, "a", loader); err != nil {
		t.Fatalf("Failed to get or load: %v", err)
	}

	// Within the TTL the value is served from the cache
	// TTL之内值由缓存提供
	clock.Advance(30 * time.Second)
	if _, err := cacheInstance.GetOrLoad(ctx, "a", loader); err != nil {
		t.Fatalf("Failed to get or load: %v", err)
	}
	if got := atomic.LoadInt64(&calls); got != 1 {
		t.Errorf("Expected 1 loader call within the TTL, got %d", got)
	}

	// Past the TTL the loader runs again
	// 超过TTL后加载器再次运行
	clock.Advance(time.Minute)
	if _, err := cacheInstance.GetOrLoad(ctx, "a", loader); err != nil {
		t.Fatalf("Failed to get or load: %v", err)
	}
	if got := atomic.LoadInt64(&calls); got != 2 {
		t.Errorf("Expected a reload after expiry, got %d calls", got)
	}
}

// TestGetOrLoadClosedCache tests that a closed cache fails fast.
//
// TestGetOrLoadClosedCache 测试已关闭的缓存快速失败。
func TestGetOrLoadClosedCache(t *testing.T) {
	cacheInstance, _ := newTestCache(t, 10)
	ctx := context.Background()

	if err := cacheInstance.Close(); err != nil {
		t.Fatalf("Failed to close cache: %v", err)
	}

	var calls int64
	_, err := cacheInstance.GetOrLoad(ctx, "a", countingLoader(&calls, "x", 0, nil))
	if !errs.IsClosed(err) {
		t.Errorf("Expected a closed error, got %v", err)
	}
	if got := atomic.LoadInt64(&calls); got != 0 {
		t.Errorf("Expected the loader to stay unused on a closed cache, got %d calls", got)
	}
}
