package cache

import (
	"sync"
	"sync/atomic"
	"time"
)

// defaultSweepInterval is used when NewJanitor receives a non-positive
// interval.
// defaultSweepInterval 在NewJanitor收到非正间隔时使用。
const defaultSweepInterval = time.Minute

// Purger is the surface a Janitor drives. Both Cache and Sharded
// implement it.
//
// Purger 是Janitor驱动的接口。Cache和Sharded都实现了它。
type Purger interface {
	PurgeExpired() int
}

// Janitor periodically sweeps expired entries out of a cache. The cache
// core only expires entries lazily on lookup; a Janitor bounds how long
// an untouched expired entry can occupy capacity. It starts sweeping as
// soon as it is created.
//
// Janitor 周期性地将过期条目清扫出缓存。缓存核心只在查找时惰性过期；
// Janitor限制了一个无人访问的过期条目占据容量的时长。它在创建后立即
// 开始清扫。
type Janitor struct {
	purger   Purger
	interval time.Duration

	closeChan chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup

	sweeps uint64
	purged uint64
}

// NewJanitor creates a janitor sweeping purger every interval and starts
// its background goroutine. A non-positive interval falls back to the
// default. Call Stop to shut it down.
//
// NewJanitor 创建每隔interval清扫一次purger的Janitor并启动其后台协程。
// 非正的间隔回退到默认值。调用Stop关闭它。
//
// Parameters:
//   - purger: The cache to sweep
//   - interval: Time between sweeps
//
// Returns:
//   - *Janitor: The running janitor
func NewJanitor(purger Purger, interval time.Duration) *Janitor {
	if interval <= 0 {
		interval = defaultSweepInterval
	}

	j := &Janitor{
		purger:    purger,
		interval:  interval,
		closeChan: make(chan struct{}),
	}

	j.wg.Add(1)
	go j.sweepLoop()

	return j
}

// sweepLoop runs sweeps until the janitor is stopped.
// sweepLoop 运行清扫直到Janitor被停止。
func (j *Janitor) sweepLoop() {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			n := j.purger.PurgeExpired()
			atomic.AddUint64(&j.sweeps, 1)
			atomic.AddUint64(&j.purged, uint64(n))
		case <-j.closeChan:
			return
		}
	}
}

// Stop halts the sweep goroutine and waits for it to exit.
// Stop is idempotent.
//
// Stop 停止清扫协程并等待其退出。Stop是幂等的。
func (j *Janitor) Stop() {
	j.closeOnce.Do(func() {
		close(j.closeChan)
	})
	j.wg.Wait()
}

// Sweeps returns how many sweeps have completed.
// Sweeps 返回已完成的清扫次数。
func (j *Janitor) Sweeps() uint64 {
	return atomic.LoadUint64(&j.sweeps)
}

// Purged returns how many entries the sweeps have removed in total.
// Purged 返回清扫累计移除的条目数量。
func (j *Janitor) Purged() uint64 {
	return atomic.LoadUint64(&j.purged)
}
