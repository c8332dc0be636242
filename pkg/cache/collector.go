package cache

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// StatsProvider is the surface StatsCollector scrapes. Both Cache and
// Sharded implement it.
//
// StatsProvider 是StatsCollector采集的接口。Cache和Sharded都实现了它。
type StatsProvider interface {
	Name() string
	Stats(ctx context.Context) (*Stats, error)
}

// StatsCollector exposes cache counters as Prometheus metrics. It
// implements prometheus.Collector and reads fresh snapshots on every
// scrape, so it holds no state of its own. One collector can serve any
// number of caches; the cache name becomes the "cache" label.
//
// StatsCollector 将缓存计数器以Prometheus指标形式暴露。它实现了
// prometheus.Collector，每次抓取都读取最新快照，因此自身不持有状态。
// 一个collector可以服务任意数量的缓存；缓存名称作为"cache"标签。
type StatsCollector struct {
	providers []StatsProvider

	hits        *prometheus.Desc
	misses      *prometheus.Desc
	hitRatio    *prometheus.Desc
	entryCount  *prometheus.Desc
	capacity    *prometheus.Desc
	sets        *prometheus.Desc
	updates     *prometheus.Desc
	evictions   *prometheus.Desc
	expirations *prometheus.Desc
	deletes     *prometheus.Desc
}

// NewStatsCollector creates a collector scraping the given caches under
// the given metric namespace. An empty namespace defaults to "tslru".
// Register the result with a prometheus.Registerer to expose it.
//
// NewStatsCollector 创建在给定指标命名空间下采集给定缓存的collector。
// 命名空间为空时默认为"tslru"。将结果注册到prometheus.Registerer以
// 对外暴露。
//
// Parameters:
//   - namespace: The metric name prefix
//   - providers: The caches to scrape
//
// Returns:
//   - *StatsCollector: The collector, ready for registration
func NewStatsCollector(namespace string, providers ...StatsProvider) *StatsCollector {
	if namespace == "" {
		namespace = "tslru"
	}
	labels := []string{"cache"}

	return &StatsCollector{
		providers: providers,
		hits: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", "hits_total"),
			"Total number of lookup hits.", labels, nil),
		misses: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", "misses_total"),
			"Total number of lookup misses, including lazy expiries.", labels, nil),
		hitRatio: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", "hit_ratio"),
			"Hits divided by total lookups, 0 when no lookups happened.", labels, nil),
		entryCount: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", "entries"),
			"Current number of entries.", labels, nil),
		capacity: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", "capacity"),
			"Fixed maximum number of entries.", labels, nil),
		sets: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", "sets_total"),
			"Total number of new key insertions.", labels, nil),
		updates: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", "updates_total"),
			"Total number of existing key overwrites.", labels, nil),
		evictions: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", "evictions_total"),
			"Total number of capacity evictions.", labels, nil),
		expirations: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", "expirations_total"),
			"Total number of expiry removals.", labels, nil),
		deletes: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", "deletes_total"),
			"Total number of caller-requested removals.", labels, nil),
	}
}

// Describe implements prometheus.Collector.
// Describe 实现prometheus.Collector。
func (c *StatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.hitRatio
	ch <- c.entryCount
	ch <- c.capacity
	ch <- c.sets
	ch <- c.updates
	ch <- c.evictions
	ch <- c.expirations
	ch <- c.deletes
}

// Collect implements prometheus.Collector. A cache that fails to
// snapshot, for example because it was closed, reports an invalid metric
// instead of breaking the whole scrape.
//
// Collect 实现prometheus.Collector。无法生成快照的缓存（例如已关闭）
// 报告为无效指标，而不是让整次抓取失败。
func (c *StatsCollector) Collect(ch chan<- prometheus.Metric) {
	ctx := context.Background()
	for _, provider := range c.providers {
		stats, err := provider.Stats(ctx)
		if err != nil {
			ch <- prometheus.NewInvalidMetric(c.hits, err)
			continue
		}

		name := provider.Name()
		ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(stats.Hits), name)
		ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(stats.Misses), name)
		ch <- prometheus.MustNewConstMetric(c.hitRatio, prometheus.GaugeValue, stats.HitRatio, name)
		ch <- prometheus.MustNewConstMetric(c.entryCount, prometheus.GaugeValue, float64(stats.EntryCount), name)
		ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(stats.Capacity), name)
		ch <- prometheus.MustNewConstMetric(c.sets, prometheus.CounterValue, float64(stats.Sets), name)
		ch <- prometheus.MustNewConstMetric(c.updates, prometheus.CounterValue, float64(stats.Updates), name)
		ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(stats.Evictions), name)
		ch <- prometheus.MustNewConstMetric(c.expirations, prometheus.CounterValue, float64(stats.Expirations), name)
		ch <- prometheus.MustNewConstMetric(c.deletes, prometheus.CounterValue, float64(stats.Deletes), name)
	}
}
