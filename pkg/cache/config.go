package cache

import (
	"fmt"
	"time"

	errs "github.com/Golu-Guptha/thread-safe-LRU-cache/pkg/errors"
)

// Config defines the configuration options for a cache instance.
// It controls capacity, expiry defaults, and the eviction strategy.
//
// Config 定义缓存实例的配置选项。
// 它控制容量、默认过期时间和淘汰策略。
type Config struct {
	// Name of the cache instance, used for metrics and logging
	// 缓存实例的名称，用于指标收集和日志记录
	Name string `json:"name" yaml:"name"`

	// Capacity is the maximum number of entries the cache can hold.
	// It must be strictly positive and is fixed for the cache lifetime.
	//
	// Capacity 是缓存可以容纳的最大条目数。
	// 必须为正数，且在缓存的整个生命周期内固定不变。
	Capacity int `json:"capacity" yaml:"capacity"`

	// DefaultTTL is the default time-to-live for cache entries.
	// If set to 0, entries don't expire by default. Negative values are
	// rejected by Validate, never clamped.
	//
	// DefaultTTL 是缓存条目的默认生存时间。
	// 如果设置为0，则条目默认不过期。负值会被Validate拒绝，而不是被截断。
	DefaultTTL time.Duration `json:"default_ttl" yaml:"default_ttl"`

	// EvictionPolicy determines which entry to evict when the cache is full.
	// Valid values: "lru", "lfu", "fifo", "random". Ignored when Strategy
	// is set.
	//
	// EvictionPolicy 决定当缓存已满时要淘汰哪个条目。
	// 有效值："lru"、"lfu"、"fifo"、"random"。当Strategy已设置时被忽略。
	EvictionPolicy string `json:"eviction_policy" yaml:"eviction_policy"`

	// Strategy is a custom eviction strategy. When non-nil it takes
	// precedence over EvictionPolicy.
	//
	// Strategy 是自定义淘汰策略。非nil时优先于EvictionPolicy。
	Strategy EvictionStrategy `json:"-" yaml:"-"`

	// OnRemove is invoked after the lock is released for every entry that
	// leaves the cache, with the cause of its removal.
	//
	// OnRemove 在锁释放后为每个离开缓存的条目调用，并携带移除原因。
	OnRemove RemovalFunc `json:"-" yaml:"-"`
}

// NewDefaultConfig returns a Config with sensible default values.
// This provides a starting point for creating a cache configuration.
//
// NewDefaultConfig 返回具有合理默认值的Config。
// 这为创建缓存配置提供了一个起点。
//
// Returns:
//   - *Config: A new configuration instance with default values
func NewDefaultConfig() *Config {
	return &Config{
		Name:           "tslru",
		Capacity:       10000,
		DefaultTTL:     0,
		EvictionPolicy: "lru",
	}
}

// Validate checks if the configuration is valid.
// Violations are reported through the configuration error sentinels so
// callers can classify them with errors.Is.
//
// Validate 检查配置是否有效。
// 违规通过配置错误哨兵报告，调用方可以使用errors.Is进行归类。
//
// Returns:
//   - error: An error if the configuration is invalid, nil otherwise
func (c *Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidCapacity, c.Capacity)
	}

	if c.DefaultTTL < 0 {
		return fmt.Errorf("%w: got %v", errs.ErrInvalidTTL, c.DefaultTTL)
	}

	// A custom strategy replaces the named policy entirely
	// 自定义策略完全取代按名称选择的策略
	if c.Strategy != nil {
		return nil
	}

	switch c.EvictionPolicy {
	case "", "lru", "lfu", "fifo", "random":
		// Valid policies; empty selects the default
		// 有效策略；空值选择默认策略
	default:
		return fmt.Errorf("%w: %q", errs.ErrInvalidPolicy, c.EvictionPolicy)
	}

	return nil
}

// WithName sets the cache name.
// The name is used for metrics and logging.
//
// WithName 设置缓存名称。
// 名称用于指标和日志记录。
//
// Parameters:
//   - name: The name to set
//
// Returns:
//   - *Config: The modified configuration (for method chaining)
func (c *Config) WithName(name string) *Config {
	c.Name = name
	return c
}

// WithCapacity sets the maximum number of entries.
// The value must be strictly positive to pass Validate.
//
// WithCapacity 设置最大条目数。
// 该值必须为正数才能通过Validate。
//
// Parameters:
//   - capacity: The maximum number of entries
//
// Returns:
//   - *Config: The modified configuration (for method chaining)
func (c *Config) WithCapacity(capacity int) *Config {
	c.Capacity = capacity
	return c
}

// WithDefaultTTL sets the default time-to-live for cache entries.
// If set to 0, entries don't expire by default.
//
// WithDefaultTTL 设置缓存条目的默认生存时间。
// 如果设置为0，则条目默认不过期。
//
// Parameters:
//   - ttl: The default time-to-live duration
//
// Returns:
//   - *Config: The modified configuration (for method chaining)
func (c *Config) WithDefaultTTL(ttl time.Duration) *Config {
	c.DefaultTTL = ttl
	return c
}

// WithEvictionPolicy sets the eviction policy by name.
// Valid values: "lru", "lfu", "fifo", "random".
//
// WithEvictionPolicy 按名称设置淘汰策略。
// 有效值："lru"、"lfu"、"fifo"、"random"。
//
// Parameters:
//   - policy: The eviction policy to use
//
// Returns:
//   - *Config: The modified configuration (for method chaining)
func (c *Config) WithEvictionPolicy(policy string) *Config {
	c.EvictionPolicy = policy
	return c
}

// WithStrategy sets a custom eviction strategy, taking precedence over
// any named policy.
//
// WithStrategy 设置自定义淘汰策略，优先于按名称选择的策略。
//
// Parameters:
//   - strategy: The strategy to inject
//
// Returns:
//   - *Config: The modified configuration (for method chaining)
func (c *Config) WithStrategy(strategy EvictionStrategy) *Config {
	c.Strategy = strategy
	return c
}

// WithOnRemove sets the removal notification callback.
//
// WithOnRemove 设置移除通知回调。
//
// Parameters:
//   - fn: The callback to invoke for every removed entry
//
// Returns:
//   - *Config: The modified configuration (for method chaining)
func (c *Config) WithOnRemove(fn RemovalFunc) *Config {
	c.OnRemove = fn
	return c
}
