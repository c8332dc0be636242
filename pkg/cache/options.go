package cache

import (
	"time"
)

// Option is a function that configures a Config.
// This pattern allows for flexible and readable configuration of cache instances.
//
// Option 是一个配置Config的函数。
// 这种模式允许灵活且可读地配置缓存实例。
type Option func(*Config)

// WithCapacity sets the maximum number of entries in the cache.
// The capacity is fixed for the lifetime of the cache and must be positive.
//
// WithCapacity 设置缓存中的最大条目数。
// 容量在缓存的整个生命周期内固定，且必须为正数。
//
// Parameters:
//   - capacity: The maximum number of entries
//
// Returns:
//   - Option: A configuration option
func WithCapacity(capacity int) Option {
	return func(c *Config) {
		c.Capacity = capacity
	}
}

// WithTTL sets the default time-to-live for cache entries.
// If set to 0, entries don't expire by default.
// Negative values are rejected during validation.
//
// WithTTL 设置缓存条目的默认生存时间。
// 如果设置为0，则条目默认不过期。
// 负值在校验阶段被拒绝。
//
// Parameters:
//   - ttl: The default time-to-live duration
//
// Returns:
//   - Option: A configuration option
func WithTTL(ttl time.Duration) Option {
	return func(c *Config) {
		c.DefaultTTL = ttl
	}
}

// WithEviction sets the eviction policy by name.
// Valid values: "lru", "lfu", "fifo", "random"
//
// WithEviction 按名称设置淘汰策略。
// 有效值："lru"、"lfu"、"fifo"、"random"
//
// Parameters:
//   - policy: The eviction policy to use
//
// Returns:
//   - Option: A configuration option
func WithEviction(policy string) Option {
	return func(c *Config) {
		c.EvictionPolicy = policy
	}
}

// WithEvictionStrategy injects a custom eviction strategy.
// A non-nil strategy takes precedence over the policy name.
//
// WithEvictionStrategy 注入自定义淘汰策略。
// 非nil的策略优先于策略名称。
//
// Parameters:
//   - strategy: The strategy implementation to use
//
// Returns:
//   - Option: A configuration option
func WithEvictionStrategy(strategy EvictionStrategy) Option {
	return func(c *Config) {
		c.Strategy = strategy
	}
}

// WithRemovalListener registers a callback for entries leaving the cache.
// The callback runs outside the cache lock.
//
// WithRemovalListener 注册条目离开缓存时的回调。
// 回调在缓存锁之外运行。
//
// Parameters:
//   - fn: The callback to invoke per removed entry
//
// Returns:
//   - Option: A configuration option
func WithRemovalListener(fn RemovalFunc) Option {
	return func(c *Config) {
		c.OnRemove = fn
	}
}

// NewWithOptions creates a new cache with the given options.
// This is a convenience function that applies the provided options to a
// default configuration and builds the cache from it.
//
// NewWithOptions 使用给定选项创建新的缓存。
// 这是一个便捷函数，将提供的选项应用于默认配置并据此构建缓存。
//
// Parameters:
//   - name: The name of the cache
//   - options: A list of configuration options
//
// Returns:
//   - *Cache: The created cache instance
//   - error: An error if the configuration is invalid
func NewWithOptions(name string, options ...Option) (*Cache, error) {
	config := NewDefaultConfig()
	config.Name = name

	// Apply all options
	// 应用所有选项
	for _, option := range options {
		option(config)
	}

	return New(config)
}
