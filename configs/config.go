// Package configs provides application-level configuration for the tslru
// cache. It offers mechanisms for loading, validating, and saving
// configuration from JSON and YAML files, and defines a sectioned structure
// covering the cache core, eviction, sharding, metrics, logging, and
// optional extensions.
//
// Package configs 提供tslru缓存的应用级配置。
// 它提供从JSON和YAML文件加载、验证和保存配置的机制，
// 并定义了涵盖缓存核心、淘汰、分片、指标、日志和可选扩展的分节结构。
package configs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/Golu-Guptha/thread-safe-LRU-cache/pkg/cache"
	errs "github.com/Golu-Guptha/thread-safe-LRU-cache/pkg/errors"
)

// Config represents the complete application configuration.
// It contains all settings needed to stand up a cache instance,
// organized into logical sections for different components.
//
// Config 表示完整的应用配置。
// 它包含建立缓存实例所需的所有设置，
// 按不同组件的逻辑部分进行组织。
type Config struct {
	// Cache contains core cache settings like capacity and TTL
	// Cache 包含核心缓存设置，如容量和TTL
	Cache CacheConfig `json:"cache" yaml:"cache" mapstructure:"cache"`

	// Eviction defines how entries are removed when the cache is full
	// Eviction 定义当缓存已满时如何移除条目
	Eviction EvictionConfig `json:"eviction" yaml:"eviction" mapstructure:"eviction"`

	// Sharding splits the key space across independent cache instances
	// Sharding 将键空间拆分到独立的缓存实例上
	Sharding ShardingConfig `json:"sharding" yaml:"sharding" mapstructure:"sharding"`

	// Metrics configures statistics exposure for monitoring
	// Metrics 配置用于监控的统计信息暴露
	Metrics MetricsConfig `json:"metrics" yaml:"metrics" mapstructure:"metrics"`

	// Log configures the logging behavior
	// Log 配置日志行为
	Log LogConfig `json:"log" yaml:"log" mapstructure:"log"`

	// Extensions configures optional features like the expiry janitor
	// and hot reloading
	// Extensions 配置可选功能，如过期清理器和热重载
	Extensions ExtensionsConfig `json:"extensions" yaml:"extensions" mapstructure:"extensions"`

	// Extra allows for custom configuration options
	// Extra 允许自定义配置选项
	Extra map[string]interface{} `json:"extra" yaml:"extra" mapstructure:"extra"`
}

// CacheConfig contains settings for the cache itself.
// These settings control the core behavior of the cache,
// such as the entry limit and default expiration.
//
// CacheConfig 包含缓存本身的设置。
// 这些设置控制缓存的核心行为，
// 如条目上限和默认过期时间。
type CacheConfig struct {
	// Enable determines whether caching is active at all.
	// When false, callers should bypass the cache entirely.
	// Enable 确定缓存是否处于活动状态。
	// 为false时，调用者应完全绕过缓存。
	Enable bool `json:"enable" yaml:"enable" mapstructure:"enable"`

	// Name is the identifier for this cache instance
	// Name 是此缓存实例的标识符
	Name string `json:"name" yaml:"name" mapstructure:"name"`

	// Capacity is the maximum number of entries the cache can hold
	// Capacity 是缓存可以容纳的最大条目数
	Capacity int `json:"capacity" yaml:"capacity" mapstructure:"capacity"`

	// DefaultTTL is applied to entries stored without an explicit TTL
	// (0 = entries never expire)
	// DefaultTTL 应用于未指定TTL存储的条目（0 = 条目永不过期）
	DefaultTTL time.Duration `json:"default_ttl" yaml:"default_ttl" mapstructure:"default_ttl"`
}

// EvictionConfig contains settings for the eviction policy.
// These settings control how a victim is selected for removal
// when the cache reaches its capacity limit.
//
// EvictionConfig 包含淘汰策略的设置。
// 这些设置控制当缓存达到容量限制时如何选择要移除的条目。
type EvictionConfig struct {
	// Policy determines the eviction algorithm ("lru", "lfu", "fifo", "random")
	// Policy 确定淘汰算法（"lru"、"lfu"、"fifo"、"random"）
	Policy string `json:"policy" yaml:"policy" mapstructure:"policy"`
}

// ShardingConfig contains settings for key-space sharding.
// Sharding trades a single lock for one lock per shard,
// reducing contention under heavy concurrent load.
//
// ShardingConfig 包含键空间分片的设置。
// 分片用每个分片一把锁代替单一锁，
// 从而减少高并发负载下的锁竞争。
type ShardingConfig struct {
	// Enable determines whether the sharded cache variant is used
	// Enable 确定是否使用分片缓存变体
	Enable bool `json:"enable" yaml:"enable" mapstructure:"enable"`

	// Shards is the number of independent shards (must be a power of 2)
	// Shards 是独立分片的数量（必须是2的幂）
	Shards int `json:"shards" yaml:"shards" mapstructure:"shards"`
}

// MetricsConfig contains settings for metrics exposure.
// These settings control how cache statistics are published
// for scraping by a Prometheus server.
//
// MetricsConfig 包含指标暴露的设置。
// 这些设置控制如何发布缓存统计信息以供Prometheus服务器抓取。
type MetricsConfig struct {
	// Enable determines whether metrics exposure is active
	// Enable 确定是否启用指标暴露
	Enable bool `json:"enable" yaml:"enable" mapstructure:"enable"`

	// Namespace is the prefix for exported metric names
	// Namespace 是导出指标名称的前缀
	Namespace string `json:"namespace" yaml:"namespace" mapstructure:"namespace"`

	// ListenAddr is the address the metrics endpoint listens on
	// ListenAddr 是指标端点监听的地址
	ListenAddr string `json:"listen_addr" yaml:"listen_addr" mapstructure:"listen_addr"`

	// Path is the HTTP path the metrics are served under
	// Path 是提供指标的HTTP路径
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// LogConfig contains settings for logging.
// These settings control the logging behavior, including
// log level, format, and output destination.
//
// LogConfig 包含日志记录的设置。
// 这些设置控制日志行为，包括日志级别、格式和输出目的地。
type LogConfig struct {
	// Level sets the minimum log level ("debug", "info", "warn", "error")
	// Level 设置最低日志级别（"debug"、"info"、"warn"、"error"）
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format specifies the log format ("text", "json")
	// Format 指定日志格式（"text"、"json"）
	Format string `json:"format" yaml:"format" mapstructure:"format"`

	// Output determines where logs are written ("stdout", "stderr", "file")
	// Output 确定日志写入的位置（"stdout"、"stderr"、"file"）
	Output string `json:"output" yaml:"output" mapstructure:"output"`

	// FilePath is the path to the log file when Output is "file"
	// FilePath 是当Output为"file"时的日志文件路径
	FilePath string `json:"file_path" yaml:"file_path" mapstructure:"file_path"`
}

// ExtensionsConfig contains settings for extensions.
// These settings control optional features that extend
// the core functionality of the cache.
//
// ExtensionsConfig 包含扩展的设置。
// 这些设置控制扩展缓存核心功能的可选功能。
type ExtensionsConfig struct {
	// Janitor contains settings for background expiry sweeping
	// Janitor 包含后台过期清理的设置
	Janitor JanitorConfig `json:"janitor" yaml:"janitor" mapstructure:"janitor"`

	// HotReload contains settings for dynamic configuration reloading
	// HotReload 包含动态配置重新加载的设置
	HotReload HotReloadConfig `json:"hot_reload" yaml:"hot_reload" mapstructure:"hot_reload"`
}

// JanitorConfig contains settings for the background expiry janitor.
// Expired entries are always dropped lazily on access; the janitor
// additionally reclaims entries that are never touched again.
//
// JanitorConfig 包含后台过期清理器的设置。
// 过期条目总是在访问时被惰性删除；
// 清理器额外回收那些不再被访问的条目。
type JanitorConfig struct {
	// Enable determines whether the background sweeper runs
	// Enable 确定后台清理器是否运行
	Enable bool `json:"enable" yaml:"enable" mapstructure:"enable"`

	// SweepInterval is how often expired entries are swept out
	// SweepInterval 是清除过期条目的频率
	SweepInterval time.Duration `json:"sweep_interval" yaml:"sweep_interval" mapstructure:"sweep_interval"`
}

// HotReloadConfig contains settings for hot reloading.
// These settings control how configuration changes are
// detected and applied without a restart.
//
// HotReloadConfig 包含热重载的设置。
// 这些设置控制如何检测和应用配置更改而无需重启。
type HotReloadConfig struct {
	// Enable determines whether hot reloading is active
	// Enable 确定是否启用热重载
	Enable bool `json:"enable" yaml:"enable" mapstructure:"enable"`

	// WatchInterval is how often the polling watcher checks for changes
	// WatchInterval 是轮询监视器检查配置更改的频率
	WatchInterval time.Duration `json:"watch_interval" yaml:"watch_interval" mapstructure:"watch_interval"`
}

// DefaultConfig returns a new Config with default values.
// This provides a starting point for configuration with reasonable defaults
// for all settings, which can then be customized as needed.
//
// DefaultConfig 返回具有默认值的新Config。
// 这为所有设置提供了具有合理默认值的配置起点，
// 然后可以根据需要进行自定义。
//
// Returns:
//   - *Config: A new configuration instance with default values
//
// 返回：
//   - *Config: 具有默认值的新配置实例
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			Enable:     true,
			Name:       "tslru",
			Capacity:   10000,
			DefaultTTL: 0,
		},
		Eviction: EvictionConfig{
			Policy: "lru",
		},
		Sharding: ShardingConfig{
			Enable: false,
			Shards: 16,
		},
		Metrics: MetricsConfig{
			Enable:     true,
			Namespace:  "tslru",
			ListenAddr: ":2112",
			Path:       "/metrics",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
		Extensions: ExtensionsConfig{
			Janitor: JanitorConfig{
				Enable:        true,
				SweepInterval: time.Minute,
			},
			HotReload: HotReloadConfig{
				Enable:        false,
				WatchInterval: 30 * time.Second,
			},
		},
		Extra: make(map[string]interface{}),
	}
}

// LoadFromFile loads configuration from a file.
// It supports both YAML and JSON formats, automatically
// detecting the format based on the file extension.
// Settings absent from the file keep their default values.
//
// LoadFromFile 从文件加载配置。
// 它支持YAML和JSON格式，根据文件扩展名自动检测格式。
// 文件中缺少的设置保留其默认值。
//
// Parameters:
//   - filename: Path to the configuration file
//
// Returns:
//   - *Config: The loaded configuration
//   - error: An error if loading fails
//
// 参数：
//   - filename: 配置文件的路径
//
// 返回：
//   - *Config: 加载的配置
//   - error: 如果加载失败则返回错误
func LoadFromFile(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open configuration file: %w", err)
	}
	defer file.Close()

	config := DefaultConfig()
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".yaml", ".yml":
		err = yaml.NewDecoder(file).Decode(config)
	case ".json":
		err = json.NewDecoder(file).Decode(config)
	default:
		return nil, fmt.Errorf("unsupported configuration file format: %s", ext)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return config, nil
}

// LoadFromReader loads configuration from an io.Reader.
// This allows loading configuration from sources other than files,
// such as network streams or in-memory data.
//
// LoadFromReader 从io.Reader加载配置。
// 这允许从文件以外的源加载配置，
// 如网络流或内存中的数据。
//
// Parameters:
//   - r: The reader providing the configuration data
//   - format: The format of the data ("json", "yaml", or "yml")
//
// Returns:
//   - *Config: The loaded configuration
//   - error: An error if loading fails
//
// 参数：
//   - r: 提供配置数据的读取器
//   - format: 数据的格式（"json"、"yaml"或"yml"）
//
// 返回：
//   - *Config: 加载的配置
//   - error: 如果加载失败则返回错误
func LoadFromReader(r io.Reader, format string) (*Config, error) {
	config := DefaultConfig()
	var err error

	switch strings.ToLower(format) {
	case "yaml", "yml":
		err = yaml.NewDecoder(r).Decode(config)
	case "json":
		err = json.NewDecoder(r).Decode(config)
	default:
		return nil, fmt.Errorf("unsupported configuration format: %s", format)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a file.
// It supports both YAML and JSON formats, automatically
// selecting the format based on the file extension.
//
// SaveToFile 将配置保存到文件。
// 它支持YAML和JSON格式，根据文件扩展名自动选择格式。
//
// Parameters:
//   - filename: Path where the configuration will be saved
//
// Returns:
//   - error: An error if saving fails
//
// 参数：
//   - filename: 配置将保存的路径
//
// 返回：
//   - error: 如果保存失败则返回错误
func (c *Config) SaveToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create configuration file: %w", err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".yaml", ".yml":
		encoder := yaml.NewEncoder(file)
		defer encoder.Close()
		err = encoder.Encode(c)
	case ".json":
		encoder := json.NewEncoder(file)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(c)
	default:
		return fmt.Errorf("unsupported configuration file format: %s", ext)
	}

	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	return nil
}

// Validate validates the configuration.
// It checks that all settings have valid values and
// that there are no conflicts between sections.
//
// Validate 验证配置。
// 它检查所有设置是否具有有效值，
// 并且各部分之间没有冲突。
//
// Returns:
//   - error: An error describing the validation failure, or nil if valid
//
// 返回：
//   - error: 描述验证失败的错误，如果有效则为nil
func (c *Config) Validate() error {
	// Validate cache settings
	// 验证缓存设置
	if c.Cache.Capacity <= 0 {
		return fmt.Errorf("cache.capacity: %w: got %d", errs.ErrInvalidCapacity, c.Cache.Capacity)
	}
	if c.Cache.DefaultTTL < 0 {
		return fmt.Errorf("cache.default_ttl: %w: got %s", errs.ErrInvalidTTL, c.Cache.DefaultTTL)
	}

	// Validate eviction settings
	// 验证淘汰设置
	switch c.Eviction.Policy {
	case "", "lru", "lfu", "fifo", "random":
		// Valid policies
		// 有效策略
	default:
		return fmt.Errorf("eviction.policy: %w: %q", errs.ErrInvalidPolicy, c.Eviction.Policy)
	}

	// Validate sharding settings
	// 验证分片设置
	if c.Sharding.Enable {
		if c.Sharding.Shards <= 0 {
			return fmt.Errorf("sharding.shards must be positive")
		}
		if !isPowerOfTwo(c.Sharding.Shards) {
			return fmt.Errorf("sharding.shards must be a power of 2")
		}
		if c.Cache.Capacity < c.Sharding.Shards {
			return fmt.Errorf("cache.capacity: %w: %d is below sharding.shards %d",
				errs.ErrInvalidCapacity, c.Cache.Capacity, c.Sharding.Shards)
		}
	}

	// Validate metrics settings
	// 验证指标设置
	if c.Metrics.Enable {
		if c.Metrics.ListenAddr == "" {
			return fmt.Errorf("metrics.listen_addr must be specified when metrics are enabled")
		}
		if !strings.HasPrefix(c.Metrics.Path, "/") {
			return fmt.Errorf("metrics.path must start with '/'")
		}
	}

	// Validate log settings
	// 验证日志设置
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
		// Valid levels
		// 有效级别
	default:
		return fmt.Errorf("log.level must be one of: debug, info, warn, error")
	}
	switch c.Log.Format {
	case "text", "json":
		// Valid formats
		// 有效格式
	default:
		return fmt.Errorf("log.format must be one of: text, json")
	}
	switch c.Log.Output {
	case "stdout", "stderr", "file":
		// Valid outputs
		// 有效输出
	default:
		return fmt.Errorf("log.output must be one of: stdout, stderr, file")
	}
	if c.Log.Output == "file" && c.Log.FilePath == "" {
		return fmt.Errorf("log.file_path must be specified when log.output is 'file'")
	}

	// Validate extensions settings
	// 验证扩展设置
	if c.Extensions.Janitor.Enable && c.Extensions.Janitor.SweepInterval < time.Second {
		return fmt.Errorf("extensions.janitor.sweep_interval must be at least 1 second")
	}
	if c.Extensions.HotReload.Enable && c.Extensions.HotReload.WatchInterval < time.Second {
		return fmt.Errorf("extensions.hot_reload.watch_interval must be at least 1 second")
	}

	return nil
}

// ToCacheConfig converts the application configuration into the
// cache package's configuration structure. The Cache and Eviction
// sections are projected onto the corresponding fields; sections the
// cache core does not know about (sharding, metrics, log, extensions)
// are the caller's responsibility.
//
// ToCacheConfig 将应用配置转换为缓存包的配置结构。
// Cache和Eviction部分被映射到相应的字段；
// 缓存核心不了解的部分（分片、指标、日志、扩展）由调用者负责。
//
// Returns:
//   - *cache.Config: A cache configuration derived from this Config
//
// 返回：
//   - *cache.Config: 从此Config派生的缓存配置
func (c *Config) ToCacheConfig() *cache.Config {
	cacheConfig := cache.NewDefaultConfig()
	if c.Cache.Name != "" {
		cacheConfig.Name = c.Cache.Name
	}
	cacheConfig.Capacity = c.Cache.Capacity
	cacheConfig.DefaultTTL = c.Cache.DefaultTTL
	cacheConfig.EvictionPolicy = c.Eviction.Policy
	return cacheConfig
}

// isPowerOfTwo checks if n is a power of 2.
// This is used to validate that shard counts are powers of 2,
// which keeps the key-to-shard mapping a cheap mask operation.
//
// isPowerOfTwo 检查n是否为2的幂。
// 这用于验证分片计数是否为2的幂，
// 从而使键到分片的映射保持为低成本的掩码运算。
//
// Parameters:
//   - n: The number to check
//
// Returns:
//   - bool: True if n is a power of 2, false otherwise
//
// 参数：
//   - n: 要检查的数字
//
// 返回：
//   - bool: 如果n是2的幂则为true，否则为false
func isPowerOfTwo(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
