package cache

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Golu-Guptha/thread-safe-LRU-cache/internal/metrics"
	"github.com/Golu-Guptha/thread-safe-LRU-cache/internal/storage"
)

// New creates a new cache instance with the provided configuration.
// If config is nil, default configuration will be used. The configured
// strategy decides eviction order; when none is injected, the policy name
// selects one of the built-in strategies.
//
// New 创建一个具有提供的配置的新缓存实例。
// 如果config为nil，将使用默认配置。配置的策略决定淘汰顺序；未注入策略
// 时，由策略名称选择内置策略之一。
//
// Parameters:
//   - config: The configuration to use for the cache
//
// Returns:
//   - *Cache: The created cache instance
//   - error: An error if the configuration is invalid
func New(config *Config) (*Cache, error) {
	if config == nil {
		config = NewDefaultConfig()
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cache configuration: %w", err)
	}

	strategy := config.Strategy
	if strategy == nil {
		var err error
		strategy, err = newStrategyForPolicy(config.EvictionPolicy)
		if err != nil {
			return nil, fmt.Errorf("invalid cache configuration: %w", err)
		}
	}

	// Insertion-ordered strategies opt out of hit promotion.
	// 按插入顺序工作的策略选择退出命中提升。
	promote := true
	if np, ok := strategy.(NonPromoting); ok && np.NonPromoting() {
		promote = false
	}

	name := config.Name
	if name == "" {
		name = "tslru"
	}

	return &Cache{
		name:       name,
		capacity:   config.Capacity,
		defaultTTL: config.DefaultTTL,
		strategy:   strategy,
		promote:    promote,
		onRemove:   config.OnRemove,
		metrics:    metrics.New(),
		timeNow:    time.Now,
		store:      storage.NewStore(config.Capacity),
	}, nil
}

// NewFromJSON creates a new cache instance from a JSON configuration.
// The JSON data is read from the provided reader.
//
// NewFromJSON 从JSON配置创建新的缓存实例。
// JSON数据从提供的读取器中读取。
//
// Parameters:
//   - reader: An io.Reader providing the JSON configuration data
//
// Returns:
//   - *Cache: The created cache instance
//   - error: An error if the configuration parsing or cache creation fails
func NewFromJSON(reader io.Reader) (*Cache, error) {
	config := NewDefaultConfig()
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode JSON configuration: %w", err)
	}

	return New(config)
}

// NewFromYAML creates a new cache instance from a YAML configuration.
// The YAML data is read from the provided reader.
//
// NewFromYAML 从YAML配置创建新的缓存实例。
// YAML数据从提供的读取器中读取。
//
// Parameters:
//   - reader: An io.Reader providing the YAML configuration data
//
// Returns:
//   - *Cache: The created cache instance
//   - error: An error if the configuration parsing or cache creation fails
func NewFromYAML(reader io.Reader) (*Cache, error) {
	config := NewDefaultConfig()
	decoder := yaml.NewDecoder(reader)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode YAML configuration: %w", err)
	}

	return New(config)
}

// NewFromFile creates a new cache instance from a configuration file.
// The file format (JSON or YAML) is determined by the file extension.
//
// NewFromFile 从配置文件创建新的缓存实例。
// 文件格式（JSON或YAML）由文件扩展名确定。
//
// Parameters:
//   - filename: The path to the configuration file
//
// Returns:
//   - *Cache: The created cache instance
//   - error: An error if the file reading, parsing, or cache creation fails
func NewFromFile(filename string) (*Cache, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open configuration file: %w", err)
	}
	defer file.Close()

	// Determine format from file extension
	// 从文件扩展名确定格式
	if hasExtension(filename, ".json") {
		return NewFromJSON(file)
	} else if hasExtension(filename, ".yaml") || hasExtension(filename, ".yml") {
		return NewFromYAML(file)
	}

	return nil, fmt.Errorf("unsupported file format for %s", filename)
}

// hasExtension checks if a filename has the specified extension.
//
// hasExtension 检查文件名是否具有指定的扩展名。
//
// Parameters:
//   - filename: The filename to check
//   - ext: The extension to check for (including the dot)
//
// Returns:
//   - bool: True if the filename has the specified extension
func hasExtension(filename, ext string) bool {
	if len(filename) < len(ext) {
		return false
	}
	return filename[len(filename)-len(ext):] == ext
}
