// Package configs provides application-level configuration for the tslru cache.
// This file contains tests for the configuration functionality.
//
// Package configs 提供tslru缓存的应用级配置。
// 本文件包含配置功能的测试。
package configs

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	errs "github.com/Golu-Guptha/thread-safe-LRU-cache/pkg/errors"
)

// TestDefaultConfig verifies that DefaultConfig returns a properly initialized
// Config with the expected default values for important settings.
//
// TestDefaultConfig 验证DefaultConfig返回一个正确初始化的Config，
// 包含重要设置的预期默认值。
func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	// Test default values
	// 测试默认值
	if config.Cache.Name != "tslru" {
		t.Errorf("Expected Cache.Name to be 'tslru', got '%s'", config.Cache.Name)
	}
	if config.Cache.Capacity != 10000 {
		t.Errorf("Expected Cache.Capacity to be 10000, got %d", config.Cache.Capacity)
	}
	if config.Cache.DefaultTTL != 0 {
		t.Errorf("Expected Cache.DefaultTTL to be 0, got %s", config.Cache.DefaultTTL)
	}
	if config.Eviction.Policy != "lru" {
		t.Errorf("Expected Eviction.Policy to be 'lru', got '%s'", config.Eviction.Policy)
	}
	if config.Sharding.Enable {
		t.Error("Expected Sharding.Enable to be false by default")
	}
	if config.Sharding.Shards != 16 {
		t.Errorf("Expected Sharding.Shards to be 16, got %d", config.Sharding.Shards)
	}
	if !config.Extensions.Janitor.Enable {
		t.Error("Expected Extensions.Janitor.Enable to be true by default")
	}
	if config.Extensions.Janitor.SweepInterval != time.Minute {
		t.Errorf("Expected Extensions.Janitor.SweepInterval to be 1m, got %s",
			config.Extensions.Janitor.SweepInterval)
	}

	// The defaults themselves must validate
	// 默认值本身必须通过验证
	if err := config.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got: %v", err)
	}
}

// TestLoadAndSaveConfig tests the ability to save and load configuration
// to and from files in both YAML and JSON formats.
//
// TestLoadAndSaveConfig 测试将配置保存到文件和从文件加载配置的能力，
// 包括YAML和JSON两种格式。
func TestLoadAndSaveConfig(t *testing.T) {
	tempDir := t.TempDir()

	// Test YAML
	// 测试YAML
	yamlPath := filepath.Join(tempDir, "config.yaml")
	config := DefaultConfig()
	config.Cache.Capacity = 1000
	config.Cache.DefaultTTL = 90 * time.Second
	config.Sharding.Enable = true
	config.Sharding.Shards = 64
	config.Eviction.Policy = "lfu"

	// Save config
	// 保存配置
	if err := config.SaveToFile(yamlPath); err != nil {
		t.Fatalf("Failed to save YAML config: %v", err)
	}

	// Load config
	// 加载配置
	loadedConfig, err := LoadFromFile(yamlPath)
	if err != nil {
		t.Fatalf("Failed to load YAML config: %v", err)
	}

	// Verify loaded config
	// 验证加载的配置
	if loadedConfig.Cache.Capacity != 1000 {
		t.Errorf("Expected Cache.Capacity to be 1000, got %d", loadedConfig.Cache.Capacity)
	}
	if loadedConfig.Cache.DefaultTTL != 90*time.Second {
		t.Errorf("Expected Cache.DefaultTTL to be 90s, got %s", loadedConfig.Cache.DefaultTTL)
	}
	if loadedConfig.Sharding.Shards != 64 {
		t.Errorf("Expected Sharding.Shards to be 64, got %d", loadedConfig.Sharding.Shards)
	}
	if loadedConfig.Eviction.Policy != "lfu" {
		t.Errorf("Expected Eviction.Policy to be 'lfu', got '%s'", loadedConfig.Eviction.Policy)
	}

	// Test JSON
	// 测试JSON
	jsonPath := filepath.Join(tempDir, "config.json")
	config.Cache.Capacity = 2000
	config.Sharding.Shards = 128
	config.Eviction.Policy = "fifo"

	// Save config
	// 保存配置
	if err := config.SaveToFile(jsonPath); err != nil {
		t.Fatalf("Failed to save JSON config: %v", err)
	}

	// Load config
	// 加载配置
	loadedConfig, err = LoadFromFile(jsonPath)
	if err != nil {
		t.Fatalf("Failed to load JSON config: %v", err)
	}

	// Verify loaded config
	// 验证加载的配置
	if loadedConfig.Cache.Capacity != 2000 {
		t.Errorf("Expected Cache.Capacity to be 2000, got %d", loadedConfig.Cache.Capacity)
	}
	if loadedConfig.Sharding.Shards != 128 {
		t.Errorf("Expected Sharding.Shards to be 128, got %d", loadedConfig.Sharding.Shards)
	}
	if loadedConfig.Eviction.Policy != "fifo" {
		t.Errorf("Expected Eviction.Policy to be 'fifo', got '%s'", loadedConfig.Eviction.Policy)
	}
}

// TestLoadFromReader verifies that a sparse YAML document decoded from a
// reader overrides only the fields it mentions and keeps defaults for the
// rest, including duration strings like "45s".
//
// TestLoadFromReader 验证从读取器解码的稀疏YAML文档只覆盖它提到的字段，
// 其余字段保留默认值，包括像"45s"这样的时长字符串。
func TestLoadFromReader(t *testing.T) {
	yamlConfig := `
cache:
  name: "article-cache"
  capacity: 500
  default_ttl: 45s
eviction:
  policy: "fifo"
metrics:
  namespace: "myapp"
`

	reader := strings.NewReader(yamlConfig)
	config, err := LoadFromReader(reader, "yaml")
	if err != nil {
		t.Fatalf("Failed to load config from reader: %v", err)
	}

	if config.Cache.Name != "article-cache" {
		t.Errorf("Expected Cache.Name to be 'article-cache', got '%s'", config.Cache.Name)
	}
	if config.Cache.Capacity != 500 {
		t.Errorf("Expected Cache.Capacity to be 500, got %d", config.Cache.Capacity)
	}
	if config.Cache.DefaultTTL != 45*time.Second {
		t.Errorf("Expected Cache.DefaultTTL to be 45s, got %s", config.Cache.DefaultTTL)
	}
	if config.Eviction.Policy != "fifo" {
		t.Errorf("Expected Eviction.Policy to be 'fifo', got '%s'", config.Eviction.Policy)
	}
	if config.Metrics.Namespace != "myapp" {
		t.Errorf("Expected Metrics.Namespace to be 'myapp', got '%s'", config.Metrics.Namespace)
	}

	// Unmentioned fields keep their defaults
	// 未提及的字段保留默认值
	if config.Sharding.Shards != 16 {
		t.Errorf("Expected Sharding.Shards to keep default 16, got %d", config.Sharding.Shards)
	}
	if config.Log.Level != "info" {
		t.Errorf("Expected Log.Level to keep default 'info', got '%s'", config.Log.Level)
	}
}

// TestLoadFromReaderUnsupportedFormat verifies that unknown formats are
// rejected with a descriptive error.
//
// TestLoadFromReaderUnsupportedFormat 验证未知格式会被拒绝并返回描述性错误。
func TestLoadFromReaderUnsupportedFormat(t *testing.T) {
	reader := strings.NewReader("capacity = 100")
	_, err := LoadFromReader(reader, "toml")
	if err == nil {
		t.Fatal("Expected an error for unsupported format, got nil")
	}
}

// TestValidate tests the Validate method to ensure it correctly identifies
// valid and invalid configurations according to the defined constraints.
//
// TestValidate 测试Validate方法，确保它能根据定义的约束
// 正确识别有效和无效的配置。
func TestValidate(t *testing.T) {
	tests := []struct {
		name        string           // Test case name / 测试用例名称
		modifyFunc  func(*Config)    // Function to modify config / 修改配置的函数
		expectError bool             // Whether validation should fail / 验证是否应该失败
		errCheck    func(error) bool // Optional error identity check / 可选的错误身份检查
	}{
		{
			name:        "Valid default config",
			modifyFunc:  func(c *Config) {},
			expectError: false,
		},
		{
			name: "Zero cache.capacity",
			modifyFunc: func(c *Config) {
				c.Cache.Capacity = 0
			},
			expectError: true,
			errCheck:    errs.IsInvalidCapacity,
		},
		{
			name: "Negative cache.default_ttl",
			modifyFunc: func(c *Config) {
				c.Cache.DefaultTTL = -time.Second
			},
			expectError: true,
			errCheck:    errs.IsInvalidTTL,
		},
		{
			name: "Unknown eviction.policy",
			modifyFunc: func(c *Config) {
				c.Eviction.Policy = "arc"
			},
			expectError: true,
			errCheck:    errs.IsInvalidPolicy,
		},
		{
			name: "Empty eviction.policy is allowed",
			modifyFunc: func(c *Config) {
				c.Eviction.Policy = ""
			},
			expectError: false,
		},
		{
			name: "sharding.shards not a power of 2",
			modifyFunc: func(c *Config) {
				c.Sharding.Enable = true
				c.Sharding.Shards = 100
			},
			expectError: true,
		},
		{
			name: "cache.capacity below sharding.shards",
			modifyFunc: func(c *Config) {
				c.Cache.Capacity = 8
				c.Sharding.Enable = true
				c.Sharding.Shards = 16
			},
			expectError: true,
			errCheck:    errs.IsInvalidCapacity,
		},
		{
			name: "Disabled sharding skips shard checks",
			modifyFunc: func(c *Config) {
				c.Sharding.Enable = false
				c.Sharding.Shards = -7
			},
			expectError: false,
		},
		{
			name: "metrics.path without leading slash",
			modifyFunc: func(c *Config) {
				c.Metrics.Path = "metrics"
			},
			expectError: true,
		},
		{
			name: "Invalid log.level",
			modifyFunc: func(c *Config) {
				c.Log.Level = "trace"
			},
			expectError: true,
		},
		{
			name: "File output without log.file_path",
			modifyFunc: func(c *Config) {
				c.Log.Output = "file"
				c.Log.FilePath = ""
			},
			expectError: true,
		},
		{
			name: "Janitor sweep interval below 1 second",
			modifyFunc: func(c *Config) {
				c.Extensions.Janitor.SweepInterval = 100 * time.Millisecond
			},
			expectError: true,
		},
		{
			name: "Hot reload watch interval below 1 second",
			modifyFunc: func(c *Config) {
				c.Extensions.HotReload.Enable = true
				c.Extensions.HotReload.WatchInterval = 200 * time.Millisecond
			},
			expectError: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := DefaultConfig()
			test.modifyFunc(config)
			err := config.Validate()
			if test.expectError && err == nil {
				t.Error("Expected validation error, but got nil")
			}
			if !test.expectError && err != nil {
				t.Errorf("Expected no validation error, but got: %v", err)
			}
			if err != nil && test.errCheck != nil && !test.errCheck(err) {
				t.Errorf("Validation error has the wrong identity: %v", err)
			}
		})
	}
}

// TestToCacheConfig verifies the projection of the application configuration
// onto the cache package's configuration structure.
//
// TestToCacheConfig 验证应用配置到缓存包配置结构的映射。
func TestToCacheConfig(t *testing.T) {
	config := DefaultConfig()
	config.Cache.Name = "app-cache"
	config.Cache.Capacity = 512
	config.Cache.DefaultTTL = 2 * time.Minute
	config.Eviction.Policy = "lfu"

	cacheConfig := config.ToCacheConfig()
	if cacheConfig.Name != "app-cache" {
		t.Errorf("Expected Name to be 'app-cache', got '%s'", cacheConfig.Name)
	}
	if cacheConfig.Capacity != 512 {
		t.Errorf("Expected Capacity to be 512, got %d", cacheConfig.Capacity)
	}
	if cacheConfig.DefaultTTL != 2*time.Minute {
		t.Errorf("Expected DefaultTTL to be 2m, got %s", cacheConfig.DefaultTTL)
	}
	if cacheConfig.EvictionPolicy != "lfu" {
		t.Errorf("Expected EvictionPolicy to be 'lfu', got '%s'", cacheConfig.EvictionPolicy)
	}

	// An empty name falls back to the cache package default
	// 空名称回退到缓存包的默认值
	config.Cache.Name = ""
	cacheConfig = config.ToCacheConfig()
	if cacheConfig.Name == "" {
		t.Error("Expected an empty Cache.Name to fall back to a non-empty default")
	}
}

// TestIsPowerOfTwo tests the isPowerOfTwo helper function with various inputs
// to ensure it correctly identifies numbers that are powers of 2.
//
// TestIsPowerOfTwo 使用各种输入测试isPowerOfTwo辅助函数，
// 确保它能正确识别2的幂数。
func TestIsPowerOfTwo(t *testing.T) {
	testCases := []struct {
		n        int  // Input number / 输入数字
		expected bool // Expected result / 预期结果
	}{
		{-4, false},
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{16, true},
		{24, false},
		{64, true},
		{100, false},
		{512, true},
		{1024, true},
		{1000, false},
	}

	for _, tc := range testCases {
		result := isPowerOfTwo(tc.n)
		if result != tc.expected {
			t.Errorf("isPowerOfTwo(%d) = %v, expected %v", tc.n, result, tc.expected)
		}
	}
}
