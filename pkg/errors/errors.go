// Package errors provides standardized error types for the cache.
// It defines the configuration error sentinels, the internal invariant
// violation sentinel, error wrapping, and helper predicates used across
// the cache implementation.
//
// A cache miss is deliberately not represented here: lookups report a
// miss through their boolean result, so a stored nil value can never be
// confused with an absent key.
//
// Package errors 提供缓存的标准化错误类型。
// 它定义了配置错误哨兵、内部不变量被破坏时的哨兵、错误包装以及在整个
// 缓存实现中使用的错误判断辅助函数。
//
// 缓存未命中有意不在此处表示：查找操作通过布尔返回值报告未命中，
// 因此存储的nil值永远不会与不存在的键混淆。
package errors

import (
	"errors"
	"fmt"
)

// Standard errors that can be returned by the cache.
// These provide consistent error types across the cache implementation.
//
// 缓存可能返回的标准错误。
// 这些提供了缓存实现中一致的错误类型。
var (
	// ErrInvalidCapacity is returned when a cache is constructed with a
	// capacity that is not strictly positive.
	// 当使用非正容量构造缓存时返回ErrInvalidCapacity。
	ErrInvalidCapacity = errors.New("cache: capacity must be positive")

	// ErrInvalidTTL is returned when a negative TTL is supplied, either at
	// construction or on a per-call override. Negative TTLs are rejected,
	// never clamped.
	// 当在构造或单次调用时提供负的TTL时返回ErrInvalidTTL。
	// 负TTL会被拒绝，而不是被截断为零。
	ErrInvalidTTL = errors.New("cache: ttl must not be negative")

	// ErrInvalidPolicy is returned when an unknown eviction policy name is
	// supplied in a configuration.
	// 当配置中提供未知的淘汰策略名称时返回ErrInvalidPolicy。
	ErrInvalidPolicy = errors.New("cache: unknown eviction policy")

	// ErrClosed is returned when an operation is performed on a closed cache.
	// 当对已关闭的缓存执行操作时返回ErrClosed。
	ErrClosed = errors.New("cache: cache is closed")

	// ErrNoLoader is returned by load-through lookups when the key is absent
	// and no loader function was supplied.
	// 当键不存在且未提供加载函数时，穿透加载查找返回ErrNoLoader。
	ErrNoLoader = errors.New("cache: no loader provided")

	// ErrInvariantViolation reports internal corruption: the hash index and
	// the access-order list disagree, or an eviction strategy returned a key
	// that is not present. It is carried by a panic rather than an ordinary
	// return value because the condition is a defect, not a recoverable
	// state, and must never be folded into hit/miss semantics.
	// ErrInvariantViolation 报告内部损坏：哈希索引与访问顺序链表不一致，
	// 或淘汰策略返回了不存在的键。该错误通过panic携带而不是普通返回值，
	// 因为这种情况是程序缺陷而非可恢复状态，绝不能被归入命中/未命中语义。
	ErrInvariantViolation = errors.New("cache: index/list invariant violated")
)

// KeyError represents an error related to a specific key.
// It wraps an underlying error with the key that caused the error.
//
// KeyError 表示与特定键相关的错误。
// 它用导致错误的键包装底层错误。
type KeyError struct {
	Key string // The key that caused the error / 导致错误的键
	Err error  // The underlying error / 底层错误
}

// Error returns the error message.
// It implements the error interface.
//
// Error 返回错误消息。
// 它实现了error接口。
//
// Returns:
//   - string: The formatted error message including the key
func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err, e.Key)
}

// Unwrap returns the underlying error.
// This allows errors.Is and errors.As to work with wrapped errors.
//
// Unwrap 返回底层错误。
// 这允许errors.Is和errors.As与包装的错误一起工作。
//
// Returns:
//   - error: The underlying error
func (e *KeyError) Unwrap() error {
	return e.Err
}

// NewKeyError creates a new KeyError.
// It associates a key with an error.
//
// NewKeyError 创建一个新的KeyError。
// 它将键与错误关联起来。
//
// Parameters:
//   - key: The key that caused the error
//   - err: The underlying error
//
// Returns:
//   - *KeyError: A new key error instance
func NewKeyError(key string, err error) *KeyError {
	return &KeyError{Key: key, Err: err}
}

// IsInvalidCapacity returns true if the error indicates an invalid capacity.
//
// IsInvalidCapacity 如果错误表示容量无效，则返回true。
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: True if the error is or wraps ErrInvalidCapacity
func IsInvalidCapacity(err error) bool {
	return errors.Is(err, ErrInvalidCapacity)
}

// IsInvalidTTL returns true if the error indicates an invalid TTL.
//
// IsInvalidTTL 如果错误表示TTL无效，则返回true。
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: True if the error is or wraps ErrInvalidTTL
func IsInvalidTTL(err error) bool {
	return errors.Is(err, ErrInvalidTTL)
}

// IsInvalidPolicy returns true if the error indicates an unknown eviction
// policy name.
//
// IsInvalidPolicy 如果错误表示淘汰策略名称未知，则返回true。
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: True if the error is or wraps ErrInvalidPolicy
func IsInvalidPolicy(err error) bool {
	return errors.Is(err, ErrInvalidPolicy)
}

// IsConfiguration returns true if the error belongs to the configuration
// error class: invalid capacity, invalid TTL, or unknown eviction policy.
//
// IsConfiguration 如果错误属于配置错误类别（容量无效、TTL无效或淘汰策略
// 未知），则返回true。
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: True if the error is or wraps any configuration sentinel
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrInvalidCapacity) ||
		errors.Is(err, ErrInvalidTTL) ||
		errors.Is(err, ErrInvalidPolicy)
}

// IsClosed returns true if the error indicates that the cache is closed.
//
// IsClosed 如果错误表示缓存已关闭，则返回true。
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: True if the error is or wraps ErrClosed
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}

// IsNoLoader returns true if the error indicates a load-through lookup
// without a loader function.
//
// IsNoLoader 如果错误表示穿透加载查找缺少加载函数，则返回true。
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: True if the error is or wraps ErrNoLoader
func IsNoLoader(err error) bool {
	return errors.Is(err, ErrNoLoader)
}

// IsInvariantViolation returns true if the error reports internal
// corruption of the index/list structures.
//
// IsInvariantViolation 如果错误报告索引/链表结构的内部损坏，则返回true。
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: True if the error is or wraps ErrInvariantViolation
func IsInvariantViolation(err error) bool {
	return errors.Is(err, ErrInvariantViolation)
}
