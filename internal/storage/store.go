package storage

import "time"

// Store couples the hash index with the access-order list and keeps both
// in step: every mutation goes through a Store method that updates the
// two structures together, so index size and list length are equal at all
// times outside a method call. The index serves point lookups only; any
// traversal is served by the list.
//
// Store 将哈希索引与访问顺序链表耦合在一起并保持同步：所有修改都经由
// Store方法同时更新两个结构，因此在方法调用之外索引大小与链表长度始终
// 相等。索引只承担点查，任何遍历需求都由链表承担。
type Store struct {
	index map[string]*Entry
	list  *List
}

// NewStore creates an empty store. The capacity hint pre-sizes the index.
//
// NewStore 创建一个空的存储。capacity参数用于预分配索引。
func NewStore(capacity int) *Store {
	if capacity < 0 {
		capacity = 0
	}
	return &Store{
		index: make(map[string]*Entry, capacity),
		list:  NewList(),
	}
}

// Lookup returns the entry for key without touching recency order.
//
// Lookup 返回key对应的条目，不改变访问顺序。
func (s *Store) Lookup(key string) (*Entry, bool) {
	e, ok := s.index[key]
	return e, ok
}

// Add inserts a new entry at the front of the access order. The caller
// must have established that key is not present.
//
// Add 在访问顺序的队首插入一个新条目。调用方必须已确认key不存在。
func (s *Store) Add(key string, value interface{}, expiresAt time.Time) *Entry {
	e := &Entry{Key: key, Value: value, ExpiresAt: expiresAt}
	s.index[key] = e
	s.list.PushFront(e)
	return e
}

// Remove deletes the entry from both index and list.
// The entry must have been obtained from this store.
//
// Remove 同时从索引和链表中删除条目。条目必须来自本存储。
func (s *Store) Remove(e *Entry) {
	delete(s.index, e.Key)
	s.list.Remove(e)
}

// MoveToFront marks the entry as most recently used.
//
// MoveToFront 将条目标记为最近使用。
func (s *Store) MoveToFront(e *Entry) {
	s.list.MoveToFront(e)
}

// Back returns the eviction candidate, or nil when empty.
//
// Back 返回淘汰候选条目，为空时返回nil。
func (s *Store) Back() *Entry {
	return s.list.Back()
}

// Front returns the most recently used entry, or nil when empty.
//
// Front 返回最近使用的条目，为空时返回nil。
func (s *Store) Front() *Entry {
	return s.list.Front()
}

// Len returns the number of stored entries.
//
// Len 返回存储的条目数量。
func (s *Store) Len() int {
	return s.list.Len()
}

// Consistent reports whether index size and list length agree. It backs
// the structural invariant checks in tests.
//
// Consistent 报告索引大小与链表长度是否一致。供测试中的结构不变量
// 检查使用。
func (s *Store) Consistent() bool {
	return len(s.index) == s.list.Len()
}

// Clear drops every entry.
//
// Clear 丢弃所有条目。
func (s *Store) Clear() {
	s.index = make(map[string]*Entry)
	s.list = NewList()
}

// ForEach walks entries from most to least recently used.
// fn must not mutate the store.
//
// ForEach 从最近使用到最久未使用遍历条目。fn不得修改存储。
func (s *Store) ForEach(fn func(*Entry) bool) {
	s.list.ForEach(fn)
}

// ForEachFromBack walks entries from least to most recently used.
// fn must not mutate the store.
//
// ForEachFromBack 从最久未使用到最近使用遍历条目。fn不得修改存储。
func (s *Store) ForEachFromBack(fn func(*Entry) bool) {
	s.list.ForEachFromBack(fn)
}
