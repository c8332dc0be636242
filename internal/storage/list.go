package storage

// List is a doubly-linked list kept in access order, bounded by sentinel
// head and tail nodes. The entry adjacent to the head sentinel is the most
// recently used; the entry adjacent to the tail sentinel is the eviction
// candidate. Sentinels keep the link and unlink paths free of nil checks.
// Not safe for concurrent use.
//
// List 是按访问顺序维护的双向链表，两端由哨兵头尾节点界定。
// 紧邻头哨兵的条目是最近使用的；紧邻尾哨兵的条目是淘汰候选。
// 哨兵节点使插入和摘除路径无需判空。非并发安全。
type List struct {
	head *Entry // 头哨兵，永不为nil
	tail *Entry // 尾哨兵，永不为nil
	size int
}

// NewList creates an empty list with its two sentinels linked together.
//
// NewList 创建一个空链表，两个哨兵节点互相连接。
func NewList() *List {
	l := &List{head: &Entry{}, tail: &Entry{}}
	l.head.next = l.tail
	l.tail.prev = l.head
	return l
}

// Len returns the number of entries between the sentinels.
// Len 返回两个哨兵之间的条目数量。
func (l *List) Len() int {
	return l.size
}

// PushFront links a detached entry directly after the head sentinel,
// making it the most recently used.
//
// PushFront 将一个游离的条目链接到头哨兵之后，使其成为最近使用的条目。
func (l *List) PushFront(e *Entry) {
	e.prev = l.head
	e.next = l.head.next
	l.head.next.prev = e
	l.head.next = e
	l.size++
}

// Remove unlinks the entry from the list and clears its links.
// The entry must currently be on this list.
//
// Remove 将条目从链表中摘除并清空其链接。条目必须当前位于本链表上。
func (l *List) Remove(e *Entry) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = nil
	e.next = nil
	l.size--
}

// MoveToFront re-links an entry directly after the head sentinel.
// The entry must currently be on this list.
//
// MoveToFront 将条目重新链接到头哨兵之后。条目必须当前位于本链表上。
func (l *List) MoveToFront(e *Entry) {
	if l.head.next == e {
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = l.head
	e.next = l.head.next
	l.head.next.prev = e
	l.head.next = e
}

// Front returns the most recently used entry, or nil when the list is empty.
//
// Front 返回最近使用的条目，链表为空时返回nil。
func (l *List) Front() *Entry {
	if l.head.next == l.tail {
		return nil
	}
	return l.head.next
}

// Back returns the entry adjacent to the tail sentinel, which is the
// eviction candidate, or nil when the list is empty.
//
// Back 返回紧邻尾哨兵的条目，即淘汰候选，链表为空时返回nil。
func (l *List) Back() *Entry {
	if l.tail.prev == l.head {
		return nil
	}
	return l.tail.prev
}

// ForEach walks entries from most to least recently used and stops early
// when fn returns false. fn must not add or remove entries.
//
// ForEach 从最近使用到最久未使用遍历条目，fn返回false时提前停止。
// fn不得增删条目。
func (l *List) ForEach(fn func(*Entry) bool) {
	for e := l.head.next; e != l.tail; e = e.next {
		if !fn(e) {
			return
		}
	}
}

// ForEachFromBack walks entries from least to most recently used and stops
// early when fn returns false. fn must not add or remove entries.
//
// ForEachFromBack 从最久未使用到最近使用遍历条目，fn返回false时提前
// 停止。fn不得增删条目。
func (l *List) ForEachFromBack(fn func(*Entry) bool) {
	for e := l.tail.prev; e != l.head; e = e.prev {
		if !fn(e) {
			return
		}
	}
}
