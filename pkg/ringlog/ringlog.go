package ringlog

import "sync"

// Log is a bounded, concurrency-safe append log. Once the capacity is
// reached, new entries overwrite the oldest. It backs per-site tick
// histories and the alarm dispatch audit trail.
type Log[T any] struct {
	mu    sync.RWMutex
	items []T
	next  int
	full  bool
}

// New creates a log holding up to capacity entries.
func New[T any](capacity int) *Log[T] {
	if capacity <= 0 {
		capacity = 256
	}
	return &Log[T]{items: make([]T, 0, capacity)}
}

// Append records one entry, evicting the oldest when full.
func (l *Log[T]) Append(item T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.items) < cap(l.items) {
		l.items = append(l.items, item)
		return
	}
	l.items[l.next] = item
	l.next = (l.next + 1) % cap(l.items)
	l.full = true
}

// Len returns the number of retained entries.
func (l *Log[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Tail returns up to n of the most recent entries in chronological order.
// n <= 0 returns everything retained.
func (l *Log[T]) Tail(n int) []T {
	l.mu.RLock()
	defer l.mu.RUnlock()

	size := len(l.items)
	if n <= 0 || n > size {
		n = size
	}
	out := make([]T, 0, n)

	// Chronological order starts at next when the ring has wrapped.
	start := 0
	if l.full {
		start = l.next
	}
	for i := size - n; i < size; i++ {
		out = append(out, l.items[(start+i)%size])
	}
	return out
}
