package repository

import (
	"container/list"
	"context"
	"fmt"
	"sync"

	"github.com/okian/pitchgen/internal/domain/table"
)

// MemoryStore is an in-memory Store with oldest-first eviction.
// For bounded mode (maxEntries > 0) insertion order is tracked in a list.
// For unbounded mode (maxEntries <= 0) entries are never evicted.
type MemoryStore struct {
	mu         sync.RWMutex
	entries    map[Key]*list.Element
	order      *list.List // front is oldest
	maxEntries int
}

type entry struct {
	key   Key
	table table.Table
}

// NewMemoryStore creates a MemoryStore with configuration options.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		entries:    make(map[Key]*list.Element),
		order:      list.New(),
		maxEntries: DefaultMaxEntries,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the table stored under key.
func (s *MemoryStore) Get(ctx context.Context, key Key) (table.Table, error) {
	if err := ctx.Err(); err != nil {
		return table.Table{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	el, ok := s.entries[key]
	if !ok {
		return table.Table{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return el.Value.(*entry).table, nil
}

// Put stores t under key. Replacing an existing key keeps its position.
func (s *MemoryStore) Put(ctx context.Context, key Key, t table.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.entries[key]; ok {
		el.Value.(*entry).table = t
		return nil
	}
	if s.maxEntries > 0 {
		for s.order.Len() >= s.maxEntries {
			s.evictOldest()
		}
	}
	s.entries[key] = s.order.PushBack(&entry{key: key, table: t})
	return nil
}

// Len returns the number of cached tables.
func (s *MemoryStore) Len(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.order.Len()
}

// evictOldest drops the front of the list. Caller holds the write lock.
func (s *MemoryStore) evictOldest() {
	front := s.order.Front()
	if front == nil {
		return
	}
	s.order.Remove(front)
	delete(s.entries, front.Value.(*entry).key)
}

var _ Store = (*MemoryStore)(nil)
