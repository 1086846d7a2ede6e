package repository

// DefaultMaxEntries is the capacity used when no option overrides it.
const DefaultMaxEntries = 64

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithMaxEntries bounds the cache. Zero or negative means unbounded.
func WithMaxEntries(n int) Option {
	return func(s *MemoryStore) {
		s.maxEntries = n
	}
}
