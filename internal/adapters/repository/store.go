// Package repository caches generated dataset tables.
package repository

import (
	"context"
	"fmt"

	"github.com/okian/pitchgen/internal/domain/table"
)

// Key identifies one generated table.
type Key struct {
	Dataset string
	Seed    int64
}

func (k Key) String() string {
	return fmt.Sprintf("%s@%d", k.Dataset, k.Seed)
}

// Store provides read/write access to cached tables.
type Store interface {
	// Get returns the table stored under key.
	// Returns ErrNotFound if nothing is cached for it.
	Get(ctx context.Context, key Key) (table.Table, error)

	// Put stores t under key, evicting the oldest entry when full.
	Put(ctx context.Context, key Key, t table.Table) error

	// Len returns the number of cached tables.
	Len(ctx context.Context) int
}
