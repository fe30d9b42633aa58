package repository

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// MemoryCache is a bounded in-process cache. The underlying LRU is safe
// for concurrent use.
type MemoryCache struct {
	data *lru.Cache[string, string]
}

func NewMemoryCache(size int) (*MemoryCache, error) {
	data, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create memory cache: %w", err)
	}
	return &MemoryCache{data: data}, nil
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	return m.data.Get(key)
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	m.data.Add(key, value)
	return nil
}

func (m *MemoryCache) Len() int {
	return m.data.Len()
}
