package repository

import "context"

// CacheRepository memoizes serialized calculation results.
// A miss and a backend failure look the same to Get.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}

// NoopCache never stores anything.
type NoopCache struct{}

func NewNoopCache() NoopCache {
	return NoopCache{}
}

func (NoopCache) Get(context.Context, string) (string, bool) {
	return "", false
}

func (NoopCache) Set(context.Context, string, string) error {
	return nil
}
