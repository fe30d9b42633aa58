package service

import (
	"context"
	"encoding/json"
	"fmt"

	"fin-calc/metrics"
	"fin-calc/repository"
	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"
)

// resultMemo caches results of one pure calculator, keyed by a hash of the
// canonical JSON of its input.
type resultMemo struct {
	name  string
	cache repository.CacheRepository
	log   *logrus.Logger
}

func newResultMemo(name string, cache repository.CacheRepository, log *logrus.Logger) resultMemo {
	if cache == nil {
		cache = repository.NewNoopCache()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return resultMemo{name: name, cache: cache, log: log}
}

func (m resultMemo) key(input any) (string, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s input: %w", m.name, err)
	}
	return fmt.Sprintf("%s:%s:%016x", cacheKeyPrefix, m.name, xxhash.Sum64(raw)), nil
}

// memoize runs compute unless the cache already holds a result for input.
// Cache problems are logged and never change the outcome. Errors are not
// cached.
func memoize[I, R any](ctx context.Context, m resultMemo, input I, compute func(I) (R, error)) (R, error) {
	key, err := m.key(input)
	if err != nil {
		m.log.WithError(err).Debug("Skipping result cache")
	}

	if key != "" {
		if raw, ok := m.cache.Get(ctx, key); ok {
			var cached R
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				metrics.RecordCalculation(m.name, metrics.OutcomeCached)
				return cached, nil
			}
			m.log.WithField("key", key).Warn("Discarding unreadable cached result")
		}
	}

	result, err := compute(input)
	if err != nil {
		metrics.RecordCalculation(m.name, metrics.OutcomeInvalid)
		return result, err
	}
	metrics.RecordCalculation(m.name, metrics.OutcomeOK)

	if key != "" {
		raw, err := json.Marshal(result)
		if err == nil {
			err = m.cache.Set(ctx, key, string(raw))
		}
		if err != nil {
			m.log.WithError(err).WithField("calculator", m.name).Warn("Failed to cache result")
		}
	}
	return result, nil
}
