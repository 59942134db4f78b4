package services

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"storefront-backend/application/ports"
)

// readCached loads and deserializes a cached payload into out. It returns
// false on a miss or an undecodable entry; either way the caller recomputes.
func readCached(ctx context.Context, cache ports.Cache, key string, out interface{}) bool {
	data, err := cache.Get(ctx, key)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

// writeCached serializes v and stores it under key. Failures are logged and
// swallowed: a payload that cannot be cached is still a valid response, the
// next read just recomputes.
func writeCached(ctx context.Context, cache ports.Cache, logger *zap.Logger, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Error("Failed to serialize cache payload",
			zap.String("key", key),
			zap.Error(err),
		)
		return
	}

	if err := cache.Set(ctx, key, data); err != nil {
		logger.Error("Failed to store cache payload",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}
