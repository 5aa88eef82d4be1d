package utils

import (
	"context"
	"encoding/json"
	"time"
)

// defaultCacheTTL bounds how stale a cached list may get even without
// explicit invalidation.
const defaultCacheTTL = time.Hour

// CacheGetBytes returns cached bytes for a key from Redis. A missing key,
// absent Redis, or any transport error all report a miss.
func CacheGetBytes(key string) ([]byte, bool) {
	rc := GetRedis()
	if rc == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	b, err := rc.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

// CacheSetJSON stores a JSON-encoded value under key with the given TTL.
// Failures are silent: caching is best-effort.
func CacheSetJSON(key string, value interface{}, ttl time.Duration) {
	rc := GetRedis()
	if rc == nil {
		return
	}
	b, err := json.Marshal(value)
	if err != nil {
		return
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = rc.Set(ctx, key, b, ttl).Err()
}

// InvalidateByPrefix removes all cached keys sharing a prefix. Used after
// writes that change a cached listing.
func InvalidateByPrefix(prefix string) {
	rc := GetRedis()
	if rc == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	iter := rc.Scan(ctx, 0, prefix+"*", 100).Iterator()
	keys := make([]string, 0, 16)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if len(keys) > 0 {
		_ = rc.Del(ctx, keys...).Err()
	}
}
