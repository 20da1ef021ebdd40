package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheSearch stores a search term -> ranked user IDs resolution
func (s *Store) CacheSearch(ctx context.Context, term string, userIDs []string, ttl time.Duration) error {
	data, err := json.Marshal(userIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal search result: %w", err)
	}
	key := SearchKey(term)
	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache search: %w", err)
	}
	return nil
}

// GetCachedSearch retrieves a cached search resolution.
// A cache miss returns (nil, nil).
func (s *Store) GetCachedSearch(ctx context.Context, term string) ([]string, error) {
	key := SearchKey(term)
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("failed to get cached search: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached search: %w", err)
	}
	return ids, nil
}

// FlushSearchCache removes all cached search resolutions
func (s *Store) FlushSearchCache(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, KeyPrefixSearch+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete search cache key: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to flush search cache: %w", err)
	}
	return nil
}
