package scheduler

import (
	"context"
	"fmt"

	"github.com/itg-platform/docverse/internal/domain"
	"github.com/itg-platform/docverse/internal/logger"
	"github.com/itg-platform/docverse/internal/store/memory"
	redisstore "github.com/itg-platform/docverse/internal/store/redis"
)

// RedisSyncer warms the memory store from the Redis mirror on startup
// so API-created posts survive a restart until the next reseed.
type RedisSyncer struct {
	mirror *redisstore.Store
	store  *memory.Store
	logger logger.Logger
}

// NewRedisSyncer creates a Redis syncer.
func NewRedisSyncer(
	mirror *redisstore.Store,
	store *memory.Store,
	log logger.Logger,
) *RedisSyncer {
	return &RedisSyncer{
		mirror: mirror,
		store:  store,
		logger: log,
	}
}

// Sync restores mirrored API-created posts into the memory store.
// Fixture-sourced posts are skipped; the fixtures reloader owns those.
func (rs *RedisSyncer) Sync(ctx context.Context) error {
	posts, err := rs.mirror.GetAllPosts(ctx)
	if err != nil {
		return fmt.Errorf("failed to read posts from redis: %w", err)
	}

	restored := 0
	for _, post := range posts {
		if post.HasSource(domain.SourceFixtures) {
			continue
		}
		if _, ok := rs.store.Post(post.ID); ok {
			continue
		}
		rs.store.PrependPost(post)
		restored++
	}

	rs.logger.Info("warmed memory store from redis",
		logger.Int("mirrored", len(posts)),
		logger.Int("restored", restored))

	return nil
}
