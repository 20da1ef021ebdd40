package scheduler

import (
	"context"
	"time"

	"github.com/itg-platform/docverse/internal/logger"
	"github.com/itg-platform/docverse/internal/store/memory"
	redisstore "github.com/itg-platform/docverse/internal/store/redis"
)

const (
	// DefaultGCThreshold is the retention window for soft-deleted posts
	DefaultGCThreshold = 30 * 24 * time.Hour // 30 days
)

// GarbageCollector prunes soft-deleted posts past the retention window.
type GarbageCollector struct {
	store     *memory.Store
	mirror    *redisstore.Store // nil when Redis is disabled
	logger    logger.Logger
	interval  time.Duration
	threshold time.Duration
	stopCh    chan struct{}
}

// NewGarbageCollector creates a garbage collector.
func NewGarbageCollector(
	store *memory.Store,
	mirror *redisstore.Store,
	log logger.Logger,
	interval time.Duration,
	threshold time.Duration,
) *GarbageCollector {
	if threshold == 0 {
		threshold = DefaultGCThreshold
	}

	return &GarbageCollector{
		store:     store,
		mirror:    mirror,
		logger:    log,
		interval:  interval,
		threshold: threshold,
		stopCh:    make(chan struct{}),
	}
}

// Start runs a collection immediately, then periodically.
func (gc *GarbageCollector) Start(ctx context.Context) error {
	if err := gc.Collect(ctx); err != nil {
		gc.logger.Warn("initial garbage collection failed",
			logger.Error(err))
	}

	ticker := time.NewTicker(gc.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := gc.Collect(ctx); err != nil {
					gc.logger.Error("garbage collection failed",
						logger.Error(err))
				}
			case <-gc.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the garbage collector.
func (gc *GarbageCollector) Stop() {
	close(gc.stopCh)
}

// Collect removes posts that have been soft-deleted for longer than the
// threshold, from both the memory store and the Redis mirror.
func (gc *GarbageCollector) Collect(ctx context.Context) error {
	cutoff := time.Now().Add(-gc.threshold)
	removed := gc.store.PruneDeletedPosts(cutoff)
	if len(removed) == 0 {
		gc.logger.Debug("garbage collection found nothing to prune")
		return nil
	}

	gc.logger.Info("pruned soft-deleted posts",
		logger.Int("count", len(removed)))

	if gc.mirror == nil {
		return nil
	}
	for _, id := range removed {
		if err := gc.mirror.DeletePost(ctx, id); err != nil {
			gc.logger.Warn("failed to delete post from redis mirror",
				logger.String("post_id", id),
				logger.Error(err))
		}
	}
	return nil
}
