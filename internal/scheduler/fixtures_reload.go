package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/itg-platform/docverse/internal/logger"
	"github.com/itg-platform/docverse/internal/sources/fixtures"
	"github.com/itg-platform/docverse/internal/store/memory"
	redisstore "github.com/itg-platform/docverse/internal/store/redis"
)

// FixturesReloader handles periodic reseeding from the fixtures file.
type FixturesReloader struct {
	loader        *fixtures.Loader
	mapper        *fixtures.Mapper
	store         *memory.Store
	mirror        *redisstore.Store // nil when Redis is disabled
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewFixturesReloader creates a fixtures reloader.
func NewFixturesReloader(
	seedFile string,
	store *memory.Store,
	mirror *redisstore.Store,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *FixturesReloader {
	return &FixturesReloader{
		loader:        fixtures.NewLoader(seedFile),
		mapper:        fixtures.NewMapper(),
		store:         store,
		mirror:        mirror,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start seeds immediately, then reseeds periodically and on manual
// trigger until the context is done or Stop is called.
func (fr *FixturesReloader) Start(ctx context.Context) error {
	if err := fr.Reload(ctx); err != nil {
		return fmt.Errorf("initial seed failed: %w", err)
	}

	ticker := time.NewTicker(fr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := fr.Reload(ctx); err != nil {
					fr.logger.Error("failed to reload fixtures",
						logger.Error(err))
				}
			case <-fr.manualTrigger:
				fr.logger.Info("manual fixtures reload triggered")
				if err := fr.Reload(ctx); err != nil {
					fr.logger.Error("failed to reload fixtures",
						logger.Error(err))
				}
			case <-fr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader.
func (fr *FixturesReloader) Stop() {
	close(fr.stopCh)
}

// Reload loads the seed file and replaces the fixture-owned collections.
// Posts created through the API survive the reseed.
func (fr *FixturesReloader) Reload(ctx context.Context) error {
	fr.logger.Info("reloading content fixtures")

	seed, err := fr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load fixtures: %w", err)
	}

	mapped, err := fr.mapper.Map(seed)
	if err != nil {
		return fmt.Errorf("failed to map fixtures: %w", err)
	}

	fr.logger.Info("loaded fixtures",
		logger.Int("tags", len(mapped.Tags)),
		logger.Int("users", len(mapped.Users)),
		logger.Int("posts", len(mapped.Posts)),
		logger.Int("challenges", len(mapped.Challenges)))

	fr.store.ReplaceTags(mapped.Tags)
	fr.store.ReplaceUsers(mapped.Users)
	fr.store.ReplaceChallenges(mapped.Challenges)
	fr.store.ReplaceFixturePosts(mapped.Posts)

	// Mirror posts to Redis (best effort; memory store stays authoritative)
	if fr.mirror != nil {
		if err := fr.mirror.SavePostsMany(ctx, mapped.Posts); err != nil {
			fr.logger.Warn("failed to mirror fixture posts to redis",
				logger.Error(err))
		} else if err := fr.mirror.FlushSearchCache(ctx); err != nil {
			fr.logger.Warn("failed to flush search cache after reseed",
				logger.Error(err))
		}
	}

	return nil
}
