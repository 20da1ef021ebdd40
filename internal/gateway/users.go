package gateway

import (
	"context"
	"strings"

	"github.com/itg-platform/docverse/internal/domain"
	"github.com/itg-platform/docverse/internal/logger"
	redisstore "github.com/itg-platform/docverse/internal/store/redis"
)

// SearchUsers ranks users against the search term. Resolutions are
// cached in Redis (best effort) keyed by the normalized term so hot
// searches skip the ranking pass.
func (g *Gateway) SearchUsers(ctx context.Context, term string) Envelope {
	if env, ok := g.simulate(ctx); !ok {
		return env
	}

	terms := domain.ParseSearchTerms(term)
	if len(terms) == 0 {
		return OK([]*domain.User{})
	}
	cacheKey := strings.Join(terms, " ")

	if g.mirror != nil {
		if ids, err := g.mirror.GetCachedSearch(ctx, cacheKey); err == nil && ids != nil {
			users := make([]*domain.User, 0, len(ids))
			for _, id := range ids {
				if u, ok := g.store.User(id); ok {
					users = append(users, u)
				}
			}
			g.log.Debug("user search cache hit",
				logger.String("term", cacheKey),
				logger.Int("results", len(users)))
			return OK(users)
		}
	}

	candidates := domain.RankUsers(terms, g.store.Users())
	users := make([]*domain.User, 0, len(candidates))
	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		users = append(users, c.User)
		ids = append(ids, c.User.ID)
	}

	if g.mirror != nil {
		if err := g.mirror.CacheSearch(ctx, cacheKey, ids, redisstore.DefaultSearchTTL); err != nil {
			g.log.Debug("failed to cache user search",
				logger.String("term", cacheKey),
				logger.Error(err))
		}
	}

	return OK(users)
}
