package gateway

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/itg-platform/docverse/internal/logger"
	"github.com/itg-platform/docverse/internal/store/memory"
	redisstore "github.com/itg-platform/docverse/internal/store/redis"
)

// Gateway serves the platform's content collections behind the envelope
// contract. The memory store is authoritative; the Redis mirror (when
// configured) is written best effort and only consulted for the
// user-search cache.
type Gateway struct {
	store  *memory.Store
	mirror *redisstore.Store // nil when Redis is disabled
	log    logger.Logger
	delay  Delayer
	now    func() time.Time
	newID  func() string
}

// Options configures a Gateway. Store and Logger are required; the
// rest default to production behavior.
type Options struct {
	Store  *memory.Store
	Mirror *redisstore.Store
	Logger logger.Logger
	Delay  Delayer
	Now    func() time.Time
	NewID  func() string
}

// New creates a gateway over the given collections.
func New(opts Options) *Gateway {
	if opts.Delay == nil {
		opts.Delay = NoDelay{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &Gateway{
		store:  opts.Store,
		mirror: opts.Mirror,
		log:    opts.Logger,
		delay:  opts.Delay,
		now:    opts.Now,
		newID:  opts.NewID,
	}
}

// Request dispatches a generic endpoint/method call to the matching
// typed operation. Unknown combinations fail in the envelope, so the
// call is total like every other gateway operation.
//
// Endpoints mirror the upstream client surface: posts, post, reactions,
// favorite, tags, challenges, users/search, analytics.
func (g *Gateway) Request(ctx context.Context, endpoint, method string, payload any) Envelope {
	method = strings.ToUpper(method)

	switch {
	case endpoint == "posts" && method == "GET":
		q, _ := payload.(PostQuery)
		return g.GetPosts(ctx, q)
	case endpoint == "posts" && method == "POST":
		in, ok := payload.(CreatePostInput)
		if !ok {
			return Fail("posts: create requires a CreatePostInput payload")
		}
		return g.CreatePost(ctx, in)
	case endpoint == "post" && method == "GET":
		id, ok := payload.(string)
		if !ok {
			return Fail("post: get requires a post id payload")
		}
		return g.GetPost(ctx, id)
	case endpoint == "post" && method == "DELETE":
		id, ok := payload.(string)
		if !ok {
			return Fail("post: delete requires a post id payload")
		}
		return g.DeletePost(ctx, id)
	case endpoint == "reactions" && method == "POST":
		in, ok := payload.(ReactionInput)
		if !ok {
			return Fail("reactions: toggle requires a ReactionInput payload")
		}
		return g.ToggleReaction(ctx, in)
	case endpoint == "favorite" && method == "POST":
		in, ok := payload.(FavoriteInput)
		if !ok {
			return Fail("favorite: toggle requires a FavoriteInput payload")
		}
		return g.ToggleFavorite(ctx, in)
	case endpoint == "tags" && method == "GET":
		return g.GetTags(ctx)
	case endpoint == "challenges" && method == "GET":
		state, ok := payload.(ChallengeQuery)
		if !ok {
			return g.GetChallenges(ctx, ChallengeQuery{})
		}
		return g.GetChallenges(ctx, state)
	case endpoint == "users/search" && method == "GET":
		term, ok := payload.(string)
		if !ok {
			return Fail("users/search: requires a query string payload")
		}
		return g.SearchUsers(ctx, term)
	case endpoint == "analytics" && method == "GET":
		id, ok := payload.(string)
		if !ok {
			return Fail("analytics: requires a post id payload")
		}
		return g.GetPostAnalytics(ctx, id)
	}

	g.log.Warn("gateway request for unknown endpoint",
		logger.String("endpoint", endpoint),
		logger.String("method", method))
	return Fail("unknown endpoint: " + method + " " + endpoint)
}

// simulate applies the latency strategy. A canceled context surfaces
// as a failure envelope, never an error.
func (g *Gateway) simulate(ctx context.Context) (Envelope, bool) {
	if err := g.delay.Wait(ctx); err != nil {
		return Fail("request canceled"), false
	}
	return Envelope{}, true
}
