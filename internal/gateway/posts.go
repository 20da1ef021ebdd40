package gateway

import (
	"context"
	"strings"

	"github.com/itg-platform/docverse/internal/domain"
	"github.com/itg-platform/docverse/internal/logger"
)

// PostQuery narrows a feed listing.
type PostQuery struct {
	Tag    string // filter by tag ID, empty = all
	Limit  int    // 0 = no limit
	Offset int
}

// CreatePostInput is the payload for creating a post.
type CreatePostInput struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	AuthorID string   `json:"author_id"`
	TagIDs   []string `json:"tag_ids"`
}

// ReactionInput is the payload for toggling a reaction.
type ReactionInput struct {
	PostID string `json:"post_id"`
	UserID string `json:"user_id"`
	Kind   string `json:"kind"`
}

// FavoriteInput is the payload for toggling a favorite.
type FavoriteInput struct {
	PostID string `json:"post_id"`
	UserID string `json:"user_id"`
}

// ToggleResult reports the state after a toggle operation.
type ToggleResult struct {
	PostID string `json:"post_id"`
	Active bool   `json:"active"`
	Count  int64  `json:"count"`
}

// GetPosts returns the feed, newest first, optionally narrowed by tag
// and paged.
func (g *Gateway) GetPosts(ctx context.Context, q PostQuery) Envelope {
	if env, ok := g.simulate(ctx); !ok {
		return env
	}

	posts := g.store.Posts()

	if q.Tag != "" {
		filtered := make([]*domain.Post, 0, len(posts))
		for _, p := range posts {
			for _, t := range p.Tags {
				if t.ID == q.Tag {
					filtered = append(filtered, p)
					break
				}
			}
		}
		posts = filtered
	}

	if q.Offset > 0 {
		if q.Offset >= len(posts) {
			posts = nil
		} else {
			posts = posts[q.Offset:]
		}
	}
	if q.Limit > 0 && len(posts) > q.Limit {
		posts = posts[:q.Limit]
	}

	return OK(posts)
}

// GetPost returns a single post by ID and counts the view.
func (g *Gateway) GetPost(ctx context.Context, id string) Envelope {
	if env, ok := g.simulate(ctx); !ok {
		return env
	}

	// Count first so the returned snapshot includes this view.
	g.store.IncrementViews(id)

	post, ok := g.store.Post(id)
	if !ok {
		return Fail("post not found: " + id)
	}
	return OK(post)
}

// CreatePost validates the input, synthesizes a new post and prepends
// it to the feed. Validation failures reject before any mutation.
func (g *Gateway) CreatePost(ctx context.Context, in CreatePostInput) Envelope {
	if env, ok := g.simulate(ctx); !ok {
		return env
	}

	if strings.TrimSpace(in.Title) == "" {
		return Fail("post title must not be empty")
	}
	if strings.TrimSpace(in.Content) == "" {
		return Fail("post content must not be empty")
	}

	now := g.now()
	post := &domain.Post{
		ID:        g.newID(),
		Title:     strings.TrimSpace(in.Title),
		Content:   in.Content,
		AuthorID:  in.AuthorID,
		Tags:      g.resolveTags(in.TagIDs),
		Sources:   []string{domain.SourceAPI},
		CreatedAt: now,
		UpdatedAt: now,
	}

	g.store.PrependPost(post)
	g.mirrorPost(ctx, post)

	g.log.Info("post created",
		logger.String("post_id", post.ID),
		logger.String("author_id", post.AuthorID))

	return OKMessage(post, "post created")
}

// ToggleReaction flips a (user, kind) reaction on a post.
func (g *Gateway) ToggleReaction(ctx context.Context, in ReactionInput) Envelope {
	if env, ok := g.simulate(ctx); !ok {
		return env
	}

	if in.Kind == "" || in.UserID == "" {
		return Fail("reaction requires a user id and a kind")
	}

	reacted, count, err := g.store.ToggleReaction(in.PostID, in.UserID, in.Kind)
	if err != nil {
		return Fail(err.Error())
	}

	if post, ok := g.store.Post(in.PostID); ok {
		g.mirrorPost(ctx, post)
	}

	return OK(ToggleResult{PostID: in.PostID, Active: reacted, Count: count})
}

// ToggleFavorite flips a user's favorite on a post.
func (g *Gateway) ToggleFavorite(ctx context.Context, in FavoriteInput) Envelope {
	if env, ok := g.simulate(ctx); !ok {
		return env
	}

	if in.UserID == "" {
		return Fail("favorite requires a user id")
	}

	favorited, count, err := g.store.ToggleFavorite(in.PostID, in.UserID)
	if err != nil {
		return Fail(err.Error())
	}

	if post, ok := g.store.Post(in.PostID); ok {
		g.mirrorPost(ctx, post)
	}

	return OK(ToggleResult{PostID: in.PostID, Active: favorited, Count: count})
}

// DeletePost soft-deletes a post. The record is hidden immediately and
// garbage-collected after the retention window.
func (g *Gateway) DeletePost(ctx context.Context, id string) Envelope {
	if env, ok := g.simulate(ctx); !ok {
		return env
	}

	if err := g.store.MarkPostDeleted(id); err != nil {
		return Fail(err.Error())
	}

	if g.mirror != nil {
		if err := g.mirror.DeletePost(ctx, id); err != nil {
			g.log.Warn("failed to delete post from redis mirror",
				logger.String("post_id", id),
				logger.Error(err))
		}
	}

	g.log.Info("post soft-deleted", logger.String("post_id", id))
	return OKMessage(nil, "post deleted")
}

// GetPostAnalytics returns the engagement view for a post.
func (g *Gateway) GetPostAnalytics(ctx context.Context, id string) Envelope {
	if env, ok := g.simulate(ctx); !ok {
		return env
	}

	post, ok := g.store.Post(id)
	if !ok {
		return Fail("post not found: " + id)
	}
	return OK(domain.AnalyticsFor(post))
}

// resolveTags maps tag IDs to known tags, silently dropping unknown IDs.
func (g *Gateway) resolveTags(ids []string) []domain.Tag {
	tags := make([]domain.Tag, 0, len(ids))
	for _, id := range ids {
		if t, ok := g.store.Tag(id); ok {
			tags = append(tags, *t)
		}
	}
	return tags
}

// mirrorPost writes a post to Redis, best effort.
func (g *Gateway) mirrorPost(ctx context.Context, post *domain.Post) {
	if g.mirror == nil {
		return
	}
	if err := g.mirror.SavePost(ctx, post); err != nil {
		g.log.Warn("failed to mirror post to redis",
			logger.String("post_id", post.ID),
			logger.Error(err))
	}
}
