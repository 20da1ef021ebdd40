package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/itg-platform/docverse/internal/domain"
)

const (
	// DefaultPostTTL is the default TTL for mirrored posts (7 days).
	// The memory store is the source of truth; the mirror only needs to
	// survive restarts, not live forever.
	DefaultPostTTL = 7 * 24 * time.Hour
	// DefaultSearchTTL is the default TTL for cached search results
	DefaultSearchTTL = 1 * time.Hour
)

// Store mirrors posts and search resolutions to Redis.
//
// Every operation is best effort from the caller's point of view: the
// memory store stays authoritative and callers log-and-continue on
// failure.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// SavePost mirrors a post to Redis
func (s *Store) SavePost(ctx context.Context, post *domain.Post) error {
	data, err := json.Marshal(post)
	if err != nil {
		return fmt.Errorf("failed to marshal post: %w", err)
	}

	key := PostKey(post.ID)

	if err := s.client.Set(ctx, key, data, DefaultPostTTL).Err(); err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}

	if err := s.client.SAdd(ctx, AllPostsKey(), post.ID).Err(); err != nil {
		return fmt.Errorf("failed to add post to set: %w", err)
	}

	return nil
}

// GetPost retrieves a mirrored post by ID
func (s *Store) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	key := PostKey(id)
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("post not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	var post domain.Post
	if err := json.Unmarshal(data, &post); err != nil {
		return nil, fmt.Errorf("failed to unmarshal post: %w", err)
	}

	return &post, nil
}

// GetAllPosts retrieves all mirrored posts
func (s *Store) GetAllPosts(ctx context.Context) ([]*domain.Post, error) {
	ids, err := s.client.SMembers(ctx, AllPostsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get post IDs: %w", err)
	}

	if len(ids) == 0 {
		return []*domain.Post{}, nil
	}

	posts := make([]*domain.Post, 0, len(ids))
	for _, id := range ids {
		post, err := s.GetPost(ctx, id)
		if err != nil {
			// Skip posts that couldn't be retrieved (expired TTL, partial write)
			continue
		}
		posts = append(posts, post)
	}

	return posts, nil
}

// DeletePost removes a post from the mirror
func (s *Store) DeletePost(ctx context.Context, id string) error {
	key := PostKey(id)

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if err := s.client.SRem(ctx, AllPostsKey(), id).Err(); err != nil {
		return fmt.Errorf("failed to remove post from set: %w", err)
	}

	return nil
}

// SavePostsMany mirrors multiple posts in one pipeline
func (s *Store) SavePostsMany(ctx context.Context, posts []*domain.Post) error {
	pipe := s.client.Pipeline()

	for _, post := range posts {
		data, err := json.Marshal(post)
		if err != nil {
			return fmt.Errorf("failed to marshal post %s: %w", post.ID, err)
		}

		key := PostKey(post.ID)
		pipe.Set(ctx, key, data, DefaultPostTTL)
		pipe.SAdd(ctx, AllPostsKey(), post.ID)
	}

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save posts: %w", err)
	}

	return nil
}
