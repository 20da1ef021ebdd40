package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/itg-platform/docverse/internal/domain"
)

// Store holds the in-memory collections backing the data gateway.
//
// Collections keep insertion order (posts newest first) next to an
// ID index for lookups. A single RWMutex serializes all writes, which
// preserves per-record atomicity for the toggle operations even when
// requests run on separate goroutines. Read accessors return clones
// taken under the lock; live records never leave the store, so a
// handler can encode a feed while another request toggles a reaction.
type Store struct {
	mu sync.RWMutex

	posts    []*domain.Post
	postByID map[string]*domain.Post

	tags     []*domain.Tag
	tagByID  map[string]*domain.Tag

	challenges    []*domain.Challenge
	challengeByID map[string]*domain.Challenge

	users    []*domain.User
	userByID map[string]*domain.User

	lastSeed time.Time // Timestamp of last fixtures seed
}

// NewStore creates an empty record store.
func NewStore() *Store {
	return &Store{
		postByID:      make(map[string]*domain.Post),
		tagByID:       make(map[string]*domain.Tag),
		challengeByID: make(map[string]*domain.Challenge),
		userByID:      make(map[string]*domain.User),
	}
}

// ─────────────────────────────────────────────────────────────────
// Posts
// ─────────────────────────────────────────────────────────────────

// ReplaceFixturePosts swaps out fixture-sourced posts for the given set
// while keeping posts created through the API. Seeded posts land after
// the API-created ones, in seed order.
func (s *Store) ReplaceFixturePosts(posts []*domain.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]*domain.Post, 0, len(s.posts))
	for _, p := range s.posts {
		if !p.HasSource(domain.SourceFixtures) {
			kept = append(kept, p)
		}
	}

	s.posts = append(kept, posts...)
	s.postByID = make(map[string]*domain.Post, len(s.posts))
	for _, p := range s.posts {
		s.postByID[p.ID] = p
	}
	s.lastSeed = time.Now()
}

// Posts returns snapshots of non-deleted posts in feed order (newest
// first). Snapshots are detached from the live records, so callers can
// serialize them while toggles and view bumps keep running.
func (s *Store) Posts() []*domain.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Post, 0, len(s.posts))
	for _, p := range s.posts {
		if !p.Deleted {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Post retrieves a snapshot of a post by ID. Soft-deleted posts are
// not visible.
func (s *Store) Post(id string) (*domain.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.postByID[id]
	if !ok || p.Deleted {
		return nil, false
	}
	return p.Clone(), true
}

// PrependPost inserts a new post at the head of the feed. The store
// keeps its own copy; the caller's record stays detached.
func (s *Store) PrependPost(p *domain.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p = p.Clone()
	s.posts = append([]*domain.Post{p}, s.posts...)
	s.postByID[p.ID] = p
}

// MarkPostDeleted soft-deletes a post.
func (s *Store) MarkPostDeleted(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.postByID[id]
	if !ok || p.Deleted {
		return fmt.Errorf("post not found: %s", id)
	}
	p.Deleted = true
	p.DeletedAt = time.Now()
	p.UpdatedAt = p.DeletedAt
	return nil
}

// PruneDeletedPosts removes soft-deleted posts older than the cutoff
// and returns the IDs it removed.
func (s *Store) PruneDeletedPosts(cutoff time.Time) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed []string
	kept := s.posts[:0]
	for _, p := range s.posts {
		if p.Deleted && !p.DeletedAt.IsZero() && p.DeletedAt.Before(cutoff) {
			delete(s.postByID, p.ID)
			removed = append(removed, p.ID)
			continue
		}
		kept = append(kept, p)
	}
	s.posts = kept
	return removed
}

// IncrementViews bumps the view counter for a post.
func (s *Store) IncrementViews(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.postByID[id]; ok && !p.Deleted {
		p.Views++
	}
}

// ToggleFavorite flips the favorite sub-record for user on post id and
// adjusts the denormalized counter. It returns the resulting state.
func (s *Store) ToggleFavorite(id, userID string) (favorited bool, count int64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.postByID[id]
	if !ok || p.Deleted {
		return false, 0, fmt.Errorf("post not found: %s", id)
	}

	for i, u := range p.FavoritedBy {
		if u == userID {
			p.FavoritedBy = append(p.FavoritedBy[:i], p.FavoritedBy[i+1:]...)
			p.FavoriteCount--
			p.UpdatedAt = time.Now()
			return false, p.FavoriteCount, nil
		}
	}

	p.FavoritedBy = append(p.FavoritedBy, userID)
	p.FavoriteCount++
	p.UpdatedAt = time.Now()
	return true, p.FavoriteCount, nil
}

// ToggleReaction flips a (user, kind) reaction sub-record on post id
// and adjusts the denormalized counter. It returns the resulting state.
func (s *Store) ToggleReaction(id, userID, kind string) (reacted bool, count int64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.postByID[id]
	if !ok || p.Deleted {
		return false, 0, fmt.Errorf("post not found: %s", id)
	}

	for i, r := range p.Reactions {
		if r.UserID == userID && r.Kind == kind {
			p.Reactions = append(p.Reactions[:i], p.Reactions[i+1:]...)
			p.ReactionCount--
			p.UpdatedAt = time.Now()
			return false, p.ReactionCount, nil
		}
	}

	p.Reactions = append(p.Reactions, domain.Reaction{
		UserID:    userID,
		Kind:      kind,
		CreatedAt: time.Now(),
	})
	p.ReactionCount++
	p.UpdatedAt = time.Now()
	return true, p.ReactionCount, nil
}

// PostCount returns the number of visible posts.
func (s *Store) PostCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, p := range s.posts {
		if !p.Deleted {
			n++
		}
	}
	return n
}

// ─────────────────────────────────────────────────────────────────
// Tags, challenges, users (fixture-owned, replaced wholesale)
// ─────────────────────────────────────────────────────────────────

// ReplaceTags replaces the tag collection.
func (s *Store) ReplaceTags(tags []*domain.Tag) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tags = tags
	s.tagByID = make(map[string]*domain.Tag, len(tags))
	for _, t := range tags {
		s.tagByID[t.ID] = t
	}
}

// Tags returns snapshots of all tags in seed order.
func (s *Store) Tags() []*domain.Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Tag, 0, len(s.tags))
	for _, t := range s.tags {
		c := *t
		out = append(out, &c)
	}
	return out
}

// Tag retrieves a snapshot of a tag by ID.
func (s *Store) Tag(id string) (*domain.Tag, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tagByID[id]
	if !ok {
		return nil, false
	}
	c := *t
	return &c, true
}

// ReplaceChallenges replaces the challenge collection.
func (s *Store) ReplaceChallenges(challenges []*domain.Challenge) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.challenges = challenges
	s.challengeByID = make(map[string]*domain.Challenge, len(challenges))
	for _, c := range challenges {
		s.challengeByID[c.ID] = c
	}
}

// Challenges returns snapshots of all challenges in seed order.
func (s *Store) Challenges() []*domain.Challenge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Challenge, 0, len(s.challenges))
	for _, c := range s.challenges {
		out = append(out, c.Clone())
	}
	return out
}

// ReplaceUsers replaces the user collection.
func (s *Store) ReplaceUsers(users []*domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = users
	s.userByID = make(map[string]*domain.User, len(users))
	for _, u := range users {
		s.userByID[u.ID] = u
	}
}

// Users returns snapshots of all users in seed order.
func (s *Store) Users() []*domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		c := *u
		out = append(out, &c)
	}
	return out
}

// User retrieves a snapshot of a user by ID.
func (s *Store) User(id string) (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.userByID[id]
	if !ok {
		return nil, false
	}
	c := *u
	return &c, true
}

// LastSeed returns the timestamp of the last fixtures seed.
func (s *Store) LastSeed() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastSeed
}
