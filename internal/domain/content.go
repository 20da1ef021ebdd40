package domain

import "time"

// SourceFixtures marks records seeded from the fixtures file; SourceAPI
// marks records created at runtime through the gateway. Reloads replace
// fixture records and leave API records alone.
const (
	SourceFixtures = "fixtures"
	SourceAPI      = "api"
)

// Tag labels posts and challenges.
type Tag struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// Reaction is a per-user sub-record on a post.
type Reaction struct {
	UserID    string    `json:"user_id"`
	Kind      string    `json:"kind"` // ex: "like", "fire", "insightful"
	CreatedAt time.Time `json:"created_at"`
}

// Post is a feed entry.
//
// A Post is uniquely identified by ID. ReactionCount and FavoriteCount
// are denormalized from the Reactions/FavoritedBy sub-records and must
// stay consistent with them; all mutation goes through the record store
// so the pair is updated atomically.
type Post struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID string `json:"author_id"`
	Tags     []Tag  `json:"tags"`

	Reactions     []Reaction `json:"reactions"`
	ReactionCount int64      `json:"reaction_count"`
	FavoritedBy   []string   `json:"favorited_by"`
	FavoriteCount int64      `json:"favorite_count"`
	Views         int64      `json:"views"`

	// Sources indicates where this post came from (fixtures, api).
	Sources []string `json:"sources,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Deleted marks a post as soft-deleted. It is hidden from reads and
	// garbage-collected after a retention window.
	Deleted   bool      `json:"deleted,omitempty"`
	DeletedAt time.Time `json:"deleted_at,omitzero"`
}

// HasSource reports whether source appears in p.Sources.
func (p *Post) HasSource(source string) bool {
	for _, s := range p.Sources {
		if s == source {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the post. The record store hands out
// clones so readers never observe a record mid-mutation.
func (p *Post) Clone() *Post {
	c := *p
	c.Tags = append([]Tag(nil), p.Tags...)
	c.Reactions = append([]Reaction(nil), p.Reactions...)
	c.FavoritedBy = append([]string(nil), p.FavoritedBy...)
	c.Sources = append([]string(nil), p.Sources...)
	return &c
}

// Challenge is a community coding challenge.
type Challenge struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Difficulty  string    `json:"difficulty"` // ex: "easy", "medium", "hard"
	IsActive    bool      `json:"is_active"`
	Tags        []Tag     `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

// Clone returns a deep copy of the challenge.
func (c *Challenge) Clone() *Challenge {
	cp := *c
	cp.Tags = append([]Tag(nil), c.Tags...)
	return &cp
}

// User is a community member profile.
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio,omitempty"`
	JoinedAt    time.Time `json:"joined_at"`
}

// PostAnalytics is the denormalized engagement view served for a post.
type PostAnalytics struct {
	PostID         string  `json:"post_id"`
	Views          int64   `json:"views"`
	Reactions      int64   `json:"reactions"`
	Favorites      int64   `json:"favorites"`
	EngagementRate float64 `json:"engagement_rate"` // (reactions+favorites)/views, 0 when unviewed
}

// AnalyticsFor computes the analytics view from a post snapshot.
func AnalyticsFor(p *Post) PostAnalytics {
	a := PostAnalytics{
		PostID:    p.ID,
		Views:     p.Views,
		Reactions: p.ReactionCount,
		Favorites: p.FavoriteCount,
	}
	if p.Views > 0 {
		a.EngagementRate = float64(p.ReactionCount+p.FavoriteCount) / float64(p.Views)
	}
	return a
}
