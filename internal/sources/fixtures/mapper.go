package fixtures

import (
	"fmt"
	"strings"
	"time"

	"github.com/itg-platform/docverse/internal/domain"
)

// Mapper converts seed declarations into domain records.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Mapped holds the fully resolved record collections for one seed file.
type Mapped struct {
	Tags       []*domain.Tag
	Users      []*domain.User
	Posts      []*domain.Post
	Challenges []*domain.Challenge
}

// Map resolves a seed file into domain records. Tag references are
// resolved by ID; unknown references are dropped. Records without an ID
// or title are skipped rather than failing the whole seed.
func (m *Mapper) Map(seed *SeedFile) (*Mapped, error) {
	now := time.Now()

	out := &Mapped{}
	tagIndex := make(map[string]*domain.Tag, len(seed.Tags))

	for _, ts := range seed.Tags {
		if ts.ID == "" || ts.Name == "" {
			continue
		}
		tag := &domain.Tag{ID: ts.ID, Name: ts.Name, Color: ts.Color}
		tagIndex[tag.ID] = tag
		out.Tags = append(out.Tags, tag)
	}

	for _, us := range seed.Users {
		if us.ID == "" || us.Username == "" {
			continue
		}
		display := us.DisplayName
		if display == "" {
			display = us.Username
		}
		out.Users = append(out.Users, &domain.User{
			ID:          us.ID,
			Username:    strings.ToLower(us.Username),
			DisplayName: display,
			Bio:         us.Bio,
			JoinedAt:    now,
		})
	}

	for _, ps := range seed.Posts {
		if ps.ID == "" || ps.Title == "" {
			continue
		}
		out.Posts = append(out.Posts, &domain.Post{
			ID:        ps.ID,
			Title:     ps.Title,
			Content:   ps.Content,
			AuthorID:  ps.Author,
			Tags:      resolveTags(tagIndex, ps.Tags),
			Sources:   []string{domain.SourceFixtures},
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	for _, cs := range seed.Challenges {
		if cs.ID == "" || cs.Title == "" {
			continue
		}
		out.Challenges = append(out.Challenges, &domain.Challenge{
			ID:          cs.ID,
			Title:       cs.Title,
			Description: cs.Description,
			Difficulty:  strings.ToLower(cs.Difficulty),
			IsActive:    cs.Active,
			Tags:        resolveTags(tagIndex, cs.Tags),
			CreatedAt:   now,
		})
	}

	if len(out.Tags) == 0 && len(out.Posts) == 0 && len(out.Challenges) == 0 && len(out.Users) == 0 {
		return nil, fmt.Errorf("no valid records found in fixtures file")
	}

	return out, nil
}

func resolveTags(index map[string]*domain.Tag, ids []string) []domain.Tag {
	tags := make([]domain.Tag, 0, len(ids))
	for _, id := range ids {
		if t, ok := index[id]; ok {
			tags = append(tags, *t)
		}
	}
	return tags
}
