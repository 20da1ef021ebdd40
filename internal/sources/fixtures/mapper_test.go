package fixtures

import (
	"testing"

	"github.com/itg-platform/docverse/internal/domain"
)

func TestMapperResolvesTagReferences(t *testing.T) {
	seed := &SeedFile{
		Tags: []TagSeed{
			{ID: "go", Name: "Go"},
			{ID: "react", Name: "React"},
		},
		Posts: []PostSeed{
			{ID: "p1", Title: "Welcome", Content: "hello", Author: "u1", Tags: []string{"go", "missing"}},
		},
		Challenges: []ChallengeSeed{
			{ID: "c1", Title: "Build a CLI", Difficulty: "EASY", Active: true, Tags: []string{"react"}},
		},
	}

	mapped, err := NewMapper().Map(seed)
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}

	if len(mapped.Posts) != 1 {
		t.Fatalf("Posts = %d, want 1", len(mapped.Posts))
	}
	post := mapped.Posts[0]
	if len(post.Tags) != 1 || post.Tags[0].Name != "Go" {
		t.Errorf("post tags = %+v, want the resolved Go tag only", post.Tags)
	}
	if !post.HasSource(domain.SourceFixtures) {
		t.Error("seeded posts must carry the fixtures source marker")
	}

	if len(mapped.Challenges) != 1 {
		t.Fatalf("Challenges = %d, want 1", len(mapped.Challenges))
	}
	if mapped.Challenges[0].Difficulty != "easy" {
		t.Errorf("Difficulty = %q, want lowercased easy", mapped.Challenges[0].Difficulty)
	}
}

func TestMapperSkipsIncompleteRecords(t *testing.T) {
	seed := &SeedFile{
		Tags: []TagSeed{
			{ID: "go", Name: "Go"},
			{ID: "", Name: "no id"},
			{ID: "no-name"},
		},
		Users: []UserSeed{
			{ID: "u1", Username: "Jane"},
			{ID: "u2"}, // no username
		},
		Posts: []PostSeed{
			{ID: "p1", Title: "Valid", Content: "ok"},
			{ID: "p2"}, // no title
		},
	}

	mapped, err := NewMapper().Map(seed)
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}

	if len(mapped.Tags) != 1 {
		t.Errorf("Tags = %d, want only the complete record", len(mapped.Tags))
	}
	if len(mapped.Users) != 1 {
		t.Errorf("Users = %d, want only the complete record", len(mapped.Users))
	}
	if len(mapped.Posts) != 1 {
		t.Errorf("Posts = %d, want only the complete record", len(mapped.Posts))
	}
}

func TestMapperNormalizesUsers(t *testing.T) {
	seed := &SeedFile{
		Users: []UserSeed{
			{ID: "u1", Username: "JaneDoe"},
			{ID: "u2", Username: "bob", DisplayName: "Bob the Builder"},
		},
	}

	mapped, err := NewMapper().Map(seed)
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}

	if mapped.Users[0].Username != "janedoe" {
		t.Errorf("Username = %q, want lowercased", mapped.Users[0].Username)
	}
	if mapped.Users[0].DisplayName != "JaneDoe" {
		t.Errorf("DisplayName = %q, want the username when unset", mapped.Users[0].DisplayName)
	}
	if mapped.Users[1].DisplayName != "Bob the Builder" {
		t.Errorf("DisplayName = %q, want the declared value kept", mapped.Users[1].DisplayName)
	}
}

func TestMapperEmptySeedFails(t *testing.T) {
	if _, err := NewMapper().Map(&SeedFile{}); err == nil {
		t.Error("Map() on an empty seed should fail")
	}

	seed := &SeedFile{Posts: []PostSeed{{ID: "p1"}}} // all records invalid
	if _, err := NewMapper().Map(seed); err == nil {
		t.Error("Map() should fail when every record is skipped")
	}
}
