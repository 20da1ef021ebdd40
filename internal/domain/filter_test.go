package domain

import "testing"

func testChallenges() []*Challenge {
	return []*Challenge{
		{
			ID:         "c1",
			Title:      "Build a REST API",
			Difficulty: "easy",
			IsActive:   true,
			Tags:       []Tag{{ID: "go", Name: "Go"}},
		},
		{
			ID:          "c2",
			Title:       "Concurrent crawler",
			Description: "Crawl pages with a worker pool",
			Difficulty:  "hard",
			IsActive:    true,
			Tags:        []Tag{{ID: "go", Name: "Go"}, {ID: "net", Name: "Networking"}},
		},
		{
			ID:         "c3",
			Title:      "Component state hooks",
			Difficulty: "medium",
			IsActive:   false,
			Tags:       []Tag{{ID: "react", Name: "React"}},
		},
	}
}

func TestFilterNeutralStateIsIdentity(t *testing.T) {
	items := testChallenges()

	got := FilterItems(items, DefaultFilterState())

	if len(got) != len(items) {
		t.Fatalf("FilterItems() neutral returned %d items, want %d", len(got), len(items))
	}
	for i := range items {
		if got[i].ID != items[i].ID {
			t.Errorf("FilterItems() neutral reordered: got[%d] = %s, want %s", i, got[i].ID, items[i].ID)
		}
	}
}

func TestFilterDifficulty(t *testing.T) {
	items := testChallenges()

	got := FilterItems(items, FilterState{Difficulty: "easy", Status: FilterAll})

	if len(got) != 1 || got[0].ID != "c1" {
		t.Errorf("FilterItems(difficulty=easy) = %d items, want exactly [c1]", len(got))
	}
}

func TestFilterStatus(t *testing.T) {
	tests := []struct {
		name        string
		status      string
		expectedIDs []string
	}{
		{name: "active", status: StatusActive, expectedIDs: []string{"c1", "c2"}},
		{name: "inactive", status: StatusInactive, expectedIDs: []string{"c3"}},
		{name: "sentinel skips stage", status: FilterAll, expectedIDs: []string{"c1", "c2", "c3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterItems(testChallenges(), FilterState{Difficulty: FilterAll, Status: tt.status})
			if len(got) != len(tt.expectedIDs) {
				t.Fatalf("FilterItems(status=%s) = %d items, want %d", tt.status, len(got), len(tt.expectedIDs))
			}
			for i, id := range tt.expectedIDs {
				if got[i].ID != id {
					t.Errorf("FilterItems(status=%s)[%d] = %s, want %s", tt.status, i, got[i].ID, id)
				}
			}
		})
	}
}

func TestFilterSearchCaseInsensitive(t *testing.T) {
	items := testChallenges()

	upper := FilterItems(items, FilterState{Difficulty: FilterAll, Status: FilterAll, Search: "CRAWLER"})
	lower := FilterItems(items, FilterState{Difficulty: FilterAll, Status: FilterAll, Search: "crawler"})

	if len(upper) != 1 || len(lower) != 1 || upper[0].ID != lower[0].ID {
		t.Errorf("search should be case-insensitive: upper=%d lower=%d", len(upper), len(lower))
	}
}

func TestFilterSearchMatchesTagNames(t *testing.T) {
	got := FilterItems(testChallenges(), FilterState{Difficulty: FilterAll, Status: FilterAll, Search: "networking"})

	if len(got) != 1 || got[0].ID != "c2" {
		t.Errorf("FilterItems(search=networking) = %d items, want exactly [c2]", len(got))
	}
}

func TestFilterSearchWhitespaceSkipsStage(t *testing.T) {
	got := FilterItems(testChallenges(), FilterState{Difficulty: FilterAll, Status: FilterAll, Search: "   "})

	if len(got) != 3 {
		t.Errorf("whitespace-only search should skip the stage, got %d items", len(got))
	}
}

func TestFilterStagesCombineAsAND(t *testing.T) {
	// c2 is hard+active and mentions "crawl"; difficulty=hard alone would
	// also match, but adding a non-matching search must drop it.
	got := FilterItems(testChallenges(), FilterState{Difficulty: "hard", Status: StatusActive, Search: "react"})

	if len(got) != 0 {
		t.Errorf("AND of disjoint stages should be empty, got %d items", len(got))
	}
}

func TestFilterMonotonic(t *testing.T) {
	items := testChallenges()

	base := FilterItems(items, FilterState{Difficulty: FilterAll, Status: StatusActive})
	narrowed := FilterItems(items, FilterState{Difficulty: "hard", Status: StatusActive})

	if len(narrowed) > len(base) {
		t.Errorf("adding a stage grew the result: %d > %d", len(narrowed), len(base))
	}
}

// A filter value absent from the data fails closed (empty result),
// it does not error.
func TestFilterUnknownDifficultyFailsClosed(t *testing.T) {
	got := FilterItems(testChallenges(), FilterState{Difficulty: "impossible", Status: FilterAll})
	if len(got) != 0 {
		t.Errorf("unknown difficulty should match nothing, got %d items", len(got))
	}

	got = FilterItems(testChallenges(), FilterState{Difficulty: FilterAll, Status: "archived"})
	if len(got) != 0 {
		t.Errorf("unknown status should match nothing, got %d items", len(got))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	items := testChallenges()
	ids := make([]string, len(items))
	for i, c := range items {
		ids[i] = c.ID
	}

	_ = FilterItems(items, FilterState{Difficulty: "easy", Status: StatusActive, Search: "rest"})

	if len(items) != 3 {
		t.Fatalf("input length changed to %d", len(items))
	}
	for i, c := range items {
		if c.ID != ids[i] {
			t.Errorf("input order changed at %d: %s != %s", i, c.ID, ids[i])
		}
	}
}

func TestFilterPosts(t *testing.T) {
	posts := []*Post{
		{ID: "p1", Title: "Hello Docverse", Content: "first post"},
		{ID: "p2", Title: "Go tips", Content: "goroutines", Tags: []Tag{{ID: "go", Name: "Go"}}},
	}

	got := FilterItems(posts, FilterState{Difficulty: FilterAll, Status: FilterAll, Search: "goroutines"})
	if len(got) != 1 || got[0].ID != "p2" {
		t.Errorf("FilterItems over posts = %d items, want exactly [p2]", len(got))
	}

	// Posts carry no difficulty, so any concrete difficulty excludes them.
	got = FilterItems(posts, FilterState{Difficulty: "easy", Status: FilterAll})
	if len(got) != 0 {
		t.Errorf("posts should fail closed on difficulty, got %d items", len(got))
	}
}
