package domain

import "strings"

// FilterAll is the sentinel value meaning "no constraint" for the
// difficulty and status stages.
const FilterAll = "all"

// Status values understood by the status stage. Anything else matches
// nothing (fail closed).
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// FilterState is the transient filter selection owned by a caller.
type FilterState struct {
	Difficulty string `json:"difficulty"`
	Status     string `json:"status"`
	Search     string `json:"search"`
}

// DefaultFilterState returns the neutral state: every stage skipped.
func DefaultFilterState() FilterState {
	return FilterState{Difficulty: FilterAll, Status: FilterAll}
}

// Neutral reports whether every stage would be skipped.
func (s FilterState) Neutral() bool {
	return (s.Difficulty == "" || s.Difficulty == FilterAll) &&
		(s.Status == "" || s.Status == FilterAll) &&
		strings.TrimSpace(s.Search) == ""
}

// Filterable is implemented by content records the staged filter can
// inspect.
type Filterable interface {
	// FilterDifficulty returns the record's difficulty label, or "" when
	// the record has none.
	FilterDifficulty() string

	// FilterActive reports whether the record counts as active for the
	// status stage.
	FilterActive() bool

	// SearchText returns the haystack for the free-text stage: title,
	// description and tag names joined together. Case does not matter;
	// matching lowercases both sides.
	SearchText() string
}

func (c *Challenge) FilterDifficulty() string { return c.Difficulty }
func (c *Challenge) FilterActive() bool       { return c.IsActive }
func (c *Challenge) SearchText() string {
	return c.Title + " " + c.Description + " " + joinTagNames(c.Tags)
}

func (p *Post) FilterDifficulty() string { return "" }
func (p *Post) FilterActive() bool       { return !p.Deleted }
func (p *Post) SearchText() string {
	return p.Title + " " + p.Content + " " + joinTagNames(p.Tags)
}

// FilterItems applies the staged filter to items and returns a new
// slice, preserving source order. Stages run in fixed order (difficulty,
// status, free-text) and combine as a logical AND. The input is never
// mutated.
//
// A difficulty or status value absent from the data excludes everything
// rather than erroring: filtering fails closed on typos.
func FilterItems[T Filterable](items []T, state FilterState) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchDifficulty(item, state.Difficulty) &&
			matchStatus(item, state.Status) &&
			matchSearch(item, state.Search) {
			out = append(out, item)
		}
	}
	return out
}

func matchDifficulty[T Filterable](item T, want string) bool {
	if want == "" || want == FilterAll {
		return true
	}
	return item.FilterDifficulty() == want
}

func matchStatus[T Filterable](item T, want string) bool {
	switch want {
	case "", FilterAll:
		return true
	case StatusActive:
		return item.FilterActive()
	case StatusInactive:
		return !item.FilterActive()
	default:
		// Unknown status value: fail closed.
		return false
	}
}

func matchSearch[T Filterable](item T, term string) bool {
	term = strings.TrimSpace(strings.ToLower(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.SearchText()), term)
}

func joinTagNames(tags []Tag) string {
	if len(tags) == 0 {
		return ""
	}
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return strings.Join(names, " ")
}
