package domain

// NavigationNode is one entry of the site navigation tree.
//
// The tree is two levels deep: top-level entries may carry children in
// Items. It is declared once at process start and never mutated, so it
// is safe to share between goroutines without locking.
type NavigationNode struct {
	// Title is the human-readable page label shown in the breadcrumb.
	Title string `yaml:"title"`

	// URL is the normalized route the node answers for.
	// Example: /challenges
	URL string `yaml:"url"`

	// Section is the breadcrumb section label. Children inherit the
	// parent section when theirs is empty.
	Section string `yaml:"section,omitempty"`

	// Items holds the optional second level of the tree.
	Items []NavigationNode `yaml:"items,omitempty"`
}

// Breadcrumb is the section/page label pair rendered in the page header.
type Breadcrumb struct {
	Section string `json:"section"`
	Page    string `json:"page"`
}

// DefaultNavigation returns the built-in navigation tree.
// Route URLs must be unique; the resolver returns the first match and
// does not detect duplicates.
func DefaultNavigation() []NavigationNode {
	return []NavigationNode{
		{
			Title:   "Feed",
			URL:     "/",
			Section: "Community",
		},
		{
			Title:   "Challenges",
			URL:     "/challenges",
			Section: "Community",
			Items: []NavigationNode{
				{Title: "Active Challenges", URL: "/challenges/active"},
				{Title: "Archive", URL: "/challenges/archive"},
			},
		},
		{
			Title:   "Tags",
			URL:     "/tags",
			Section: "Content",
		},
		{
			Title:   "Search",
			URL:     "/search",
			Section: "Content",
		},
		{
			Title:   "Editor",
			URL:     "/editor",
			Section: "Content",
			Items: []NavigationNode{
				{Title: "New Post", URL: "/editor/new"},
				{Title: "Drafts", URL: "/editor/drafts"},
			},
		},
		{
			Title:   "Profile",
			URL:     "/profile",
			Section: "Account",
			Items: []NavigationNode{
				{Title: "Settings", URL: "/profile/settings"},
				{Title: "Bookmarks", URL: "/profile/bookmarks"},
			},
		},
		{
			Title:   "Analytics",
			URL:     "/analytics",
			Section: "Account",
		},
	}
}
