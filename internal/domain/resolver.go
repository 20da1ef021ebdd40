package domain

import "strings"

// DefaultSection and DefaultTitle make up the fallback breadcrumb when
// no navigation entry and no rule matches a path.
const (
	DefaultSection = "ITG"
	DefaultTitle   = "Docverse"
)

// Rule pairs a path predicate with the handler that produces the
// breadcrumb for paths the predicate accepts. Rules run in declaration
// order after the navigation tree has been scanned; first match wins.
type Rule struct {
	Match  func(path string) bool
	Handle func(path string) Breadcrumb
}

// Resolver maps URL paths to breadcrumbs.
//
// Resolution is total: every input, including garbage, resolves to a
// breadcrumb. There is no error path.
type Resolver struct {
	basePath string
	nav      []NavigationNode
	rules    []Rule
	fallback Breadcrumb
}

// NewResolver builds a resolver over the given navigation tree.
// basePath is an optional deployment prefix (e.g. "/app") stripped
// before matching. An empty fallback is replaced by the site default.
func NewResolver(nav []NavigationNode, basePath string, fallback Breadcrumb) *Resolver {
	if fallback.Section == "" && fallback.Page == "" {
		fallback = Breadcrumb{Section: DefaultSection, Page: DefaultTitle}
	}
	r := &Resolver{
		basePath: strings.TrimSuffix(basePath, "/"),
		nav:      nav,
		fallback: fallback,
	}
	r.rules = defaultRules()
	return r
}

// Resolve returns the breadcrumb for a raw URL path.
func (r *Resolver) Resolve(path string) Breadcrumb {
	path = r.normalize(path)

	// Top-level entries first, in declaration order.
	for _, node := range r.nav {
		if node.URL == path {
			return Breadcrumb{Section: node.Section, Page: node.Title}
		}
	}

	// Then children, still in declaration order.
	for _, node := range r.nav {
		for _, child := range node.Items {
			if child.URL != path {
				continue
			}
			section := child.Section
			if section == "" {
				section = node.Section
			}
			return Breadcrumb{Section: section, Page: child.Title}
		}
	}

	for _, rule := range r.rules {
		if rule.Match(path) {
			return rule.Handle(path)
		}
	}

	return r.fallback
}

// normalize canonicalizes a raw path: hash-router marker and configured
// base prefix stripped, trailing slashes removed, empty collapsed to "/".
func (r *Resolver) normalize(path string) string {
	path = strings.TrimSpace(path)
	path = strings.TrimPrefix(path, "#")
	if r.basePath != "" && strings.HasPrefix(path, r.basePath) {
		// Strip only at a segment boundary: "/app/x" and "/app" yes,
		// "/application" no.
		rest := path[len(r.basePath):]
		if rest == "" || rest[0] == '/' {
			path = rest
		}
	}
	for len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}
	if path == "" {
		return "/"
	}
	return path
}

// defaultRules covers detail routes that carry a dynamic segment and
// therefore cannot live in the static tree.
func defaultRules() []Rule {
	return []Rule{
		{
			Match:  prefixMatcher("/post/"),
			Handle: func(string) Breadcrumb { return Breadcrumb{Section: "Community", Page: "Post"} },
		},
		{
			Match: prefixMatcher("/profile/"),
			Handle: func(path string) Breadcrumb {
				return Breadcrumb{Section: "Account", Page: lastSegment(path)}
			},
		},
		{
			Match: prefixMatcher("/tags/"),
			Handle: func(path string) Breadcrumb {
				return Breadcrumb{Section: "Content", Page: lastSegment(path)}
			},
		},
	}
}

func prefixMatcher(prefix string) func(string) bool {
	return func(path string) bool {
		return strings.HasPrefix(path, prefix) && len(path) > len(prefix)
	}
}

// lastSegment returns the final path segment, used as a computed page
// label (tag name, profile handle).
func lastSegment(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
