package redis

const (
	// KeyPrefixPost is the prefix for post keys
	KeyPrefixPost = "docverse:post:"
	// KeyPrefixSearch is the prefix for cached user-search results
	KeyPrefixSearch = "docverse:search:"
	// KeyAllPosts is the key for the set of all post IDs
	KeyAllPosts = "docverse:posts:all"
)

// PostKey returns the Redis key for a post by ID
func PostKey(id string) string {
	return KeyPrefixPost + id
}

// SearchKey returns the Redis key for a cached user-search result
func SearchKey(term string) string {
	return KeyPrefixSearch + term
}

// AllPostsKey returns the key for the set of all post IDs
func AllPostsKey() string {
	return KeyAllPosts
}
