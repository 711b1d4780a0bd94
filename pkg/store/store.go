// Package store holds the canonical post collection and search query shared
// by the whole component tree, and the mutation operations over them. It is
// the single owner of that state; components reach it through a Provider.
package store

import (
	"strings"

	v1 "github.com/postbox-tui/postbox/pkg/types/v1"
)

// Store is the shared state container. All mutation happens synchronously
// inside the UI's event handlers, so no locking is needed.
type Store struct {
	posts []v1.Post
	query string
}

func New(initial []v1.Post) *Store {
	return &Store{posts: initial}
}

// AddPost prepends p to the canonical collection. Validation is the
// caller's concern; duplicates are legal.
func (s *Store) AddPost(p v1.Post) {
	s.posts = append([]v1.Post{p}, s.posts...)
}

// ClearPosts empties the canonical collection.
func (s *Store) ClearPosts() {
	s.posts = []v1.Post{}
}

// SetSearchQuery replaces the query verbatim. No trimming, no validation.
func (s *Store) SetSearchQuery(query string) {
	s.query = query
}

func (s *Store) SearchQuery() string {
	return s.query
}

// Posts returns the canonical collection, newest first.
func (s *Store) Posts() []v1.Post {
	return s.posts
}

// Filtered returns the derived view of the canonical collection under the
// current query. It is recomputed on every call, never cached.
func (s *Store) Filtered() []v1.Post {
	return Filter(s.posts, s.query)
}

// Count returns the size of the canonical collection.
func (s *Store) Count() int {
	return len(s.posts)
}

// Filter derives the read-only view of posts matching query: with an empty
// query it returns posts itself (identity, not a copy); otherwise the posts
// whose title and body, joined and lowercased, contain the lowercased query.
func Filter(posts []v1.Post, query string) []v1.Post {
	if query == "" {
		return posts
	}

	needle := strings.ToLower(query)
	filtered := []v1.Post{}
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.FilterValue()), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
