package generator

import (
	"testing"
)

func TestPostsCount(t *testing.T) {
	g := New(1)

	posts := g.Posts(25)
	if len(posts) != 25 {
		t.Fatalf("expected 25 posts, got %d", len(posts))
	}
}

func TestPostsAreValid(t *testing.T) {
	g := New(1)

	for i, p := range g.Posts(50) {
		if err := p.Validate(); err != nil {
			t.Fatalf("post %d invalid: %v", i, err)
		}
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	a := New(42).Posts(10)
	b := New(42).Posts(10)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("post %d differs between identically seeded runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
