package generator

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"

	v1 "github.com/postbox-tui/postbox/pkg/types/v1"
)

// Generator mints synthetic posts on demand. A nonzero seed makes the
// output deterministic; with seed 0 gofakeit picks its own.
type Generator struct {
	faker *gofakeit.Faker
}

func New(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Post returns one fresh synthetic post.
func (g *Generator) Post() v1.Post {
	return v1.Post{
		Title: fmt.Sprintf("%s %s", g.faker.HackerAdjective(), g.faker.HackerNoun()),
		Body:  g.faker.HackerPhrase(),
	}
}

// Posts returns a batch of n fresh posts.
func (g *Generator) Posts(n int) []v1.Post {
	posts := make([]v1.Post, n)
	for i := range posts {
		posts[i] = g.Post()
	}
	return posts
}
