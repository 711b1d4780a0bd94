package config

import (
	"strings"
	"testing"
)

func TestNewFromReaderDefaults(t *testing.T) {
	c, err := NewFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if *c != Default {
		t.Fatalf("expected defaults, got %+v", *c)
	}
}

func TestNewFromReaderOverrides(t *testing.T) {
	in := `
seedPosts: 5
archivePosts: 100
darkMode: false
randomSeed: 7
`
	c, err := NewFromReader(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.SeedPosts != 5 {
		t.Fatalf("expected seedPosts 5, got %d", c.SeedPosts)
	}
	if c.ArchivePosts != 100 {
		t.Fatalf("expected archivePosts 100, got %d", c.ArchivePosts)
	}
	if c.DarkMode {
		t.Fatal("expected darkMode false")
	}
	if c.RandomSeed != 7 {
		t.Fatalf("expected randomSeed 7, got %d", c.RandomSeed)
	}
}

func TestNewFromReaderRejectsInvalidArchive(t *testing.T) {
	_, err := NewFromReader(strings.NewReader("archivePosts: 0\n"))
	if err == nil {
		t.Fatal("expected a validation error for archivePosts: 0")
	}
}

func TestNewFromReaderRejectsGarbage(t *testing.T) {
	_, err := NewFromReader(strings.NewReader("{notyaml"))
	if err == nil {
		t.Fatal("expected an unmarshal error")
	}
}

func TestNewFromFileMissingFallsBackToDefault(t *testing.T) {
	c, err := NewFromFile("/nonexistent/postbox.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *c != Default {
		t.Fatalf("expected defaults, got %+v", *c)
	}
}
