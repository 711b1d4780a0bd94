package store

import (
	"errors"
	"testing"

	v1 "github.com/postbox-tui/postbox/pkg/types/v1"
)

func TestUseBeforeOpen(t *testing.T) {
	p := NewProvider(New(nil))

	_, err := p.Use()
	if !errors.Is(err, ErrNoActiveProvider) {
		t.Fatalf("expected ErrNoActiveProvider, got %v", err)
	}
}

func TestUseInsideScope(t *testing.T) {
	s := New([]v1.Post{{Title: "a", Body: "b"}})
	p := NewProvider(s)
	p.Open()

	got, err := p.Use()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != s {
		t.Fatal("expected the provider's own store")
	}
}

func TestUseAfterClose(t *testing.T) {
	p := NewProvider(New(nil))
	p.Open()
	p.Close()

	_, err := p.Use()
	if !errors.Is(err, ErrNoActiveProvider) {
		t.Fatalf("expected ErrNoActiveProvider, got %v", err)
	}
}

func TestNilProviderIsInactive(t *testing.T) {
	var p *Provider

	if p.Active() {
		t.Fatal("expected a nil provider to be inactive")
	}
	if _, err := p.Use(); !errors.Is(err, ErrNoActiveProvider) {
		t.Fatalf("expected ErrNoActiveProvider, got %v", err)
	}
}
