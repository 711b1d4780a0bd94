package model

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/postbox-tui/postbox/pkg/config"
	v1 "github.com/postbox-tui/postbox/pkg/types/v1"
)

func testModel(t *testing.T) Model {
	t.Helper()

	cfg := config.Default
	cfg.SeedPosts = 3
	cfg.RandomSeed = 1

	m, err := New(&cfg, "", nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return nm.(Model)
}

func TestOpenAndCloseReader(t *testing.T) {
	m := testModel(t)

	p := v1.Post{Title: "Reading", Body: "the whole thing"}
	nm, cmd := m.Update(openPostMsg(p))
	m = nm.(Model)
	if cmd == nil {
		t.Fatal("expected a render command")
	}

	msg := cmd()
	rendered, ok := msg.(contentRenderedMsg)
	if !ok {
		t.Fatalf("expected contentRenderedMsg, got %T", msg)
	}

	nm, _ = m.Update(rendered)
	m = nm.(Model)
	if m.state != stateShowDocument {
		t.Fatalf("expected the reader showing, got %v", m.state)
	}

	nm, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = nm.(Model)
	if m.state != stateShowFeed {
		t.Fatalf("expected the board showing, got %v", m.state)
	}
}

func TestQuitPassesThroughWhileTyping(t *testing.T) {
	m := testModel(t)

	// Open the search input; q is now text, not a binding.
	nm, _ := m.Update(keyRunes('/'))
	m = nm.(Model)

	nm, cmd := m.Update(keyRunes('q'))
	m = nm.(Model)
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatal("expected q to type, not quit")
		}
	}
	if got := mustStore(t, m.common).SearchQuery(); got != "q" {
		t.Fatalf("expected q typed into the query, got %q", got)
	}
}

func TestWindowSizePropagates(t *testing.T) {
	m := testModel(t)

	nm, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = nm.(Model)

	if m.common.width != 120 || m.common.height != 40 {
		t.Fatalf("expected 120x40, got %dx%d", m.common.width, m.common.height)
	}
	if m.pager.viewport.Width != 120 {
		t.Fatalf("expected pager width 120, got %d", m.pager.viewport.Width)
	}
}
