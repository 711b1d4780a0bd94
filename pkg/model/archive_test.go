package model

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/postbox-tui/postbox/pkg/generator"
	v1 "github.com/postbox-tui/postbox/pkg/types/v1"
)

func loadedArchive(t *testing.T, common *commonModel, n int) archiveModel {
	t.Helper()

	gen := generator.New(1)
	a := newArchiveModel(common, gen)
	a.setSize(80, 20)

	a, _ = a.update(archiveLoadedMsg(gen.Posts(n)))
	if !a.loaded {
		t.Fatal("expected the archive loaded")
	}
	return a
}

func TestGenerateArchiveCmd(t *testing.T) {
	gen := generator.New(1)

	msg := generateArchiveCmd(gen, 100)()
	posts, ok := msg.(archiveLoadedMsg)
	if !ok {
		t.Fatalf("expected archiveLoadedMsg, got %T", msg)
	}
	if len(posts) != 100 {
		t.Fatalf("expected 100 archive posts, got %d", len(posts))
	}
}

func TestArchiveStartsCollapsed(t *testing.T) {
	common := testCommon(t, nil)
	a := loadedArchive(t, common, 5)

	if a.expanded {
		t.Fatal("expected the archive collapsed by default")
	}
	if !strings.Contains(a.view(), "Show archive posts") {
		t.Fatalf("expected the collapsed summary line, got %q", a.view())
	}
}

func TestArchiveToggle(t *testing.T) {
	common := testCommon(t, nil)
	a := loadedArchive(t, common, 5)

	a.toggle()
	if !a.expanded {
		t.Fatal("expected the archive expanded")
	}
	if !strings.Contains(a.view(), "hide archive posts") {
		t.Fatalf("expected the expanded help line, got %q", a.view())
	}

	a.toggle()
	if a.expanded {
		t.Fatal("expected the archive collapsed again")
	}
}

func TestArchiveCursorStaysInBounds(t *testing.T) {
	common := testCommon(t, nil)
	a := loadedArchive(t, common, 3)
	a.toggle()

	a, _ = a.update(keyRunes('k'))
	if a.cursor != 0 {
		t.Fatalf("expected cursor pinned at 0, got %d", a.cursor)
	}

	for i := 0; i < 10; i++ {
		a, _ = a.update(keyRunes('j'))
	}
	if a.cursor != 2 {
		t.Fatalf("expected cursor pinned at 2, got %d", a.cursor)
	}
}

func TestArchiveAddCopiesWithoutMutatingArchive(t *testing.T) {
	common := testCommon(t, []v1.Post{{Title: "board", Body: "post"}})
	a := loadedArchive(t, common, 5)
	a.toggle()

	a, _ = a.update(keyRunes('j'))
	selected := a.posts[a.cursor]

	a, cmd := a.update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from adding an entry")
	}
	if _, ok := cmd().(archiveAddedMsg); !ok {
		t.Fatal("expected archiveAddedMsg")
	}

	st := mustStore(t, common)
	if st.Count() != 2 {
		t.Fatalf("expected 2 posts on the board, got %d", st.Count())
	}
	if st.Posts()[0] != selected {
		t.Fatalf("expected the archive entry at the head, got %+v", st.Posts()[0])
	}
	if len(a.posts) != 5 {
		t.Fatalf("expected the archive unchanged, got %d entries", len(a.posts))
	}
}

func TestArchiveFindJumpsCursor(t *testing.T) {
	common := testCommon(t, nil)
	gen := generator.New(1)
	a := newArchiveModel(common, gen)
	a.setSize(80, 20)

	a, _ = a.update(archiveLoadedMsg([]v1.Post{
		{Title: "alpha channel", Body: "x"},
		{Title: "beta blocker", Body: "x"},
		{Title: "gamma ray", Body: "x"},
	}))
	a.toggle()

	a, _ = a.update(keyRunes('/'))
	if !a.finding {
		t.Fatal("expected the finder active")
	}

	for _, r := range "gamma" {
		a, _ = a.update(keyRunes(r))
	}
	if a.cursor != 2 {
		t.Fatalf("expected cursor jumped to 2, got %d", a.cursor)
	}

	a, _ = a.update(tea.KeyMsg{Type: tea.KeyEscape})
	if a.finding {
		t.Fatal("expected the finder dismissed")
	}
	if a.cursor != 2 {
		t.Fatalf("expected cursor kept, got %d", a.cursor)
	}
}
