package model

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/postbox-tui/postbox/pkg/config"
	"github.com/postbox-tui/postbox/pkg/generator"
	"github.com/postbox-tui/postbox/pkg/store"
	v1 "github.com/postbox-tui/postbox/pkg/types/v1"
)

func testCommon(t *testing.T, posts []v1.Post) *commonModel {
	t.Helper()

	cfg := config.Default
	cfg.RandomSeed = 1

	st := store.New(posts)
	p := store.NewProvider(st)
	p.Open()

	return &commonModel{
		cfg:      &cfg,
		provider: p,
		width:    80,
		height:   24,
	}
}

func mustStore(t *testing.T, common *commonModel) *store.Store {
	t.Helper()
	st, err := common.provider.Use()
	if err != nil {
		t.Fatalf("provider not active: %v", err)
	}
	return st
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewSeedsBoardFromConfig(t *testing.T) {
	cfg := config.Default
	cfg.SeedPosts = 7
	cfg.RandomSeed = 1

	m, err := New(&cfg, "", nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st := mustStore(t, m.common)
	if st.Count() != 7 {
		t.Fatalf("expected 7 seeded posts, got %d", st.Count())
	}
	if !m.darkMode {
		t.Fatal("expected dark mode on by default")
	}
}

func TestDarkModeToggle(t *testing.T) {
	cfg := config.Default
	cfg.RandomSeed = 1

	m, err := New(&cfg, "", nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st := mustStore(t, m.common)
	before := st.Count()

	nm, _ := m.Update(keyRunes('D'))
	got := nm.(Model)

	if got.darkMode {
		t.Fatal("expected dark mode toggled off")
	}
	// The flag is presentation only.
	if st.Count() != before {
		t.Fatalf("expected the collection untouched, got %d posts", st.Count())
	}

	nm, _ = got.Update(keyRunes('D'))
	if !nm.(Model).darkMode {
		t.Fatal("expected dark mode toggled back on")
	}
}

func TestFatalErrorStopsTheWorld(t *testing.T) {
	cfg := config.Default
	cfg.RandomSeed = 1

	m, err := New(&cfg, "", nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m.common.provider.Close()
	_, uerr := m.common.provider.Use()

	nm, _ := m.Update(errMsg{uerr})
	got := nm.(Model)

	if got.fatalErr == nil {
		t.Fatal("expected a fatal error")
	}
	if !strings.Contains(got.View(), "ERROR") {
		t.Fatal("expected the error view")
	}

	// Any key exits.
	_, cmd := got.Update(keyRunes('x'))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestFormEmptySubmitIsSilentNoOp(t *testing.T) {
	common := testCommon(t, nil)
	f := newFormModel(common)
	f.focus()

	if cmd := f.submit(); cmd != nil {
		t.Fatal("expected no command from an empty submit")
	}
	if got := mustStore(t, common).Count(); got != 0 {
		t.Fatalf("expected no posts, got %d", got)
	}
}

func TestFormSubmitPrependsAndResets(t *testing.T) {
	common := testCommon(t, []v1.Post{{Title: "old", Body: "old"}})
	f := newFormModel(common)
	f.focus()
	f.titleInput.SetValue("New title")
	f.bodyInput.SetValue("New body")

	cmd := f.submit()
	if cmd == nil {
		t.Fatal("expected a command from a submit")
	}
	if _, ok := cmd().(postAddedMsg); !ok {
		t.Fatal("expected postAddedMsg")
	}

	st := mustStore(t, common)
	if st.Count() != 2 {
		t.Fatalf("expected 2 posts, got %d", st.Count())
	}
	if st.Posts()[0].Title != "New title" {
		t.Fatalf("expected the new post at the head, got %+v", st.Posts()[0])
	}
	if f.titleInput.Value() != "" || f.bodyInput.Value() != "" {
		t.Fatal("expected the form cleared after submit")
	}
}

func TestFormPartialSubmitIsSilentNoOp(t *testing.T) {
	common := testCommon(t, nil)
	f := newFormModel(common)
	f.focus()
	f.titleInput.SetValue("just a title")

	if cmd := f.submit(); cmd != nil {
		t.Fatal("expected no command when the body is empty")
	}
	if f.titleInput.Value() != "just a title" {
		t.Fatal("expected the draft kept after a rejected submit")
	}

	f.titleInput.Reset()
	f.bodyInput.SetValue("just a body")
	if cmd := f.submit(); cmd != nil {
		t.Fatal("expected no command when the title is empty")
	}

	if got := mustStore(t, common).Count(); got != 0 {
		t.Fatalf("expected no posts, got %d", got)
	}
}

func TestSearchKeystrokePublishesQuery(t *testing.T) {
	common := testCommon(t, []v1.Post{
		{Title: "Infinite loop", Body: "never halts"},
		{Title: "Other", Body: "thing"},
	})
	feed := newFeedModel(common, generator.New(1))
	feed.setSize(80, 24)

	// "/" opens the search input.
	feed, _ = feed.update(keyRunes('/'))
	if feed.focus != focusSearch {
		t.Fatal("expected search focus")
	}

	for _, r := range "loop" {
		feed, _ = feed.update(keyRunes(r))
	}

	st := mustStore(t, common)
	if got := st.SearchQuery(); got != "loop" {
		t.Fatalf("expected query %q, got %q", "loop", got)
	}
	if got := len(st.Filtered()); got != 1 {
		t.Fatalf("expected 1 visible post, got %d", got)
	}

	// Leaving the input keeps the query applied.
	feed, _ = feed.update(tea.KeyMsg{Type: tea.KeyEnter})
	if feed.focus != focusPosts {
		t.Fatal("expected focus back on the board")
	}
	if got := st.SearchQuery(); got != "loop" {
		t.Fatalf("expected query kept, got %q", got)
	}
}

func TestClearRequiresConfirmation(t *testing.T) {
	common := testCommon(t, []v1.Post{{Title: "a", Body: "b"}})
	feed := newFeedModel(common, generator.New(1))
	feed.setSize(80, 24)

	feed, _ = feed.update(keyRunes('c'))
	if !feed.confirmingClear {
		t.Fatal("expected the confirmation prompt")
	}

	// Anything but y cancels.
	feed, _ = feed.update(keyRunes('n'))
	if feed.confirmingClear {
		t.Fatal("expected the prompt dismissed")
	}
	if got := mustStore(t, common).Count(); got != 1 {
		t.Fatalf("expected the collection untouched, got %d posts", got)
	}

	feed, _ = feed.update(keyRunes('c'))
	feed, _ = feed.update(keyRunes('y'))
	if feed.confirmingClear {
		t.Fatal("expected the prompt dismissed")
	}
	if got := mustStore(t, common).Count(); got != 0 {
		t.Fatalf("expected an empty collection, got %d posts", got)
	}
}

func TestClearedBoardStillAcceptsPosts(t *testing.T) {
	common := testCommon(t, []v1.Post{{Title: "a", Body: "b"}})
	st := mustStore(t, common)

	st.ClearPosts()
	st.AddPost(v1.Post{Title: "fresh", Body: "start"})

	if st.Count() != 1 {
		t.Fatalf("expected 1 post, got %d", st.Count())
	}
}
