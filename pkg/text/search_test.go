package text

import (
	"testing"

	te "github.com/muesli/termenv"
)

func TestNormalize(t *testing.T) {
	for in, want := range map[string]string{
		"jötnheim": "jotnheim",
		"café":     "cafe",
		"plain":    "plain",
	} {
		got, err := Normalize(in)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestJumpIndex(t *testing.T) {
	targets := []string{"alpha channel", "beta blocker", "gamma ray"}

	if got := JumpIndex(targets, "gamma"); got != 2 {
		t.Fatalf("expected index 2, got %d", got)
	}
	if got := JumpIndex(targets, ""); got != -1 {
		t.Fatalf("expected -1 for an empty needle, got %d", got)
	}
	if got := JumpIndex(targets, "zzzzz"); got != -1 {
		t.Fatalf("expected -1 for no match, got %d", got)
	}
}

func TestHighlightSubstringWithoutStyling(t *testing.T) {
	// Empty styles leave the text untouched, so the match bookkeeping is
	// all that's being exercised here.
	plain := te.Style{}

	got := HighlightSubstring("Infinite Loop", "LOOP", plain, plain)
	if got != "Infinite Loop" {
		t.Fatalf("expected text preserved, got %q", got)
	}

	got = HighlightSubstring("no match here", "loop", plain, plain)
	if got != "no match here" {
		t.Fatalf("expected text preserved, got %q", got)
	}
}

func TestHighlightSubstringMultibyte(t *testing.T) {
	plain := te.Style{}

	got := HighlightSubstring("héllo wörld", "wörld", plain, plain)
	if got != "héllo wörld" {
		t.Fatalf("expected multibyte text preserved, got %q", got)
	}
}

func TestTruncateWithTail(t *testing.T) {
	if got := TruncateWithTail("abcdefg", 4, "…"); got != "abc…" {
		t.Fatalf("expected %q, got %q", "abc…", got)
	}
	if got := TruncateWithTail("abc", 10, "…"); got != "abc" {
		t.Fatalf("expected %q, got %q", "abc", got)
	}
}
