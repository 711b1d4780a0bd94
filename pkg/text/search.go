package text

import (
	"strings"
	"unicode"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
	"github.com/sahilm/fuzzy"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	transformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// HighlightSubstring styles haystack with defaultStyle, underlining the
// first case-insensitive occurrence of needle with matchedStyle. The match
// is plain substring containment, mirroring how the board filters posts.
func HighlightSubstring(haystack, needle string, defaultStyle, matchedStyle termenv.Style) string {
	if needle == "" {
		return defaultStyle.Styled(haystack)
	}

	idx := strings.Index(strings.ToLower(haystack), strings.ToLower(needle))
	if idx < 0 {
		return defaultStyle.Styled(haystack)
	}

	// Index returned byte offsets; restyle rune by rune so multibyte text
	// does not split a sequence.
	b := strings.Builder{}
	pos := 0
	for _, r := range haystack {
		w := len(string(r))
		if pos >= idx && pos < idx+len(needle) {
			b.WriteString(matchedStyle.Styled(string(r)))
		} else {
			b.WriteString(defaultStyle.Styled(string(r)))
		}
		pos += w
	}

	return b.String()
}

// JumpIndex returns the index of the target best matching needle, for
// cursor jumps over an unfiltered listing. Returns -1 when nothing matches.
func JumpIndex(targets []string, needle string) int {
	if needle == "" {
		return -1
	}

	normalized := make([]string, len(targets))
	for i, t := range targets {
		n, err := Normalize(t)
		if err != nil {
			n = t
		}
		normalized[i] = n
	}

	matches := fuzzy.Find(needle, normalized)
	if len(matches) == 0 {
		return -1
	}

	return matches[0].Index
}

// Normalize text to aid in the filtering process. In particular, we remove
// diacritics, "ö" becomes "o". Note that Mn is the unicode key for nonspacing
// marks.
func Normalize(in string) (string, error) {
	transformer.Reset()
	out, _, err := transform.String(transformer, in)
	return out, err
}

func TruncateWithTail(txt string, width uint, ellipsis string) string {
	return truncate.StringWithTail(txt, width, ellipsis)
}
