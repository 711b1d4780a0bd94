package model

import (
	"fmt"
	"io"
	"strings"

	lib "github.com/charmbracelet/charm/ui/common"
	te "github.com/muesli/termenv"

	"github.com/postbox-tui/postbox/pkg/text"
	v1 "github.com/postbox-tui/postbox/pkg/types/v1"
	"github.com/postbox-tui/postbox/pkg/ui"
)

const (
	verticalLine = "│"
	noTitle      = "(untitled)"
)

func postItemView(b io.Writer, m feedModel, index int, p v1.Post) {
	var (
		truncateTo = uint(max(0, m.common.width-feedViewHorizontalPadding*2))
		title      = text.TruncateWithTail(p.Title, truncateTo, ellipsis)
		body       = text.TruncateWithTail(p.Body, truncateTo, ellipsis)
		gutter     string
		titleColor = lib.NewColorPair("#dddddd", "#1a1a1a")
		bodyColor  = lib.NewColorPair("#5C5C5C", "#9B9B9B")
	)
	if title == "" {
		title = noTitle
	}

	query := m.currentQuery()

	if index == m.cursor {
		gutter = ui.FuchsiaFg(verticalLine)
		titleColor = lib.Fuschia
		bodyColor = lib.NewColorPair("#AD58B4", "#F793FF")
	} else {
		gutter = " "
	}

	titleStyle := te.Style{}.Foreground(titleColor.Color())
	if query != "" {
		title = text.HighlightSubstring(title, query, titleStyle, titleStyle.Underline())
		body = text.HighlightSubstring(body, query, te.Style{}.Foreground(bodyColor.Color()), te.Style{}.Foreground(bodyColor.Color()).Underline())
	} else {
		title = titleStyle.Styled(title)
		body = te.Style{}.Foreground(bodyColor.Color()).Styled(body)
	}

	fmt.Fprintf(b, "%s %s\n%s %s", gutter, title, gutter, body)
}

// postAsMarkdown renders a post as a markdown document for the pager.
func postAsMarkdown(p v1.Post) string {
	var b strings.Builder
	title := p.Title
	if title == "" {
		title = noTitle
	}
	fmt.Fprintf(&b, "# %s\n\n%s\n", title, p.Body)
	return b.String()
}
