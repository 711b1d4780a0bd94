// Pager layout follows the design of glow's pager.
package model

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	lib "github.com/charmbracelet/charm/ui/common"
	"github.com/charmbracelet/glamour"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
	te "github.com/muesli/termenv"

	v1 "github.com/postbox-tui/postbox/pkg/types/v1"
	"github.com/postbox-tui/postbox/pkg/ui"
)

const statusBarHeight = 1

var (
	pagerHelpHeight int

	pagerLogo = te.String(" Post ").
			Foreground(lib.Cream.Color()).
			Background(lib.Fuschia.Color()).
			String()

	statusBarNoteFg = lib.NewColorPair("#7D7D7D", "#656565")
	statusBarBg     = lib.NewColorPair("#242424", "#E6E6E6")

	// Styling funcs.
	statusBarScrollPosStyle = ui.NewStyle(lib.NewColorPair("#5A5A5A", "#949494"), statusBarBg, false)
	statusBarNoteStyle      = ui.NewStyle(statusBarNoteFg, statusBarBg, false)
	statusBarHelpStyle      = ui.NewStyle(statusBarNoteFg, lib.NewColorPair("#323232", "#DCDCDC"), false)
	helpViewStyle           = ui.NewStyle(statusBarNoteFg, lib.NewColorPair("#1B1B1B", "#f2f2f2"), false)
)

type pagerModel struct {
	common   *commonModel
	viewport viewport.Model
	showHelp bool

	// Post currently being read, sans-glamour rendering. We keep it so we
	// can re-render on resize.
	currentPost v1.Post
}

func newPagerModel(common *commonModel) pagerModel {
	vp := viewport.Model{}
	vp.YPosition = 0

	return pagerModel{
		common:   common,
		viewport: vp,
	}
}

func (m *pagerModel) setSize(w, h int) {
	m.viewport.Width = w
	m.viewport.Height = h - statusBarHeight

	if m.showHelp {
		if pagerHelpHeight == 0 {
			pagerHelpHeight = strings.Count(m.helpView(), "\n")
		}
		m.viewport.Height -= (statusBarHeight + pagerHelpHeight)
	}
}

func (m *pagerModel) setContent(s string) {
	m.viewport.SetContent(s)
}

func (m *pagerModel) toggleHelp() {
	m.showHelp = !m.showHelp
	m.setSize(m.common.width, m.common.height)
	if m.viewport.PastBottom() {
		m.viewport.GotoBottom()
	}
}

func (m *pagerModel) unload() {
	if m.showHelp {
		m.toggleHelp()
	}
	m.viewport.SetContent("")
	m.viewport.YOffset = 0
	m.currentPost = v1.Post{}
}

func (m pagerModel) update(msg tea.Msg) (pagerModel, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "home", "g":
			m.viewport.GotoTop()

		case "end", "G":
			m.viewport.GotoBottom()

		case "?":
			m.toggleHelp()
		}

	case tea.WindowSizeMsg:
		return m, renderWithGlamour(m, postAsMarkdown(m.currentPost))
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m pagerModel) View() string {
	var b strings.Builder
	fmt.Fprint(&b, m.viewport.View()+"\n")

	m.statusBarView(&b)

	if m.showHelp {
		fmt.Fprint(&b, "\n"+m.helpView())
	}

	return b.String()
}

func (m pagerModel) statusBarView(b *strings.Builder) {
	const (
		minPercent               float64 = 0.0
		maxPercent               float64 = 1.0
		percentToStringMagnitude float64 = 100.0
	)

	// Scroll percent
	percent := math.Max(minPercent, math.Min(maxPercent, m.viewport.ScrollPercent()))
	scrollPercent := statusBarScrollPosStyle(fmt.Sprintf(" %3.f%% ", percent*percentToStringMagnitude))

	helpNote := statusBarHelpStyle(" ? Help ")

	// Post title
	title := m.currentPost.Title
	if title == "" {
		title = noTitle
	}
	note := truncate.StringWithTail(" "+title+" ", uint(max(0,
		m.common.width-
			ansi.PrintableRuneWidth(pagerLogo)-
			ansi.PrintableRuneWidth(scrollPercent)-
			ansi.PrintableRuneWidth(helpNote),
	)), ellipsis)
	note = statusBarNoteStyle(note)

	// Empty space
	padding := max(0,
		m.common.width-
			ansi.PrintableRuneWidth(pagerLogo)-
			ansi.PrintableRuneWidth(note)-
			ansi.PrintableRuneWidth(scrollPercent)-
			ansi.PrintableRuneWidth(helpNote),
	)
	emptySpace := statusBarNoteStyle(strings.Repeat(" ", padding))

	fmt.Fprintf(b, "%s%s%s%s%s",
		pagerLogo,
		note,
		emptySpace,
		scrollPercent,
		helpNote,
	)
}

func (m pagerModel) helpView() (s string) {
	col1 := []string{
		"g/home  go to top",
		"G/end   go to bottom",
		"",
		"esc     back to the board",
		"q       quit",
	}

	s += "\n"
	s += "k/↑      up                  " + col1[0] + "\n"
	s += "j/↓      down                " + col1[1] + "\n"
	s += "b/pgup   page up             " + col1[2] + "\n"
	s += "f/pgdn   page down           " + col1[3] + "\n"
	s += "u        ½ page up           " + col1[4] + "\n"
	s += "d        ½ page down         "

	s = indent(s, 2)

	// Fill up empty cells with spaces for background coloring
	if m.common.width > 0 {
		lines := strings.Split(s, "\n")
		for i := 0; i < len(lines); i++ {
			l := runewidth.StringWidth(lines[i])
			n := max(m.common.width-l, 0)
			lines[i] += strings.Repeat(" ", n)
		}

		s = strings.Join(lines, "\n")
	}

	return helpViewStyle(s)
}

// COMMANDS

func renderWithGlamour(m pagerModel, md string) tea.Cmd {
	return func() tea.Msg {
		s, err := glamourRender(m, md)
		if err != nil {
			if debug {
				log.Println("error rendering with Glamour:", err)
			}
			return errMsg{err}
		}
		return contentRenderedMsg(s)
	}
}

func glamourRender(m pagerModel, markdown string) (string, error) {
	width := max(0, m.viewport.Width)
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
	if err != nil {
		return "", err
	}

	out, err := r.Render(markdown)
	if err != nil {
		return "", err
	}

	// trim lines
	lines := strings.Split(out, "\n")

	var content string
	for i, s := range lines {
		content += strings.TrimSpace(s)
		if i+1 < len(lines) {
			content += "\n"
		}
	}

	return content, nil
}
