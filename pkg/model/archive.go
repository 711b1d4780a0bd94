package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	lib "github.com/charmbracelet/charm/ui/common"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	te "github.com/muesli/termenv"

	"github.com/postbox-tui/postbox/pkg/generator"
	"github.com/postbox-tui/postbox/pkg/text"
	v1 "github.com/postbox-tui/postbox/pkg/types/v1"
	"github.com/postbox-tui/postbox/pkg/ui"
)

const archiveLineHeight = 2 // title and body per archive entry

// archiveModel holds the large synthetic backlog. Its contents are
// generated exactly once, on program start, and never mutate afterwards.
// Collapsed it renders as a single summary line; expanded it takes over
// the feed body with a scrolling listing.
type archiveModel struct {
	common *commonModel
	gen    *generator.Generator
	size   int

	posts  []v1.Post
	loaded bool

	expanded bool
	cursor   int
	viewport viewport.Model
	spinner  spinner.Model

	finder  textinput.Model
	finding bool

	// lines caches the unstyled per-entry render so expanding doesn't
	// rebuild ten thousand strings per keystroke.
	lines []string
}

func newArchiveModel(common *commonModel, gen *generator.Generator) archiveModel {
	sp := spinner.NewModel()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(fuchsia)
	sp.HideFor = time.Millisecond * 100
	sp.MinimumLifetime = time.Millisecond * 180
	sp.Start()

	fi := textinput.NewModel()
	fi.Prompt = feedTextInputPromptStyle("Find: ")
	fi.CursorStyle = lipgloss.NewStyle().Foreground(fuchsia)
	fi.CharLimit = queryCharacterLimit

	return archiveModel{
		common:  common,
		gen:     gen,
		size:    common.cfg.ArchivePosts,
		spinner: sp,
		finder:  fi,
	}
}

func (m *archiveModel) setSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = max(1, height)
	if m.loaded {
		m.refreshViewport()
	}
}

// toggle flips between the collapsed summary line and the expanded
// listing. The underlying data is untouched either way.
func (m *archiveModel) toggle() {
	m.expanded = !m.expanded
	m.finding = false
	m.finder.Reset()
	if m.expanded && m.loaded {
		m.refreshViewport()
	}
}

func (m archiveModel) tabTitle() string {
	if !m.loaded {
		return fmt.Sprintf("%s archive", m.spinner.View())
	}
	return fmt.Sprintf("%s archived", humanize.Comma(int64(len(m.posts))))
}

// UPDATE

func (m archiveModel) update(msg tea.Msg) (archiveModel, tea.Cmd) {
	switch msg := msg.(type) {
	case archiveLoadedMsg:
		m.spinner.Finish()
		m.posts = msg
		m.loaded = true
		m.buildLines()
		if m.expanded {
			m.refreshViewport()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loaded || m.spinner.Visible() {
			newSpinnerModel, cmd := m.spinner.Update(msg)
			m.spinner = newSpinnerModel
			return m, cmd
		}
		return m, nil
	}

	if !m.expanded {
		return m, nil
	}

	if m.finding {
		return m.handleFinding(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "k", "up":
			m.moveCursor(-1)

		case "j", "down":
			m.moveCursor(1)

		case "g", "home":
			m.setCursor(0)

		case "G", "end":
			m.setCursor(len(m.posts) - 1)

		case "pgup", "b", "u":
			m.moveCursor(-m.viewport.Height / archiveLineHeight)

		case "pgdown", "f", "d":
			m.moveCursor(m.viewport.Height / archiveLineHeight)

		case "/":
			m.finding = true
			m.finder.Reset()
			m.finder.Focus()
			return m, textinput.Blink

		case "enter":
			return m, m.addSelectedToBoard()
		}
	}

	return m, nil
}

// handleFinding drives the fuzzy quick-jump over archive titles.
func (m archiveModel) handleFinding(msg tea.Msg) (archiveModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "enter":
			m.finding = false
			m.finder.Blur()
			return m, nil
		}
	}

	newFinderModel, cmd := m.finder.Update(msg)
	currentNeedle := m.finder.Value()
	newNeedle := newFinderModel.Value()
	m.finder = newFinderModel

	if newNeedle != currentNeedle && newNeedle != "" {
		targets := make([]string, len(m.posts))
		for i, p := range m.posts {
			targets[i] = p.Title
		}
		if i := text.JumpIndex(targets, newNeedle); i >= 0 {
			m.setCursor(i)
		}
	}

	return m, cmd
}

// addSelectedToBoard copies the selected archive entry onto the board as a
// brand new post. The archive itself never changes.
func (m *archiveModel) addSelectedToBoard() tea.Cmd {
	if !m.loaded || len(m.posts) == 0 {
		return nil
	}

	st, err := m.common.provider.Use()
	if err != nil {
		return errCmd(err)
	}

	p := m.posts[m.cursor]
	st.AddPost(p)
	return archiveAddedCmd(p)
}

func (m *archiveModel) moveCursor(delta int) {
	m.setCursor(m.cursor + delta)
}

func (m *archiveModel) setCursor(i int) {
	if i < 0 {
		i = 0
	}
	if i > len(m.posts)-1 {
		i = len(m.posts) - 1
	}
	m.cursor = i
	m.refreshViewport()
}

// VIEW

func (m *archiveModel) buildLines() {
	m.lines = make([]string, len(m.posts))
	for i, p := range m.posts {
		m.lines[i] = fmt.Sprintf("%s\n  %s", p.Title, p.Body)
	}
}

// refreshViewport restyles the visible window around the cursor and keeps
// the selected entry in view.
func (m *archiveModel) refreshViewport() {
	if !m.loaded {
		return
	}

	var (
		normal   = te.Style{}.Foreground(lib.NewColorPair("#979797", "#847A85").Color())
		selected = te.Style{}.Foreground(lib.Fuschia.Color())
	)

	rendered := make([]string, len(m.lines))
	for i, l := range m.lines {
		title, body := l, ""
		if j := strings.Index(l, "\n"); j >= 0 {
			title, body = l[:j], strings.TrimPrefix(l[j+1:], "  ")
		}
		if i == m.cursor {
			gutter := ui.FuchsiaFg(verticalLine)
			rendered[i] = fmt.Sprintf("%s %s\n%s %s", gutter, selected.Styled(title), gutter, selected.Styled(body))
		} else {
			rendered[i] = fmt.Sprintf("  %s\n  %s", normal.Styled(title), normal.Styled(body))
		}
	}

	m.viewport.SetContent(strings.Join(rendered, "\n"))
	m.scrollToCursor()
}

func (m *archiveModel) scrollToCursor() {
	top := m.cursor * archiveLineHeight
	bottom := top + archiveLineHeight

	if top < m.viewport.YOffset {
		m.viewport.YOffset = top
	} else if bottom > m.viewport.YOffset+m.viewport.Height {
		m.viewport.YOffset = bottom - m.viewport.Height
	}
}

func (m archiveModel) view() string {
	if !m.expanded {
		return m.collapsedView()
	}

	var b strings.Builder

	if !m.loaded {
		fmt.Fprintf(&b, "  %s Generating archive…", m.spinner.View())
		return b.String()
	}

	if m.finding {
		fmt.Fprintf(&b, "  %s\n\n", m.finder.View())
	} else {
		fmt.Fprintf(&b, "  %s\n\n", lib.Subtle("enter: add as new post • /: find • s: hide archive posts"))
	}

	b.WriteString(m.viewport.View())
	return b.String()
}

// collapsedView is the single line shown beneath the board.
func (m archiveModel) collapsedView() string {
	if !m.loaded {
		return m.spinner.View() + " " + lib.Subtle("Generating archive…")
	}
	label := fmt.Sprintf("Show archive posts (%s)", humanize.Comma(int64(len(m.posts))))
	return ui.GrayFg("s ") + lib.Subtle(label)
}
