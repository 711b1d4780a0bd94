package model

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/postbox-tui/postbox/pkg/config"
	v1 "github.com/postbox-tui/postbox/pkg/types/v1"
	"github.com/postbox-tui/postbox/pkg/ui"
)

const (
	ellipsis = "…"
)

// state is the top-level application state.
type state int

const (
	stateShowFeed state = iota
	stateShowDocument
)

func (s state) String() string {
	return map[state]string{
		stateShowFeed:     "showing post listing",
		stateShowDocument: "showing post",
	}[s]
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		spinner.Tick,
		generateArchiveCmd(m.feed.archive.gen, m.feed.archive.size),
	}
	if m.watcher != nil {
		cmds = append(cmds, waitForConfigChange(m.watcher))
	}
	return tea.Batch(cmds...)
}

// unloadDocument closes the reader and returns to the board.
func (m *Model) unloadDocument() {
	m.state = stateShowFeed
	m.pager.unload()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// A broken provider wiring is fatal; any key exits.
	if m.fatalErr != nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, tea.Quit
		}
	}

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		// Ctrl+C always quits no matter where in the application you are.
		case msg.String() == "ctrl+c":
			return m, tea.Quit

		case msg.String() == "q":
			// Pass the key through while the user is typing into an input.
			if m.state == stateShowFeed && m.feed.typing() {
				break
			}
			return m, tea.Quit

		case msg.String() == "esc":
			if m.state == stateShowDocument {
				m.unloadDocument()
				return m, nil
			}

		case key.Matches(msg, feedKeys.DarkMode):
			if m.state == stateShowFeed && m.feed.typing() {
				break
			}
			// The only effect of the flag is the root presentation marker.
			m.darkMode = !m.darkMode
			return m, nil
		}

	// Window size is received when starting up and on every resize
	case tea.WindowSizeMsg:
		m.common.width = msg.Width
		m.common.height = msg.Height
		m.feed.setSize(msg.Width, msg.Height)
		m.pager.setSize(msg.Width, msg.Height)

	case errMsg:
		m.fatalErr = msg.err
		return m, nil

	case openPostMsg:
		m.pager.currentPost = v1.Post(msg)
		cmds = append(cmds, renderWithGlamour(m.pager, postAsMarkdown(v1.Post(msg))))

	case contentRenderedMsg:
		m.pager.setContent(string(msg))
		m.state = stateShowDocument

	// The archive finishes generating regardless of which view is up.
	case archiveLoadedMsg:
		newFeedModel, cmd := m.feed.update(msg)
		m.feed = newFeedModel
		return m, cmd

	case configChangedMsg:
		cfg, err := config.NewFromFile(m.configPath)
		if err == nil {
			m.common.cfg = cfg
			m.darkMode = cfg.DarkMode
		}
		if m.watcher != nil {
			cmds = append(cmds, waitForConfigChange(m.watcher))
		}
	}

	// Process children
	switch m.state {
	case stateShowFeed:
		newFeedModel, cmd := m.feed.update(msg)
		m.feed = newFeedModel
		cmds = append(cmds, cmd)

	case stateShowDocument:
		newPagerModel, cmd := m.pager.update(msg)
		m.pager = newPagerModel
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var view string

	switch {
	case m.fatalErr != nil:
		view = errorView(m.fatalErr, true)
	case m.state == stateShowDocument:
		view = m.pager.View()
	default:
		view = m.feed.view()
	}

	return ui.RootMarker(m.darkMode, view)
}

func errorView(err error, fatal bool) string {
	exitMsg := "press any key to "
	if fatal {
		exitMsg += "exit"
	} else {
		exitMsg += "return"
	}
	s := fmt.Sprintf("%s\n\n%v\n\n%s",
		ui.RedFg(" ERROR "),
		err,
		ui.GrayFg(exitMsg),
	)
	return "\n" + indent(s, 3)
}

// Lightweight version of reflow's indent function.
func indent(s string, n int) string {
	if n <= 0 || s == "" {
		return s
	}
	l := strings.Split(s, "\n")
	b := strings.Builder{}
	i := strings.Repeat(" ", n)
	for _, v := range l {
		fmt.Fprintf(&b, "%s%s\n", i, v)
	}
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
