package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	lib "github.com/charmbracelet/charm/ui/common"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"

	"github.com/postbox-tui/postbox/pkg/generator"
	"github.com/postbox-tui/postbox/pkg/text"
	v1 "github.com/postbox-tui/postbox/pkg/types/v1"
	"github.com/postbox-tui/postbox/pkg/ui"
	"github.com/postbox-tui/postbox/pkg/version"
)

const (
	feedIndent                = 1
	feedViewItemHeight        = 3 // height of a post row, including gap
	feedViewTopPadding        = 5 // logo, header, gaps
	feedViewBottomPadding     = 5 // archive line, pagination and gaps, but not help
	feedViewHorizontalPadding = 6

	queryCharacterLimit  = 256
	statusMessageTimeout = time.Second * 2
)

var (
	postedStatusMessage           = statusMessage{normalStatusMessage, "Posted!"}
	clearedStatusMessage          = statusMessage{subtleStatusMessage, "Cleared all posts"}
	addedFromArchiveStatusMessage = statusMessage{normalStatusMessage, "Added as new post"}
)

// feedFocus tracks which component of the board owns keystrokes.
type feedFocus int

const (
	focusPosts feedFocus = iota
	focusSearch
	focusForm
	focusArchive
)

type feedModel struct {
	common *commonModel
	err    error

	searchInput textinput.Model
	form        formModel
	archive     archiveModel
	paginator   paginator.Model
	cursor      int
	focus       feedFocus

	confirmingClear    bool
	showFullHelp       bool
	showStatusMessage  bool
	statusMessage      statusMessage
	statusMessageTimer *time.Timer
}

// INIT

func newFeedModel(common *commonModel, gen *generator.Generator) feedModel {
	si := textinput.NewModel()
	si.Prompt = feedTextInputPromptStyle("Search: ")
	si.CursorStyle = lipgloss.NewStyle().Foreground(fuchsia)
	si.CharLimit = queryCharacterLimit

	m := feedModel{
		common:      common,
		searchInput: si,
		form:        newFormModel(common),
		archive:     newArchiveModel(common, gen),
		paginator:   newFeedPaginator(),
	}

	return m
}

func newFeedPaginator() paginator.Model {
	p := paginator.NewModel()
	p.Type = paginator.Dots
	p.ActiveDot = ui.BrightGrayFg("•")
	p.InactiveDot = ui.DarkGrayFg("•")
	return p
}

// typing reports whether keystrokes currently belong to a text input and
// must not be interpreted as bindings.
func (m feedModel) typing() bool {
	switch m.focus {
	case focusSearch, focusForm:
		return true
	case focusArchive:
		return m.archive.finding
	}
	return false
}

// visiblePosts resolves the derived view through the guarded accessor.
func (m feedModel) visiblePosts() ([]v1.Post, error) {
	st, err := m.common.provider.Use()
	if err != nil {
		return nil, err
	}
	return st.Filtered(), nil
}

func (m feedModel) currentQuery() string {
	st, err := m.common.provider.Use()
	if err != nil {
		return ""
	}
	return st.SearchQuery()
}

// postIndex returns the index of the currently selected post.
func (m feedModel) postIndex() int {
	return m.paginator.Page*m.paginator.PerPage + m.cursor
}

// selectedPost returns the currently selected post of the visible set.
func (m feedModel) selectedPost(posts []v1.Post) (v1.Post, bool) {
	i := m.postIndex()
	if i < 0 || len(posts) == 0 || len(posts) <= i {
		return v1.Post{}, false
	}
	return posts[i], true
}

func (m *feedModel) setSize(width, height int) {
	m.searchInput.Width = width - feedViewHorizontalPadding*2 - ansi.PrintableRuneWidth(m.searchInput.Prompt)
	m.form.setSize(width)
	m.archive.setSize(width, height-feedViewTopPadding-feedViewBottomPadding)
	m.updatePagination()
}

// Update pagination according to the amount of posts for the current state.
func (m *feedModel) updatePagination() {
	_, helpHeight := m.helpView()

	availableHeight := m.common.height -
		feedViewTopPadding -
		helpHeight -
		feedViewBottomPadding

	m.paginator.PerPage = max(1, availableHeight/feedViewItemHeight)

	posts, err := m.visiblePosts()
	if err != nil {
		posts = nil
	}
	if len(posts) < 1 {
		m.paginator.SetTotalPages(1)
	} else {
		m.paginator.SetTotalPages(len(posts))
	}

	// Make sure the page stays in bounds
	if m.paginator.Page >= m.paginator.TotalPages-1 {
		m.paginator.Page = max(0, m.paginator.TotalPages-1)
	}
}

func (m *feedModel) newStatusMessage(sm statusMessage) tea.Cmd {
	m.showStatusMessage = true
	m.statusMessage = sm
	if m.statusMessageTimer != nil {
		m.statusMessageTimer.Stop()
	}
	m.statusMessageTimer = time.NewTimer(statusMessageTimeout)
	return waitForStatusMessageTimeout(feedContext, m.statusMessageTimer)
}

func (m *feedModel) hideStatusMessage() {
	m.showStatusMessage = false
	m.statusMessage = statusMessage{}
	if m.statusMessageTimer != nil {
		m.statusMessageTimer.Stop()
	}
}

func (m *feedModel) moveCursorUp(numPosts int) {
	m.cursor--
	if m.cursor < 0 && m.paginator.Page == 0 {
		// Stop
		m.cursor = 0
		return
	}

	if m.cursor >= 0 {
		return
	}
	// Go to previous page
	m.paginator.PrevPage()
	m.cursor = m.paginator.ItemsOnPage(numPosts) - 1
}

func (m *feedModel) moveCursorDown(numPosts int) {
	itemsOnPage := m.paginator.ItemsOnPage(numPosts)

	m.cursor++
	if m.cursor < itemsOnPage {
		return
	}

	if !m.paginator.OnLastPage() {
		m.paginator.NextPage()
		m.cursor = 0
		return
	}

	if m.cursor > itemsOnPage {
		m.cursor = 0
		return
	}
	m.cursor = itemsOnPage - 1
}

// UPDATE

func (m feedModel) update(msg tea.Msg) (feedModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case archiveLoadedMsg, spinner.TickMsg:
		newArchiveModel, cmd := m.archive.update(msg)
		m.archive = newArchiveModel
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case postAddedMsg:
		// The form already performed the mutation; surface it and return
		// the user to the board, where the new post sits at the head.
		m.focus = focusPosts
		m.paginator.Page = 0
		m.cursor = 0
		m.updatePagination()
		cmds = append(cmds, m.newStatusMessage(postedStatusMessage))
		return m, tea.Batch(cmds...)

	case archiveAddedMsg:
		// Keep focus in the archive so more entries can be copied over.
		m.updatePagination()
		cmds = append(cmds, m.newStatusMessage(addedFromArchiveStatusMessage))
		return m, tea.Batch(cmds...)

	case statusMessageTimeoutMsg:
		if applicationContext(msg) == feedContext {
			m.hideStatusMessage()
		}
	}

	if m.confirmingClear {
		cmds = append(cmds, m.handleClearConfirmation(msg))
		return m, tea.Batch(cmds...)
	}

	// A few keys route between components before the focused one sees them.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			switch m.focus {
			case focusForm:
				m.focus = focusPosts
				return m, nil
			case focusArchive:
				if !m.archive.finding {
					m.focus = focusPosts
					return m, nil
				}
			}
		case "s":
			// Collapse the archive from inside it.
			if m.focus == focusArchive && !m.archive.finding {
				m.archive.toggle()
				m.focus = focusPosts
				return m, nil
			}
		}
	}

	switch m.focus {
	case focusSearch:
		cmds = append(cmds, m.handleSearching(msg))

	case focusForm:
		newFormModel, cmd := m.form.update(msg)
		m.form = newFormModel
		cmds = append(cmds, cmd)

	case focusArchive:
		newArchiveModel, cmd := m.archive.update(msg)
		m.archive = newArchiveModel
		cmds = append(cmds, cmd)

	default:
		cmds = append(cmds, m.handleBrowsing(msg))
	}

	return m, tea.Batch(cmds...)
}

// Updates for when a user is browsing the post listing.
func (m *feedModel) handleBrowsing(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	posts, err := m.visiblePosts()
	if err != nil {
		return errCmd(err)
	}
	numPosts := len(posts)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, feedKeys.Up):
			m.moveCursorUp(numPosts)

		case key.Matches(msg, feedKeys.Down):
			m.moveCursorDown(numPosts)

		// Go to the very start
		case key.Matches(msg, feedKeys.Home):
			m.paginator.Page = 0
			m.cursor = 0

		// Go to the very end
		case key.Matches(msg, feedKeys.End):
			m.paginator.Page = m.paginator.TotalPages - 1
			m.cursor = m.paginator.ItemsOnPage(numPosts) - 1

		// Filter the board
		case key.Matches(msg, feedKeys.Search):
			m.hideStatusMessage()
			m.paginator.Page = 0
			m.cursor = 0
			m.focus = focusSearch
			m.searchInput.CursorEnd()
			m.searchInput.Focus()
			return textinput.Blink

		case key.Matches(msg, feedKeys.AddPost):
			m.hideStatusMessage()
			m.focus = focusForm
			return m.form.focus()

		case key.Matches(msg, feedKeys.Archive):
			m.hideStatusMessage()
			m.archive.toggle()
			if m.archive.expanded {
				m.focus = focusArchive
			}
			return nil

		case key.Matches(msg, feedKeys.Clear):
			m.hideStatusMessage()
			m.confirmingClear = true
			return nil

		// Open post
		case key.Matches(msg, feedKeys.Open):
			m.hideStatusMessage()

			if numPosts == 0 {
				break
			}

			post, ok := m.selectedPost(posts)
			if !ok {
				break
			}
			return openPostCmd(post)

		// Toggle full help
		case key.Matches(msg, feedKeys.Help):
			m.showFullHelp = !m.showFullHelp
			m.updatePagination()
		}
	}

	// Update paginator. Pagination key handling is done here, but it could
	// also be moved up to this level, in which case we'd use model methods
	// like model.PageUp().
	newPaginatorModel, cmd := m.paginator.Update(msg)
	m.paginator = newPaginatorModel
	cmds = append(cmds, cmd)

	// Extra paginator keystrokes
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "b", "u":
			m.paginator.PrevPage()
		case "f", "d":
			m.paginator.NextPage()
		}
	}

	// Keep the index in bounds when paginating
	itemsOnPage := m.paginator.ItemsOnPage(numPosts)
	if m.cursor > itemsOnPage-1 {
		m.cursor = max(0, itemsOnPage-1)
	}

	return tea.Batch(cmds...)
}

// Updates for when a user is being prompted whether or not to clear the
// whole board.
func (m *feedModel) handleClearConfirmation(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y":
			st, err := m.common.provider.Use()
			if err != nil {
				m.confirmingClear = false
				return errCmd(err)
			}

			st.ClearPosts()
			m.confirmingClear = false
			m.paginator.Page = 0
			m.cursor = 0
			m.updatePagination()
			return m.newStatusMessage(clearedStatusMessage)

		// Any other key cancels clearing
		default:
			m.confirmingClear = false
		}
	}

	return nil
}

// Updates for when a user is editing the search query. Every keystroke is
// published to the shared store immediately; consumers see the fresh
// derivation within this same event turn.
func (m *feedModel) handleSearching(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	st, err := m.common.provider.Use()
	if err != nil {
		return errCmd(err)
	}

	// Handle keys
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "enter", "tab", "ctrl+k", "up", "ctrl+j", "down":
			// Done editing; the query stays applied until changed.
			m.searchInput.Blur()
			m.focus = focusPosts
			m.updatePagination()
			return nil
		}
	}

	// Update the search text input component
	newSearchInputModel, inputCmd := m.searchInput.Update(msg)
	currentQuery := m.searchInput.Value()
	newQuery := newSearchInputModel.Value()
	m.searchInput = newSearchInputModel
	cmds = append(cmds, inputCmd)

	// If the query has changed, publish it to the shared store
	if newQuery != currentQuery {
		st.SetSearchQuery(newQuery)
		m.paginator.Page = 0
		m.cursor = 0
	}

	// Update pagination
	m.updatePagination()

	return tea.Batch(cmds...)
}

// VIEW

func (m feedModel) view() string {
	posts, err := m.visiblePosts()
	if err != nil {
		// The provider guard fired; let the render die with it.
		return errorView(err, false)
	}

	var header string
	if m.confirmingClear {
		header = ui.RedFg("Clear all posts from the board? ") + ui.FaintRedFg("(y/N)")
	} else {
		header = m.headerView(posts)
	}

	// Rules for the logo, search input and status message.
	logoOrSearch := " "
	if m.focus == focusSearch {
		logoOrSearch += m.searchInput.View()
	} else {
		logoOrSearch += logoView("Postbox") + ui.DimBrightGrayFg(fmt.Sprintf(" (%s)", version.Version))
		if m.showStatusMessage {
			logoOrSearch += "  " + m.statusMessage.String()
		}
	}
	logoOrSearch = text.TruncateWithTail(logoOrSearch, uint(max(0, m.common.width-1)), ellipsis)

	help, helpHeight := m.helpView()

	var body string
	switch {
	case m.focus == focusForm:
		body = m.form.view()
	case m.archive.expanded:
		body = m.archive.view()
	default:
		body = m.populatedView(posts)
	}
	bodyHeight := strings.Count(body, "\n") + 2

	// We need to fill any empty height with newlines so the footer reaches
	// the bottom.
	availHeight := m.common.height -
		feedViewTopPadding -
		bodyHeight -
		helpHeight -
		feedViewBottomPadding
	blankLines := strings.Repeat("\n", max(0, availHeight))

	var pagination string
	if m.focus != focusForm && !m.archive.expanded && m.paginator.TotalPages > 1 {
		pagination = m.paginator.View()

		// If the dot pagination is wider than the width of the window
		// use the arabic paginator.
		if ansi.PrintableRuneWidth(pagination) > m.common.width-feedViewHorizontalPadding {
			var p paginator.Model = m.paginator
			p.Type = paginator.Arabic
			pagination = lib.Subtle(p.View())
		}
	}

	var archiveLine string
	if !m.archive.expanded {
		archiveLine = m.archive.view()
	}

	s := fmt.Sprintf(
		"%s\n\n  %s\n\n%s\n\n%s  %s\n\n  %s\n\n%s",
		logoOrSearch,
		header,
		body,
		blankLines,
		pagination,
		archiveLine,
		help,
	)

	return "\n" + indent(s, feedIndent)
}

func (m feedModel) headerView(posts []v1.Post) string {
	query := m.currentQuery()

	// Filter results; the count message only reads the view's length.
	if query != "" {
		if len(posts) == 0 {
			return ui.GrayFg("Nothing found.")
		}

		sections := []string{
			fmt.Sprintf("%d posts found", len(posts)),
			fmt.Sprintf("“%s”", query),
		}
		for i := range sections {
			sections[i] = ui.GrayFg(sections[i])
		}
		return strings.Join(sections, dividerDot)
	}

	st, err := m.common.provider.Use()
	if err != nil {
		return ui.RedFg(err.Error())
	}

	if st.Count() == 0 {
		return lib.Subtle("The board is empty. Press a to add a post.")
	}

	// Tabs
	boardTab := fmt.Sprintf("%d posts", st.Count())
	if m.focus == focusArchive {
		return strings.Join([]string{tabColor(boardTab), selectedTabColor(m.archive.tabTitle())}, dividerBar)
	}
	return strings.Join([]string{selectedTabColor(boardTab), tabColor(m.archive.tabTitle())}, dividerBar)
}

func (m feedModel) populatedView(posts []v1.Post) string {
	var b strings.Builder

	// Empty states
	if len(posts) == 0 {
		b.WriteString("  " + ui.GrayFg("No posts on the board."))
	}

	if len(posts) > 0 {
		start, end := m.paginator.GetSliceBounds(len(posts))
		docs := posts[start:end]

		for i, p := range docs {
			postItemView(&b, m, i, p)
			if i != len(docs)-1 {
				fmt.Fprintf(&b, "\n\n")
			}
		}
	}

	// If there aren't enough items to fill up this page (always the last
	// page) then we need to add some newlines to fill up the space where
	// posts would have been.
	itemsOnPage := m.paginator.ItemsOnPage(len(posts))
	if itemsOnPage < m.paginator.PerPage {
		n := (m.paginator.PerPage - itemsOnPage) * feedViewItemHeight
		if len(posts) == 0 {
			n -= feedViewItemHeight - 1
		}
		for i := 0; i < n; i++ {
			fmt.Fprint(&b, "\n")
		}
	}

	return b.String()
}

func (m feedModel) helpView() (string, int) {
	var lines []string

	if m.showFullHelp {
		for _, col := range feedKeys.FullHelp() {
			for _, b := range col {
				lines = append(lines, fmt.Sprintf("%-8s %s", b.Help().Key, b.Help().Desc))
			}
		}
	} else {
		entries := []string{}
		for _, b := range feedKeys.ShortHelp() {
			entries = append(entries, fmt.Sprintf("%s %s", b.Help().Key, b.Help().Desc))
		}
		lines = append(lines, strings.Join(entries, dividerDot))
	}

	for i := range lines {
		lines[i] = "  " + ui.GrayFg(lines[i])
	}

	s := strings.Join(lines, "\n")
	return s, len(lines) + 1
}
