package model

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	lib "github.com/charmbracelet/charm/ui/common"
	"github.com/charmbracelet/lipgloss"

	v1 "github.com/postbox-tui/postbox/pkg/types/v1"
	"github.com/postbox-tui/postbox/pkg/ui"
)

const (
	formFieldTitle = iota
	formFieldBody
	formFieldCount
)

const postFieldCharacterLimit = 256

// formModel collects a new post. Submitting prepends it to the shared
// board; an entirely empty form submits to nothing at all.
type formModel struct {
	common     *commonModel
	titleInput textinput.Model
	bodyInput  textinput.Model
	focusIndex int
}

func newFormModel(common *commonModel) formModel {
	ti := textinput.NewModel()
	ti.Prompt = feedTextInputPromptStyle("Title: ")
	ti.CursorStyle = lipgloss.NewStyle().Foreground(fuchsia)
	ti.CharLimit = postFieldCharacterLimit

	bi := textinput.NewModel()
	bi.Prompt = feedTextInputPromptStyle("Body:  ")
	bi.CursorStyle = lipgloss.NewStyle().Foreground(fuchsia)
	bi.CharLimit = postFieldCharacterLimit

	return formModel{
		common:     common,
		titleInput: ti,
		bodyInput:  bi,
	}
}

// focus prepares the form for input, starting at the title field.
func (m *formModel) focus() tea.Cmd {
	m.focusIndex = formFieldTitle
	m.titleInput.Reset()
	m.bodyInput.Reset()
	m.titleInput.Focus()
	m.bodyInput.Blur()
	return textinput.Blink
}

func (m *formModel) setSize(width int) {
	w := width - feedViewHorizontalPadding*2
	m.titleInput.Width = w
	m.bodyInput.Width = w
}

func (m formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			m.cycleFocus(1)
			return m, textinput.Blink

		case "shift+tab", "up":
			m.cycleFocus(-1)
			return m, textinput.Blink

		case "enter":
			return m, m.submit()
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.titleInput, cmd = m.titleInput.Update(msg)
	cmds = append(cmds, cmd)
	m.bodyInput, cmd = m.bodyInput.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *formModel) cycleFocus(delta int) {
	m.focusIndex = (m.focusIndex + delta + formFieldCount) % formFieldCount
	if m.focusIndex == formFieldTitle {
		m.titleInput.Focus()
		m.bodyInput.Blur()
	} else {
		m.titleInput.Blur()
		m.bodyInput.Focus()
	}
}

// submit prepends the drafted post to the board. A form with an empty
// title or body is ignored without any message or state change. The check
// is against the exact empty string; whitespace counts as content.
func (m *formModel) submit() tea.Cmd {
	title := m.titleInput.Value()
	body := m.bodyInput.Value()

	if title == "" || body == "" {
		return nil
	}

	st, err := m.common.provider.Use()
	if err != nil {
		return errCmd(err)
	}

	p := v1.Post{Title: title, Body: body}
	st.AddPost(p)

	m.titleInput.Reset()
	m.bodyInput.Reset()

	return postAddedCmd(p)
}

func (m formModel) view() string {
	var b strings.Builder

	fmt.Fprintf(&b, "  %s\n\n", ui.GreenFg("New post"))
	fmt.Fprintf(&b, "  %s\n\n", m.titleInput.View())
	fmt.Fprintf(&b, "  %s\n\n", m.bodyInput.View())
	fmt.Fprintf(&b, "  %s", lib.Subtle("enter: post • tab: next field • esc: cancel"))

	return b.String()
}
