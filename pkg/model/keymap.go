package model

import (
	"github.com/charmbracelet/bubbles/key"
)

// feedKeyMap defines the bindings available while browsing the board. It
// satisfies key.Map so help lines can be built from the same source of
// truth the dispatcher matches against.
type feedKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Home     key.Binding
	End      key.Binding

	Search   key.Binding
	AddPost  key.Binding
	Archive  key.Binding
	Clear    key.Binding
	Open     key.Binding
	DarkMode key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var feedKeys = defaultFeedKeyMap()

func defaultFeedKeyMap() feedKeyMap {
	return feedKeyMap{
		// Browsing.
		Up: key.NewBinding(
			key.WithKeys("up", "k", "ctrl+k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "ctrl+j"),
			key.WithHelp("↓/j", "down"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("b", "u", "pgup"),
			key.WithHelp("b/pgup", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("f", "d", "pgdown"),
			key.WithHelp("f/pgdn", "next page"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g/home", "go to start"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G/end", "go to end"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		AddPost: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add post"),
		),
		Archive: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "archive"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear all"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "v"),
			key.WithHelp("enter", "read post"),
		),
		DarkMode: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "dark mode"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view. It's part
// of the key.Map interface.
func (k feedKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.AddPost, k.Archive, k.Clear, k.Help}
}

// FullHelp returns keybindings for the expanded help view. It's part of the
// key.Map interface.
func (k feedKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage, k.Home, k.End},
		{k.Search, k.AddPost, k.Open, k.Archive, k.Clear},
		{k.DarkMode, k.Help, k.Quit},
	}
}
