package model

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/postbox-tui/postbox/pkg/generator"
	v1 "github.com/postbox-tui/postbox/pkg/types/v1"
)

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// applicationContext indicates the area of the application something applies
// to. Occasionally used as an argument to commands and messages.
type applicationContext int

const (
	feedContext applicationContext = iota
	pagerContext
)

type statusMessageTimeoutMsg applicationContext

// archiveLoadedMsg carries the one-shot generated archive collection.
type archiveLoadedMsg []v1.Post

// openPostMsg asks the root to show a post in the reader.
type openPostMsg v1.Post

type contentRenderedMsg string

// postAddedMsg reports that the form already prepended a post to the board.
type postAddedMsg v1.Post

// archiveAddedMsg reports that an archive entry was copied onto the board.
type archiveAddedMsg v1.Post

type configChangedMsg struct{}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg { return errMsg{err} }
}

func openPostCmd(p v1.Post) tea.Cmd {
	return func() tea.Msg { return openPostMsg(p) }
}

func postAddedCmd(p v1.Post) tea.Cmd {
	return func() tea.Msg { return postAddedMsg(p) }
}

func archiveAddedCmd(p v1.Post) tea.Cmd {
	return func() tea.Msg { return archiveAddedMsg(p) }
}

// generateArchiveCmd mints the archive collection off the update loop. It
// runs exactly once, at startup; the result is immutable afterwards.
func generateArchiveCmd(gen *generator.Generator, n int) tea.Cmd {
	return func() tea.Msg {
		return archiveLoadedMsg(gen.Posts(n))
	}
}

func waitForStatusMessageTimeout(appCtx applicationContext, t *time.Timer) tea.Cmd {
	return func() tea.Msg {
		<-t.C
		return statusMessageTimeoutMsg(appCtx)
	}
}

// waitForConfigChange blocks on the config watcher and reports the next
// write. The root re-issues it after every reload.
func waitForConfigChange(w *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return nil
				}
				if event.Op&fsnotify.Write == fsnotify.Write {
					return configChangedMsg{}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				return errMsg{err}
			}
		}
	}
}
