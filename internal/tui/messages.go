package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/carousel/internal/carousel"
	"github.com/alexisbeaulieu97/carousel/internal/watch"
)

// DeckUpdate is a freshly loaded deck ready to replace the running one.
type DeckUpdate struct {
	Title  string
	Config carousel.Config
	Slides carousel.SlideSet
}

// ReloadFunc loads the deck again after its file changed.
type ReloadFunc func() (DeckUpdate, error)

// DeckChangedMsg reports that the deck file changed on disk.
type DeckChangedMsg struct {
	Event watch.Event
}

// waitForChange blocks on the watcher channel and reports the next change.
// A nil channel yields no command.
func waitForChange(changes <-chan watch.Event) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-changes
		if !ok {
			return nil
		}
		return DeckChangedMsg{Event: ev}
	}
}
