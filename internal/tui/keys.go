package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/carousel/internal/carousel"
)

type keyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Home  key.Binding
	End   key.Binding
	Page  key.Binding
	Pause key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last"),
		),
		Page: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "page"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// forConfig hides the arrow pair the carousel ignores.
func (k keyMap) forConfig(cfg carousel.Config) keyMap {
	k.Left.SetEnabled(!cfg.Vertical)
	k.Right.SetEnabled(!cfg.Vertical)
	k.Up.SetEnabled(cfg.Vertical)
	k.Down.SetEnabled(cfg.Vertical)
	return k
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Pause, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Home, k.End, k.Page},
		{k.Pause, k.Help, k.Quit},
	}
}

// inputFor maps a navigation binding to the router input it stands for.
func (k keyMap) inputFor(msg interface{ String() string }) carousel.Input {
	switch {
	case matches(msg, k.Left):
		return carousel.InputLeft
	case matches(msg, k.Right):
		return carousel.InputRight
	case matches(msg, k.Up):
		return carousel.InputUp
	case matches(msg, k.Down):
		return carousel.InputDown
	case matches(msg, k.Home):
		return carousel.InputHome
	case matches(msg, k.End):
		return carousel.InputEnd
	default:
		return carousel.InputNone
	}
}

// matches compares against every key of b, enabled or not; the router
// decides what a disabled direction does.
func matches(msg interface{ String() string }, b key.Binding) bool {
	for _, k := range b.Keys() {
		if msg.String() == k {
			return true
		}
	}
	return false
}
