package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/carousel/internal/carousel"
	"github.com/alexisbeaulieu97/carousel/pkg/diff"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case timerFiredMsg:
		m.sched.fire(msg.id)

	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case DeckChangedMsg:
		m.reloadDeck()
		cmds = append(cmds, waitForChange(m.changes))
	}

	cmds = append(cmds, m.sched.flush())
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.nav.Close()
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keys.Pause):
		m.nav.SetPaused(!m.nav.State().IsPaused)
		return nil
	case key.Matches(msg, m.keys.Page):
		page, err := strconv.Atoi(msg.String())
		if err == nil && page >= 1 && page <= m.nav.PageCount() {
			m.nav.GoToPage(page - 1)
		}
		return nil
	}

	if in := m.keys.inputFor(msg); in != carousel.InputNone {
		action := m.nav.HandleInput(in)
		m.log.Debug("key routed", "key", msg.String(), "input", in.String(), "action", action.String())
	}
	return nil
}

// handleMouse turns pointer motion across the carousel frame into
// enter and leave inputs.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	inside := m.inFrame(msg.X, msg.Y)
	if inside == m.hovering {
		return
	}
	m.hovering = inside

	in := carousel.InputPointerLeave
	if inside {
		in = carousel.InputPointerEnter
	}
	m.nav.HandleInput(in)
}

func (m Model) inFrame(x, y int) bool {
	top := lipgloss.Height(m.header())
	frame := m.frame()
	return x >= 0 && x < lipgloss.Width(frame) && y >= top && y < top+lipgloss.Height(frame)
}

func (m *Model) reloadDeck() {
	if m.reload == nil {
		return
	}

	update, err := m.reload()
	if err != nil {
		m.lastErr = "reload failed: " + err.Error()
		m.log.Warn("deck reload failed", "error", err)
		return
	}

	change := diff.Slides(m.nav.Slides().IDs(), update.Slides.IDs())
	if m.log.Enabled(zerolog.DebugLevel) {
		m.log.Debug("slide ids changed", "diff", diff.Unified(m.nav.Slides().IDs(), update.Slides.IDs(), "previous", "reloaded"))
	}

	m.nav.Reconfigure(update.Config)
	m.nav.ReplaceSlides(update.Slides)
	m.keys = m.keys.forConfig(m.nav.Config())
	if update.Title != "" {
		m.title = update.Title
	}
	m.lastErr = ""
	m.reloadNote = "reloaded: " + change.String()
	m.log.Info("deck reloaded", "slides", len(update.Slides), "added", len(change.Added), "removed", len(change.Removed))
}
