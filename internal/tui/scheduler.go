package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/carousel/internal/carousel"
)

// timerFiredMsg is delivered by the tick command of a scheduled task.
type timerFiredMsg struct {
	id uint64
}

// teaScheduler runs navigator timers on the bubbletea event loop. Each
// AfterFunc queues a tea.Tick command; the task itself runs inside Update
// when the tick comes back, so the navigator only ever sees the program's
// goroutine.
type teaScheduler struct {
	next   uint64
	tasks  map[uint64]func()
	queued []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{tasks: make(map[uint64]func())}
}

type teaTimer struct {
	sched *teaScheduler
	id    uint64
}

// Stop implements carousel.Timer.
func (t teaTimer) Stop() bool {
	if _, ok := t.sched.tasks[t.id]; !ok {
		return false
	}
	delete(t.sched.tasks, t.id)
	return true
}

// AfterFunc implements carousel.Scheduler.
func (s *teaScheduler) AfterFunc(d time.Duration, fn func()) carousel.Timer {
	if d < 0 {
		d = 0
	}
	s.next++
	id := s.next
	s.tasks[id] = fn
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{id: id}
	}))
	return teaTimer{sched: s, id: id}
}

// fire runs the task for id. Ticks for stopped tasks are ignored.
func (s *teaScheduler) fire(id uint64) bool {
	fn, ok := s.tasks[id]
	if !ok {
		return false
	}
	delete(s.tasks, id)
	fn()
	return true
}

// pending returns the number of tasks still waiting for their tick.
func (s *teaScheduler) pending() int {
	return len(s.tasks)
}

// flush hands the queued tick commands to the program.
func (s *teaScheduler) flush() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

var _ carousel.Scheduler = (*teaScheduler)(nil)
