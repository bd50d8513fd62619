// Package schedule provides carousel.Scheduler implementations that do not
// depend on a UI runtime.
package schedule

import (
	"sort"
	"time"

	"github.com/alexisbeaulieu97/carousel/internal/carousel"
)

// Manual is a virtual clock. Tasks run only when the clock is advanced, on
// the goroutine calling Advance, in due-time order with ties broken by
// scheduling order.
type Manual struct {
	now   time.Time
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	owner *Manual
	due   time.Time
	seq   uint64
	fn    func()
	done  bool
}

// Stop implements carousel.Timer.
func (t *manualTask) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.owner.remove(t)
	return true
}

// NewManual returns a clock reading start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the virtual time.
func (m *Manual) Now() time.Time {
	return m.now
}

// AfterFunc implements carousel.Scheduler.
func (m *Manual) AfterFunc(d time.Duration, fn func()) carousel.Timer {
	if d < 0 {
		d = 0
	}
	m.seq++
	task := &manualTask{owner: m, due: m.now.Add(d), seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, task)
	return task
}

// Pending returns the number of tasks waiting to run.
func (m *Manual) Pending() int {
	return len(m.tasks)
}

// NextDue returns the due time of the earliest pending task.
func (m *Manual) NextDue() (time.Time, bool) {
	task := m.earliest()
	if task == nil {
		return time.Time{}, false
	}
	return task.due, true
}

// Advance moves the clock forward by d, running every task that falls due
// on the way, including tasks scheduled by tasks. It returns the number of
// tasks run.
func (m *Manual) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	return m.AdvanceTo(m.now.Add(d))
}

// AdvanceTo moves the clock to target. A target in the past runs only the
// tasks already due.
func (m *Manual) AdvanceTo(target time.Time) int {
	if target.Before(m.now) {
		target = m.now
	}
	ran := 0
	for {
		task := m.earliest()
		if task == nil || task.due.After(target) {
			break
		}
		m.now = task.due
		task.done = true
		m.remove(task)
		task.fn()
		ran++
	}
	m.now = target
	return ran
}

// Drain runs pending tasks in order until none remain or limit tasks have
// run, advancing the clock to each due time. It returns the number run.
func (m *Manual) Drain(limit int) int {
	ran := 0
	for ran < limit {
		task := m.earliest()
		if task == nil {
			break
		}
		ran += m.AdvanceTo(task.due)
	}
	return ran
}

func (m *Manual) earliest() *manualTask {
	if len(m.tasks) == 0 {
		return nil
	}
	sort.SliceStable(m.tasks, func(i, j int) bool {
		a, b := m.tasks[i], m.tasks[j]
		if a.due.Equal(b.due) {
			return a.seq < b.seq
		}
		return a.due.Before(b.due)
	})
	return m.tasks[0]
}

func (m *Manual) remove(target *manualTask) {
	for i, task := range m.tasks {
		if task == target {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return
		}
	}
}

var _ carousel.Scheduler = (*Manual)(nil)
