package carousel

import "time"

// Timer is a pending one-shot task returned by a Scheduler.
type Timer interface {
	// Stop prevents the task from running and reports whether it was still
	// pending.
	Stop() bool
}

// Scheduler runs fn once after d has elapsed. Implementations must invoke fn
// on the goroutine that drives the Navigator.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}
