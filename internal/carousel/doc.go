// Package carousel implements the slide navigator behind the carousel
// component: the index state, the transition guard, the self-rescheduling
// autoplay timer and the input router that maps key and pointer events to
// navigation requests.
//
// # Event loop
//
// A Navigator is owned by a single event loop and is not safe for concurrent
// use. All timing goes through a Scheduler, whose implementations must run
// scheduled tasks on that same loop:
//
//	sched := schedule.NewManual(time.Time{})
//	nav := carousel.New(slides, carousel.DefaultConfig(), sched,
//		carousel.WithAfterChange(func(i int) { fmt.Println("now at", i) }),
//	)
//	nav.Next()
//	sched.Advance(500 * time.Millisecond)
//
// # Requests
//
// Requests never fail. Out-of-range targets are wrapped (Infinite) or
// clamped, redundant targets are ignored, and a request that arrives while a
// transition is in flight is dropped rather than queued.
//
// # Autoplay
//
// The autoplay timer is a one-shot timer that is re-armed after every
// committed index change, so the next automatic advance always waits a full
// AutoplayInterval after the most recent navigation, manual or automatic.
package carousel
