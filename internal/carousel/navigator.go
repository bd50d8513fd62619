package carousel

import (
	"github.com/alexisbeaulieu97/carousel/internal/logger"
)

// State is the navigator's mutable state.
type State struct {
	CurrentIndex    int
	IsTransitioning bool
	IsPaused        bool
}

// IndexSource names the authority for the rendered index.
type IndexSource int

const (
	// SourceInternal renders the navigator's own CurrentIndex.
	SourceInternal IndexSource = iota
	// SourceExternal renders the value pinned by Control.
	SourceExternal
)

func (s IndexSource) String() string {
	if s == SourceExternal {
		return "external"
	}
	return "internal"
}

// Option customises a Navigator at construction.
type Option func(*Navigator)

// WithInitialIndex seeds CurrentIndex. The value is wrapped or clamped like
// any other request.
func WithInitialIndex(index int) Option {
	return func(n *Navigator) {
		n.initialIndex = index
	}
}

// WithBeforeChange registers the notification fired just before a change is
// committed.
func WithBeforeChange(fn func(current, next int)) Option {
	return func(n *Navigator) {
		n.beforeChange = fn
	}
}

// WithAfterChange registers the notification fired when a transition
// completes.
func WithAfterChange(fn func(current int)) Option {
	return func(n *Navigator) {
		n.afterChange = fn
	}
}

// WithLogger attaches a logger for debug events.
func WithLogger(log *logger.Logger) Option {
	return func(n *Navigator) {
		n.log = log
	}
}

// Navigator owns the carousel state and arbitrates every request to change
// the visible slide.
type Navigator struct {
	cfg    Config
	slides SlideSet
	sched  Scheduler
	log    *logger.Logger

	beforeChange func(current, next int)
	afterChange  func(current int)

	state        State
	initialIndex int

	source     IndexSource
	controlled int

	transitionGen   uint64
	transitionTimer Timer

	autoplayGen   uint64
	autoplayTimer Timer

	closed bool
}

// New mounts a navigator over slides. The autoplay timer is armed
// immediately when the configuration calls for it.
func New(slides SlideSet, cfg Config, sched Scheduler, opts ...Option) *Navigator {
	n := &Navigator{
		cfg:    cfg.normalized(),
		slides: slides.clone(),
		sched:  sched,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}

	n.state.CurrentIndex = n.resolve(n.initialIndex)
	n.log.Debug("navigator mounted",
		"slides", len(n.slides),
		"index", n.state.CurrentIndex,
		"autoplay", n.cfg.Autoplay,
	)
	n.armAutoplay()
	return n
}

// State returns a copy of the navigator state.
func (n *Navigator) State() State {
	return n.state
}

// Config returns the active configuration.
func (n *Navigator) Config() Config {
	return n.cfg
}

// Slides returns the current SlideSet.
func (n *Navigator) Slides() SlideSet {
	return n.slides.clone()
}

// Len returns the number of slides.
func (n *Navigator) Len() int {
	return len(n.slides)
}

// Closed reports whether Close has been called.
func (n *Navigator) Closed() bool {
	return n.closed
}

// GoTo requests a change to target. The request is dropped while a
// transition is in flight, normalized by the wrap/clamp policy and ignored
// when it resolves to the current index.
func (n *Navigator) GoTo(target int) {
	if n.closed || len(n.slides) == 0 {
		return
	}
	if n.state.IsTransitioning {
		n.log.Debug("request dropped during transition", "target", target, "index", n.state.CurrentIndex)
		return
	}

	next := n.resolve(target)
	if next == n.state.CurrentIndex {
		return
	}
	n.commit(next)
}

// Next requests the slide SlidesToScroll ahead.
func (n *Navigator) Next() {
	if n.Affordances().NextDisabled {
		return
	}
	n.GoTo(n.state.CurrentIndex + n.cfg.SlidesToScroll)
}

// Previous requests the slide SlidesToScroll behind.
func (n *Navigator) Previous() {
	if n.Affordances().PreviousDisabled {
		return
	}
	n.GoTo(n.state.CurrentIndex - n.cfg.SlidesToScroll)
}

// First requests the first slide.
func (n *Navigator) First() {
	n.GoTo(0)
}

// Last requests the last slide.
func (n *Navigator) Last() {
	n.GoTo(len(n.slides) - 1)
}

// Reconfigure swaps in a new configuration snapshot. The autoplay countdown
// restarts only when an autoplay-relevant field changed or the timer must
// start or stop.
func (n *Navigator) Reconfigure(cfg Config) {
	if n.closed {
		return
	}
	next := cfg.normalized()
	changed := n.cfg.autoplayChanged(next)
	n.cfg = next

	switch {
	case !n.shouldAutoplay():
		n.cancelAutoplay()
	case changed || n.autoplayTimer == nil:
		n.armAutoplay()
	}
}

// ReplaceSlides destroys the current navigation state and starts over with
// slides. Pending timers are cancelled, CurrentIndex is reseeded from the
// initial index and any in-flight transition is abandoned without
// notification. The pause condition is kept.
func (n *Navigator) ReplaceSlides(slides SlideSet) {
	if n.closed {
		return
	}
	n.cancelTransition()
	n.cancelAutoplay()

	n.slides = slides.clone()
	n.state.IsTransitioning = false
	n.state.CurrentIndex = n.resolve(n.initialIndex)
	n.log.Debug("slides replaced", "slides", len(n.slides), "index", n.state.CurrentIndex)
	n.armAutoplay()
}

// Close unmounts the navigator. Every pending timer is cancelled and later
// requests are ignored.
func (n *Navigator) Close() {
	if n.closed {
		return
	}
	n.cancelTransition()
	n.cancelAutoplay()
	n.closed = true
	n.log.Debug("navigator closed")
}

// Control pins the rendered index to an externally owned value. Requests
// keep updating and comparing against the internal index.
func (n *Navigator) Control(index int) {
	n.source = SourceExternal
	n.controlled = index
}

// Release hands rendering authority back to the navigator.
func (n *Navigator) Release() {
	n.source = SourceInternal
}

// Source reports which index is rendered.
func (n *Navigator) Source() IndexSource {
	return n.source
}

// RenderedIndex is the index the view should display.
func (n *Navigator) RenderedIndex() int {
	if n.source == SourceExternal {
		return n.clampToSlides(n.controlled)
	}
	return n.state.CurrentIndex
}

// Affordances reports the disabled state of the previous and next controls
// for the internal index, which gates Previous and Next.
func (n *Navigator) Affordances() Affordances {
	return n.affordancesAt(n.state.CurrentIndex)
}

func (n *Navigator) affordancesAt(index int) Affordances {
	total := len(n.slides)
	if total == 0 {
		return Affordances{PreviousDisabled: true, NextDisabled: true}
	}
	if n.cfg.Infinite {
		return Affordances{}
	}
	return Affordances{
		PreviousDisabled: index == 0,
		NextDisabled:     index >= total-n.cfg.SlidesToShow,
	}
}

// Affordances carries the advisory disabled flags for the edge controls.
type Affordances struct {
	PreviousDisabled bool
	NextDisabled     bool
}

func (n *Navigator) commit(next int) {
	current := n.state.CurrentIndex

	// Mark the transition before notifying so a request made from the
	// callback is dropped.
	n.state.IsTransitioning = true
	n.transitionGen++
	gen := n.transitionGen
	if n.beforeChange != nil {
		n.beforeChange(current, next)
	}
	if n.closed || gen != n.transitionGen {
		return
	}

	n.state.CurrentIndex = next
	n.transitionTimer = n.sched.AfterFunc(n.cfg.TransitionDuration, func() {
		n.completeTransition(gen, next)
	})
	n.log.Debug("transition committed", "from", current, "to", next, "generation", gen)

	n.armAutoplay()
}

func (n *Navigator) completeTransition(gen uint64, index int) {
	if n.closed || gen != n.transitionGen || !n.state.IsTransitioning {
		n.log.Debug("stale transition completion ignored", "generation", gen)
		return
	}
	n.transitionTimer = nil
	n.state.IsTransitioning = false
	if n.afterChange != nil {
		n.afterChange(index)
	}
}

func (n *Navigator) cancelTransition() {
	if n.transitionTimer != nil {
		n.transitionTimer.Stop()
		n.transitionTimer = nil
	}
	n.transitionGen++
}

// resolve applies the wrap or clamp policy. It returns 0 for an empty set.
func (n *Navigator) resolve(target int) int {
	total := len(n.slides)
	if total == 0 {
		return 0
	}
	if n.cfg.Infinite {
		return ((target % total) + total) % total
	}
	return clamp(target, 0, n.maxIndex())
}

func (n *Navigator) maxIndex() int {
	limit := len(n.slides) - n.cfg.SlidesToShow
	if limit < 0 {
		return 0
	}
	return limit
}

func (n *Navigator) clampToSlides(index int) int {
	if len(n.slides) == 0 {
		return 0
	}
	return clamp(index, 0, len(n.slides)-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
