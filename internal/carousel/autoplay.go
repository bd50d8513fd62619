package carousel

// AutoplayState is the observable state of the autoplay timer.
type AutoplayState int

const (
	// AutoplayIdle means no autoplay timer is armed.
	AutoplayIdle AutoplayState = iota
	// AutoplayArmed means the timer is counting down.
	AutoplayArmed
)

func (s AutoplayState) String() string {
	if s == AutoplayArmed {
		return "armed"
	}
	return "idle"
}

// Autoplay reports whether the autoplay timer is armed.
func (n *Navigator) Autoplay() AutoplayState {
	if n.autoplayTimer != nil {
		return AutoplayArmed
	}
	return AutoplayIdle
}

// SetPaused records the hover-pause condition. Pausing disarms the autoplay
// timer; resuming arms a fresh full interval. An in-flight transition is not
// affected either way.
func (n *Navigator) SetPaused(paused bool) {
	if n.closed || n.state.IsPaused == paused {
		return
	}
	n.state.IsPaused = paused
	if paused {
		n.cancelAutoplay()
		n.log.Debug("autoplay paused", "index", n.state.CurrentIndex)
		return
	}
	n.armAutoplay()
}

func (n *Navigator) shouldAutoplay() bool {
	return !n.closed && n.cfg.Autoplay && !n.state.IsPaused && len(n.slides) > 1
}

// armAutoplay restarts the countdown from now, or leaves the timer idle when
// autoplay conditions do not hold.
func (n *Navigator) armAutoplay() {
	n.cancelAutoplay()
	if !n.shouldAutoplay() {
		return
	}
	gen := n.autoplayGen
	n.autoplayTimer = n.sched.AfterFunc(n.cfg.AutoplayInterval, func() {
		n.fireAutoplay(gen)
	})
	n.log.Debug("autoplay armed", "interval", n.cfg.AutoplayInterval, "index", n.state.CurrentIndex)
}

func (n *Navigator) cancelAutoplay() {
	if n.autoplayTimer != nil {
		n.autoplayTimer.Stop()
		n.autoplayTimer = nil
	}
	n.autoplayGen++
}

func (n *Navigator) fireAutoplay(gen uint64) {
	if n.closed || gen != n.autoplayGen {
		return
	}
	n.autoplayTimer = nil
	n.autoplayGen++
	n.log.Debug("autoplay fired", "index", n.state.CurrentIndex)

	n.GoTo(n.state.CurrentIndex + n.cfg.SlidesToScroll)

	// A committed change re-arms on its own; a dropped or redundant request
	// leaves the timer idle.
	if n.autoplayTimer == nil {
		n.armAutoplay()
	}
}
