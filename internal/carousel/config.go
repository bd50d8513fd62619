package carousel

import "time"

// DotPosition places the paging dots around the viewport.
type DotPosition string

const (
	DotsTop    DotPosition = "top"
	DotsBottom DotPosition = "bottom"
	DotsLeft   DotPosition = "left"
	DotsRight  DotPosition = "right"
)

// Effect selects how the rendering layer presents a slide change.
type Effect string

const (
	EffectSlide   Effect = "slide"
	EffectFade    Effect = "fade"
	EffectScrollX Effect = "scrollx"
)

const (
	DefaultAutoplayInterval   = 3000 * time.Millisecond
	DefaultTransitionDuration = 500 * time.Millisecond
)

// Config is the immutable per-navigator configuration supplied by the owning
// view. Replace it wholesale with Navigator.Reconfigure.
type Config struct {
	Autoplay           bool
	AutoplayInterval   time.Duration
	Infinite           bool
	TransitionDuration time.Duration
	SlidesToShow       int
	SlidesToScroll     int
	PauseOnHover       bool
	RightToLeft        bool
	Vertical           bool

	// Display flags. The navigator carries them for the rendering layer and
	// uses LazyLoad for ShouldRenderContent; the rest never affect state.
	Dots           bool
	Arrows         bool
	DotPosition    DotPosition
	Effect         Effect
	LazyLoad       bool
	AdaptiveHeight bool
}

// DefaultConfig mirrors the component's documented defaults.
func DefaultConfig() Config {
	return Config{
		Autoplay:           false,
		AutoplayInterval:   DefaultAutoplayInterval,
		Infinite:           true,
		TransitionDuration: DefaultTransitionDuration,
		SlidesToShow:       1,
		SlidesToScroll:     1,
		PauseOnHover:       true,
		Dots:               true,
		Arrows:             true,
		DotPosition:        DotsBottom,
		Effect:             EffectSlide,
	}
}

// normalized raises counts below one to one, replaces a non-positive
// autoplay interval with the default and floors negative transition
// durations at zero.
func (c Config) normalized() Config {
	if c.SlidesToShow < 1 {
		c.SlidesToShow = 1
	}
	if c.SlidesToScroll < 1 {
		c.SlidesToScroll = 1
	}
	if c.AutoplayInterval <= 0 {
		c.AutoplayInterval = DefaultAutoplayInterval
	}
	if c.TransitionDuration < 0 {
		c.TransitionDuration = 0
	}
	switch c.DotPosition {
	case DotsTop, DotsBottom, DotsLeft, DotsRight:
	default:
		c.DotPosition = DotsBottom
	}
	switch c.Effect {
	case EffectSlide, EffectFade, EffectScrollX:
	default:
		c.Effect = EffectSlide
	}
	return c
}

// autoplayChanged reports whether moving from c to next affects the autoplay
// countdown.
func (c Config) autoplayChanged(next Config) bool {
	return c.Autoplay != next.Autoplay ||
		c.AutoplayInterval != next.AutoplayInterval ||
		c.SlidesToScroll != next.SlidesToScroll ||
		c.SlidesToShow != next.SlidesToShow ||
		c.Infinite != next.Infinite
}
