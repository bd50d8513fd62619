package config

import (
	"time"

	"github.com/alexisbeaulieu97/carousel/internal/carousel"
)

// Deck represents a slide deck document.
type Deck struct {
	Version     string   `yaml:"version" toml:"version" validate:"required,semver"`
	Name        string   `yaml:"name" toml:"name" validate:"required,min=1,max=100"`
	Description string   `yaml:"description,omitempty" toml:"description,omitempty"`
	Settings    Settings `yaml:"settings,omitempty" toml:"settings,omitempty"`
	Slides      []Slide  `yaml:"slides" toml:"slides" validate:"omitempty,dive"`
}

// Settings holds the navigator configuration. Pointer fields fall back to the
// navigator defaults when absent. Durations are in milliseconds.
type Settings struct {
	Autoplay       *bool  `yaml:"autoplay,omitempty" toml:"autoplay,omitempty"`
	AutoplaySpeed  *int   `yaml:"autoplay_speed,omitempty" toml:"autoplay_speed,omitempty" validate:"omitempty,min=1,max=3600000"`
	Infinite       *bool  `yaml:"infinite,omitempty" toml:"infinite,omitempty"`
	Speed          *int   `yaml:"speed,omitempty" toml:"speed,omitempty" validate:"omitempty,min=0,max=60000"`
	SlidesToShow   *int   `yaml:"slides_to_show,omitempty" toml:"slides_to_show,omitempty" validate:"omitempty,min=1,max=50"`
	SlidesToScroll *int   `yaml:"slides_to_scroll,omitempty" toml:"slides_to_scroll,omitempty" validate:"omitempty,min=1,max=50"`
	PauseOnHover   *bool  `yaml:"pause_on_hover,omitempty" toml:"pause_on_hover,omitempty"`
	RightToLeft    bool   `yaml:"rtl,omitempty" toml:"rtl,omitempty"`
	Vertical       bool   `yaml:"vertical,omitempty" toml:"vertical,omitempty"`
	Dots           *bool  `yaml:"dots,omitempty" toml:"dots,omitempty"`
	Arrows         *bool  `yaml:"arrows,omitempty" toml:"arrows,omitempty"`
	DotPosition    string `yaml:"dot_position,omitempty" toml:"dot_position,omitempty" validate:"omitempty,dot_position"`
	Effect         string `yaml:"effect,omitempty" toml:"effect,omitempty" validate:"omitempty,effect"`
	LazyLoad       bool   `yaml:"lazy_load,omitempty" toml:"lazy_load,omitempty"`
	AdaptiveHeight bool   `yaml:"adaptive_height,omitempty" toml:"adaptive_height,omitempty"`
	InitialSlide   int    `yaml:"initial_slide,omitempty" toml:"initial_slide,omitempty" validate:"min=0"`
}

// Slide is a single entry of the deck.
type Slide struct {
	ID    string `yaml:"id" toml:"id" validate:"required,slide_id"`
	Title string `yaml:"title,omitempty" toml:"title,omitempty" validate:"max=120"`
	Body  string `yaml:"body,omitempty" toml:"body,omitempty"`
	Image string `yaml:"image,omitempty" toml:"image,omitempty"`
	Alt   string `yaml:"alt,omitempty" toml:"alt,omitempty" validate:"required_with=Image"`
}

// SlideTitle returns the heading shown on the slide card.
func (s Slide) SlideTitle() string {
	return s.Title
}

// SlideBody returns the slide text, or the image reference when there is no
// text.
func (s Slide) SlideBody() string {
	if s.Body == "" && s.Image != "" {
		return "[" + s.Image + "]"
	}
	return s.Body
}

// CarouselConfig converts the settings into a navigator configuration.
func (d *Deck) CarouselConfig() carousel.Config {
	cfg := carousel.DefaultConfig()
	s := d.Settings

	if s.Autoplay != nil {
		cfg.Autoplay = *s.Autoplay
	}
	if s.AutoplaySpeed != nil {
		cfg.AutoplayInterval = millis(*s.AutoplaySpeed)
	}
	if s.Infinite != nil {
		cfg.Infinite = *s.Infinite
	}
	if s.Speed != nil {
		cfg.TransitionDuration = millis(*s.Speed)
	}
	if s.SlidesToShow != nil {
		cfg.SlidesToShow = *s.SlidesToShow
	}
	if s.SlidesToScroll != nil {
		cfg.SlidesToScroll = *s.SlidesToScroll
	}
	if s.PauseOnHover != nil {
		cfg.PauseOnHover = *s.PauseOnHover
	}
	if s.Dots != nil {
		cfg.Dots = *s.Dots
	}
	if s.Arrows != nil {
		cfg.Arrows = *s.Arrows
	}
	if s.DotPosition != "" {
		cfg.DotPosition = carousel.DotPosition(s.DotPosition)
	}
	if s.Effect != "" {
		cfg.Effect = carousel.Effect(s.Effect)
	}
	cfg.RightToLeft = s.RightToLeft
	cfg.Vertical = s.Vertical
	cfg.LazyLoad = s.LazyLoad
	cfg.AdaptiveHeight = s.AdaptiveHeight

	return cfg
}

// SlideSet converts the deck slides into navigator slides. Each slide's
// content is the Slide itself.
func (d *Deck) SlideSet() carousel.SlideSet {
	set := make(carousel.SlideSet, 0, len(d.Slides))
	for _, slide := range d.Slides {
		set = append(set, carousel.Slide{ID: slide.ID, Content: slide, Alt: slide.Alt})
	}
	return set
}

// InitialIndex is the slide the navigator starts on.
func (d *Deck) InitialIndex() int {
	return d.Settings.InitialSlide
}

func millis(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
