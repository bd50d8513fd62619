package components

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/carousel/internal/carousel"
)

// SlideText is implemented by slide content that carries a title and body.
type SlideText interface {
	SlideTitle() string
	SlideBody() string
}

// LazyPlaceholder is shown in place of slide content that LazyLoad skips.
const LazyPlaceholder = "…"

const defaultSlideWidth = 36

// Carousel renders one frame of a navigator: the visible slides, the edge
// arrows, the paging dots and a status line.
type Carousel struct {
	BaseComponent
	nav        *carousel.Navigator
	slideWidth int
	showStatus bool
}

// NewCarousel creates a view over nav. The view reads the navigator each
// time it renders.
func NewCarousel(nav *carousel.Navigator) *Carousel {
	return &Carousel{
		BaseComponent: NewBaseComponent(),
		nav:           nav,
		showStatus:    true,
	}
}

// WithSlideWidth fixes the outer width of each slide card.
func (c *Carousel) WithSlideWidth(width int) *Carousel {
	c.slideWidth = width
	return c
}

// WithStatus toggles the status line.
func (c *Carousel) WithStatus(show bool) *Carousel {
	c.showStatus = show
	return c
}

// View renders the carousel.
func (c *Carousel) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the carousel with the given context.
func (c *Carousel) ViewWithContext(ctx RenderContext) string {
	snap := c.nav.View()
	cfg := c.nav.Config()

	if snap.Empty() {
		empty := NewCard(MutedText("No slides")).WithWidth(c.cardWidth(ctx, cfg, 1))
		return c.ComputeStyle(ctx.Theme).Render(empty.ViewWithContext(ctx))
	}

	track := c.track(ctx, snap, cfg)
	if cfg.Arrows {
		track = c.withArrows(track, snap, cfg)
	}

	var frame Renderable = track
	if cfg.Dots {
		frame = c.withDots(track, snap, cfg)
	}

	content := VStack(frame)
	if c.showStatus {
		content.Add(c.status(snap, cfg))
	}

	return c.ComputeStyle(ctx.Theme).Render(content.ViewWithContext(ctx))
}

func (c *Carousel) track(ctx RenderContext, snap carousel.Snapshot, cfg carousel.Config) *Stack {
	slides := c.nav.Slides()
	width := c.cardWidth(ctx, cfg, len(snap.Visible))

	cards := make([]Renderable, 0, len(snap.Visible))
	for _, index := range snap.Visible {
		cards = append(cards, c.slideCard(slides[index], index, snap, cfg, width))
	}

	if cfg.RightToLeft && !cfg.Vertical {
		for i, j := 0, len(cards)-1; i < j; i, j = i+1, j-1 {
			cards[i], cards[j] = cards[j], cards[i]
		}
	}

	if cfg.Vertical {
		return VStack(cards...)
	}
	return HStack(cards...).WithGap(1)
}

func (c *Carousel) slideCard(slide carousel.Slide, index int, snap carousel.Snapshot, cfg carousel.Config, width int) *Card {
	var children []Renderable
	title := slide.ID

	if c.nav.ShouldRenderContent(index) {
		switch content := slide.Content.(type) {
		case SlideText:
			if content.SlideTitle() != "" {
				title = content.SlideTitle()
			}
			if body := content.SlideBody(); body != "" {
				children = append(children, NewText(body))
			}
		case fmt.Stringer:
			children = append(children, NewText(content.String()))
		case string:
			children = append(children, NewText(content))
		case nil:
		default:
			children = append(children, NewText(fmt.Sprint(content)))
		}
	} else {
		children = append(children, MutedText(LazyPlaceholder))
	}

	if slide.Alt != "" {
		children = append(children, MutedText(slide.Alt))
	}

	card := NewCard(children...).WithTitle(title).WithWidth(width)
	if index == snap.Index {
		card.WithAppliers(Border(BorderVariantThick), BorderColour(PalettePrimary))
	} else {
		card.WithAppliers(BorderColour(PaletteNeutral))
	}
	if snap.IsTransitioning && cfg.Effect == carousel.EffectFade {
		card.WithAppliers(Typography(TypographyVariantMuted))
	}
	return card
}

// withArrows places the previous and next controls around the track. Reading
// direction decides which side each one sits on.
func (c *Carousel) withArrows(track *Stack, snap carousel.Snapshot, cfg carousel.Config) *Stack {
	prev := NewButton(previousGlyph(cfg)).WithDisabled(snap.Affordances.PreviousDisabled)
	next := NewButton(nextGlyph(cfg)).WithDisabled(snap.Affordances.NextDisabled)

	switch {
	case cfg.Vertical:
		return VStack(prev, track, next).WithCrossAlign(CrossCenter)
	case cfg.RightToLeft:
		return HStack(next, track, prev).WithGap(1).WithCrossAlign(CrossCenter)
	default:
		return HStack(prev, track, next).WithGap(1).WithCrossAlign(CrossCenter)
	}
}

func previousGlyph(cfg carousel.Config) string {
	switch {
	case cfg.Vertical:
		return "▲"
	case cfg.RightToLeft:
		return "›"
	default:
		return "‹"
	}
}

func nextGlyph(cfg carousel.Config) string {
	switch {
	case cfg.Vertical:
		return "▼"
	case cfg.RightToLeft:
		return "‹"
	default:
		return "›"
	}
}

func (c *Carousel) withDots(track *Stack, snap carousel.Snapshot, cfg carousel.Config) *Stack {
	dots := make([]Renderable, 0, snap.PageCount)
	for page := 0; page < snap.PageCount; page++ {
		if page == snap.ActivePage {
			dots = append(dots, NewText(Dot(true)).WithAppliers(Foreground(PalettePrimary)))
			continue
		}
		dots = append(dots, NewText(Dot(false)).WithAppliers(Foreground(PaletteNeutral)))
	}

	switch cfg.DotPosition {
	case carousel.DotsTop:
		return VStack(HStack(dots...).WithGap(1), track).WithCrossAlign(CrossCenter)
	case carousel.DotsLeft:
		return HStack(VStack(dots...), track).WithGap(1).WithCrossAlign(CrossCenter)
	case carousel.DotsRight:
		return HStack(track, VStack(dots...)).WithGap(1).WithCrossAlign(CrossCenter)
	default:
		return VStack(track, HStack(dots...).WithGap(1)).WithCrossAlign(CrossCenter)
	}
}

// Dot returns the glyph for a paging dot.
func Dot(active bool) string {
	if active {
		return "●"
	}
	return "○"
}

func (c *Carousel) status(snap carousel.Snapshot, cfg carousel.Config) *Stack {
	badges := []Renderable{
		InfoBadge(fmt.Sprintf("%d/%d", snap.Index+1, snap.Total)),
	}

	switch {
	case snap.IsPaused:
		badges = append(badges, WarningBadge("paused"))
	case snap.Autoplay == carousel.AutoplayArmed:
		badges = append(badges, SuccessBadge(fmt.Sprintf("autoplay %s", cfg.AutoplayInterval)))
	}
	if snap.IsTransitioning {
		badges = append(badges, PrimaryBadge(strings.ToLower(string(cfg.Effect))))
	}
	if snap.Source == carousel.SourceExternal {
		badges = append(badges, SecondaryBadge("controlled"))
	}

	return HStack(badges...).WithGap(1)
}

func (c *Carousel) cardWidth(ctx RenderContext, cfg carousel.Config, visible int) int {
	if c.slideWidth > 0 {
		return c.slideWidth
	}
	if ctx.Width <= 0 || visible <= 0 {
		return defaultSlideWidth
	}

	available := ctx.Width
	if cfg.Arrows && !cfg.Vertical {
		// padded glyph plus gap on each side
		available -= 8
	}
	if cfg.Dots && (cfg.DotPosition == carousel.DotsLeft || cfg.DotPosition == carousel.DotsRight) {
		available -= 2
	}
	if !cfg.Vertical {
		available -= visible - 1
		available /= visible
	}
	return max(available, 12)
}
