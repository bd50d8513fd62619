package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Card is a bordered box stacking an optional title above its children.
type Card struct {
	BaseComponent
	title    string
	children []Renderable
	width    int
	height   int
}

// NewCard creates a new card with rounded border and horizontal padding.
func NewCard(children ...Renderable) *Card {
	card := &Card{
		BaseComponent: NewBaseComponent(),
		children:      children,
	}
	card.SetAppliers(
		Border(BorderVariantRounded),
		PaddingX(SpacingSizeSmall),
	)
	return card
}

// View renders the card.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card. A fixed width includes the border and
// padding; children are laid out in what remains.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)

	width := c.width
	if width == 0 && ctx.Width > 0 {
		width = ctx.Width
	}

	inner := ctx
	if width > 0 {
		frame := style.GetHorizontalFrameSize()
		inner = ctx.WithWidth(max(width-frame, 1))
		style = style.Width(max(width-style.GetHorizontalBorderSize(), 1))
	}
	if c.height > 0 {
		style = style.Height(c.height)
	}

	body := VStack(c.children...)
	if c.title != "" {
		body = VStack(append([]Renderable{TitleText(c.title)}, c.children...)...)
	}

	return style.Render(body.ViewWithContext(inner))
}

// WithTitle sets the card title.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithWidth fixes the outer width of the card in cells.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// WithHeight sets the minimum content height in lines.
func (c *Card) WithHeight(height int) *Card {
	c.height = height
	return c
}

// WithAppliers applies theme-based style modifiers on top of the card defaults.
func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.AddAppliers(appliers...)
	return c
}

// WithStyle sets the raw lipgloss style.
func (c *Card) WithStyle(style lipgloss.Style) *Card {
	c.SetStyle(style)
	return c
}

// Title returns the card title.
func (c *Card) Title() string {
	return c.title
}
