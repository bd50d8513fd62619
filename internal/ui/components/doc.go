// Package components provides the theme-aware lipgloss components used to draw
// the carousel in a terminal.
//
// Themes are immutable and passed explicitly through RenderContext:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	output := components.NewCarousel(nav).ViewWithContext(ctx)
//
// View() renders with the default theme.
//
// Primitive components are Text, Badge and Button. Stack arranges children
// vertically or horizontally and Card draws a bordered box with an optional
// title. Carousel composes them into a full frame: slide cards for the
// visible window, arrows whose disabled state follows the navigator's
// affordances, paging dots placed by DotPosition and a status line.
//
// Styling goes through StyleFunc modifiers that read the theme:
//
//	badge := NewBadge("paused").WithVariant(BadgeVariantWarning)
//	card := NewCard(NewText("body")).WithAppliers(BorderColour(PalettePrimary))
package components
