package carousel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/carousel/internal/carousel"
)

func TestRoute(t *testing.T) {
	t.Parallel()

	horizontal := carousel.DefaultConfig()
	rtl := carousel.DefaultConfig()
	rtl.RightToLeft = true
	vertical := carousel.DefaultConfig()
	vertical.Vertical = true
	noHover := carousel.DefaultConfig()
	noHover.PauseOnHover = false

	cases := []struct {
		name string
		cfg  carousel.Config
		in   carousel.Input
		want carousel.Action
	}{
		{name: "left", cfg: horizontal, in: carousel.InputLeft, want: carousel.ActionPrevious},
		{name: "right", cfg: horizontal, in: carousel.InputRight, want: carousel.ActionNext},
		{name: "up ignored horizontally", cfg: horizontal, in: carousel.InputUp, want: carousel.ActionIgnore},
		{name: "down ignored horizontally", cfg: horizontal, in: carousel.InputDown, want: carousel.ActionIgnore},
		{name: "rtl left", cfg: rtl, in: carousel.InputLeft, want: carousel.ActionNext},
		{name: "rtl right", cfg: rtl, in: carousel.InputRight, want: carousel.ActionPrevious},
		{name: "vertical up", cfg: vertical, in: carousel.InputUp, want: carousel.ActionPrevious},
		{name: "vertical down", cfg: vertical, in: carousel.InputDown, want: carousel.ActionNext},
		{name: "vertical left ignored", cfg: vertical, in: carousel.InputLeft, want: carousel.ActionIgnore},
		{name: "vertical right ignored", cfg: vertical, in: carousel.InputRight, want: carousel.ActionIgnore},
		{name: "home", cfg: horizontal, in: carousel.InputHome, want: carousel.ActionFirst},
		{name: "end", cfg: vertical, in: carousel.InputEnd, want: carousel.ActionLast},
		{name: "pointer enter", cfg: horizontal, in: carousel.InputPointerEnter, want: carousel.ActionPause},
		{name: "pointer leave", cfg: horizontal, in: carousel.InputPointerLeave, want: carousel.ActionResume},
		{name: "pointer enter without hover pause", cfg: noHover, in: carousel.InputPointerEnter, want: carousel.ActionIgnore},
		{name: "pointer leave without hover pause", cfg: noHover, in: carousel.InputPointerLeave, want: carousel.ActionIgnore},
		{name: "none", cfg: horizontal, in: carousel.InputNone, want: carousel.ActionIgnore},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, carousel.Route(tc.cfg, tc.in))
		})
	}
}

func TestHandleInputAppliesAction(t *testing.T) {
	t.Parallel()

	cfg := autoplaying(time.Second, 0)
	nav, clock, _ := build(4, cfg)

	require.Equal(t, carousel.ActionNext, nav.HandleInput(carousel.InputRight))
	require.Equal(t, 1, nav.State().CurrentIndex)
	clock.Advance(0)

	require.Equal(t, carousel.ActionLast, nav.HandleInput(carousel.InputEnd))
	require.Equal(t, 3, nav.State().CurrentIndex)
	clock.Advance(0)

	require.Equal(t, carousel.ActionPause, nav.HandleInput(carousel.InputPointerEnter))
	require.True(t, nav.State().IsPaused)
	require.Equal(t, carousel.AutoplayIdle, nav.Autoplay())

	require.Equal(t, carousel.ActionResume, nav.HandleInput(carousel.InputPointerLeave))
	require.False(t, nav.State().IsPaused)
	require.Equal(t, carousel.AutoplayArmed, nav.Autoplay())

	require.Equal(t, carousel.ActionIgnore, nav.HandleInput(carousel.InputUp))
	require.Equal(t, 3, nav.State().CurrentIndex)
}

func TestParseInputRoundTrip(t *testing.T) {
	t.Parallel()

	for _, in := range []carousel.Input{
		carousel.InputLeft,
		carousel.InputRight,
		carousel.InputUp,
		carousel.InputDown,
		carousel.InputHome,
		carousel.InputEnd,
		carousel.InputPointerEnter,
		carousel.InputPointerLeave,
	} {
		parsed, ok := carousel.ParseInput(in.String())
		require.True(t, ok, in.String())
		require.Equal(t, in, parsed)
	}

	_, ok := carousel.ParseInput("sideways")
	require.False(t, ok)
	require.Equal(t, "unknown", carousel.Input(99).String())
}
