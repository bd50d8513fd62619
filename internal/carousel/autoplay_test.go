package carousel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/carousel/internal/carousel"
)

func TestAutoplayAdvancesEachInterval(t *testing.T) {
	t.Parallel()

	nav, clock, rec := build(3, autoplaying(time.Second, 200*time.Millisecond))
	require.Equal(t, carousel.AutoplayArmed, nav.Autoplay())

	clock.Advance(999 * time.Millisecond)
	require.Equal(t, 0, nav.State().CurrentIndex)

	clock.Advance(time.Millisecond)
	require.Equal(t, 1, nav.State().CurrentIndex)

	clock.Advance(time.Second)
	require.Equal(t, 2, nav.State().CurrentIndex)

	clock.Advance(time.Second)
	require.Equal(t, 0, nav.State().CurrentIndex)

	require.Equal(t, []change{{0, 1}, {1, 2}, {2, 0}}, rec.before)
	require.Equal(t, []int{1, 2}, rec.after)
}

func TestManualNavigationRestartsCountdown(t *testing.T) {
	t.Parallel()

	nav, clock, _ := build(5, autoplaying(time.Second, 200*time.Millisecond))

	clock.Advance(700 * time.Millisecond)
	nav.Next()
	require.Equal(t, 1, nav.State().CurrentIndex)

	clock.Advance(900 * time.Millisecond)
	require.Equal(t, 1, nav.State().CurrentIndex)
	require.False(t, nav.State().IsTransitioning)

	clock.Advance(100 * time.Millisecond)
	require.Equal(t, 2, nav.State().CurrentIndex)
}

func TestResumeArmsFullInterval(t *testing.T) {
	t.Parallel()

	nav, clock, _ := build(5, autoplaying(time.Second, 0))

	clock.Advance(400 * time.Millisecond)
	nav.SetPaused(true)
	require.True(t, nav.State().IsPaused)
	require.Equal(t, carousel.AutoplayIdle, nav.Autoplay())

	clock.Advance(200 * time.Millisecond)
	nav.SetPaused(false)
	require.Equal(t, carousel.AutoplayArmed, nav.Autoplay())

	clock.Advance(900 * time.Millisecond)
	require.Equal(t, 0, nav.State().CurrentIndex)

	clock.Advance(100 * time.Millisecond)
	require.Equal(t, 1, nav.State().CurrentIndex)
}

func TestPausedNavigatorNeverAutoplays(t *testing.T) {
	t.Parallel()

	nav, clock, rec := build(5, autoplaying(time.Second, 0))
	nav.SetPaused(true)

	clock.Advance(time.Hour)
	require.Empty(t, rec.before)

	// manual navigation still works and does not arm the timer
	nav.Next()
	require.Equal(t, 1, nav.State().CurrentIndex)
	require.Equal(t, carousel.AutoplayIdle, nav.Autoplay())
}

func TestRepeatedPauseKeepsCountdown(t *testing.T) {
	t.Parallel()

	nav, clock, _ := build(5, autoplaying(time.Second, 0))

	clock.Advance(600 * time.Millisecond)
	nav.SetPaused(false)
	clock.Advance(400 * time.Millisecond)
	require.Equal(t, 1, nav.State().CurrentIndex)
}

func TestPauseDoesNotAbortTransition(t *testing.T) {
	t.Parallel()

	nav, clock, rec := build(5, autoplaying(time.Second, 500*time.Millisecond))
	nav.Next()
	nav.SetPaused(true)

	require.True(t, nav.State().IsTransitioning)
	clock.Advance(500 * time.Millisecond)
	require.False(t, nav.State().IsTransitioning)
	require.Equal(t, []int{1}, rec.after)
}

func TestAutoplayIdleForSingleSlide(t *testing.T) {
	t.Parallel()

	nav, clock, _ := build(1, autoplaying(time.Second, 0))
	require.Equal(t, carousel.AutoplayIdle, nav.Autoplay())
	require.Zero(t, clock.Pending())

	nav.ReplaceSlides(makeSlides(2))
	require.Equal(t, carousel.AutoplayArmed, nav.Autoplay())
}

func TestAutoplayKeepsTickingAtFiniteEnd(t *testing.T) {
	t.Parallel()

	cfg := autoplaying(time.Second, 0)
	cfg.Infinite = false
	nav, clock, rec := build(3, cfg)

	clock.Advance(5 * time.Second)
	require.Equal(t, 2, nav.State().CurrentIndex)
	require.Len(t, rec.before, 2)
	require.Equal(t, carousel.AutoplayArmed, nav.Autoplay())
}

func TestAutoplayDuringTransitionIsDroppedAndRearmed(t *testing.T) {
	t.Parallel()

	// the transition outlasts the interval, so the first fire is dropped
	nav, clock, rec := build(5, autoplaying(time.Second, 1500*time.Millisecond))
	nav.Next()

	clock.Advance(time.Second)
	require.Equal(t, 1, nav.State().CurrentIndex)
	require.Equal(t, carousel.AutoplayArmed, nav.Autoplay())

	clock.Advance(time.Second)
	require.Equal(t, 2, nav.State().CurrentIndex)
	require.Len(t, rec.before, 2)
}

func TestReconfigureStopsAndStartsAutoplay(t *testing.T) {
	t.Parallel()

	cfg := autoplaying(time.Second, 0)
	nav, clock, _ := build(4, cfg)

	off := cfg
	off.Autoplay = false
	nav.Reconfigure(off)
	require.Equal(t, carousel.AutoplayIdle, nav.Autoplay())
	clock.Advance(5 * time.Second)
	require.Equal(t, 0, nav.State().CurrentIndex)

	on := cfg
	on.AutoplayInterval = 2 * time.Second
	nav.Reconfigure(on)
	require.Equal(t, carousel.AutoplayArmed, nav.Autoplay())
	clock.Advance(1999 * time.Millisecond)
	require.Equal(t, 0, nav.State().CurrentIndex)
	clock.Advance(time.Millisecond)
	require.Equal(t, 1, nav.State().CurrentIndex)
}

func TestReconfigureDisplayOnlyKeepsCountdown(t *testing.T) {
	t.Parallel()

	cfg := autoplaying(time.Second, 0)
	nav, clock, _ := build(4, cfg)

	clock.Advance(600 * time.Millisecond)
	display := cfg
	display.Dots = false
	display.Effect = carousel.EffectFade
	nav.Reconfigure(display)

	clock.Advance(400 * time.Millisecond)
	require.Equal(t, 1, nav.State().CurrentIndex)
	require.Equal(t, carousel.EffectFade, nav.Config().Effect)
}

func TestNonPositiveIntervalFallsBackToDefault(t *testing.T) {
	t.Parallel()

	nav, clock, _ := build(3, autoplaying(0, 0))
	require.Equal(t, carousel.DefaultAutoplayInterval, nav.Config().AutoplayInterval)

	clock.Advance(carousel.DefaultAutoplayInterval - time.Millisecond)
	require.Equal(t, 0, nav.State().CurrentIndex)
	clock.Advance(time.Millisecond)
	require.Equal(t, 1, nav.State().CurrentIndex)
}
