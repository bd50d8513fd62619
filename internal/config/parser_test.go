package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/carousel/internal/carousel"
	carouselerrors "github.com/alexisbeaulieu97/carousel/pkg/errors"
)

const validYAML = `version: "1.0"
name: "Release Notes"
description: "What shipped this week"
settings:
  autoplay: true
  autoplay_speed: 1500
  infinite: false
  speed: 250
  slides_to_show: 2
  dot_position: left
  effect: fade
slides:
  - id: intro
    title: "Hello"
    body: "Welcome to the release notes"
  - id: chart
    image: chart.png
    alt: "Weekly throughput"
  - id: outro
    title: "Thanks"
`

const validTOML = `version = "1.0.0"
name = "Release Notes"

[settings]
autoplay = true
autoplay_speed = 1500
rtl = true
lazy_load = true

[[slides]]
id = "intro"
title = "Hello"

[[slides]]
id = "outro"
title = "Thanks"
`

func writeDeck(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseDeck(t *testing.T) {
	t.Parallel()

	invalidYAML := `version: [1, 0]
name: "Broken"
slides:
  - id: intro
`

	missingRequired := `slides:
  - id: intro
`

	badVersion := `version: "beta"
name: "Bad Version"
`

	invalidTOML := `version = "1.0"
name = "Broken
`

	cases := []struct {
		name     string
		file     string
		contents string
		assert   func(t *testing.T, deck *Deck, err error)
	}{
		{
			name:     "valid yaml deck is parsed",
			file:     "deck.yaml",
			contents: validYAML,
			assert: func(t *testing.T, deck *Deck, err error) {
				require.NoError(t, err)
				require.Equal(t, "Release Notes", deck.Name)
				require.Len(t, deck.Slides, 3)
				require.Equal(t, "chart", deck.Slides[1].ID)
				require.Equal(t, "Weekly throughput", deck.Slides[1].Alt)
			},
		},
		{
			name:     "valid toml deck is parsed",
			file:     "deck.toml",
			contents: validTOML,
			assert: func(t *testing.T, deck *Deck, err error) {
				require.NoError(t, err)
				require.Equal(t, "1.0.0", deck.Version)
				require.Len(t, deck.Slides, 2)
				require.True(t, deck.Settings.RightToLeft)
				require.NotNil(t, deck.Settings.AutoplaySpeed)
				require.Equal(t, 1500, *deck.Settings.AutoplaySpeed)
			},
		},
		{
			name:     "yml extension uses yaml",
			file:     "deck.YML",
			contents: validYAML,
			assert: func(t *testing.T, deck *Deck, err error) {
				require.NoError(t, err)
				require.Len(t, deck.Slides, 3)
			},
		},
		{
			name:     "invalid yaml returns parse error with line",
			file:     "broken.yaml",
			contents: invalidYAML,
			assert: func(t *testing.T, deck *Deck, err error) {
				require.Nil(t, deck)
				var parseErr *carouselerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "invalid toml returns parse error with line",
			file:     "broken.toml",
			contents: invalidTOML,
			assert: func(t *testing.T, deck *Deck, err error) {
				require.Nil(t, deck)
				var parseErr *carouselerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name:     "missing required fields returns validation error",
			file:     "missing.yaml",
			contents: missingRequired,
			assert: func(t *testing.T, deck *Deck, err error) {
				var validationErr *carouselerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "version", validationErr.Field)
			},
		},
		{
			name:     "bad version returns validation error",
			file:     "version.yaml",
			contents: badVersion,
			assert: func(t *testing.T, deck *Deck, err error) {
				var validationErr *carouselerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "semver")
			},
		},
		{
			name:     "unknown extension is rejected",
			file:     "deck.json",
			contents: "{}",
			assert: func(t *testing.T, deck *Deck, err error) {
				var formatErr *carouselerrors.UnsupportedFormatError
				require.ErrorAs(t, err, &formatErr)
				require.Equal(t, ".json", formatErr.Extension)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeDeck(t, tc.file, tc.contents)
			deck, err := ParseDeck(path)
			tc.assert(t, deck, err)
		})
	}
}

func TestParseDeckMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseDeck(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *carouselerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDeckCarouselConfig(t *testing.T) {
	t.Parallel()

	deck, err := DecodeDeck("deck.yaml", FormatYAML, []byte(validYAML))
	require.NoError(t, err)

	cfg := deck.CarouselConfig()
	require.True(t, cfg.Autoplay)
	require.Equal(t, 1500*time.Millisecond, cfg.AutoplayInterval)
	require.False(t, cfg.Infinite)
	require.Equal(t, 250*time.Millisecond, cfg.TransitionDuration)
	require.Equal(t, 2, cfg.SlidesToShow)
	require.Equal(t, 1, cfg.SlidesToScroll)
	require.True(t, cfg.PauseOnHover)
	require.True(t, cfg.Dots)
	require.Equal(t, carousel.DotsLeft, cfg.DotPosition)
	require.Equal(t, carousel.EffectFade, cfg.Effect)
}

func TestDeckDefaultsMatchNavigator(t *testing.T) {
	t.Parallel()

	deck, err := DecodeDeck("deck.yaml", FormatYAML, []byte("version: \"1.0\"\nname: bare\n"))
	require.NoError(t, err)
	require.Equal(t, carousel.DefaultConfig(), deck.CarouselConfig())
	require.Empty(t, deck.SlideSet())
}

func TestDeckSlideSet(t *testing.T) {
	t.Parallel()

	deck, err := DecodeDeck("deck.toml", FormatTOML, []byte(validTOML))
	require.NoError(t, err)

	set := deck.SlideSet()
	require.Equal(t, []string{"intro", "outro"}, set.IDs())

	slide, ok := set[0].Content.(Slide)
	require.True(t, ok)
	require.Equal(t, "Hello", slide.SlideTitle())
}

func TestSlideBodyFallsBackToImage(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[chart.png]", Slide{Image: "chart.png"}.SlideBody())
	require.Equal(t, "text", Slide{Body: "text", Image: "chart.png"}.SlideBody())
}
