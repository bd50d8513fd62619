package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/carousel/internal/carousel"
	"github.com/alexisbeaulieu97/carousel/internal/config"
	"github.com/alexisbeaulieu97/carousel/internal/schedule"
	"github.com/alexisbeaulieu97/carousel/internal/ui/components"
	carouselerrors "github.com/alexisbeaulieu97/carousel/pkg/errors"
)

// loadDeck parses and validates the deck at path, turning failures into
// command errors with a suggestion for the user.
func loadDeck(operation, path string) (*config.Deck, error) {
	if strings.TrimSpace(path) == "" {
		return nil, newCommandError(operation, "reading deck", errors.New("deck path is required"), "Pass the path of a .yaml, .yml or .toml deck file.")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, newCommandError(operation, "resolving deck path", err, "Check the deck path and try again.")
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, newCommandError(operation, fmt.Sprintf("reading deck %s", path), err, "Check that the deck file exists.")
	}
	if info.IsDir() {
		return nil, newCommandError(operation, fmt.Sprintf("reading deck %s", path), fmt.Errorf("%s is a directory", abs), "Pass a deck file, not a directory.")
	}

	deck, err := config.ParseDeck(abs)
	if err != nil {
		return nil, newCommandError(operation, fmt.Sprintf("loading deck %s", path), err, deckSuggestion(err))
	}
	return deck, nil
}

func deckSuggestion(err error) string {
	var parseErr *carouselerrors.ParseError
	var validationErr *carouselerrors.ValidationError
	var formatErr *carouselerrors.UnsupportedFormatError

	switch {
	case errors.As(err, &formatErr):
		return "Decks must use a .yaml, .yml or .toml extension."
	case errors.As(err, &validationErr):
		if validationErr.Field != "" {
			return fmt.Sprintf("Fix the %q field and run 'carousel validate' again.", validationErr.Field)
		}
		return "Fix the deck and run 'carousel validate' again."
	case errors.As(err, &parseErr) && parseErr.Line > 0:
		return fmt.Sprintf("Fix the syntax near line %d.", parseErr.Line)
	default:
		return "Check the deck syntax and try again."
	}
}

// staticFrame renders one frame of deck at index without starting any
// timers that could advance it.
func staticFrame(deck *config.Deck, index int, theme components.Theme, width int) string {
	cfg := deck.CarouselConfig()
	cfg.Autoplay = false

	nav := carousel.New(deck.SlideSet(), cfg, schedule.NewManual(time.Time{}), carousel.WithInitialIndex(index))
	defer nav.Close()

	ctx := components.DefaultContext().WithTheme(theme).WithWidth(width)
	return components.NewCarousel(nav).ViewWithContext(ctx)
}
