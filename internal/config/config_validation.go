package config

import (
	"fmt"

	carouselerrors "github.com/alexisbeaulieu97/carousel/pkg/errors"
)

// ValidateDeck performs structural and cross-field validation on an entire deck.
func ValidateDeck(deck *Deck) error {
	if deck == nil {
		return carouselerrors.NewValidationError("deck", "deck is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(deck); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(deck.Slides))
	for i, slide := range deck.Slides {
		if first, exists := seen[slide.ID]; exists {
			return carouselerrors.NewValidationError(
				fieldForSlide(i, "id"),
				fmt.Sprintf("duplicate slide id %q (first used by slides[%d])", slide.ID, first),
				nil,
			)
		}
		seen[slide.ID] = i
	}

	if n := len(deck.Slides); n > 0 && deck.Settings.InitialSlide >= n {
		return carouselerrors.NewValidationError(
			"settings.initial_slide",
			fmt.Sprintf("initial slide %d is out of range for %d slides", deck.Settings.InitialSlide, n),
			nil,
		)
	}

	return nil
}
