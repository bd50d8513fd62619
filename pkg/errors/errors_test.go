package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("deck.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "deck.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: deck.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("deck.toml", 0, stdErrors.New("missing file"))
	require.Equal(t, "parse error: deck.toml: missing file", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("slides[1].id", "duplicate slide id \"intro\"", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "slides[1].id", validationErr.Field)
	require.Contains(t, validationErr.Message, "duplicate slide id")
	require.Contains(t, err.Error(), "slides[1].id")
}

func TestUnsupportedFormatError(t *testing.T) {
	t.Parallel()

	err := NewUnsupportedFormatError("deck.json", ".json")

	var formatErr *UnsupportedFormatError
	require.ErrorAs(t, err, &formatErr)
	require.Equal(t, ".json", formatErr.Extension)
	require.Contains(t, err.Error(), "deck.json")

	bare := NewUnsupportedFormatError("deck", "")
	require.Contains(t, bare.Error(), "no extension")
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Nil(t, validationErr.Unwrap())
}
