package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	carouselerrors "github.com/alexisbeaulieu97/carousel/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Format identifies a deck encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the decoder for path from its extension.
func FormatFor(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", carouselerrors.NewUnsupportedFormatError(path, ext)
	}
}

// ParseDeck loads a deck file from disk, validates it, and returns the resulting model.
func ParseDeck(path string) (*Deck, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, carouselerrors.NewParseError(path, 0, err)
	}

	return DecodeDeck(path, format, data)
}

// DecodeDeck decodes and validates an in-memory deck. path is only used in
// error messages.
func DecodeDeck(path string, format Format, data []byte) (*Deck, error) {
	var deck Deck
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &deck); err != nil {
			return nil, carouselerrors.NewParseError(path, extractLine(err), err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &deck); err != nil {
			return nil, carouselerrors.NewParseError(path, tomlLine(err), err)
		}
	default:
		return nil, carouselerrors.NewUnsupportedFormatError(path, string(format))
	}

	if err := ValidateDeck(&deck); err != nil {
		return nil, err
	}

	return &deck, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	return 0
}
