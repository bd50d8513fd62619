package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	carouselerrors "github.com/alexisbeaulieu97/carousel/pkg/errors"
)

// convertValidationError normalizes validator errors into deck validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := documentFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return carouselerrors.NewValidationError(field, msg, err)
	}

	return carouselerrors.NewValidationError("deck", err.Error(), err)
}

// documentFieldName renders the failing field the way it is spelled in the
// deck file, without the root type name.
func documentFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldForSlide(index int, field string) string {
	return fmt.Sprintf("slides[%d].%s", index, field)
}
