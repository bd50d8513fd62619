package config

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/carousel/internal/carousel"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern  = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	slideIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
	dotPositions   = map[string]struct{}{
		string(carousel.DotsTop):    {},
		string(carousel.DotsBottom): {},
		string(carousel.DotsLeft):   {},
		string(carousel.DotsRight):  {},
	}
	effects = map[string]struct{}{
		string(carousel.EffectSlide):   {},
		string(carousel.EffectFade):    {},
		string(carousel.EffectScrollX): {},
	}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("slide_id", func(fl validator.FieldLevel) bool {
			return slideIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("dot_position", func(fl validator.FieldLevel) bool {
			_, ok := dotPositions[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("effect", func(fl validator.FieldLevel) bool {
			_, ok := effects[fl.Field().String()]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
