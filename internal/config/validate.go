package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/five82/jester/internal/jokeapi"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return jokeapi.Category(fl.Field().String()).Valid()
		})

		validateInst = v
	})
	return validateInst
}

// ValidationError names the config field that failed.
type ValidationError struct {
	Field string
	Tag   string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %s failed validation for tag '%s'", e.Field, e.Tag)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate checks cfg against its field constraints.
func Validate(cfg Config) error {
	err := validatorInstance().Struct(cfg)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return &ValidationError{Field: fe.Field(), Tag: fe.Tag(), Err: err}
	}
	return fmt.Errorf("invalid config: %w", err)
}
