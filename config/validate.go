package config

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/mlnet/mlio"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = validate.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		v := fl.Field().Float()
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	})
	_ = validate.RegisterValidation("separator", func(fl validator.FieldLevel) bool {
		rs := []rune(fl.Field().String())
		return len(rs) == 1 && mlio.CheckSeparator(rs[0]) == nil
	})
}

// Validate checks every field constraint and reports all failures at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = formatFieldError(fe)
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	if fe.Param() != "" {
		return fmt.Sprintf("%s: must satisfy %s=%s, got %v", field, fe.Tag(), fe.Param(), fe.Value())
	}
	return fmt.Sprintf("%s: must satisfy %s, got %v", field, fe.Tag(), fe.Value())
}
