// Package validator wraps go-playground struct validation behind the
// field-to-tag error map the handlers return in the "error" body member.
package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate returns nil when v satisfies its struct tags, otherwise a map
// of failing field name to the tag that rejected it.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[fe.Field()] = fe.Tag()
		}
	}
	return out
}
