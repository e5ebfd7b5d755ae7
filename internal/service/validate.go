package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/elitedriving/institute-api/pkg/errors"
)

// NewValidator builds the shared payload validator. Field names in violation
// details use the JSON tag so they match what the client actually sent.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		tag := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return field.Name
		}
		return tag
	})
	return v
}

// validationError converts a validator failure into a 400 with one detail line
// per violating field.
func validationError(err error, message string) *appErrors.Error {
	out := appErrors.Clone(appErrors.ErrValidation, message)
	var violations validator.ValidationErrors
	if errors.As(err, &violations) {
		details := make([]string, 0, len(violations))
		for _, violation := range violations {
			detail := fmt.Sprintf("%s: %s", violation.Field(), violation.Tag())
			if violation.Param() != "" {
				detail = fmt.Sprintf("%s=%s", detail, violation.Param())
			}
			details = append(details, detail)
		}
		out = appErrors.WithDetails(out, details)
	}
	out.Err = err
	return out
}
