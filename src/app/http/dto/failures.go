// Package dto defines the request and query shapes the API binds against,
// and adapts binding failures into the domain validation taxonomy.
package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"pressroom/src/core/domain"
)

func init() {
	// Report failures under JSON/form field names rather than Go field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return fld.Name
		})
	}
}

// FieldFailures converts a binding error into the field-failure list the
// domain translator aggregates. Non-validator errors (malformed JSON and
// the like) become a single body-level failure.
func FieldFailures(err error) []domain.FieldFailure {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []domain.FieldFailure{{
			Path:    nil,
			Message: err.Error(),
		}}
	}

	failures := make([]domain.FieldFailure, 0, len(verrs))
	for _, fe := range verrs {
		// Namespace is "StructName.field.subfield"; drop the struct name.
		path := strings.Split(fe.Namespace(), ".")
		if len(path) > 1 {
			path = path[1:]
		}
		failures = append(failures, domain.FieldFailure{
			Path:     path,
			Message:  failureMessage(fe),
			Received: fe.Value(),
		})
	}
	return failures
}

// BindingError wraps a binding failure into a single Validation domain error.
func BindingError(err error) *domain.Error {
	return domain.FromFailures(FieldFailures(err))
}

func failureMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must not exceed %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must not exceed %s", fe.Field(), fe.Param())
	case "email":
		return "Invalid email format"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a valid RFC 3339 timestamp", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
