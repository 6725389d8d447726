package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":    "{field} is required",
		"gte":         "{field} must be greater than or equal to {param}",
		"lte":         "{field} must be less than or equal to {param}",
		"gt":          "{field} must be greater than {param}",
		"oneof":       "{field} must be one of {param}",
		"max":         "{field} must be less than or equal to {param}",
		"min":         "{field} must be greater than or equal to {param}",
		"email":       "{field} must be a valid email address",
		"uuid":        "{field} must be a valid id",
		"dateonly":    "{field} must be a date in YYYY-MM-DD format",
		"e164":        "{field} must be a phone number in international format",
		"url":         "{field} must be a valid url",
		"mimetypes":   "{field} must be one of {param}",
		"maxfilesize": "{field} must not exceed {param} MB",
	}

	// lengthMessages apply when the constrained field is a string or a list.
	lengthMessages = map[string]string{
		"max": "{field} must be at most {param} characters",
		"min": "{field} must be at least {param} characters",
	}
)

func template(fieldErr val.FieldError) string {
	kind := fieldErr.Kind()
	if kind == reflect.String {
		if msg, ok := lengthMessages[fieldErr.Tag()]; ok {
			return msg
		}
	}

	if kind == reflect.Slice || kind == reflect.Array {
		switch fieldErr.Tag() {
		case "max":
			return "{field} must have at most {param} items"
		case "min":
			return "{field} must have at least {param} items"
		}
	}

	return messages[fieldErr.Tag()]
}

// message renders the first validation failure that has a template, e.g. "check_in is required".
func message(err error) string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, fieldErr := range valErrors {
		msg := template(fieldErr)
		if msg == "" {
			continue
		}

		return strings.NewReplacer("{field}", fieldErr.Field(), "{param}", fieldErr.Param()).Replace(msg)
	}

	return valErrors.Error()
}
