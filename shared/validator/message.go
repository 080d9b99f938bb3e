package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messageTemplates = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "{field} must be a valid email address",
		"phone":    "{field} must be 8 digits starting with 8 or 9",
		"decimal":  "{field} must be a non-negative number",
		"datetime": "{field} must match the format {param}",
	}

	// length rules read differently on strings
	stringTemplates = map[string]string{
		"max": "{field} must be at most {param} characters",
		"min": "{field} must be at least {param} characters",
		"len": "{field} must be exactly {param} characters",
	}
)

func messages(err error) []string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		out = append(out, message(valErr))
	}

	return out
}

func message(valErr val.FieldError) string {
	tmpl := messageTemplates[valErr.Tag()]

	if valErr.Kind() == reflect.String {
		if s, ok := stringTemplates[valErr.Tag()]; ok {
			tmpl = s
		}
	}

	if tmpl == "" {
		return valErr.Error()
	}

	param := valErr.Param()
	if valErr.Tag() == "oneof" {
		param = strings.ReplaceAll(param, " ", ", ")
	}

	msg := strings.ReplaceAll(tmpl, "{field}", valErr.Field())

	return strings.ReplaceAll(msg, "{param}", param)
}
