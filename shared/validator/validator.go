package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"petcare/shared/failure"
	"reflect"
	"regexp"
	"strings"

	val "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate *val.Validate

var phonePattern = regexp.MustCompile(`^[89][0-9]{7}$`)

func registerPhoneValidation(field val.FieldLevel) bool {
	return phonePattern.MatchString(field.Field().String())
}

// registerDecimalValidation accepts a non-negative decimal written as a string.
func registerDecimalValidation(field val.FieldLevel) bool {
	value, err := decimal.NewFromString(strings.TrimSpace(field.Field().String()))
	if err != nil {
		return false
	}

	return !value.IsNegative()
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0] //nolint:mnd
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})

	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("phone", registerPhoneValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("decimal", registerDecimalValidation)
	if err != nil {
		panic(err)
	}
}

// Decode reads a JSON body into data without running any rule.
func Decode[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. Every violated rule is reported together.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := Decode(r, data); err != nil {
		return err
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	msgs := Messages(data)
	if len(msgs) > 0 {
		return failure.Validation(msgs) //nolint:wrapcheck
	}

	return nil
}

// Messages returns one readable message per failed struct-tag rule, in field order.
func Messages(data any) []string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	return messages(err)
}
