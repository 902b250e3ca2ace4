package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"rimbest/shared/failure"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

var (
	isoDatePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	cardExpiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	digitsPattern     = regexp.MustCompile(`^\d+$`)
)

func registerPatternValidation(pattern *regexp.Regexp) val.Func {
	return func(field val.FieldLevel) bool {
		str, ok := field.Field().Interface().(string)

		return ok && pattern.MatchString(str)
	}
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	err := validate.RegisterValidation("isodate", registerPatternValidation(isoDatePattern))
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("cardexpiry", registerPatternValidation(cardExpiryPattern))
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("digits", registerPatternValidation(digitsPattern))
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := Decode(r, data); err != nil {
		return err
	}

	return ValidateStruct(data)
}

// Decode only reads the body. Used where the rules depend on the service.
func Decode[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

// ValidateStruct reports only the first failing field, in declaration order.
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		field, msg := message(err)

		return failure.Validation(field, msg) //nolint:wrapcheck
	}

	return nil
}

func message(err error) (string, string) {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) || len(valErrors) == 0 {
		return "", err.Error()
	}

	first := valErrors[0]

	tmpl, ok := messages[first.Tag()]
	if !ok {
		tmpl = fallbackMessage
	}

	msg := strings.ReplaceAll(tmpl, "{field}", first.Field())
	msg = strings.ReplaceAll(msg, "{param}", first.Param())

	return first.Field(), msg
}
