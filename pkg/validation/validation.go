package validation

import (
	stderrors "errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Kipkoech854/Real-estate-management/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return strings.ToLower(f.Name)
	})
	return v
}

// Struct validates s against its validate tags and reports the first
// failure as a ValidationError with a readable message.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErr validator.ValidationErrors
	if stderrors.As(err, &validationErr) && len(validationErr) > 0 {
		return errors.Validation(message(validationErr[0]), err)
	}
	return errors.Validation("Invalid input data", err)
}

// Var validates a single value, naming it field in the message.
func Var(field string, value interface{}, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var validationErr validator.ValidationErrors
	if stderrors.As(err, &validationErr) && len(validationErr) > 0 {
		return errors.Validation(messageFor(field, validationErr[0]), err)
	}
	return errors.Validation(field+" is invalid", err)
}

func message(fe validator.FieldError) string {
	return messageFor(fe.Field(), fe)
}

func messageFor(field string, fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min", "gte":
		return field + " must be at least " + param
	case "max", "lte":
		return field + " must be at most " + param
	case "oneof":
		return field + " must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "email":
		return field + " must be a valid email address"
	case "url", "http_url":
		return field + " must be a valid URL"
	case "eqfield":
		return field + " does not match"
	case "latitude":
		return field + " must be between -90 and 90"
	case "longitude":
		return field + " must be between -180 and 180"
	case "alphanum":
		return field + " may only contain letters and digits"
	default:
		return field + " is invalid"
	}
}
