package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var currencyRgx = regexp.MustCompile(`^[a-z]{3}$`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	validator.RegisterValidation("currency", validateCurrency)

	return validator
}

func decimalValue(field reflect.Value) any {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}

	f, _ := d.Float64()
	return f
}

// Stripe expects lowercase ISO 4217 codes.
func validateCurrency(fl validator.FieldLevel) bool {
	return currencyRgx.MatchString(fl.Field().String())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be an absolute URL"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", err.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "currency":
		return "must be a lowercase three-letter ISO currency code"
	default:
		return "is invalid"
	}
}

// Describe flattens the result of Validate.Struct into a single error listing
// every failed field. Errors that aren't validation errors are returned as is.
func Describe(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	errs := make([]error, 0, len(validationErrs))
	for _, fe := range validationErrs {
		errs = append(errs, fmt.Errorf("%s %s", fe.Namespace(), ValidationMessage(fe)))
	}

	return errors.Join(errs...)
}
