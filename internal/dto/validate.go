package dto

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// NewValidator builds the validator used for all request DTOs. Decimal fields
// are exposed to the numeric tags (gte, gt) through a custom type func, and
// the non-standard notblank validator backs the "name must not be blank" rule.
// Violation keys use the json field names.
func NewValidator() *validator.Validate {
	validate := validator.New()

	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if value, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := value.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Registration only fails for an empty tag name.
	_ = validate.RegisterValidation("notblank", validators.NotBlank)

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return validate
}

// Violations converts a validation error into a field name to message map for
// the error envelope. A non-validation error yields a single generic entry.
func Violations(err error) map[string]string {
	violations := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		violations["request"] = err.Error()
		return violations
	}

	for _, fieldError := range validationErrors {
		violations[fieldError.Field()] = violationMessage(fieldError)
	}
	return violations
}

func violationMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("Field '%s' is required", fieldError.Field())
	case "notblank":
		return fmt.Sprintf("Field '%s' cannot be blank", fieldError.Field())
	case "max":
		return fmt.Sprintf("Field '%s' cannot exceed %s characters", fieldError.Field(), fieldError.Param())
	case "gte":
		return fmt.Sprintf("Field '%s' must be at least %s", fieldError.Field(), fieldError.Param())
	default:
		return fmt.Sprintf("Field '%s' failed on the '%s' tag", fieldError.Field(), fieldError.Tag())
	}
}
