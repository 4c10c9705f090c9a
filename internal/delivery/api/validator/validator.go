// Package validator adapts go-playground/validator to echo with marketplace tags.
package validator

import (
	"reflect"
	"strings"

	"heyfarmer/internal/domain/county"
	"heyfarmer/internal/domain/entity"
	domainerrors "heyfarmer/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *playground.Validate
}

// New builds a validator that reports json field names and knows the
// "county" and "role" tags.
func New() *Validator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	// Registration only fails on an empty tag name or a nil func.
	_ = v.RegisterValidation("county", validateCounty)
	_ = v.RegisterValidation("role", validateRole)

	return &Validator{validate: v}
}

// Validate runs struct validation and converts failures into ErrValidationFailed
// with one "field: rule" entry per failing field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate request")
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
}

func describe(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + ": is required"
	case "email":
		return fe.Field() + ": must be an email address"
	case "county":
		return fe.Field() + ": unknown county"
	case "role":
		return fe.Field() + ": unknown role"
	case "oneof":
		return fe.Field() + ": must be one of " + fe.Param()
	case "min", "max":
		return fe.Field() + ": violates " + fe.Tag() + "=" + fe.Param()
	default:
		return fe.Field() + ": failed " + fe.Tag()
	}
}

// validateCounty accepts a county id or slug. Empty values are left to "required".
func validateCounty(fl playground.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	if county.IsValid(county.ID(value)) {
		return true
	}

	return county.IsValidSlug(value)
}

func validateRole(fl playground.FieldLevel) bool {
	value := fl.Field().String()

	return value == "" || entity.Role(value).IsValid()
}
