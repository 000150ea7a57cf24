// Package validator plugs go-playground/validator into echo.
package validator

import (
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the echo validator
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate returns ErrValidationFailed with one "field: rule" entry per failure
func (v *CustomValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	failures := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		failure := fieldErr.Field() + ": " + fieldErr.Tag()
		if fieldErr.Param() != "" {
			failure += "=" + fieldErr.Param()
		}
		failures = append(failures, failure)
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(failures, "; "))
}
