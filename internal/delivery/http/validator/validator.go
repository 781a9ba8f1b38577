// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "budgetai/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// requestValidator validates bound request DTOs against their validate tags.
type requestValidator struct {
	validate *playground.Validate
}

// New creates the echo validator backed by go-playground/validator.
func New() *requestValidator {
	return &requestValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Failures surface as the domain's
// validation error so the error handler renders the standard envelope.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
