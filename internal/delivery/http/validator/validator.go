// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "registrar/internal/domain/errors"

	baseValidator "github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *baseValidator.Validate
}

// New builds the request validator used by the echo server.
func New() *echoValidator {
	return &echoValidator{validate: baseValidator.New()}
}

// Validate checks the validate tags on bound request DTOs. Failures surface
// as the domain validation error so the central error handler maps them to a
// 400 without leaking validator internals.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
