// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ms-cpf/models"
)

// FieldCPF targets the cpf field of a [models.CPFRequest].
const FieldCPF = "cpf"

// CPFValidator adapts [IsValidCPF] to the [Validator] interface.
//
// It accepts a bare string, a [models.CPFRequest] or pointers to either.
// Invalidity is reported as [ErrInvalidCPF]; a nil pointer or an empty
// candidate is reported as [ErrEmptyCPF].
type CPFValidator struct {
}

// NewCPFValidator constructs a new CPFValidator and returns it as the
// Validator interface.
func NewCPFValidator() Validator {
	return &CPFValidator{}
}

// Validate dispatches validation by the dynamic type of v.
//
// fields optionally restricts validation to the named fields; [FieldCPF] is
// the only field a CPF value has, so any other name yields [ErrUnknownField].
func (c *CPFValidator) Validate(ctx context.Context, v any, fields ...string) error {
	for _, field := range fields {
		if field != FieldCPF {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	switch value := v.(type) {
	case string:
		return c.validateCPF(value)
	case *string:
		if value == nil {
			return ErrEmptyCPF
		}
		return c.validateCPF(*value)
	case models.CPFRequest:
		return c.validateCPF(value.CPF)
	case *models.CPFRequest:
		if value == nil {
			return ErrEmptyCPF
		}
		return c.validateCPF(value.CPF)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

func (c *CPFValidator) validateCPF(candidate string) error {
	if candidate == "" {
		return ErrEmptyCPF
	}

	if !IsValidCPF(candidate) {
		return ErrInvalidCPF
	}

	return nil
}
