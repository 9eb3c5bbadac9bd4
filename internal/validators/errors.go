// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	// ErrUnsupportedType is returned by [CPFValidator.Validate] for values it
	// does not know how to validate.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrUnknownField is returned when a field name passed to Validate is not
	// one of the Field* constants.
	ErrUnknownField = errors.New("unknown field for validation")

	// ErrEmptyCPF reports a request without a CPF.
	ErrEmptyCPF = errors.New("cpf is required")

	// ErrInvalidCPF reports a candidate rejected by [IsValidCPF].
	ErrInvalidCPF = errors.New("invalid cpf")
)
