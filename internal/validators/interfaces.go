// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the CPF validation core and the generic
// [Validator] abstraction through which services consume it.
//
// The core is [IsValidCPF], a pure function over an arbitrary string:
// it normalizes the input to its digits, rejects wrong lengths and
// repeated-digit sequences, and checks both mod-11 check digits. It keeps no
// state and is safe to call from any number of goroutines.
//
// [CPFValidator] wraps the core behind [Validator] so callers that work with
// request models get sentinel errors instead of a boolean.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
