// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CPFRequest is the body accepted by the CPF validation endpoint.
type CPFRequest struct {
	// CPF is the candidate identifier exactly as the caller typed it.
	// Formatting punctuation such as "529.982.247-25" is allowed.
	CPF string `json:"cpf"`
}

// CPFResponse is returned for a candidate that passed validation.
type CPFResponse struct {
	// CPF echoes the original, unmodified input.
	CPF string `json:"cpf"`

	// IsValid is always true on the wire: invalid candidates are reported
	// through [ErrorResponse] instead.
	IsValid bool `json:"isValid"`
}

// ErrorResponse is the JSON envelope used for every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}
