// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response messages shared by the ms-cpf server
// and its client.
//
// All Msg* constants are written into the "error" field of JSON error
// responses. The client matches on them, so the wording is part of the API.
package app

const (
	// MsgMethodNotAllowed is returned for any method other than POST on the
	// validation endpoint, and for unknown methods on other routes.
	MsgMethodNotAllowed = "Method not allowed"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Not found"

	// MsgCPFIsRequired is returned when the request body has no usable cpf
	// field.
	MsgCPFIsRequired = "CPF is required in the request body"

	// MsgInvalidCPF is returned when the candidate fails the check-digit
	// validation.
	MsgInvalidCPF = "Invalid CPF"

	// MsgInternalServerError is returned for malformed bodies and for any
	// unexpected failure.
	MsgInternalServerError = "Internal server error"
)
