// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// errMalformedBody is returned when the request body cannot be read or
	// is not a JSON value other than null.
	errMalformedBody = errors.New("malformed request body")

	// errCPFIsMissing is returned when the body has no usable cpf field.
	errCPFIsMissing = errors.New("cpf is missing in the request body")

	// errCPFIsNotString is returned when cpf is present but is not a string.
	errCPFIsNotString = errors.New("cpf is not a string")
)
