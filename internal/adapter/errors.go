// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrInvalidCPF          = errors.New("invalid cpf")
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrInternalServerError = errors.New("internal server error")

	errEmptyAddress   = errors.New("empty address")
	errAddressNoHost  = errors.New("address must include host and scheme")
	errDecodeResponse = errors.New("error decoding response")
)
