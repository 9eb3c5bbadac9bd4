// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidCPF    = errors.New("invalid cpf")
	ErrCPFIsRequired = errors.New("cpf is required")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
