// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrNoCPFsProvided is returned by NewApp when there is nothing to check.
	ErrNoCPFsProvided = errors.New("no cpf provided")

	// ErrInvalidCandidates is returned by Run when the server rejected at
	// least one candidate and every request succeeded.
	ErrInvalidCandidates = errors.New("some cpf candidates are invalid")

	// ErrRequestsFailed is returned by Run when at least one candidate could
	// not be checked.
	ErrRequestsFailed = errors.New("some cpf requests failed")
)
