// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the ms-cpf HTTP API.
//
// [ServerAdapter] hides the transport from callers. Error responses are
// mapped to the sentinel values in errors.go, so callers can use
// [errors.Is] instead of inspecting status codes (e.g. [ErrInvalidCPF] for a
// rejected candidate).
package adapter

import (
	"context"

	"github.com/MKhiriev/ms-cpf/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to a running ms-cpf server.
type ServerAdapter interface {
	// ValidateCPF sends one candidate to the validation endpoint. A candidate
	// the server rejects yields [ErrInvalidCPF].
	ValidateCPF(ctx context.Context, cpf string) (models.CPFResponse, error)

	// Version returns the version string reported by the server.
	Version(ctx context.Context) (string, error)
}
