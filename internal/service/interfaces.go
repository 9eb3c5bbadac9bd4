// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/ms-cpf/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CPFService validates CPF candidates on behalf of the transport layer.
type CPFService interface {
	// ValidateCPF checks cpf and, when it is valid, returns a response that
	// echoes the input unmodified. An invalid candidate yields ErrInvalidCPF,
	// an empty one ErrCPFIsRequired.
	ValidateCPF(ctx context.Context, cpf string) (models.CPFResponse, error)
}

// AppInfoService exposes static information about the running build.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
