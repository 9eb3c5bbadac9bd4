// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/ms-cpf/internal/config"
	"github.com/MKhiriev/ms-cpf/internal/logger"
	"github.com/MKhiriev/ms-cpf/internal/metrics"
	"github.com/MKhiriev/ms-cpf/internal/validators"
)

type Services struct {
	CPFService     CPFService
	AppInfoService AppInfoService
}

func NewServices(cfg config.StructuredConfig, metrics *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		CPFService:     NewCPFService(validators.NewCPFValidator(), metrics, logger),
		AppInfoService: appInfoService,
	}, nil
}
