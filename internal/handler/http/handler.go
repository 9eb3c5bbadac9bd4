// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/ms-cpf/internal/config"
	"github.com/MKhiriev/ms-cpf/internal/logger"
	"github.com/MKhiriev/ms-cpf/internal/metrics"
	"github.com/MKhiriev/ms-cpf/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		cfg:      cfg,
		logger:   logger,
	}
}
