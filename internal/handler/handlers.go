// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/ms-cpf/internal/config"
	"github.com/MKhiriev/ms-cpf/internal/handler/http"
	"github.com/MKhiriev/ms-cpf/internal/logger"
	"github.com/MKhiriev/ms-cpf/internal/metrics"
	"github.com/MKhiriev/ms-cpf/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, metrics *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, metrics, cfg, logger),
	}, nil
}
