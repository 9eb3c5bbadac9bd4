// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/ms-cpf/internal/logger"
	"github.com/MKhiriev/ms-cpf/internal/metrics"
	"github.com/MKhiriev/ms-cpf/internal/validators"
	"github.com/MKhiriev/ms-cpf/models"
)

type cpfService struct {
	validator validators.Validator
	metrics   *metrics.Metrics

	logger *logger.Logger
}

// NewCPFService builds a [CPFService] on top of validator. Every finished
// validation is counted in m.
func NewCPFService(validator validators.Validator, m *metrics.Metrics, logger *logger.Logger) CPFService {
	logger.Debug().Msg("cpf service created")
	return &cpfService{
		validator: validator,
		metrics:   m,
		logger:    logger,
	}
}

func (s *cpfService) ValidateCPF(ctx context.Context, cpf string) (models.CPFResponse, error) {
	log := logger.FromContext(ctx)

	err := s.validator.Validate(ctx, cpf, validators.FieldCPF)
	switch {
	case err == nil:
		s.metrics.ObserveValidation(true)
		log.Debug().Bool("valid", true).Msg("cpf validated")
		return models.CPFResponse{CPF: cpf, IsValid: true}, nil
	case errors.Is(err, validators.ErrInvalidCPF):
		s.metrics.ObserveValidation(false)
		log.Debug().Bool("valid", false).Msg("cpf validated")
		return models.CPFResponse{CPF: cpf, IsValid: false}, fmt.Errorf("%w: %w", ErrInvalidCPF, err)
	case errors.Is(err, validators.ErrEmptyCPF):
		return models.CPFResponse{}, fmt.Errorf("%w: %w", ErrCPFIsRequired, err)
	default:
		return models.CPFResponse{}, fmt.Errorf("error validating cpf: %w", err)
	}
}
