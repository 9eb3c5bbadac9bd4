// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/ms-cpf/internal/config"
	"github.com/MKhiriev/ms-cpf/internal/logger"
	"github.com/MKhiriev/ms-cpf/internal/utils"
	"github.com/MKhiriev/ms-cpf/models"
)

const (
	cpfPath     = "/api/ms-cpf"
	versionPath = "/api/version/"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// It normalises the base URL from cfg.HTTPAddress and configures the
// underlying client with it and with the request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	logger.Debug().Str("base_url", baseURL).Msg("http server adapter created")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errAddressNoHost
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ValidateCPF implements [ServerAdapter]. It POSTs cpf to /api/ms-cpf and
// decodes the response of an accepted candidate.
func (h *httpServerAdapter) ValidateCPF(ctx context.Context, cpf string) (models.CPFResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CPFRequest{CPF: cpf}).
		Post(cpfPath)
	if err != nil {
		return models.CPFResponse{}, fmt.Errorf("validate cpf request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CPFResponse{}, err
	}

	var result models.CPFResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.CPFResponse{}, fmt.Errorf("%w: %w", errDecodeResponse, err)
	}

	return result, nil
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
