// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/ms-cpf/internal/app"
	"github.com/MKhiriev/ms-cpf/internal/logger"
	"github.com/MKhiriev/ms-cpf/internal/utils"
	"github.com/MKhiriev/ms-cpf/models"
)

func (h *Handler) validateCPF(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body io.Reader = r.Body
	if h.cfg.MaxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes)
	}

	status, payload := h.handleCPFRequest(r.Context(), r.Method, body)

	if _, err := utils.WriteJSON(w, payload, status); err != nil {
		log.Err(err).Msg("error writing cpf response")
	}
}

// handleCPFRequest is the transport-independent part of the endpoint: it
// maps a request method and a raw JSON body to a status code and a JSON
// payload.
func (h *Handler) handleCPFRequest(ctx context.Context, method string, body io.Reader) (int, any) {
	log := logger.FromContext(ctx)

	if method != http.MethodPost {
		return http.StatusMethodNotAllowed, models.ErrorResponse{Error: app.MsgMethodNotAllowed}
	}

	cpf, err := parseCPFRequest(body)
	if err != nil {
		return errorResult(log, err)
	}

	resp, err := h.services.CPFService.ValidateCPF(ctx, cpf)
	if err != nil {
		return errorResult(log, err)
	}

	return http.StatusOK, resp
}

// parseCPFRequest extracts the cpf field from a JSON body.
//
// A body that is not JSON, or is JSON null, fails with errMalformedBody.
// A cpf that is absent, null, "", false or 0 fails with errCPFIsMissing, as
// does any JSON value other than an object. A cpf of any other non-string
// type fails with errCPFIsNotString.
func parseCPFRequest(body io.Reader) (string, error) {
	if body == nil {
		return "", errMalformedBody
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errMalformedBody, err)
	}

	var payload any
	if err = json.Unmarshal(data, &payload); err != nil {
		return "", fmt.Errorf("%w: %w", errMalformedBody, err)
	}

	if payload == nil {
		return "", fmt.Errorf("%w: body is null", errMalformedBody)
	}

	object, ok := payload.(map[string]any)
	if !ok {
		return "", errCPFIsMissing
	}

	raw, ok := object["cpf"]
	if !ok || isEmptyJSONValue(raw) {
		return "", errCPFIsMissing
	}

	cpf, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: got %T", errCPFIsNotString, raw)
	}

	return cpf, nil
}

func isEmptyJSONValue(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case bool:
		return !value
	case float64:
		return value == 0
	default:
		return false
	}
}

func errorResult(log *logger.Logger, err error) (int, any) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("error handling cpf request")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("cpf request rejected")
	}

	return status, models.ErrorResponse{Error: messageFromError(err)}
}
