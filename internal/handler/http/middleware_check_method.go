// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/ms-cpf/internal/app"
	"github.com/MKhiriev/ms-cpf/internal/logger"
	"github.com/MKhiriev/ms-cpf/internal/utils"
	"github.com/MKhiriev/ms-cpf/models"
)

// methodNotAllowed is registered as the router's MethodNotAllowed handler.
// Chi answers 405 with an empty body by default; this one writes a JSON
// error.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, r, http.StatusMethodNotAllowed, app.MsgMethodNotAllowed)
}

// notFound is registered as the router's NotFound handler.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, r, http.StatusNotFound, app.MsgNotFound)
}

func writeJSONError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if _, err := utils.WriteJSON(w, models.ErrorResponse{Error: message}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}
