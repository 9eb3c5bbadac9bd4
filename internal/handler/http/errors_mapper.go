// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/ms-cpf/internal/app"
	"github.com/MKhiriev/ms-cpf/internal/service"
)

type errorResponseSpec struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponseSpec{
	service.ErrInvalidCPF:    {http.StatusBadRequest, app.MsgInvalidCPF},
	service.ErrCPFIsRequired: {http.StatusBadRequest, app.MsgCPFIsRequired},

	errCPFIsMissing:   {http.StatusBadRequest, app.MsgCPFIsRequired},
	errMalformedBody:  {http.StatusInternalServerError, app.MsgInternalServerError},
	errCPFIsNotString: {http.StatusInternalServerError, app.MsgInternalServerError},
}

func lookupError(err error) errorResponseSpec {
	for target, spec := range errorResponseMap {
		if errors.Is(err, target) {
			return spec
		}
	}
	return errorResponseSpec{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return lookupError(err).status
}

func messageFromError(err error) string {
	return lookupError(err).message
}
