// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/ms-cpf/internal/app"
	"github.com/MKhiriev/ms-cpf/internal/logger"
)

// withRecoverer turns a panic in a downstream handler into a JSON 500
// response. http.ErrAbortHandler is re-raised so the server can abort the
// connection as usual.
func (h *Handler) withRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}

			if err, ok := rvr.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Str("panic", fmt.Sprint(rvr)).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			if r.Header.Get("Connection") != "Upgrade" {
				writeJSONError(w, r, http.StatusInternalServerError, app.MsgInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
