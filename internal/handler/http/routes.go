// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const cpfRoute = "/api/ms-cpf"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecoverer)
	router.Use(withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// the endpoint answers every method itself: anything but POST gets a JSON 405
	router.HandleFunc(cpfRoute, h.validateCPF)

	router.Get("/api/version/", h.getServerVersion)
	router.Get("/metrics", h.metrics.Handler().ServeHTTP)

	router.MethodNotAllowed(h.methodNotAllowed)
	router.NotFound(h.notFound)

	return router
}
