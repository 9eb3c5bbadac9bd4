// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Label values of the result label of the validations counter.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	Validations     *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them on reg. reg is also used as
// the source of the /metrics endpoint, so it must implement
// prometheus.Gatherer (a *prometheus.Registry does).
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ms_cpf_validations_total",
			Help: "Total number of CPF validations by result",
		}, []string{"result"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ms_cpf_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method and status code",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "status"}),
		gatherer: reg,
	}
}

// NewDefault creates the collectors on a fresh registry that also carries
// the Go runtime and process collectors.
func NewDefault() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return New(reg)
}

// ObserveValidation counts one validation outcome.
func (m *Metrics) ObserveValidation(valid bool) {
	result := ResultInvalid
	if valid {
		result = ResultValid
	}
	m.Validations.WithLabelValues(result).Inc()
}

// ObserveRequest records the duration of one served HTTP request.
func (m *Metrics) ObserveRequest(method string, status int, duration time.Duration) {
	m.RequestDuration.WithLabelValues(method, strconv.Itoa(status)).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
// Compression is left to the HTTP middleware chain.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{
		DisableCompression: true,
	})
}
