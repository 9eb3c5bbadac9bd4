// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/ms-cpf/internal/config"
	"github.com/MKhiriev/ms-cpf/internal/handler"
	"github.com/MKhiriev/ms-cpf/internal/logger"
	"github.com/MKhiriev/ms-cpf/internal/metrics"
	"github.com/MKhiriev/ms-cpf/internal/server"
	"github.com/MKhiriev/ms-cpf/internal/service"
	"github.com/MKhiriev/ms-cpf/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(os.Stdout, buildInfo)

	log := logger.NewLogger("ms-cpf-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	// a version stamped at build time wins over the default one
	if cfg.App.Version == config.DefaultVersion && buildInfo.BuildVersion() != "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	m := metrics.NewDefault()

	services, err := service.NewServices(*cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(w io.Writer, info models.AppBuildInfo) {
	fmt.Fprintf(w, "Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Fprintf(w, "Build date: %s\n", orNA(info.BuildDate()))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
