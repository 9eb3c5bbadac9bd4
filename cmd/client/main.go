// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/ms-cpf/internal/adapter"
	"github.com/MKhiriev/ms-cpf/internal/client"
	"github.com/MKhiriev/ms-cpf/internal/config"
	"github.com/MKhiriev/ms-cpf/internal/logger"
	"github.com/MKhiriev/ms-cpf/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewClientLogger("ms-cpf-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	app, err := client.NewApp(serverAdapter, cfg.CPFs, os.Stdout, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "usage: client [flags] CPF [CPF...]")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = app.Run(ctx)
	switch {
	case err == nil:
	case errors.Is(err, client.ErrInvalidCandidates):
		stop()
		os.Exit(1)
	default:
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
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
