// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/ms-cpf/internal/adapter"
	"github.com/MKhiriev/ms-cpf/internal/logger"
	"github.com/MKhiriev/ms-cpf/internal/validators"
)

// Result lines written by Run.
const (
	resultValid   = "valid"
	resultInvalid = "invalid"
	resultError   = "error"
)

type App struct {
	adapter adapter.ServerAdapter
	cpfs    []string
	out     io.Writer

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, cpfs []string, out io.Writer, logger *logger.Logger) (*App, error) {
	if len(cpfs) == 0 {
		return nil, ErrNoCPFsProvided
	}

	return &App{
		adapter: serverAdapter,
		cpfs:    cpfs,
		out:     out,
		logger:  logger,
	}, nil
}

// Run checks the candidates in order and writes one line per candidate:
//
//	529.982.247-25: valid (529.982.247-25)
//	52998224726: invalid
//
// It stops early when ctx is done.
func (a *App) Run(ctx context.Context) error {
	var (
		invalid  int
		failures []error
	)

	for _, cpf := range a.cpfs {
		if err := ctx.Err(); err != nil {
			return err
		}

		resp, err := a.adapter.ValidateCPF(ctx, cpf)
		switch {
		case err == nil:
			formatted, _ := validators.FormatCPF(resp.CPF)
			fmt.Fprintf(a.out, "%s: %s (%s)\n", cpf, resultValid, formatted)
		case errors.Is(err, adapter.ErrInvalidCPF):
			invalid++
			fmt.Fprintf(a.out, "%s: %s\n", cpf, resultInvalid)
		default:
			a.logger.Err(err).Str("cpf", cpf).Msg("error validating cpf")
			fmt.Fprintf(a.out, "%s: %s\n", cpf, resultError)
			failures = append(failures, fmt.Errorf("%s: %w", cpf, err))
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("%w: %w", ErrRequestsFailed, errors.Join(failures...))
	}
	if invalid > 0 {
		return ErrInvalidCandidates
	}

	return nil
}
