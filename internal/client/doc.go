// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line client of the CPF validation
// service.
//
// It sends every candidate given on the command line to a running server,
// one request per candidate, and prints one result line per candidate.
package client
