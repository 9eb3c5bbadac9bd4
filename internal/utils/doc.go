// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the
// application: JSON response writing, HTTP client initialization and trace
// ID generation.
package utils
