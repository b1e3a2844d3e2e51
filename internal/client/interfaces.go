// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "github.com/MKhiriev/go-lab-access/internal/service"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

var (
	_ Client         = (*App)(nil)
	_ service.LabAPI = (*APIClient)(nil)
)
