// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-lab-access/internal/adapter"
)

// ErrUserQuit is returned by [TUI.Run] when the admin closed the program.
var ErrUserQuit = errors.New("user quit the program")

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrConfiguration):
		return "Backend URL is not configured (ADAPTER_API_URL)"
	case errors.Is(err, adapter.ErrTimeout):
		return "Backend did not answer in time"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the backend is unreachable"
	}

	return err.Error()
}
