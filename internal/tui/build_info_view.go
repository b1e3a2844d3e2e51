// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-lab-access/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := "Lab Access admin console\n\n" + strings.Join(info.Lines(), "\n")
	return renderPage("ABOUT", body, "v / esc: back")
}
