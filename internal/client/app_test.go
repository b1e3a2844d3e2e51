package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-lab-access/internal/adapter"
	"github.com/MKhiriev/go-lab-access/internal/config"
	"github.com/MKhiriev/go-lab-access/internal/logger"
	"github.com/MKhiriev/go-lab-access/models"
)

func TestNewApp_WiresServices(t *testing.T) {
	cfg := &config.ClientConfig{Adapter: config.ClientAdapter{APIURL: "https://example.test/exec"}}

	app := NewApp(cfg, nil, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())

	require.NotNil(t, app.services)
	assert.NotNil(t, app.services.AdminService)
	assert.NotNil(t, app.services.SurveyService)
	assert.NotNil(t, app.tui)
	assert.Equal(t, adapter.ModeRemote, app.api.Mode())
}

func TestNewApp_BridgedWhenBridgePresent(t *testing.T) {
	app := NewApp(&config.ClientConfig{}, adapter.NewProcedureBridge(), models.AppBuildInfo{}, logger.Nop())

	assert.Equal(t, adapter.ModeBridged, app.api.Mode())
}
