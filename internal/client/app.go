package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-lab-access/internal/adapter"
	"github.com/MKhiriev/go-lab-access/internal/config"
	"github.com/MKhiriev/go-lab-access/internal/logger"
	"github.com/MKhiriev/go-lab-access/internal/service"
	"github.com/MKhiriev/go-lab-access/internal/tui"
	"github.com/MKhiriev/go-lab-access/models"
)

// App is the interactive admin console.
type App struct {
	api      *APIClient
	services *service.Services
	tui      *tui.TUI
	logger   *logger.Logger
}

// NewApp wires the API client, the services and the console. bridge may be
// nil, in which case the console talks to cfg.Adapter.APIURL.
func NewApp(cfg *config.ClientConfig, bridge adapter.Bridge, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	api := New(cfg.Adapter, bridge, logger)
	svcs := service.NewServices(api, logger)

	return &App{
		api:      api,
		services: svcs,
		tui:      tui.New(svcs.AdminService, buildInfo, logger),
		logger:   logger,
	}
}

// Run blocks until the admin leaves the console. Quitting is not an error.
func (a *App) Run() error {
	a.logger.Info().Str("mode", string(a.api.Mode())).Msg("starting admin console")

	err := a.tui.Run(context.Background())
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}
