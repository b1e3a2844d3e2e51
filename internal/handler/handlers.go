package handler

import (
	"github.com/MKhiriev/go-lab-access/internal/backend"
	"github.com/MKhiriev/go-lab-access/internal/config"
	"github.com/MKhiriev/go-lab-access/internal/handler/bridge"
	"github.com/MKhiriev/go-lab-access/internal/handler/http"
	"github.com/MKhiriev/go-lab-access/internal/logger"
)

// Handlers exposes one backend over both transports. HTTP is nil when no
// listen address is configured; the bridge handler always exists because it
// needs no listener.
type Handlers struct {
	HTTP   *http.Handler
	Bridge *bridge.Handler
}

func NewHandlers(b *backend.Backend, cfg config.BackendServer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if b == nil {
		return nil, errNoBackend
	}

	handlers := &Handlers{
		Bridge: bridge.NewHandler(b, logger),
	}
	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(b, logger)
	}

	return handlers, nil
}
