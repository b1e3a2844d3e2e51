package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-lab-access/internal/adapter"
	"github.com/MKhiriev/go-lab-access/internal/backend"
	"github.com/MKhiriev/go-lab-access/internal/config"
	"github.com/MKhiriev/go-lab-access/internal/handler"
	"github.com/MKhiriev/go-lab-access/internal/logger"
	"github.com/MKhiriev/go-lab-access/internal/store"
)

// newEmbeddedBridge starts a development backend in the process and exposes
// it through a procedure bridge. Without a configured sign key tokens are
// signed with a random key, so they only live as long as the process.
func newEmbeddedBridge(ctx context.Context, flagCfg *config.StructuredConfig, log *logger.Logger) (*adapter.ProcedureBridge, func(), error) {
	cfg, err := config.GetEmbeddedBackendConfig(flagCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("load embedded backend config: %w", err)
	}
	if cfg.Auth.TokenSignKey == "" {
		cfg.Auth.TokenSignKey = uuid.NewString()
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, nil, fmt.Errorf("open embedded backend storage: %w", err)
	}

	// no listener: the bridge is the only way in
	cfg.Server.HTTPAddress = ""
	handlers, err := handler.NewHandlers(backend.NewBackend(storages.RequestRepository, cfg.Auth, log), cfg.Server, log)
	if err != nil {
		storages.Close()
		return nil, nil, err
	}

	pb := adapter.NewProcedureBridge()
	handlers.Bridge.Register(pb)

	release := func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("close embedded backend storage")
		}
	}
	return pb, release, nil
}
