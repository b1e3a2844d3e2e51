package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Version is reported by the CLI.
	Version string
}

// ClientAdapter holds the settings consumed by the transports.
type ClientAdapter struct {
	// APIURL is the backend endpoint for remote mode. Empty is allowed.
	APIURL string
	// RequestTimeout bounds a remote call; zero means no timeout.
	RequestTimeout time.Duration
	// UploadTimeout bounds an opaque upload; zero means no timeout.
	UploadTimeout time.Duration
	// CallbackPrefix is the callback token prefix.
	CallbackPrefix string
}

// ClientConfig is the client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the client view of the merged
// configuration. flagCfg may be nil.
func GetClientConfig(flagCfg *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flagCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			APIURL:         cfg.Adapter.APIURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			UploadTimeout:  cfg.Adapter.UploadTimeout,
			CallbackPrefix: cfg.Adapter.CallbackPrefix,
		},
	}
}
