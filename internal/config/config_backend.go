package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultTokenIssuer   = "lab-access"
	defaultTokenDuration = 8 * time.Hour
	defaultBackendAddr   = "localhost:8080"
)

// Storage drivers accepted in DB_DRIVER.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// BackendAuth holds the admin credentials and token settings of the
// development backend.
type BackendAuth struct {
	AdminEmail        string
	AdminPasswordHash string
	TokenSignKey      string
	TokenIssuer       string
	TokenDuration     time.Duration
}

// BackendServer holds the development backend listener settings.
type BackendServer struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// BackendStorage selects the request store of the development backend.
type BackendStorage struct {
	Driver string
	DSN    string
}

// BackendConfig is the development backend configuration assembled from
// [StructuredConfig].
type BackendConfig struct {
	Auth    BackendAuth
	Server  BackendServer
	Storage BackendStorage
}

// GetBackendConfig builds and validates the development backend view of the
// merged configuration, filling in defaults for the issuer, token duration
// and listen address.
func GetBackendConfig(flagCfg *StructuredConfig) (*BackendConfig, error) {
	cfg, err := GetStructuredConfig(flagCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	backendCfg := newBackendConfig(cfg)
	return backendCfg, backendCfg.validate()
}

// GetEmbeddedBackendConfig builds the configuration of a backend running
// inside the client process. Admin credentials are optional there: without
// them every admin login is refused.
func GetEmbeddedBackendConfig(flagCfg *StructuredConfig) (*BackendConfig, error) {
	cfg, err := GetStructuredConfig(flagCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	backendCfg := newBackendConfig(cfg)
	return backendCfg, backendCfg.validateStorage()
}

func newBackendConfig(cfg *StructuredConfig) *BackendConfig {
	backendCfg := &BackendConfig{
		Auth: BackendAuth{
			AdminEmail:        cfg.App.AdminEmail,
			AdminPasswordHash: cfg.App.AdminPasswordHash,
			TokenSignKey:      cfg.App.TokenSignKey,
			TokenIssuer:       cfg.App.TokenIssuer,
			TokenDuration:     cfg.App.TokenDuration,
		},
		Server: BackendServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Storage: BackendStorage{
			Driver: strings.ToLower(strings.TrimSpace(cfg.DB.Driver)),
			DSN:    cfg.DB.DSN,
		},
	}

	if backendCfg.Auth.TokenIssuer == "" {
		backendCfg.Auth.TokenIssuer = defaultTokenIssuer
	}
	if backendCfg.Auth.TokenDuration == 0 {
		backendCfg.Auth.TokenDuration = defaultTokenDuration
	}
	if backendCfg.Server.HTTPAddress == "" {
		backendCfg.Server.HTTPAddress = defaultBackendAddr
	}
	if backendCfg.Storage.Driver == "" {
		backendCfg.Storage.Driver = DriverMemory
	}

	return backendCfg
}
