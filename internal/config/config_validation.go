// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-lab-access/internal/utils"
)

// validate checks source-independent invariants of the merged config.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Adapter.UploadTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidAdapterConfigs)
	}
	// tokens are echoed back as the callee of the callback script
	if p := cfg.Adapter.CallbackPrefix; p != "" && !utils.ValidCallbackName(p) {
		return fmt.Errorf("%w: callback prefix %q is not an identifier", ErrInvalidAdapterConfigs, p)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidServerConfigs)
	}

	return nil
}

// validate accepts an empty API URL: the client still starts and reports
// the missing endpoint on every remote call.
func (cfg *ClientConfig) validate() error {
	raw := strings.TrimSpace(cfg.Adapter.APIURL)
	if raw == "" {
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: API URL must be an absolute http(s) URL", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (cfg *BackendConfig) validate() error {
	if cfg.Auth.AdminEmail == "" || cfg.Auth.AdminPasswordHash == "" {
		return fmt.Errorf("%w: admin credentials are required", ErrInvalidAppConfigs)
	}
	if cfg.Auth.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	return cfg.validateStorage()
}

func (cfg *BackendConfig) validateStorage() error {
	switch cfg.Storage.Driver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres:
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("%w: %s storage needs a DSN", ErrInvalidDBConfigs, cfg.Storage.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidDBConfigs, cfg.Storage.Driver)
	}

	return nil
}
