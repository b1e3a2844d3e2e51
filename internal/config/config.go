// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging an optional JSON file, environment variables (after
// an optional dotenv file is loaded) and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version and the admin
	// credentials and token parameters used by the development backend.
	App App `envPrefix:"APP_"`

	// Adapter holds the client transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds the development backend listener settings.
	Server Server `envPrefix:"SERVER_"`

	// DB holds the development backend storage settings.
	DB DB `envPrefix:"DB_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG
	JSONFilePath string `env:"CONFIG"`

	// EnvFile is the optional path to a dotenv file loaded before
	// environment variables are parsed. Variables already set in the process
	// environment are not overridden.
	// Env: ENV_FILE
	EnvFile string `env:"ENV_FILE"`
}

// App holds application-level settings.
type App struct {
	// AdminEmail is the login of the development backend administrator.
	// Env: APP_ADMIN_EMAIL
	AdminEmail string `env:"ADMIN_EMAIL"`

	// AdminPasswordHash is the bcrypt hash of the administrator password.
	// Env: APP_ADMIN_PASSWORD_HASH
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// TokenSignKey is the secret used to sign admin session tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of admin session tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an admin session token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds the client transport settings.
type Adapter struct {
	// APIURL is the backend endpoint used in remote mode. It may be empty:
	// remote calls then fail with a configuration error.
	// Env: ADAPTER_API_URL
	APIURL string `env:"API_URL"`

	// RequestTimeout bounds how long a remote call waits for its callback.
	// Zero means no timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UploadTimeout bounds an opaque upload submission. Zero means no
	// timeout.
	// Env: ADAPTER_UPLOAD_TIMEOUT
	UploadTimeout time.Duration `env:"UPLOAD_TIMEOUT"`

	// CallbackPrefix is the fixed prefix of callback tokens ("cb" when empty).
	// Env: ADAPTER_CALLBACK_PREFIX
	CallbackPrefix string `env:"CALLBACK_PREFIX"`
}

// Server holds network and timeout settings for the development backend.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB selects the storage of the development backend.
type DB struct {
	// Driver is one of "memory" (default), "sqlite" or "postgres".
	// Env: DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name passed to the SQL driver. For sqlite it is
	// the database file path.
	// Env: DB_DSN
	DSN string `env:"DSN"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. Priority, lowest to highest:
//  1. JSON file (path from CONFIG or --config)
//  2. Environment variables, including those loaded from the dotenv file
//  3. Command-line flags (flagCfg, may be nil)
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flagCfg).
		withEnv().
		withJSON().
		build()
}
