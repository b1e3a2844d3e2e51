package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client transport settings
	// (for example, a malformed API URL or a negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidServerConfigs indicates invalid development backend
	// listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates missing admin credentials or token
	// settings for the development backend.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidDBConfigs indicates an unknown storage driver or a SQL
	// driver without a DSN.
	ErrInvalidDBConfigs = errors.New("invalid db configuration")
)
