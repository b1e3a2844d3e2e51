// Package config provides configuration loading, merging, and validation.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file
//  2. Environment variables, optionally seeded from a dotenv file
//  3. Command-line flags
//
// The entry points are [GetClientConfig] for the API client and
// [GetBackendConfig] for the development backend.
package config
