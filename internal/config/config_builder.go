package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

type configBuilder struct {
	json  *StructuredConfig
	env   *StructuredConfig
	flags *StructuredConfig
	err   error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

// build merges the collected sources so that non-zero values from higher
// priority sources win: JSON, then env, then flags.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range []*StructuredConfig{b.json, b.env, b.flags} {
		if cfg == nil {
			continue
		}
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withFlags(flagCfg *StructuredConfig) *configBuilder {
	b.flags = flagCfg
	return b
}

// withEnv loads the dotenv file named by the flags or by ENV_FILE, then
// parses the process environment.
func (b *configBuilder) withEnv() *configBuilder {
	envFile := os.Getenv("ENV_FILE")
	if b.flags != nil && b.flags.EnvFile != "" {
		envFile = b.flags.EnvFile
	}

	if envFile != "" {
		if err := loadEnvFile(envFile); err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
	}

	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.env = envCfg
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range []*StructuredConfig{b.env, b.flags} {
		if cfg != nil && cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.json = jsonCfg

	return b
}
