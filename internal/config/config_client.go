// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is a previously issued access token, if any.
	Token string
}

// ClientConfig is the top-level client configuration.
type ClientConfig struct {
	// Adapter contains the server address, timeouts and credentials.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the client configuration from the
// .env file and the environment. Command-line flags are left to the client
// binary because they share argv with its subcommands.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withEnv().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
	}

	return clientCfg, clientCfg.validate()
}

// Override replaces the non-zero values of adapter on top of the loaded
// configuration and validates the result again.
func (cfg *ClientConfig) Override(adapter ClientAdapter) error {
	if err := mergo.Merge(&cfg.Adapter, adapter, mergo.WithOverride); err != nil {
		return fmt.Errorf("error merging client configs: %w", err)
	}

	return cfg.validate()
}
