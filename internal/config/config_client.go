package config

import (
	"fmt"
	"time"
)

const (
	defaultClientAddress = "http://localhost:" + DefaultPort
	defaultClientTimeout = 10 * time.Second
)

// ClientAdapter holds network settings used by the API client.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the API server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is a credential token obtained from a previous login.
	Token string
}

// ClientConfig is the command-line client configuration.
type ClientConfig struct {
	Adapter  ClientAdapter
	LogLevel string
}

// GetClientConfig builds the client configuration from environment variables
// and the optional JSON file. Command-line flags are owned by the client
// binary, which parses them together with its subcommands.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		LogLevel: cfg.App.LogLevel,
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultClientAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultClientTimeout
	}
}
