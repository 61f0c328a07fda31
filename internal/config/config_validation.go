// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"strings"
)

// applyDefaults resolves legacy variables and fills unset values.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = cfg.JWTSecret
	}

	if cfg.Server.HTTPAddress == "" {
		port := strings.TrimSpace(cfg.Port)
		if port == "" {
			port = DefaultPort
		}
		cfg.Server.HTTPAddress = net.JoinHostPort("", port)
	}

	if cfg.App.CollectionLimit == 0 {
		cfg.App.CollectionLimit = DefaultCollectionLimit
	}

	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = append([]string(nil), DefaultCORSOrigins...)
	}
}

// validate checks that the merged [StructuredConfig] can start a server.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.App.CollectionLimit < UnboundedCollectionLimit {
		return fmt.Errorf("%w: collection limit must be positive or %d for unbounded", ErrInvalidAppConfigs, UnboundedCollectionLimit)
	}

	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token duration must not be negative", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if _, _, err := net.SplitHostPort(cfg.Server.HTTPAddress); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
