// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

const (
	// DefaultPort is used when neither SERVER_ADDRESS nor PORT is provided.
	DefaultPort = "8080"

	// DefaultCollectionLimit caps the number of items in a single
	// favourites or history collection.
	DefaultCollectionLimit = 50

	// UnboundedCollectionLimit lifts the per-collection cap. Zero cannot
	// mean unbounded because an unset limit is also zero.
	UnboundedCollectionLimit = -1
)

// DefaultCORSOrigins is the allow-list applied when none is configured.
var DefaultCORSOrigins = []string{"https://metmuseum-enrvmabo4-yashasvinis-projects.vercel.app"}

// StructuredConfig is the top-level configuration container. It is populated
// by merging environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, collection and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listener, timeout and CORS settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings used by the API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Port is the bare listen port, kept for hosting platforms that only
	// inject PORT. Used when Server.HTTPAddress is empty.
	Port string `env:"PORT"`

	// JWTSecret is the legacy name of the token signing key. Used when
	// App.TokenSignKey is empty.
	JWTSecret string `env:"JWT_SECRET" json:"-"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify tokens.
	// Env: APP_TOKEN_SIGN_KEY (fallback JWT_SECRET)
	TokenSignKey string `env:"TOKEN_SIGN_KEY" json:"-"`

	// TokenIssuer, when set, is written to the "iss" claim and enforced
	// on every gated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration, when non-zero, adds an "exp" claim to issued tokens.
	// Zero means tokens never expire.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// CollectionLimit is the maximum number of items per collection.
	// Zero selects DefaultCollectionLimit, UnboundedCollectionLimit (-1)
	// removes the cap.
	// Env: APP_COLLECTION_LIMIT
	CollectionLimit int `env:"COLLECTION_LIMIT"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network, timeout and CORS settings for the inbound
// transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP listener ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the optional TCP address of the gRPC health listener.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request. Zero disables it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSOrigins is the list of origins allowed by the CORS policy.
	// Env: SERVER_CORS_ORIGINS (comma separated)
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by its scheme: "postgres://" / "postgresql://"
	// use pgx, "file:" / "sqlite:" use sqlite3.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds settings used by the API client.
type Adapter struct {
	// HTTPAddress is the base address of the API server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds each outbound client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is a previously issued credential token.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN" json:"-"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
